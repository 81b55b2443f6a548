package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"job-board-api/internal/storage"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const refreshTokenPrefix = "refresh_token:"

// TokenStore implements storage.TokenStore on Redis. Tokens expire via TTL,
// so logout and natural expiry behave the same.
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore creates a new TokenStore.
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Compile-time check to ensure TokenStore implements storage.TokenStore
var _ storage.TokenStore = (*TokenStore)(nil)

func (s *TokenStore) Save(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	if err := s.client.Set(ctx, refreshTokenPrefix+token, userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (s *TokenStore) Get(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.client.Get(ctx, refreshTokenPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, storage.ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("corrupt refresh token entry: %w", err)
	}
	return userID, nil
}

func (s *TokenStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, refreshTokenPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
