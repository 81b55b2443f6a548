package app

import (
	"job-board-api/config"
	"job-board-api/ent"

	"github.com/go-playground/validator"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	EntClient   *ent.Client
	RedisClient *redis.Client
	Validator   *validator.Validate
}
