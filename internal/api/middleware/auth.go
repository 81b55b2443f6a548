package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"job-board-api/internal/models"
	"job-board-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	authorizationHeader = "Authorization"
	userCtx             = "userID"   // Key to store user ID in context
	roleCtx             = "userRole" // Key to store the role claim in context
)

func parseToken(tokenString, jwtSecret string) (*services.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &services.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what you expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*services.AuthClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

func setIdentity(c *gin.Context, claims *services.AuthClaims) error {
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return fmt.Errorf("invalid user identifier in token subject %q: %w", claims.Subject, err)
	}
	c.Set(userCtx, userID)
	c.Set(roleCtx, models.Role(claims.Role))
	return nil
}

// JWTAuthMiddleware creates a Gin middleware for JWT authentication.
func JWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			log.Println("Auth middleware: Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			log.Println("Auth middleware: Invalid Authorization header format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		claims, err := parseToken(headerParts[1], jwtSecret)
		if err != nil {
			log.Printf("Auth middleware: Error parsing token: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		if err := setIdentity(c, claims); err != nil {
			log.Printf("Auth middleware: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identifier in token"})
			return
		}

		c.Next()
	}
}

// OptionalJWTAuthMiddleware resolves an identity when a valid bearer token
// is present but lets anonymous requests through. Used on public routes
// whose response varies for owners (e.g. inactive job visibility).
func OptionalJWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			c.Next()
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			c.Next()
			return
		}

		claims, err := parseToken(headerParts[1], jwtSecret)
		if err != nil {
			// A bad token on a public route is treated as anonymous.
			log.Printf("Auth middleware (optional): ignoring invalid token: %v", err)
			c.Next()
			return
		}

		if err := setIdentity(c, claims); err != nil {
			log.Printf("Auth middleware (optional): %v", err)
		}
		c.Next()
	}
}

// RequireRole guards a route group behind a role claim. Must run after
// JWTAuthMiddleware.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actingRole, err := GetUserRoleFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if actingRole != role {
			log.Printf("Auth middleware: role %s required, got %s", role, actingRole)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": fmt.Sprintf("%s role required", role)})
			return
		}
		c.Next()
	}
}

// GetUserIDFromContext returns the authenticated user's ID, or an error for
// anonymous requests.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, error) {
	userIDAny, exists := c.Get(userCtx)
	if !exists {
		return uuid.Nil, errors.New("user ID not found in context")
	}

	userID, ok := userIDAny.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user ID in context is of invalid type")
	}

	return userID, nil
}

// GetUserRoleFromContext returns the authenticated user's role claim.
func GetUserRoleFromContext(c *gin.Context) (models.Role, error) {
	roleAny, exists := c.Get(roleCtx)
	if !exists {
		return "", errors.New("user role not found in context")
	}

	role, ok := roleAny.(models.Role)
	if !ok {
		return "", errors.New("user role in context is of invalid type")
	}

	return role, nil
}
