package handlers

import (
	"errors"
	"log"
	"net/http"

	"job-board-api/internal/services"
	"job-board-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

// UserHandler holds dependencies for registration and session operations.
type UserHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{
		service:   service,
		validator: validate,
	}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a new account. Role is "Employer" or "Worker"; anything else defaults to Worker. Employer registrations also create an employer profile.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        registration body      dto.RegisterRequest true  "Registration details"
// @Success      201 {object}  dto.UserResponse "User created successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input or weak password"
// @Failure      409 {object}  map[string]string "Conflict - Email already registered"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
		} else if errors.Is(err, services.ErrInvalidArgument) || errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error registering user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, MapUserModelToUserResponse(user))
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and returns an access/refresh token pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body      dto.LoginRequest true  "Login credentials"
// @Success      200 {object}  dto.TokenPairResponse "Logged in successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized - Invalid credentials"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, accessToken, refreshToken, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		} else {
			log.Printf("Error logging in user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         MapUserModelToUserResponse(user),
	})
}

// Refresh godoc
// @Summary      Refresh the session
// @Description  Rotates a refresh token and returns a fresh token pair. The presented token is invalidated.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        refresh body      dto.RefreshRequest true  "Refresh token"
// @Success      200 {object}  dto.TokenPairResponse "Session refreshed"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized - Unknown or expired refresh token"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /auth/refresh [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, accessToken, refreshToken, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) || errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		} else {
			log.Printf("Error refreshing session: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh session"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         MapUserModelToUserResponse(user),
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes a refresh token. Already-revoked tokens are treated as a successful logout.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        logout body      dto.LogoutRequest true  "Refresh token to revoke"
// @Success      204 "Logged out"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (h *UserHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	if err := h.service.Logout(c.Request.Context(), &req); err != nil {
		log.Printf("Error logging out: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}

	c.Status(http.StatusNoContent)
}
