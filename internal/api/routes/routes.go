package routes

import (
	"log"

	"job-board-api/internal/api/handlers"
	"job-board-api/internal/api/middleware"
	"job-board-api/internal/app"
	"job-board-api/internal/services"
	"job-board-api/internal/storage/postgres"
	"job-board-api/internal/storage/redisstore"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// --- Repositories ---
	userRepo := postgres.NewUserRepo(app.EntClient)
	profileRepo := postgres.NewEmployerProfileRepo(app.EntClient)
	jobRepo := postgres.NewJobRepo(app.EntClient)
	appRepo := postgres.NewJobApplicationRepo(app.EntClient)
	tokenStore := redisstore.NewTokenStore(app.RedisClient)

	// --- Services ---
	userService := services.NewUserService(
		app.EntClient,
		userRepo,
		profileRepo,
		tokenStore,
		app.Config.JWT.Secret,
		app.Config.JWT.Expiration,
		app.Config.JWT.RefreshExpiration,
	)
	jobService := services.NewJobService(jobRepo, profileRepo)
	appService := services.NewJobApplicationService(appRepo, jobRepo, profileRepo)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, app.Validator)
	jobHandler := handlers.NewJobHandler(jobService, app.Validator)
	appHandler := handlers.NewJobApplicationHandler(appService, app.Validator)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)
	optionalAuthMiddleware := middleware.OptionalJWTAuthMiddleware(app.Config.JWT.Secret)

	// --- Register Resource Routes ---
	RegisterUserRoutes(apiV1, userHandler, authMiddleware)
	RegisterJobRoutes(apiV1, jobHandler, appHandler, authMiddleware, optionalAuthMiddleware)
	RegisterJobApplicationRoutes(apiV1, appHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
