package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"job-board-api/config"
	"job-board-api/internal/app"
	"job-board-api/internal/database"
	"job-board-api/internal/server"

	_ "job-board-api/docs" // Import generated docs (created by swag init)

	"github.com/go-playground/validator"
)

// @title           Job Board API
// @version         1.0
// @description     A mini job board: employers post jobs, workers apply, employers accept or reject.

// @contact.name   API Support
// @contact.url    http://www.example.com/support
// @contact.email  support@example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Redis Client ---
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// --- Initialize Ent Client ---
	entClient, err := database.NewEntClient(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer entClient.Close()

	// Run schema migration at boot
	if err := entClient.Schema.Create(context.Background()); err != nil {
		log.Fatalf("Failed to create schema resources: %v", err)
	}

	validate := validator.New()

	application := &app.Application{
		Config:      cfg,
		EntClient:   entClient,
		RedisClient: redisClient,
		Validator:   validate,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down server...")

	//Gin shutdowns on its own

	log.Println("Application gracefully stopped.")
}
