package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/voluntai/voluntai-api/internal/auth"
	"github.com/voluntai/voluntai-api/internal/config"
	"github.com/voluntai/voluntai-api/internal/database"
	"github.com/voluntai/voluntai-api/internal/handlers"
	"github.com/voluntai/voluntai-api/internal/repository"
	"github.com/voluntai/voluntai-api/internal/router"
	"github.com/voluntai/voluntai-api/internal/services"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	tokenIssuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenValidity)

	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	opportunityRepo := repository.NewOpportunityRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	chatRepo := repository.NewChatRepository(db)

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	opportunityService := services.NewOpportunityService(opportunityRepo)
	enrollmentService := services.NewEnrollmentService(enrollmentRepo, opportunityRepo)
	chatService := services.NewChatService(chatRepo, opportunityRepo)
	reportService := services.NewReportService(opportunityRepo, enrollmentRepo)

	r := router.New(tokenIssuer, router.Handlers{
		Auth:        handlers.NewAuthHandler(authService, tokenIssuer),
		Opportunity: handlers.NewOpportunityHandler(opportunityService),
		Enrollment:  handlers.NewEnrollmentHandler(enrollmentService),
		Chat:        handlers.NewChatHandler(chatService),
		User:        handlers.NewUserHandler(userService),
		Report:      handlers.NewReportHandler(reportService),
	})

	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
