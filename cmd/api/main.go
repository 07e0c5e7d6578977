package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/macroai/backend/config"
	"github.com/macroai/backend/internal/server"
	"github.com/macroai/backend/internal/service"
)

func main() {
	// Populate the environment from a local .env file; real variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Failed to load .env file: %v", err)
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.Environment.GinMode())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize services
	provider, err := service.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiBaseURL)
	if err != nil {
		log.Fatalf("Failed to create Gemini provider: %v", err)
	}
	model := service.SelectModel(ctx, provider)
	nutritionService := service.NewNutritionService(provider, model)

	// Create and start server
	srv := server.New(cfg, nutritionService)
	if err := srv.Start(ctx); err != nil {
		log.Printf("Server error: %v", err)
		os.Exit(1)
	}
	log.Println("Server stopped")
}
