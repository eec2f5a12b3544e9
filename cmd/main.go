package main

import (
	"context"
	"log"
	"os"

	"estatedesk-backend/internal/api"
	"estatedesk-backend/internal/api/routes"
	"estatedesk-backend/internal/config"
	"estatedesk-backend/internal/libraries"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Connect to database
	if err := config.ConnectDB(); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := config.MigrateAllModels(os.Getenv("RUN_MIGRATIONS") == "true"); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize GCS and Gemini file-store clients
	if _, err := libraries.NewClients(context.Background()); err != nil {
		log.Fatal("Failed to init gcp clients:", err)
	}

	// Create and configure Fiber app
	app := api.NewServer()

	// Register routes
	routes.Register(app)

	// Start server
	if err := api.StartServer(app); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
