package main

import (
	"log"
	"os"

	"heirloom/ai"
	"heirloom/config"
	"heirloom/db"
	"heirloom/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	// Load configuration and initialize database
	config.LoadConfig()
	db.InitDatabase()

	// Create uploads directory if it doesn't exist
	if _, err := os.Stat(config.UploadDir); os.IsNotExist(err) {
		os.Mkdir(config.UploadDir, 0755)
	}

	// Analysis worker; without an API key every submission fails via
	// polling rather than blocking the storefront.
	var analyzer ai.Analyzer
	if openAIAnalyzer, err := ai.NewOpenAIAnalyzer(); err != nil {
		log.Println("AI analyzer disabled:", err)
	} else {
		analyzer = openAIAnalyzer
	}
	worker := ai.NewWorker(analyzer)
	worker.Start()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Serve static files
	app.Static("/uploads", "./"+config.UploadDir)

	// Setup routes
	routes.SetupRoutes(app, worker)

	// Start server
	log.Fatal(app.Listen(":" + config.Port))
}
