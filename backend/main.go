package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"portfolio/backend/badge"
	"portfolio/backend/cache"
	"portfolio/backend/config"
	"portfolio/backend/github"
	"portfolio/backend/middleware"
	"portfolio/backend/models"
	"portfolio/backend/routes"
	"portfolio/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Contribution cache backed by the GitHub GraphQL API
	githubClient := github.NewClient(cfg.GitHubToken)
	contributions := cache.New(githubClient, cfg.CacheDir, logger)

	// Badge renderer
	renderer := badge.NewRenderer(cfg.AssetsDir, models.SiteProfile, logger)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, cfg, contributions, renderer, logger)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
