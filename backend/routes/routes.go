package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"portfolio/backend/badge"
	"portfolio/backend/cache"
	"portfolio/backend/config"
	"portfolio/backend/controllers"
	"portfolio/backend/middleware"
)

func SetupRoutes(app *fiber.App, cfg *config.Config, contributions *cache.ContributionCache, renderer *badge.Renderer, logger *log.Logger) {
	// Badge routes
	badgeController := controllers.NewBadgeController(contributions, renderer, cfg)
	app.Get("/api/badge-texture", badgeController.GetBadgeTexture)
	app.Get("/api/lanyard-texture", badgeController.GetLanyardTexture)
	app.Get("/api/clear-badge-cache", middleware.CacheClearAuth(cfg), badgeController.ClearBadgeCache)

	// Portfolio content routes
	portfolioController := controllers.NewPortfolioController()
	app.Get("/api/portfolio/profile", portfolioController.GetProfile)
	app.Get("/api/portfolio/projects", portfolioController.GetProjects)
	app.Get("/api/portfolio/socials", portfolioController.GetSocials)
	app.Get("/api/portfolio/experience", portfolioController.GetExperience)

	// Contact form
	contactController := controllers.NewContactController(cfg, logger)
	app.Post("/api/contact", contactController.SubmitContact)
}
