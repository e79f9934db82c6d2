package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"portfolio/backend/badge"
	"portfolio/backend/cache"
	"portfolio/backend/config"
	"portfolio/backend/github"
	"portfolio/backend/models"
	"portfolio/backend/utils"
)

const badgeCacheControl = "public, max-age=86400, s-maxage=86400, stale-while-revalidate=3600"
const lanyardCacheControl = "public, max-age=86400, stale-while-revalidate=604800"

type BadgeController struct {
	Cache    *cache.ContributionCache
	Renderer *badge.Renderer
	Cfg      *config.Config
}

func NewBadgeController(contributions *cache.ContributionCache, renderer *badge.Renderer, cfg *config.Config) *BadgeController {
	return &BadgeController{Cache: contributions, Renderer: renderer, Cfg: cfg}
}

// GetBadgeTexture returns the composed badge PNG. The contribution cache
// never fails and every visual input degrades independently, so end users
// always get an image, at worst one with an all-baseline heatmap.
func (bc *BadgeController) GetBadgeTexture(c *fiber.Ctx) error {
	calendar := bc.Cache.Get(c.Context(), models.GitHubUsername())

	img, err := bc.Renderer.Render(calendar)
	if err != nil {
		return utils.InternalServerError(c, "failed to render badge")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, badgeCacheControl)
	return c.Send(img)
}

// GetLanyardTexture returns the decorative strap texture.
func (bc *BadgeController) GetLanyardTexture(c *fiber.Ctx) error {
	img, err := badge.RenderLanyard()
	if err != nil {
		return utils.InternalServerError(c, "failed to render lanyard texture")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, lanyardCacheControl)
	return c.Send(img)
}

// ClearBadgeCache deletes the on-disk contribution cache and refetches
// synchronously. Unlike the render path this is an operator action, so
// upstream failures map to explicit status codes instead of degrading.
// Token auth is enforced by middleware.CacheClearAuth.
func (bc *BadgeController) ClearBadgeCache(c *fiber.Ctx) error {
	entry, err := bc.Cache.Invalidate(c.Context(), models.GitHubUsername())
	if err != nil {
		switch {
		case errors.Is(err, github.ErrNoToken):
			return utils.Error(c, fiber.StatusInternalServerError, "GITHUB_TOKEN not configured")
		case errors.Is(err, github.ErrNoCalendar):
			return utils.Error(c, fiber.StatusNotFound, "No contribution data found")
		default:
			// Non-2xx statuses and network errors are both upstream failures.
			return utils.Error(c, fiber.StatusBadGateway, err.Error())
		}
	}

	return c.JSON(fiber.Map{
		"success":            true,
		"message":            "Cache cleared and data refetched",
		"totalContributions": entry.Data.TotalContributions,
		"timestamp":          time.UnixMilli(entry.Timestamp).UTC().Format(time.RFC3339),
	})
}
