package controllers

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/backend/models"
	"portfolio/backend/utils"
)

type PortfolioController struct{}

func NewPortfolioController() *PortfolioController {
	return &PortfolioController{}
}

func (pc *PortfolioController) GetProfile(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, models.SiteProfile)
}

func (pc *PortfolioController) GetProjects(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, models.Projects)
}

func (pc *PortfolioController) GetSocials(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, models.SocialLinks)
}

func (pc *PortfolioController) GetExperience(c *fiber.Ctx) error {
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"companies": models.PreviousCompanies,
		"education": models.EducationHistory,
	})
}
