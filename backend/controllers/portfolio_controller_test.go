package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPortfolioTestApp() *fiber.App {
	pc := NewPortfolioController()
	app := fiber.New()
	app.Get("/api/portfolio/profile", pc.GetProfile)
	app.Get("/api/portfolio/projects", pc.GetProjects)
	app.Get("/api/portfolio/socials", pc.GetSocials)
	app.Get("/api/portfolio/experience", pc.GetExperience)
	return app
}

func TestGetProfile(t *testing.T) {
	app := newPortfolioTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/portfolio/profile", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSONBody(t, resp)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Nico Epp", data["name"])
}

func TestGetSocialsIncludesGitHub(t *testing.T) {
	app := newPortfolioTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/portfolio/socials", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSONBody(t, resp)
	links := body["data"].([]interface{})

	var platforms []string
	for _, l := range links {
		platforms = append(platforms, l.(map[string]interface{})["platform"].(string))
	}
	assert.Contains(t, platforms, "github")
}

func TestGetProjects(t *testing.T) {
	app := newPortfolioTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/portfolio/projects", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSONBody(t, resp)
	assert.NotEmpty(t, body["data"])
}

func TestGetExperience(t *testing.T) {
	app := newPortfolioTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/portfolio/experience", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeJSONBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["companies"])
	assert.NotEmpty(t, data["education"])
}
