package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	GitHubToken     string
	CacheClearToken string
	CacheDir        string
	AssetsDir       string
	SMTPHost        string
	SMTPPort        string
	SMTPUser        string
	SMTPPass        string
	ContactEmail    string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		GitHubToken:     getEnv("GITHUB_TOKEN", ""),
		CacheClearToken: getEnv("CACHE_CLEAR_TOKEN", ""),
		CacheDir:        getEnv("CACHE_DIR", os.TempDir()),
		AssetsDir:       getEnv("ASSETS_DIR", "public"),
		SMTPHost:        getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:        getEnv("SMTP_PORT", "587"),
		SMTPUser:        getEnv("SMTP_USER", ""),
		SMTPPass:        getEnv("SMTP_PASS", ""),
		ContactEmail:    getEnv("CONTACT_EMAIL", "hello@nico.dev"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
