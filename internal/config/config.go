package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	BaseURL  string
	MediaDir string
	Database DatabaseConfig
	Token    TokenConfig
	Session  SessionConfig
	SMTP     SMTPConfig
	TestMode bool
}

type DatabaseConfig struct {
	URL string
}

// TokenConfig controls the signed email-verification tokens.
type TokenConfig struct {
	Secret   string
	TTLHours int
}

type SessionConfig struct {
	Secret string
	Secure bool
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func Load() (*Config, error) {
	godotenv.Load()

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		smtpPort = 587
	}

	tokenTTL, err := strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "72"))
	if err != nil || tokenTTL <= 0 {
		tokenTTL = 72
	}

	return &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		BaseURL:  getEnv("BASE_URL", "http://localhost:8080"),
		MediaDir: getEnv("MEDIA_DIR", "media"),
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Token: TokenConfig{
			Secret:   getEnv("TOKEN_SECRET", ""),
			TTLHours: tokenTTL,
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", ""),
			Secure: getEnv("SESSION_SECURE", "false") == "true",
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     smtpPort,
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("MAIL_FROM", "noreply@smartbudget.local"),
		},
		TestMode: getEnv("TEST_MODE", "false") == "true",
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
