package config

import (
	"os"
	"strings"
)

// Config holds all runtime settings, populated from environment variables
// with development defaults.
type Config struct {
	Port         string
	Environment  string // development, production
	LogLevel     string
	JWTSecret    string
	WinnersURL   string
	AllowOrigins []string
}

// Load reads settings from the environment. Call after godotenv has loaded
// any .env file.
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("APP_ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		JWTSecret:    getEnv("JWT_SECRET", "default_super_secret_key"),
		WinnersURL:   getEnv("WINNERS_URL", "https://incentives.example.com/winners.json"),
		AllowOrigins: splitEnv("ALLOW_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitEnv(key, fallback string) []string {
	raw := getEnv(key, fallback)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
