package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort       string
	CookieTTL        time.Duration
	CookieSecure     bool
	TokenSecret      string
	DownloadTokenTTL time.Duration
	FSGroup          int
	NotebookPort     int
	AdminDataURL     string
	ImageCatalogFile string
	RateLimit        float64
	LogLevel         string
	SwaggerHost      string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is applied first when present;
// variables already set in the environment win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		CookieTTL:        time.Duration(getEnvInt("COOKIE_TTL_DAYS", 365)) * 24 * time.Hour,
		CookieSecure:     getEnvBool("COOKIE_SECURE", false),
		TokenSecret:      getEnv("TOKEN_SECRET", "change-me"),
		DownloadTokenTTL: getEnvDuration("DOWNLOAD_TOKEN_TTL", 15*time.Minute),
		FSGroup:          getEnvInt("FS_GROUP", 11169),
		NotebookPort:     getEnvInt("NOTEBOOK_PORT", 8888),
		AdminDataURL:     getEnv("ADMIN_DATA_URL", "https://people.epfl.ch/%s/admindata"),
		ImageCatalogFile: os.Getenv("IMAGE_CATALOG_FILE"),
		RateLimit:        getEnvFloat("RATE_LIMIT", 20),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		SwaggerHost:      os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
