package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	LogLevel    string
	// Auth Configuration
	JWTSecret         string
	JWTExpiryHours    int
	AdminSignupSecret string // empty disables admin self-elevation at registration
	// Upload Configuration
	UploadDir       string
	MaxUploadSizeMB int
	// Redis Configuration (optional, rate limiting falls back to memory)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds  int
	RateLimitLoginThreshold int
}

func LoadConfig() (*Config, error) {
	// .env is only effective locally; ignored in production when the file is absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		// Auth Configuration
		JWTSecret:         getEnv("JWT_SECRET", ""),
		JWTExpiryHours:    getEnvInt("JWT_EXPIRY_HOURS", 24),
		AdminSignupSecret: getEnv("ADMIN_SIGNUP_SECRET", ""),
		// Upload Configuration
		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadSizeMB: getEnvInt("MAX_UPLOAD_SIZE_MB", 5),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:  getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitLoginThreshold: getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Authentication will reject every token.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
