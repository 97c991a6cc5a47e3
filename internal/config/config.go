package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// App holds everything read from the environment at startup.
type App struct {
	Port          string
	SessionSecret string
	SessionTTL    time.Duration
	LogFile       string
}

// Load reads .env (if present) and assembles the application settings.
func Load() App {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	ttlHours := 72
	if v := getEnv("SESSION_TTL_HOURS", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttlHours = n
		}
	}

	return App{
		Port:          getEnv("PORT", "8000"),
		SessionSecret: getEnv("SESSION_SECRET", "supersecret"),
		SessionTTL:    time.Duration(ttlHours) * time.Hour,
		LogFile:       getEnv("LOG_FILE", "./logs/app.log"),
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
