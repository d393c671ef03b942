package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAdminPassword = "admin123"
	defaultSessionSecret = "sansa-learn-secret"
)

// App holds the runtime configuration loaded from environment variables.
type App struct {
	Env           string
	Port          string
	DatabaseURL   string
	AdminPassword string
	SessionSecret string
	SessionTTL    time.Duration
}

// IsProduction reports whether the app runs with production hardening.
func (a App) IsProduction() bool {
	return a.Env == "production"
}

// Load returns application config populated from environment variables.
// The .env file is optional; real environment variables win.
func Load() (App, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := App{
		Env:           getEnv("APP_ENV", "dev"),
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		AdminPassword: getEnv("ADMIN_PASSWORD", defaultAdminPassword),
		SessionSecret: getEnv("SESSION_SECRET", defaultSessionSecret),
		SessionTTL:    durationEnv("SESSION_TTL", 24*time.Hour),
	}

	// The literal fallbacks are development conveniences only.
	if cfg.IsProduction() {
		if cfg.AdminPassword == defaultAdminPassword {
			return App{}, fmt.Errorf("ADMIN_PASSWORD must be set in production")
		}
		if cfg.SessionSecret == defaultSessionSecret {
			return App{}, fmt.Errorf("SESSION_SECRET must be set in production")
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using fallback %s", key, err, fallback)
			return fallback
		}
		return d
	}
	return fallback
}
