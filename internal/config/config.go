package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort       = "8080"
	defaultStorage    = "db"
	defaultBadgerPath = "./data/crm"
	defaultJWTTTL     = "24h"
	defaultJWTSecret  = "change-me-jwt-secret"
)

// Config is the process configuration, read from the environment.
type Config struct {
	AppEnv        string
	Port          string
	DatabaseURL   string
	StorageDriver string // "db" or "badger"
	BadgerPath    string
	JWTSecret     string
	JWTTTL        time.Duration
	GeminiAPIKey  string
}

// Load reads and validates configuration. In prod-like environments a
// real JWT secret is mandatory.
func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(getEnv("STORAGE_DRIVER", defaultStorage)))
	cfg.BadgerPath = strings.TrimSpace(getEnv("BADGER_PATH", defaultBadgerPath))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.GeminiAPIKey = strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	switch cfg.StorageDriver {
	case "db", "badger":
	default:
		return fmt.Errorf("STORAGE_DRIVER must be one of: db, badger")
	}
	if cfg.StorageDriver == "db" && cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set when STORAGE_DRIVER=db")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
