package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/velikovic/inkwell/internal/auth"
	"github.com/velikovic/inkwell/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type BlogApiConfig struct {
	DatabaseURL string
	AuthConfig  auth.Config
	SeedFile    string
}

func (as *AppConfig) Load() (*BlogApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/blog_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, errors.New("DATABASE_URL must be set")
	}

	sessionTTL := 12 * time.Hour
	if ttlStr := os.Getenv("SESSION_TTL"); ttlStr != "" {
		sessionTTL, err = time.ParseDuration(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
	}

	return &BlogApiConfig{
		DatabaseURL: dbURL,
		AuthConfig: auth.Config{
			Secret:            []byte(os.Getenv("AUTH_SECRET")),
			AdminEmail:        os.Getenv("ADMIN_EMAIL"),
			AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
			SessionTTL:        sessionTTL,
		},
		SeedFile: os.Getenv("SEED_FILE"),
	}, nil
}
