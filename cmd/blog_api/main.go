// Package main Inkwell API
// @title Inkwell API
// @version 1.0
// @description A content management API for publishing and curating blog articles
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email support@inkwell.dev
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/velikovic/inkwell/internal/auth"
	"github.com/velikovic/inkwell/internal/router"
	"github.com/velikovic/inkwell/internal/seed"
	"github.com/velikovic/inkwell/internal/server"
	"github.com/velikovic/inkwell/internal/storage/cached"
	"github.com/velikovic/inkwell/internal/storage/pg"
	"github.com/velikovic/inkwell/pkg/ttlcache"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	ctx := context.Background()

	if err := pg.RunMigrations(cfg.DatabaseURL); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
		return
	}

	pool, err := pg.NewConnectionPool(ctx, pg.PoolConfig{ConnStr: cfg.DatabaseURL})
	if err != nil {
		slog.Error("Failed to create connection pool", "error", err)
		os.Exit(1)
		return
	}
	defer pool.Close()

	authSvc, err := auth.NewService(cfg.AuthConfig)
	if err != nil {
		slog.Error("Failed to create auth service", "error", err)
		os.Exit(1)
		return
	}

	cache := ttlcache.New[any]()

	articles := cached.NewArticleStore(pg.NewArticleStore(pool), cache)
	categories := cached.NewCategoryStore(pg.NewCategoryStore(pool), cache)
	authors := cached.NewAuthorStore(pg.NewAuthorStore(pool), cache)
	tags := cached.NewTagStore(pg.NewTagStore(pool), cache)

	if cfg.SeedFile != "" {
		if err := applySeed(ctx, cfg.SeedFile, categories, authors); err != nil {
			slog.Error("Failed to apply seed file", "error", err, "path", cfg.SeedFile)
			os.Exit(1)
			return
		}
	}

	s := server.NewServer(echo.New(), sCfg).
		SetupHealthChecks("/health", pool).
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Inkwell API is running")
	})

	router.NewArticleRouter(s.Echo, articles).Bind()
	router.NewTaxonomyRouter(s.Echo, categories, authors, tags).Bind()
	router.NewAuthRouter(s.Echo, authSvc).Bind()
	router.NewAdminRouter(s.Echo, authSvc, articles, categories, authors, tags).Bind()

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}

func applySeed(ctx context.Context, path string, categories *cached.CategoryStore, authors *cached.AuthorStore) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	seedFile, err := seed.Load(f)
	if err != nil {
		return err
	}
	if err := seedFile.Validate(); err != nil {
		return err
	}
	return seed.Apply(ctx, seedFile, categories, authors)
}
