// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

// Command api is the entry point for the faculty CMS HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pakapat-jp/edu-mcru/internal/api"
	"github.com/pakapat-jp/edu-mcru/internal/content/article"
	"github.com/pakapat-jp/edu-mcru/internal/content/category"
	"github.com/pakapat-jp/edu-mcru/internal/content/dashboard"
	"github.com/pakapat-jp/edu-mcru/internal/content/media"
	"github.com/pakapat-jp/edu-mcru/internal/content/menu"
	"github.com/pakapat-jp/edu-mcru/internal/content/personnel"
	"github.com/pakapat-jp/edu-mcru/internal/content/setting"
	"github.com/pakapat-jp/edu-mcru/internal/content/slider"
	"github.com/pakapat-jp/edu-mcru/internal/platform/config"
	"github.com/pakapat-jp/edu-mcru/internal/platform/constants"
	"github.com/pakapat-jp/edu-mcru/internal/platform/migration"
	pgstore "github.com/pakapat-jp/edu-mcru/internal/platform/postgres"
	redisstore "github.com/pakapat-jp/edu-mcru/internal/platform/redis"
	"github.com/pakapat-jp/edu-mcru/internal/platform/sec"
	"github.com/pakapat-jp/edu-mcru/internal/platform/upload"
	"github.com/pakapat-jp/edu-mcru/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "edu-mcru"))
	slog.SetDefault(log)

	log.Info("[EduMCRU] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "edu-mcru"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service & Uploads ────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	uploads, err := upload.NewStore(cfg.UploadDir, log)
	must(log, err, "initialize upload store")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	authService := auth.NewService(auth.NewPostgresRepository(pool), jwtSvc, log)
	authHandler := auth.NewHandler(authService)

	if cfg.BootstrapAdminPassword != "" {
		must(log, authService.EnsureAdmin(startupCtx, cfg.BootstrapAdminPassword), "bootstrap admin account")
	}

	articleService := article.NewService(article.NewPostgresRepository(pool), log)
	articleHandler := article.NewHandler(articleService, uploads)

	categoryService := category.NewService(category.NewPostgresRepository(pool), log)
	categoryHandler := category.NewHandler(categoryService)

	menuService := menu.NewService(menu.NewPostgresRepository(pool), log)
	menuHandler := menu.NewHandler(menuService)

	sliderService := slider.NewService(slider.NewPostgresRepository(pool), log)
	sliderHandler := slider.NewHandler(sliderService, uploads)

	mediaService := media.NewService(media.NewPostgresRepository(pool), log)
	mediaHandler := media.NewHandler(mediaService, uploads)

	// Personnel portraits are mirrored into the media library.
	personnelService := personnel.NewService(personnel.NewPostgresRepository(pool), mediaService, log)
	personnelHandler := personnel.NewHandler(personnelService, uploads)

	settingService := setting.NewService(setting.NewPostgresRepository(pool), rdb, log)
	settingHandler := setting.NewHandler(settingService)

	dashboardHandler := dashboard.NewHandler(dashboard.NewPostgresRepository(pool))

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Article:   articleHandler,
		Category:  categoryHandler,
		Menu:      menuHandler,
		Slider:    sliderHandler,
		Personnel: personnelHandler,
		Media:     mediaHandler,
		Setting:   settingHandler,
		Dashboard: dashboardHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
