// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

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
	"github.com/pakapat-jp/edu-mcru/internal/platform/middleware"
	"github.com/pakapat-jp/edu-mcru/internal/platform/sec"
	"github.com/pakapat-jp/edu-mcru/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles login and user administration.
	Auth *auth.Handler

	// Article handles news and announcement publishing.
	Article *article.Handler

	// Category manages the article taxonomy.
	Category *category.Handler

	// Menu manages the site navigation tree.
	Menu *menu.Handler

	// Slider manages the homepage hero carousel.
	Slider *slider.Handler

	// Personnel manages the faculty directory.
	Personnel *personnel.Handler

	// Media manages the upload library (folders and files).
	Media *media.Handler

	// Setting manages the site-wide key/value settings.
	Setting *setting.Handler

	// Dashboard serves admin overview statistics.
	Dashboard *dashboard.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// Writes require a valid token; user administration additionally
	// requires the admin role.
	requireAuth := middleware.RequireAuth
	requireAdmin := middleware.RequireRole(sec.RoleAdmin)

	// # Application API
	// Route prefixes mirror the public site's existing URL contract.
	r.Route("/api", func(api chi.Router) {
		api.Mount("/login", h.Auth.LoginRoutes())
		api.Mount("/users", h.Auth.UserRoutes(requireAdmin))
		api.Mount("/news", h.Article.Routes(requireAuth))
		api.Mount("/categories", h.Category.Routes(requireAuth))
		api.Mount("/menus", h.Menu.Routes(requireAuth))
		api.Mount("/hero-sliders", h.Slider.Routes(requireAuth))
		api.Mount("/personnel", h.Personnel.Routes(requireAuth))
		api.Mount("/media", h.Media.Routes(requireAuth))
		api.Mount("/settings", h.Setting.Routes(requireAuth))
		api.Mount("/dashboard", h.Dashboard.Routes(requireAuth))
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
