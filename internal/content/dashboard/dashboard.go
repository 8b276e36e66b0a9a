// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

/*
Package dashboard serves the admin landing page counters under
/api/dashboard/stats.
*/
package dashboard

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pakapat-jp/edu-mcru/internal/platform/dberr"
	"github.com/pakapat-jp/edu-mcru/internal/platform/respond"
)

// Stats holds the admin dashboard counters.
type Stats struct {
	Articles   int `json:"articles"`
	Categories int `json:"categories"`
	Users      int `json:"users"`
}

// Repository defines the data access contract for dashboard counters.
type Repository interface {
	Counts(ctx context.Context) (*Stats, error)
}

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed stats store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Counts gathers all three counters in a single round trip.
func (repository *PostgresRepository) Counts(ctx context.Context) (*Stats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM articles)   AS articles,
			(SELECT COUNT(*) FROM categories) AS categories,
			(SELECT COUNT(*) FROM users)      AS users
	`
	stats := &Stats{}
	err := repository.db.QueryRow(ctx, query).Scan(&stats.Articles, &stats.Categories, &stats.Users)
	if err != nil {
		return nil, dberr.Wrap(err, "dashboard_counts")
	}
	return stats, nil
}

// Handler implements the HTTP layer for dashboard stats.
type Handler struct {
	repo Repository
}

// NewHandler constructs a new dashboard [Handler].
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// Routes returns a [chi.Router]; stats require authentication.
func (handler *Handler) Routes(requireAuth func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()
	router.Use(requireAuth)
	router.Get("/stats", handler.stats)
	return router
}

/*
GET /api/dashboard/stats.

Response:
  - 200: Stats: Row counts for articles, categories, and users
  - 401: Authentication required
*/
func (handler *Handler) stats(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.repo.Counts(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, stats)
}
