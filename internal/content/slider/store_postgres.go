// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package slider

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pakapat-jp/edu-mcru/internal/platform/database"
	"github.com/pakapat-jp/edu-mcru/internal/platform/database/schema"
	"github.com/pakapat-jp/edu-mcru/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed slider store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns sliders in carousel order. Ties on sort order fall back
// to newest first so freshly added sliders surface predictably.
func (repository *PostgresRepository) List(ctx context.Context, activeOnly bool) ([]*Slider, error) {
	query := `
		SELECT id, image_url, title, subtitle, button_text, button_link,
		       overlay_enabled, sort_order, is_active, created_at, updated_at
		FROM hero_sliders
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY sort_order ASC, created_at DESC`

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_sliders")
	}
	defer rows.Close()

	var sliders []*Slider
	for rows.Next() {
		entity := &Slider{}
		err := rows.Scan(
			&entity.ID, &entity.ImageURL, &entity.Title, &entity.Subtitle, &entity.ButtonText,
			&entity.ButtonLink, &entity.OverlayEnabled, &entity.SortOrder, &entity.IsActive,
			&entity.CreatedAt, &entity.UpdatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_slider")
		}
		sliders = append(sliders, entity)
	}

	return sliders, nil
}

// Create inserts a new slider at the end of the carousel.
func (repository *PostgresRepository) Create(ctx context.Context, entity *Slider) error {
	const query = `
		INSERT INTO hero_sliders (
			image_url, title, subtitle, button_text, button_link,
			overlay_enabled, is_active, sort_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7,
			(SELECT COALESCE(MAX(sort_order), 0) + 1 FROM hero_sliders))
		RETURNING id, sort_order, created_at, updated_at
	`
	err := repository.db.QueryRow(ctx, query,
		entity.ImageURL, entity.Title, entity.Subtitle, entity.ButtonText, entity.ButtonLink,
		entity.OverlayEnabled, entity.IsActive,
	).Scan(&entity.ID, &entity.SortOrder, &entity.CreatedAt, &entity.UpdatedAt)

	return dberr.Wrap(err, "create_slider")
}

// Update writes only the fields the request carried.
func (repository *PostgresRepository) Update(ctx context.Context, id int, input UpdateInput) error {
	builder := &database.UpdateBuilder{}
	columns := schema.HeroSliders

	if input.ImageURL.Valid {
		builder.Set(columns.ImageURL, input.ImageURL.Value)
	}
	if input.Title.Valid {
		builder.Set(columns.Title, input.Title.Value)
	}
	if input.Subtitle.Valid {
		builder.Set(columns.Subtitle, input.Subtitle.Value)
	}
	if input.ButtonText.Valid {
		builder.Set(columns.ButtonText, input.ButtonText.Value)
	}
	if input.ButtonLink.Valid {
		builder.Set(columns.ButtonLink, input.ButtonLink.Value)
	}
	if input.OverlayEnabled.Valid {
		builder.Set(columns.OverlayEnabled, input.OverlayEnabled.Value)
	}
	if input.SortOrder.Valid {
		builder.Set(columns.SortOrder, input.SortOrder.Value)
	}
	if input.IsActive.Valid {
		builder.Set(columns.IsActive, input.IsActive.Value)
	}

	query, args := builder.UpdateByID(columns.Table, id)

	var updatedID int
	err := repository.db.QueryRow(ctx, query, args...).Scan(&updatedID)
	return dberr.Wrap(err, "update_slider")
}

// Delete removes a slider row.
func (repository *PostgresRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM hero_sliders WHERE id = $1`
	_, err := repository.db.Exec(ctx, query, id)
	return dberr.Wrap(err, "delete_slider")
}
