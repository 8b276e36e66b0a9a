// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package menu

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

// NewPostgresRepository constructs a PostgreSQL backed menu store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all entries ordered for display.
func (repository *PostgresRepository) List(ctx context.Context) ([]*Menu, error) {
	const query = `
		SELECT id, title, slug, type, parent_id, url, sort_order, created_at, updated_at
		FROM menus
		ORDER BY sort_order ASC
	`
	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_menus")
	}
	defer rows.Close()

	var menus []*Menu
	for rows.Next() {
		entity := &Menu{}
		err := rows.Scan(
			&entity.ID, &entity.Title, &entity.Slug, &entity.Type, &entity.ParentID,
			&entity.URL, &entity.SortOrder, &entity.CreatedAt, &entity.UpdatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_menu")
		}
		menus = append(menus, entity)
	}

	return menus, nil
}

/*
Create inserts a new entry at the end of the navigation.

Description: The sort order subselect and the insert run in one
statement, so concurrent creates cannot both read the same maximum
outside a shared snapshot.
*/
func (repository *PostgresRepository) Create(ctx context.Context, entity *Menu) error {
	const query = `
		INSERT INTO menus (title, slug, type, parent_id, url, sort_order)
		VALUES ($1, $2, $3, $4, $5, (SELECT COALESCE(MAX(sort_order), 0) + 1 FROM menus))
		RETURNING id, sort_order, created_at, updated_at
	`
	err := repository.db.QueryRow(ctx, query,
		entity.Title, entity.Slug, entity.Type, entity.ParentID, entity.URL,
	).Scan(&entity.ID, &entity.SortOrder, &entity.CreatedAt, &entity.UpdatedAt)

	return dberr.Wrap(err, "create_menu")
}

// Update writes only the fields the request carried.
func (repository *PostgresRepository) Update(ctx context.Context, id int, input UpdateInput) error {
	builder := &database.UpdateBuilder{}
	columns := schema.Menus

	if input.Title.Valid {
		builder.Set(columns.Title, input.Title.Value)
	}
	if input.Slug.Valid {
		builder.Set(columns.Slug, input.Slug.Value)
	}
	if input.Type.Valid {
		builder.Set(columns.Type, input.Type.Value)
	}
	if input.ParentID.Valid {
		builder.Set(columns.ParentID, input.ParentID.Value)
	}
	if input.URL.Valid {
		builder.Set(columns.URL, input.URL.Value)
	}
	if input.SortOrder.Valid {
		builder.Set(columns.SortOrder, input.SortOrder.Value)
	}

	query, args := builder.UpdateByID(columns.Table, id)

	var updatedID int
	err := repository.db.QueryRow(ctx, query, args...).Scan(&updatedID)
	return dberr.Wrap(err, "update_menu")
}

// Delete removes an entry row.
func (repository *PostgresRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM menus WHERE id = $1`
	_, err := repository.db.Exec(ctx, query, id)
	return dberr.Wrap(err, "delete_menu")
}
