// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package category

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pakapat-jp/edu-mcru/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed category store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all categories ordered by name.
func (repository *PostgresRepository) List(ctx context.Context) ([]*Category, error) {
	const query = `SELECT id, name, created_at FROM categories ORDER BY name ASC`

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		entity := &Category{}
		if err := rows.Scan(&entity.ID, &entity.Name, &entity.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, entity)
	}

	return categories, nil
}

// Create inserts a new category row.
func (repository *PostgresRepository) Create(ctx context.Context, entity *Category) error {
	const query = `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, created_at
	`
	err := repository.db.QueryRow(ctx, query, entity.Name).Scan(&entity.ID, &entity.CreatedAt)
	return dberr.Wrap(err, "create_category")
}

// Delete removes a category row; the articles FK is ON DELETE SET NULL.
func (repository *PostgresRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM categories WHERE id = $1`
	_, err := repository.db.Exec(ctx, query, id)
	return dberr.Wrap(err, "delete_category")
}
