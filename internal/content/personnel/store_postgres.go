// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package personnel

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

// NewPostgresRepository constructs a PostgreSQL backed personnel store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns directory entries in display order. The id tiebreak keeps
// the order stable for entries sharing a sort order.
func (repository *PostgresRepository) List(ctx context.Context, typeFilter string) ([]*Person, error) {
	query := `
		SELECT id, academic_title, name, position, department, profile_link,
		       image_url, type, group_name, sort_order, created_at, updated_at
		FROM personnel
	`
	args := []any{}
	if typeFilter != "" {
		query += ` WHERE type = $1`
		args = append(args, typeFilter)
	}
	query += ` ORDER BY sort_order ASC, id ASC`

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_personnel")
	}
	defer rows.Close()

	var people []*Person
	for rows.Next() {
		entity := &Person{}
		err := rows.Scan(
			&entity.ID, &entity.AcademicTitle, &entity.Name, &entity.Position, &entity.Department,
			&entity.ProfileLink, &entity.ImageURL, &entity.Type, &entity.GroupName,
			&entity.SortOrder, &entity.CreatedAt, &entity.UpdatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_personnel")
		}
		people = append(people, entity)
	}

	return people, nil
}

// Create inserts a new entry at the end of its type's section.
func (repository *PostgresRepository) Create(ctx context.Context, entity *Person) error {
	const query = `
		INSERT INTO personnel (
			academic_title, name, position, department, profile_link,
			image_url, type, group_name, sort_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
			(SELECT COALESCE(MAX(sort_order), 0) + 1 FROM personnel WHERE type = $7))
		RETURNING id, sort_order, created_at, updated_at
	`
	err := repository.db.QueryRow(ctx, query,
		entity.AcademicTitle, entity.Name, entity.Position, entity.Department, entity.ProfileLink,
		entity.ImageURL, entity.Type, entity.GroupName,
	).Scan(&entity.ID, &entity.SortOrder, &entity.CreatedAt, &entity.UpdatedAt)

	return dberr.Wrap(err, "create_personnel")
}

// Update writes only the fields the request carried.
func (repository *PostgresRepository) Update(ctx context.Context, id int, input UpdateInput) error {
	builder := &database.UpdateBuilder{}
	columns := schema.Personnel

	if input.AcademicTitle.Valid {
		builder.Set(columns.AcademicTitle, input.AcademicTitle.Value)
	}
	if input.Name.Valid {
		builder.Set(columns.Name, input.Name.Value)
	}
	if input.Position.Valid {
		builder.Set(columns.Position, input.Position.Value)
	}
	if input.Department.Valid {
		builder.Set(columns.Department, input.Department.Value)
	}
	if input.ProfileLink.Valid {
		builder.Set(columns.ProfileLink, input.ProfileLink.Value)
	}
	if input.ImageURL.Valid {
		builder.Set(columns.ImageURL, input.ImageURL.Value)
	}
	if input.Type.Valid {
		builder.Set(columns.Type, input.Type.Value)
	}
	if input.GroupName.Valid {
		builder.Set(columns.GroupName, input.GroupName.Value)
	}
	if input.SortOrder.Valid {
		builder.Set(columns.SortOrder, input.SortOrder.Value)
	}

	query, args := builder.UpdateByID(columns.Table, id)

	var updatedID int
	err := repository.db.QueryRow(ctx, query, args...).Scan(&updatedID)
	return dberr.Wrap(err, "update_personnel")
}

// Delete removes an entry row.
func (repository *PostgresRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM personnel WHERE id = $1`
	_, err := repository.db.Exec(ctx, query, id)
	return dberr.Wrap(err, "delete_personnel")
}
