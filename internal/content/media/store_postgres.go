// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package media

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pakapat-jp/edu-mcru/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed media store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
ListChildren returns one page of a folder's direct children.

Description: Folders sort before files, then alphabetically.
COUNT(*) OVER() rides along on each row so the page and the total come
from a single query.

Parameters:
  - ctx: context.Context
  - parentID: int (0 for the root)
  - limit, offset: int

Returns:
  - []*Item: The page of children
  - int: Total child count for pagination metadata
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) ListChildren(ctx context.Context, parentID, limit, offset int) ([]*Item, int, error) {
	const query = `
		SELECT id, file_name, file_path, file_type, file_size, is_folder,
		       parent_id, created_at, COUNT(*) OVER() AS total
		FROM media
		WHERE parent_id = $1
		ORDER BY is_folder DESC, file_name ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := repository.db.Query(ctx, query, parentID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_media")
	}
	defer rows.Close()

	var items []*Item
	var total int
	for rows.Next() {
		item := &Item{}
		err := rows.Scan(
			&item.ID, &item.FileName, &item.FilePath, &item.FileType, &item.FileSize,
			&item.IsFolder, &item.ParentID, &item.CreatedAt, &total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_media")
		}
		items = append(items, item)
	}

	return items, total, nil
}

// Insert persists a new folder or file row.
func (repository *PostgresRepository) Insert(ctx context.Context, item *Item) error {
	const query = `
		INSERT INTO media (file_name, file_path, file_type, file_size, is_folder, parent_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := repository.db.QueryRow(ctx, query,
		item.FileName, item.FilePath, item.FileType, item.FileSize, item.IsFolder, item.ParentID,
	).Scan(&item.ID, &item.CreatedAt)

	return dberr.Wrap(err, "insert_media")
}

// FindFolder returns a root-level folder by name.
func (repository *PostgresRepository) FindFolder(ctx context.Context, name string) (*Item, error) {
	const query = `
		SELECT id, file_name, file_path, file_type, file_size, is_folder, parent_id, created_at
		FROM media
		WHERE file_name = $1 AND is_folder = TRUE AND parent_id = 0
	`
	item := &Item{}
	err := repository.db.QueryRow(ctx, query, name).Scan(
		&item.ID, &item.FileName, &item.FilePath, &item.FileType, &item.FileSize,
		&item.IsFolder, &item.ParentID, &item.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_media_folder")
	}
	return item, nil
}

// Delete removes a media row; the disk file is retained.
func (repository *PostgresRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM media WHERE id = $1`
	_, err := repository.db.Exec(ctx, query, id)
	return dberr.Wrap(err, "delete_media")
}
