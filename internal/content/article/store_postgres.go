// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package article

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

// NewPostgresRepository constructs a PostgreSQL backed article store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
List returns every article joined with category and author names.

Description: Ordering uses COALESCE(publish_date, created_at) so drafts
without a publish date sort by creation time among the dated rows instead
of sinking to the bottom.

Parameters:
  - ctx: context.Context

Returns:
  - []*Article: Slice of articles, newest first
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(ctx context.Context) ([]*Article, error) {
	const query = `
		SELECT
			a.id, a.title, a.slug, a.content, a.image_url, a.category_id,
			c.name AS category_name, a.status, a.publish_date, a.author_id,
			u.username AS author_name, a.gallery_images, a.views,
			a.created_at, a.updated_at
		FROM articles a
		LEFT JOIN categories c ON a.category_id = c.id
		LEFT JOIN users u ON a.author_id = u.id
		ORDER BY COALESCE(a.publish_date, a.created_at) DESC
	`
	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_articles")
	}
	defer rows.Close()

	var articles []*Article
	for rows.Next() {
		entity := &Article{}
		err := rows.Scan(
			&entity.ID, &entity.Title, &entity.Slug, &entity.Content, &entity.ImageURL, &entity.CategoryID,
			&entity.CategoryName, &entity.Status, &entity.PublishDate, &entity.AuthorID,
			&entity.AuthorName, &entity.GalleryImages, &entity.Views,
			&entity.CreatedAt, &entity.UpdatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_article")
		}
		articles = append(articles, entity)
	}

	return articles, nil
}

/*
FindByID retrieves a single article by its primary key.

Parameters:
  - ctx: context.Context
  - id: int

Returns:
  - *Article: Hydrated entity
  - error: ErrNotFound or database retrieval failures
*/
func (repository *PostgresRepository) FindByID(ctx context.Context, id int) (*Article, error) {
	const query = `
		SELECT
			a.id, a.title, a.slug, a.content, a.image_url, a.category_id,
			c.name AS category_name, a.status, a.publish_date, a.author_id,
			u.username AS author_name, a.gallery_images, a.views,
			a.created_at, a.updated_at
		FROM articles a
		LEFT JOIN categories c ON a.category_id = c.id
		LEFT JOIN users u ON a.author_id = u.id
		WHERE a.id = $1
	`
	entity := &Article{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&entity.ID, &entity.Title, &entity.Slug, &entity.Content, &entity.ImageURL, &entity.CategoryID,
		&entity.CategoryName, &entity.Status, &entity.PublishDate, &entity.AuthorID,
		&entity.AuthorName, &entity.GalleryImages, &entity.Views,
		&entity.CreatedAt, &entity.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_article_by_id")
	}
	return entity, nil
}

/*
Create inserts a new article row.

Description: The publish date arrives as the raw form string and is cast
by the database; a nil value falls back to NOW() so every published
article has an effective publication time.

Parameters:
  - ctx: context.Context
  - entity: *Article
  - publishDate: *string (Raw date text, nil for "now")

Returns:
  - error: Conflict on duplicate slug, or persistence failures
*/
func (repository *PostgresRepository) Create(ctx context.Context, entity *Article, publishDate *string) error {
	const query = `
		INSERT INTO articles (
			title, slug, content, image_url, category_id, status,
			publish_date, author_id, gallery_images
		) VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7::timestamptz, NOW()), $8, $9)
		RETURNING id, publish_date, views, created_at, updated_at
	`
	err := repository.db.QueryRow(ctx, query,
		entity.Title, entity.Slug, entity.Content, entity.ImageURL, entity.CategoryID, entity.Status,
		publishDate, entity.AuthorID, entity.GalleryImages,
	).Scan(&entity.ID, &entity.PublishDate, &entity.Views, &entity.CreatedAt, &entity.UpdatedAt)

	return dberr.Wrap(err, "create_article")
}

/*
Update writes only the fields the request carried.

Description: Builds the SET clause dynamically from the valid Optionals,
so an omitted field is never written — not even with its current value.
RETURNING id turns a missing row into ErrNoRows, which dberr maps to the
not-found error.

Parameters:
  - ctx: context.Context
  - id: int
  - input: UpdateInput (must not be empty)

Returns:
  - error: ErrNotFound, conflict on duplicate slug, or persistence failures
*/
func (repository *PostgresRepository) Update(ctx context.Context, id int, input UpdateInput) error {
	builder := &database.UpdateBuilder{}
	columns := schema.Articles

	if input.Title.Valid {
		builder.Set(columns.Title, input.Title.Value)
	}
	if input.Content.Valid {
		builder.Set(columns.Content, input.Content.Value)
	}
	if input.Slug.Valid {
		builder.Set(columns.Slug, input.Slug.Value)
	}
	if input.ImageURL.Valid {
		builder.Set(columns.ImageURL, input.ImageURL.Value)
	}
	if input.CategoryID.Valid {
		builder.Set(columns.CategoryID, input.CategoryID.Value)
	}
	if input.Status.Valid {
		builder.Set(columns.Status, input.Status.Value)
	}
	if input.PublishDate.Valid {
		builder.SetCast(columns.PublishDate, input.PublishDate.Value, "timestamptz")
	}
	if input.Gallery.Valid {
		builder.Set(columns.GalleryImages, input.Gallery.Value)
	}

	query, args := builder.UpdateByID(columns.Table, id)

	var updatedID int
	err := repository.db.QueryRow(ctx, query, args...).Scan(&updatedID)
	return dberr.Wrap(err, "update_article")
}

/*
Delete removes an article row.

Description: Intentionally ignores the affected-row count — deleting an
absent id succeeds, keeping the operation idempotent for SPA retries.

Parameters:
  - ctx: context.Context
  - id: int

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM articles WHERE id = $1`
	_, err := repository.db.Exec(ctx, query, id)
	return dberr.Wrap(err, "delete_article")
}
