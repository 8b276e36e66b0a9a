// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package article

import (
	"context"
	"log/slog"

	"github.com/pakapat-jp/edu-mcru/internal/platform/validate"
	"github.com/pakapat-jp/edu-mcru/pkg/slug"
)

// # Service Layer

// Service orchestrates business rules for articles: slug assignment,
// validation, and the partial-update contract.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new article [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
List retrieves all articles, newest first by effective publication time
(publish date when set, creation time otherwise).

The full set is returned without pagination — the admin SPA renders the
complete table client side.

Parameters:
  - ctx: context.Context

Returns:
  - []*Article: All articles with joined category and author names
  - error: Retrieval errors
*/
func (service *Service) List(ctx context.Context) ([]*Article, error) {
	return service.repo.List(ctx)
}

/*
Get retrieves a single article by id.

Parameters:
  - ctx: context.Context
  - id: int

Returns:
  - *Article: Hydrated entity
  - error: ErrNotFound if missing
*/
func (service *Service) Get(ctx context.Context, id int) (*Article, error) {
	return service.repo.FindByID(ctx, id)
}

/*
Create validates and persists a new article.

Description: Title and content are required. When the editor leaves the
slug blank, one is derived from the title with a timestamp suffix. A
duplicate slug surfaces as a conflict from the store's unique constraint;
the service never pre-checks, so two racing creates cannot both pass.

Parameters:
  - ctx: context.Context
  - input: CreateInput

Returns:
  - *Article: The created entity with generated id and timestamps
  - error: Validation, conflict, or persistence failures
*/
func (service *Service) Create(ctx context.Context, input CreateInput) (*Article, error) {
	validator := &validate.Validator{}
	validator.Required("title", input.Title)
	validator.Required("content", input.Content)
	if input.Slug != "" {
		validator.Slug("slug", input.Slug)
	}
	validator.Custom("status", !IsValidStatus(input.Status), "Status must be -1, 0 or 1")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	articleSlug := input.Slug
	if articleSlug == "" {
		articleSlug = slug.Derive(input.Title)
	}

	entity := &Article{
		Title:         input.Title,
		Slug:          articleSlug,
		Content:       input.Content,
		ImageURL:      input.ImageURL,
		CategoryID:    input.CategoryID,
		Status:        input.Status,
		AuthorID:      input.AuthorID,
		GalleryImages: MergeGallery("", input.GalleryPaths),
	}

	if err := service.repo.Create(ctx, entity, input.PublishDate); err != nil {
		return nil, err
	}

	service.logger.Info("article_created",
		slog.Int("article_id", entity.ID),
		slog.String("slug", entity.Slug),
	)

	return entity, nil
}

/*
Update applies a partial update to an article.

Description: Only fields the request actually carried are written; the
rest of the row is untouched. An update that carries nothing at all is a
successful no-op — the handler reports "No changes" without touching the
store. A supplied slug must still be URL-safe.

Parameters:
  - ctx: context.Context
  - id: int
  - input: UpdateInput

Returns:
  - bool: Whether any field was written
  - error: Validation, ErrNotFound, conflict, or persistence failures
*/
func (service *Service) Update(ctx context.Context, id int, input UpdateInput) (bool, error) {
	if input.IsEmpty() {
		return false, nil
	}

	validator := &validate.Validator{}
	if input.Title.Valid {
		validator.Required("title", input.Title.Value)
	}
	if input.Slug.Valid {
		validator.Required("slug", input.Slug.Value).Slug("slug", input.Slug.Value)
	}
	if input.Status.Valid {
		validator.Custom("status", !IsValidStatus(input.Status.Value), "Status must be -1, 0 or 1")
	}
	if err := validator.Err(); err != nil {
		return false, err
	}

	if err := service.repo.Update(ctx, id, input); err != nil {
		return false, err
	}

	service.logger.Info("article_updated", slog.Int("article_id", id))

	return true, nil
}

/*
Delete removes an article row.

Description: Deletion is idempotent — deleting an id that does not exist
succeeds, so the admin SPA can retry without special casing. Files the
article referenced stay on disk; the media library still lists them.

Parameters:
  - ctx: context.Context
  - id: int

Returns:
  - error: Persistence failures
*/
func (service *Service) Delete(ctx context.Context, id int) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Info("article_deleted", slog.Int("article_id", id))

	return nil
}
