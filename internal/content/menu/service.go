// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package menu

import (
	"context"
	"log/slog"

	"github.com/pakapat-jp/edu-mcru/internal/platform/validate"
)

// Service orchestrates business rules for the site navigation.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new menu [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List retrieves all navigation entries in display order.
func (service *Service) List(ctx context.Context) ([]*Menu, error) {
	return service.repo.List(ctx)
}

/*
Create validates and persists a new navigation entry.

Description: The sort order is assigned by the store as the current
maximum plus one, so new entries append to the end of the navigation.

Parameters:
  - ctx: context.Context
  - input: CreateInput

Returns:
  - *Menu: The created entry
  - error: Validation or persistence failures
*/
func (service *Service) Create(ctx context.Context, input CreateInput) (*Menu, error) {
	validator := &validate.Validator{}
	validator.Required("title", input.Title)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	entity := &Menu{
		Title:    input.Title,
		Slug:     input.Slug,
		Type:     input.Type,
		ParentID: input.ParentID,
		URL:      input.URL,
	}

	if err := service.repo.Create(ctx, entity); err != nil {
		return nil, err
	}

	service.logger.Info("menu_created",
		slog.Int("menu_id", entity.ID),
		slog.Int("sort_order", entity.SortOrder),
	)

	return entity, nil
}

/*
Update applies a partial update to a navigation entry.

Parameters:
  - ctx: context.Context
  - id: int
  - input: UpdateInput

Returns:
  - bool: Whether any field was written
  - error: Validation, ErrNotFound, or persistence failures
*/
func (service *Service) Update(ctx context.Context, id int, input UpdateInput) (bool, error) {
	if input.IsEmpty() {
		return false, nil
	}

	validator := &validate.Validator{}
	if input.Title.Valid {
		validator.Required("title", input.Title.Value)
	}
	if err := validator.Err(); err != nil {
		return false, err
	}

	if err := service.repo.Update(ctx, id, input); err != nil {
		return false, err
	}

	service.logger.Info("menu_updated", slog.Int("menu_id", id))

	return true, nil
}

// Delete removes a navigation entry.
func (service *Service) Delete(ctx context.Context, id int) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Info("menu_deleted", slog.Int("menu_id", id))

	return nil
}
