// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package category

import (
	"context"
	"log/slog"

	"github.com/pakapat-jp/edu-mcru/internal/platform/validate"
)

// Service orchestrates business rules for article categories.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new category [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List retrieves all categories.
func (service *Service) List(ctx context.Context) ([]*Category, error) {
	return service.repo.List(ctx)
}

/*
Create validates and persists a new category.

Parameters:
  - ctx: context.Context
  - name: string

Returns:
  - *Category: The created entity
  - error: Validation, conflict on duplicate name, or persistence failures
*/
func (service *Service) Create(ctx context.Context, name string) (*Category, error) {
	validator := &validate.Validator{}
	validator.Required("name", name).MaxLen("name", name, 120)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	entity := &Category{Name: name}
	if err := service.repo.Create(ctx, entity); err != nil {
		return nil, err
	}

	service.logger.Info("category_created", slog.Int("category_id", entity.ID))

	return entity, nil
}

// Delete removes a category; referencing articles keep their rows with a
// cleared category.
func (service *Service) Delete(ctx context.Context, id int) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Info("category_deleted", slog.Int("category_id", id))

	return nil
}
