// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package slider

import (
	"context"
	"log/slog"

	"github.com/pakapat-jp/edu-mcru/internal/platform/validate"
)

// Service orchestrates business rules for the homepage hero carousel.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new slider [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List retrieves sliders in carousel order, optionally only active ones.
func (service *Service) List(ctx context.Context, activeOnly bool) ([]*Slider, error) {
	return service.repo.List(ctx, activeOnly)
}

/*
Create validates and persists a new slider.

Description: A slider without an image is meaningless, so the resolved
image path is required — the handler supplies either the uploaded file's
public path or an explicit image_url value. New sliders append to the end
of the carousel.

Parameters:
  - ctx: context.Context
  - input: CreateInput

Returns:
  - *Slider: The created slider
  - error: Validation or persistence failures
*/
func (service *Service) Create(ctx context.Context, input CreateInput) (*Slider, error) {
	validator := &validate.Validator{}
	validator.Custom("image", input.ImageURL == "", "Slider image is required")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	entity := &Slider{
		ImageURL:       input.ImageURL,
		Title:          input.Title,
		Subtitle:       input.Subtitle,
		ButtonText:     input.ButtonText,
		ButtonLink:     input.ButtonLink,
		OverlayEnabled: input.OverlayEnabled,
		IsActive:       input.IsActive,
	}

	if err := service.repo.Create(ctx, entity); err != nil {
		return nil, err
	}

	service.logger.Info("slider_created",
		slog.Int("slider_id", entity.ID),
		slog.Int("sort_order", entity.SortOrder),
	)

	return entity, nil
}

/*
Update applies a partial update to a slider.

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
	if input.ImageURL.Valid {
		validator.Required("image_url", input.ImageURL.Value)
	}
	if err := validator.Err(); err != nil {
		return false, err
	}

	if err := service.repo.Update(ctx, id, input); err != nil {
		return false, err
	}

	service.logger.Info("slider_updated", slog.Int("slider_id", id))

	return true, nil
}

// Delete removes a slider.
func (service *Service) Delete(ctx context.Context, id int) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Info("slider_deleted", slog.Int("slider_id", id))

	return nil
}
