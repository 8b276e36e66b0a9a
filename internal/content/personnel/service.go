// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package personnel

import (
	"context"
	"log/slog"

	"github.com/pakapat-jp/edu-mcru/internal/platform/upload"
	"github.com/pakapat-jp/edu-mcru/internal/platform/validate"
)

// mediaFolderName is the media library folder personnel photos land in.
const mediaFolderName = "personnel"

// Service orchestrates business rules for the personnel directory.
type Service struct {
	repo      Repository
	registrar Registrar
	logger    *slog.Logger
}

// NewService constructs a new personnel [Service].
func NewService(repo Repository, registrar Registrar, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		registrar: registrar,
		logger:    logger,
	}
}

// List retrieves directory entries, optionally restricted to one type.
// An unknown type filter simply yields an empty list.
func (service *Service) List(ctx context.Context, typeFilter string) ([]*Person, error) {
	return service.repo.List(ctx, typeFilter)
}

/*
Create validates and persists a new directory entry.

Description: Name is required; the type defaults to staff. When the
request carried a photo, the stored file is also registered in the media
library's personnel folder — a registration failure is logged and
swallowed because the directory entry itself is already persisted.

Parameters:
  - ctx: context.Context
  - input: CreateInput
  - photo: *upload.SavedFile (nil when no photo was uploaded)

Returns:
  - *Person: The created entry
  - error: Validation or persistence failures
*/
func (service *Service) Create(ctx context.Context, input CreateInput, photo *upload.SavedFile) (*Person, error) {
	personType := input.Type
	if personType == "" {
		personType = TypeStaff
	}

	validator := &validate.Validator{}
	validator.Required("name", input.Name)
	validator.OneOf("type", personType, ValidTypes...)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	entity := &Person{
		AcademicTitle: input.AcademicTitle,
		Name:          input.Name,
		Position:      input.Position,
		Department:    input.Department,
		ProfileLink:   input.ProfileLink,
		ImageURL:      input.ImageURL,
		Type:          personType,
		GroupName:     input.GroupName,
	}

	if err := service.repo.Create(ctx, entity); err != nil {
		return nil, err
	}

	service.registerPhoto(ctx, photo)

	service.logger.Info("personnel_created",
		slog.Int("personnel_id", entity.ID),
		slog.String("type", entity.Type),
	)

	return entity, nil
}

/*
Update applies a partial update to a directory entry.

Parameters:
  - ctx: context.Context
  - id: int
  - input: UpdateInput
  - photo: *upload.SavedFile (nil when no photo was uploaded)

Returns:
  - bool: Whether any field was written
  - error: Validation, ErrNotFound, or persistence failures
*/
func (service *Service) Update(ctx context.Context, id int, input UpdateInput, photo *upload.SavedFile) (bool, error) {
	if input.IsEmpty() {
		return false, nil
	}

	validator := &validate.Validator{}
	if input.Name.Valid {
		validator.Required("name", input.Name.Value)
	}
	if input.Type.Valid {
		validator.OneOf("type", input.Type.Value, ValidTypes...)
	}
	if err := validator.Err(); err != nil {
		return false, err
	}

	if err := service.repo.Update(ctx, id, input); err != nil {
		return false, err
	}

	service.registerPhoto(ctx, photo)

	service.logger.Info("personnel_updated", slog.Int("personnel_id", id))

	return true, nil
}

// Delete removes a directory entry.
func (service *Service) Delete(ctx context.Context, id int) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Info("personnel_deleted", slog.Int("personnel_id", id))

	return nil
}

// registerPhoto records an uploaded photo in the media library.
// Best-effort: the entry write already succeeded.
func (service *Service) registerPhoto(ctx context.Context, photo *upload.SavedFile) {
	if photo == nil {
		return
	}

	err := service.registrar.RegisterFile(ctx,
		mediaFolderName, photo.OriginalName, photo.PublicPath, photo.Ext, photo.Size)
	if err != nil {
		service.logger.Warn("personnel_media_registration_failed",
			slog.String("file", photo.StoredName),
			slog.String("error", err.Error()),
		)
	}
}
