// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package media

import (
	"context"
	"log/slog"

	"github.com/pakapat-jp/edu-mcru/internal/platform/apperr"
	"github.com/pakapat-jp/edu-mcru/internal/platform/upload"
	"github.com/pakapat-jp/edu-mcru/internal/platform/validate"
)

// Service orchestrates the media library: folder management, file
// registration, and paginated browsing.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new media [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns one page of a folder's children plus the total count.
func (service *Service) List(ctx context.Context, parentID, limit, offset int) ([]*Item, int, error) {
	return service.repo.ListChildren(ctx, parentID, limit, offset)
}

/*
CreateFolder adds a folder under the given parent.

Parameters:
  - ctx: context.Context
  - name: string
  - parentID: int (0 for the root)

Returns:
  - *Item: The created folder row
  - error: Validation or persistence failures
*/
func (service *Service) CreateFolder(ctx context.Context, name string, parentID int) (*Item, error) {
	validator := &validate.Validator{}
	validator.Required("name", name).MaxLen("name", name, 255)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	folder := &Item{
		FileName: name,
		IsFolder: true,
		ParentID: parentID,
	}
	if err := service.repo.Insert(ctx, folder); err != nil {
		return nil, err
	}

	service.logger.Info("media_folder_created", slog.Int("media_id", folder.ID))

	return folder, nil
}

/*
RecordUpload registers a stored file in the given folder.

Parameters:
  - ctx: context.Context
  - file: upload.SavedFile (already written to disk)
  - parentID: int (target folder, 0 for the root)

Returns:
  - *Item: The created file row
  - error: Persistence failures
*/
func (service *Service) RecordUpload(ctx context.Context, file upload.SavedFile, parentID int) (*Item, error) {
	item := &Item{
		FileName: file.OriginalName,
		FilePath: &file.PublicPath,
		FileType: &file.Ext,
		FileSize: &file.Size,
		ParentID: parentID,
	}
	if err := service.repo.Insert(ctx, item); err != nil {
		return nil, err
	}

	service.logger.Info("media_file_recorded",
		slog.Int("media_id", item.ID),
		slog.String("path", file.PublicPath),
	)

	return item, nil
}

/*
RegisterFile records an externally stored file inside a named root-level
folder, creating the folder on first use. Personnel portrait uploads use
this to mirror their files into the library.

Parameters:
  - ctx: context.Context
  - folderName, fileName, filePath, fileType: file metadata
  - fileSize: int64

Returns:
  - error: Persistence failures
*/
func (service *Service) RegisterFile(ctx context.Context, folderName, fileName, filePath, fileType string, fileSize int64) error {
	folderID, err := service.ensureFolder(ctx, folderName)
	if err != nil {
		return err
	}

	item := &Item{
		FileName: fileName,
		FilePath: &filePath,
		FileType: &fileType,
		FileSize: &fileSize,
		ParentID: folderID,
	}
	return service.repo.Insert(ctx, item)
}

// Delete removes a library row. The referenced disk file is kept;
// articles may still embed it.
func (service *Service) Delete(ctx context.Context, id int) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Info("media_deleted", slog.Int("media_id", id))

	return nil
}

// ensureFolder resolves a root-level folder id by name, creating the
// folder when it does not exist yet.
func (service *Service) ensureFolder(ctx context.Context, name string) (int, error) {
	existing, err := service.repo.FindFolder(ctx, name)
	if err == nil {
		return existing.ID, nil
	}
	if !apperr.IsNotFound(err) {
		return 0, err
	}

	folder := &Item{FileName: name, IsFolder: true, ParentID: 0}
	if err := service.repo.Insert(ctx, folder); err != nil {
		return 0, err
	}
	return folder.ID, nil
}
