// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package personnel

import "context"

// Repository defines the data access contract for the personnel directory.
type Repository interface {
	// List returns directory entries in display order, optionally
	// restricted to one type.
	List(ctx context.Context, typeFilter string) ([]*Person, error)

	// Create persists a new entry, assigning the next sort order.
	Create(ctx context.Context, p *Person) error

	// Update applies the valid fields of input to the row.
	//
	// It returns ErrNotFound if no row matches and must not be called
	// with an empty input.
	Update(ctx context.Context, id int, input UpdateInput) error

	// Delete removes an entry. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int) error
}

// Registrar records uploaded personnel photos in the media library so
// editors can find them later. Registration is best-effort: a failure is
// logged, never surfaced.
type Registrar interface {
	RegisterFile(ctx context.Context, folderName, fileName, filePath, fileType string, fileSize int64) error
}
