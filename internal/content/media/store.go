// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package media

import "context"

// Repository defines the data access contract for the media library.
type Repository interface {
	// ListChildren returns one page of a folder's direct children plus
	// the total child count. Folders sort before files.
	ListChildren(ctx context.Context, parentID, limit, offset int) ([]*Item, int, error)

	// Insert persists a new folder or file row.
	Insert(ctx context.Context, item *Item) error

	// FindFolder returns a root-level folder by name.
	//
	// It returns ErrNotFound if no such folder exists.
	FindFolder(ctx context.Context, name string) (*Item, error)

	// Delete removes a row. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int) error
}
