// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package menu

import "context"

// Repository defines the data access contract for navigation menus.
type Repository interface {
	// List returns all entries ordered by sort order.
	List(ctx context.Context) ([]*Menu, error)

	// Create persists a new entry, assigning the next sort order.
	Create(ctx context.Context, m *Menu) error

	// Update applies the valid fields of input to the row.
	//
	// It returns ErrNotFound if no row matches and must not be called
	// with an empty input.
	Update(ctx context.Context, id int, input UpdateInput) error

	// Delete removes an entry. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int) error
}
