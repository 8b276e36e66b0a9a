// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package slider

import "context"

// Repository defines the data access contract for hero sliders.
type Repository interface {
	// List returns sliders in carousel order; activeOnly restricts the
	// result to currently visible ones.
	List(ctx context.Context, activeOnly bool) ([]*Slider, error)

	// Create persists a new slider, assigning the next sort order.
	Create(ctx context.Context, s *Slider) error

	// Update applies the valid fields of input to the row.
	//
	// It returns ErrNotFound if no row matches and must not be called
	// with an empty input.
	Update(ctx context.Context, id int, input UpdateInput) error

	// Delete removes a slider. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int) error
}
