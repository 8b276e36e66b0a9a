// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package category

import "context"

// Repository defines the data access contract for categories.
type Repository interface {
	// List returns all categories ordered by name.
	List(ctx context.Context) ([]*Category, error)

	// Create persists a new category and fills in the generated fields.
	Create(ctx context.Context, c *Category) error

	// Delete removes a category. Articles referencing it fall back to
	// NULL through the foreign key, they are not deleted.
	Delete(ctx context.Context, id int) error
}
