// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package article

import "context"

// Repository defines the data access contract for the article domain.
//
// # Architecture
//
// The interface lives in the domain package because the service layer
// (the consumer) defines what it needs; the pgx implementation sits
// alongside in store_postgres.go.
type Repository interface {
	// List returns every article with joined category and author names,
	// newest first by effective publication time.
	List(ctx context.Context) ([]*Article, error)

	// FindByID returns the article with the given id.
	//
	// It returns ErrNotFound if no row matches.
	FindByID(ctx context.Context, id int) (*Article, error)

	// Create persists a new article and fills in the generated ID and
	// timestamps. The caller sets the slug beforehand.
	Create(ctx context.Context, a *Article, publishDate *string) error

	// Update applies the valid fields of input to the row.
	//
	// It returns ErrNotFound if no row matches and must not be called
	// with an empty input.
	Update(ctx context.Context, id int, input UpdateInput) error

	// Delete removes the row. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int) error
}
