// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package auth

import "context"

// Repository defines the data access contract for CMS accounts.
type Repository interface {
	// List returns all accounts without password hashes, newest first.
	List(ctx context.Context) ([]*User, error)

	// FindByUsername returns an account including its password hash.
	//
	// It returns ErrNotFound if no account matches.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// Create persists a new account; PasswordHash must already be set.
	Create(ctx context.Context, u *User) error

	// Update applies the valid fields of input to the row.
	//
	// It returns ErrNotFound if no row matches and must not be called
	// with an empty input.
	Update(ctx context.Context, id int, input UpdateInput) error

	// Delete removes an account. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int) error
}
