// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package setting

import "context"

// Repository defines the data access contract for site settings.
type Repository interface {
	// GetAll returns every setting as a flat key/value map.
	GetAll(ctx context.Context) (map[string]string, error)

	// SaveAll upserts the given pairs atomically; keys not present in
	// the map are left untouched.
	SaveAll(ctx context.Context, settings map[string]string) error
}
