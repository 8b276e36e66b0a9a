// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package category

import "time"

// Category groups articles for the public site's section pages.
type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
