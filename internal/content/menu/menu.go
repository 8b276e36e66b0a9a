// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package menu

import (
	"time"

	"github.com/pakapat-jp/edu-mcru/internal/platform/form"
)

// Menu is one entry of the public site navigation.
//
// ParentID builds a two-level tree: 0 marks a top-level entry, any other
// value points at the parent entry's id. Ordering within a level follows
// SortOrder, which new entries receive automatically.
type Menu struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Type      string    `json:"type"` // "page", "link", or "dropdown".
	ParentID  int       `json:"parent_id"`
	URL       *string   `json:"url"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateInput carries a validated menu create request.
type CreateInput struct {
	Title    string
	Slug     string
	Type     string
	ParentID int
	URL      *string
}

// UpdateInput models a partial menu update.
type UpdateInput struct {
	Title     form.Optional[string]
	Slug      form.Optional[string]
	Type      form.Optional[string]
	ParentID  form.Optional[int]
	URL       form.Optional[*string]
	SortOrder form.Optional[int]
}

// IsEmpty reports whether the update carries no fields.
func (input UpdateInput) IsEmpty() bool {
	return !input.Title.Valid &&
		!input.Slug.Valid &&
		!input.Type.Valid &&
		!input.ParentID.Valid &&
		!input.URL.Valid &&
		!input.SortOrder.Valid
}
