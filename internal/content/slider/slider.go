// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package slider

import (
	"time"

	"github.com/pakapat-jp/edu-mcru/internal/platform/form"
)

// Slider is one image of the homepage hero carousel.
type Slider struct {
	ID             int       `json:"id"`
	ImageURL       string    `json:"image_url"`
	Title          *string   `json:"title"`
	Subtitle       *string   `json:"subtitle"`
	ButtonText     *string   `json:"button_text"`
	ButtonLink     *string   `json:"button_link"`
	OverlayEnabled bool      `json:"overlay_enabled"` // Darkening overlay for text legibility.
	SortOrder      int       `json:"sort_order"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateInput carries a parsed slider create form. ImageURL must already
// be resolved (uploaded file path or explicit value); the service rejects
// an empty one.
type CreateInput struct {
	ImageURL       string
	Title          *string
	Subtitle       *string
	ButtonText     *string
	ButtonLink     *string
	OverlayEnabled bool
	IsActive       bool
}

// UpdateInput models a partial slider update.
type UpdateInput struct {
	ImageURL       form.Optional[string]
	Title          form.Optional[*string]
	Subtitle       form.Optional[*string]
	ButtonText     form.Optional[*string]
	ButtonLink     form.Optional[*string]
	OverlayEnabled form.Optional[bool]
	SortOrder      form.Optional[int]
	IsActive       form.Optional[bool]
}

// IsEmpty reports whether the update carries no fields.
func (input UpdateInput) IsEmpty() bool {
	return !input.ImageURL.Valid &&
		!input.Title.Valid &&
		!input.Subtitle.Valid &&
		!input.ButtonText.Valid &&
		!input.ButtonLink.Valid &&
		!input.OverlayEnabled.Valid &&
		!input.SortOrder.Valid &&
		!input.IsActive.Valid
}
