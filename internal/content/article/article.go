// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package article

import (
	"time"

	"github.com/pakapat-jp/edu-mcru/internal/platform/form"
)

// Article statuses. The admin SPA sends these as form strings; anything
// else is rejected at the parsing boundary.
const (
	// StatusArchived removes an article from public listings without deleting it.
	StatusArchived = -1
	// StatusDraft marks an article as work in progress.
	StatusDraft = 0
	// StatusPublished is the default for new articles.
	StatusPublished = 1
)

// IsValidStatus reports whether s is a recognised article status.
func IsValidStatus(s int) bool {
	return s == StatusArchived || s == StatusDraft || s == StatusPublished
}

// Article is the central aggregate of the CMS: one news item or
// announcement on the faculty site.
//
// # Nullability
//
// Cover image, category, publish date, and author are all optional and
// map to nullable columns. GalleryImages is stored as JSON array text in
// a single column rather than a child table; it is always a well-formed
// array ("[]" when empty) on write, but reads tolerate legacy garbage.
type Article struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"` // Unique URL alias.
	Content       string     `json:"content"`
	ImageURL      *string    `json:"image_url"`
	CategoryID    *int       `json:"category_id"`
	CategoryName  *string    `json:"category_name,omitempty"` // Joined from categories for list/detail views.
	Status        int        `json:"status"`
	PublishDate   *time.Time `json:"publish_date"`
	AuthorID      *int       `json:"author_id"`
	AuthorName    *string    `json:"author_name,omitempty"` // Joined from users.
	GalleryImages string     `json:"gallery_images"`
	Views         int        `json:"views"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// CreateInput carries the typed result of parsing a create request form.
//
// Slug may be empty, in which case the service derives one from the
// title. PublishDate is the raw form string; the database validates and
// casts it, defaulting to NOW() when nil.
type CreateInput struct {
	Title       string
	Content     string
	Slug        string
	ImageURL    *string
	CategoryID  *int
	Status      int
	PublishDate *string
	AuthorID    *int
	// GalleryPaths are the public paths of gallery files stored during intake.
	GalleryPaths []string
}

// UpdateInput models a partial update: each field is written to the row
// only when its Optional is valid, i.e. the form actually carried it.
//
// # Gallery Overwrite Rule
//
// Gallery is valid only when the request included the
// existing_gallery_images field. A request that uploads gallery files
// without that field leaves the column untouched.
type UpdateInput struct {
	Title       form.Optional[string]
	Content     form.Optional[string]
	Slug        form.Optional[string]
	ImageURL    form.Optional[*string]
	CategoryID  form.Optional[*int]
	Status      form.Optional[int]
	PublishDate form.Optional[*string]
	// Gallery holds the fully merged, serialized JSON array text.
	Gallery form.Optional[string]
}

// IsEmpty reports whether the update carries no fields at all. The
// service answers such requests with a no-op success instead of issuing
// an UPDATE with an empty SET clause.
func (input UpdateInput) IsEmpty() bool {
	return !input.Title.Valid &&
		!input.Content.Valid &&
		!input.Slug.Valid &&
		!input.ImageURL.Valid &&
		!input.CategoryID.Valid &&
		!input.Status.Valid &&
		!input.PublishDate.Valid &&
		!input.Gallery.Valid
}
