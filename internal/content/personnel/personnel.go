// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package personnel

import (
	"time"

	"github.com/pakapat-jp/edu-mcru/internal/platform/form"
)

// Personnel types. The directory page renders executives, lecturers, and
// support staff in separate sections.
const (
	TypeExecutive = "executive"
	TypeLecturer  = "lecturer"
	TypeStaff     = "staff"
)

// ValidTypes lists the accepted personnel type values.
var ValidTypes = []string{TypeExecutive, TypeLecturer, TypeStaff}

// Person is one entry of the faculty personnel directory.
type Person struct {
	ID            int       `json:"id"`
	AcademicTitle *string   `json:"academic_title"` // e.g. "ผศ.ดร." — kept separate from the name for sorting.
	Name          string    `json:"name"`
	Position      *string   `json:"position"`
	Department    *string   `json:"department"`
	ProfileLink   *string   `json:"profile_link"`
	ImageURL      *string   `json:"image_url"`
	Type          string    `json:"type"`
	GroupName     *string   `json:"group_name"` // Section heading within a type, e.g. a program name.
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateInput carries a parsed personnel create form.
type CreateInput struct {
	AcademicTitle *string
	Name          string
	Position      *string
	Department    *string
	ProfileLink   *string
	ImageURL      *string
	Type          string
	GroupName     *string
}

// UpdateInput models a partial personnel update.
type UpdateInput struct {
	AcademicTitle form.Optional[*string]
	Name          form.Optional[string]
	Position      form.Optional[*string]
	Department    form.Optional[*string]
	ProfileLink   form.Optional[*string]
	ImageURL      form.Optional[*string]
	Type          form.Optional[string]
	GroupName     form.Optional[*string]
	SortOrder     form.Optional[int]
}

// IsEmpty reports whether the update carries no fields.
func (input UpdateInput) IsEmpty() bool {
	return !input.AcademicTitle.Valid &&
		!input.Name.Valid &&
		!input.Position.Valid &&
		!input.Department.Valid &&
		!input.ProfileLink.Valid &&
		!input.ImageURL.Valid &&
		!input.Type.Valid &&
		!input.GroupName.Valid &&
		!input.SortOrder.Valid
}
