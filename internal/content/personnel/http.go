// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

/*
Package personnel implements the faculty personnel directory under
/api/personnel.

Writes are multipart: each entry may carry one portrait photo, stored
under the personnel/ subdirectory of the upload root and mirrored into
the media library.
*/
package personnel

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pakapat-jp/edu-mcru/internal/platform/form"
	requestutil "github.com/pakapat-jp/edu-mcru/internal/platform/request"
	"github.com/pakapat-jp/edu-mcru/internal/platform/respond"
	"github.com/pakapat-jp/edu-mcru/internal/platform/upload"
)

// uploadSubdir is where portrait files land under the upload root.
const uploadSubdir = "personnel"

// Handler implements the HTTP layer for personnel operations.
type Handler struct {
	service *Service
	uploads *upload.Store
}

// NewHandler constructs a new personnel [Handler].
func NewHandler(service *Service, uploads *upload.Store) *Handler {
	return &Handler{service: service, uploads: uploads}
}

// Routes returns a [chi.Router] with public reads and authenticated writes.
func (handler *Handler) Routes(requireAuth func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)

	router.Group(func(protected chi.Router) {
		protected.Use(requireAuth)
		protected.Post("/", handler.create)
		protected.Put("/{id}", handler.update)
		protected.Delete("/{id}", handler.delete)
	})

	return router
}

/*
GET /api/personnel.

Request:
  - type: optional filter ("executive", "lecturer", "staff")

Response:
  - 200: []Person: Directory entries in display order
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	typeFilter := request.URL.Query().Get("type")

	people, err := handler.service.List(request.Context(), typeFilter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if people == nil {
		people = []*Person{}
	}
	respond.OK(writer, people)
}

/*
POST /api/personnel.

Request (multipart):
  - name: string (required)
  - academic_title, position, department, profile_link, group_name: optional
  - type: "executive" | "lecturer" | "staff" (default "staff")
  - image: file, or image_url: string

Response:
  - 201: Person: Created entry
  - 400: Validation failure
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	parsed, err := handler.uploads.Parse(request, upload.ParseOptions{
		FileField: "image",
		Subdir:    uploadSubdir,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := CreateInput{
		AcademicTitle: form.NullableString(parsed.Get("academic_title")),
		Name:          form.TrimmedString(parsed.Get("name")),
		Position:      form.NullableString(parsed.Get("position")),
		Department:    form.NullableString(parsed.Get("department")),
		ProfileLink:   form.NullableString(parsed.Get("profile_link")),
		ImageURL:      portraitPath(parsed),
		Type:          parsed.Get("type"),
		GroupName:     form.NullableString(parsed.Get("group_name")),
	}

	entity, err := handler.service.Create(request.Context(), input, parsed.File)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entity)
}

/*
PUT /api/personnel/{id}.

Description: Partially updates an entry; only fields present in the form
are written. A new portrait upload replaces the stored image path.

Response:
  - 200: message: "Personnel updated successfully" or "No changes"
  - 400: Validation failure
  - 404: Entry not found
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	parsed, err := handler.uploads.Parse(request, upload.ParseOptions{
		FileField: "image",
		Subdir:    uploadSubdir,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := UpdateInput{}

	if raw, ok := parsed.Value("academic_title"); ok {
		input.AcademicTitle = form.Some(form.NullableString(raw))
	}
	if raw, ok := parsed.Value("name"); ok {
		input.Name = form.Some(form.TrimmedString(raw))
	}
	if raw, ok := parsed.Value("position"); ok {
		input.Position = form.Some(form.NullableString(raw))
	}
	if raw, ok := parsed.Value("department"); ok {
		input.Department = form.Some(form.NullableString(raw))
	}
	if raw, ok := parsed.Value("profile_link"); ok {
		input.ProfileLink = form.Some(form.NullableString(raw))
	}
	if raw, ok := parsed.Value("type"); ok {
		input.Type = form.Some(raw)
	}
	if raw, ok := parsed.Value("group_name"); ok {
		input.GroupName = form.Some(form.NullableString(raw))
	}
	if raw, ok := parsed.Value("sort_order"); ok {
		if order := form.NullableInt(raw); order != nil {
			input.SortOrder = form.Some(*order)
		}
	}

	// Portrait precedence: a new upload wins over an explicit image_url value.
	if parsed.File != nil {
		input.ImageURL = form.Some(&parsed.File.PublicPath)
	} else if raw, ok := parsed.Value("image_url"); ok {
		input.ImageURL = form.Some(form.NullableString(raw))
	}

	updated, err := handler.service.Update(request.Context(), id, input, parsed.File)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if !updated {
		respond.Message(writer, "No changes")
		return
	}
	respond.Message(writer, "Personnel updated successfully")
}

/*
DELETE /api/personnel/{id}.

Response:
  - 200: message: "Personnel deleted successfully"
  - 400: Invalid id parameter
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "Personnel deleted successfully")
}

// portraitPath resolves the portrait for a create: uploaded file first,
// then an explicit image_url value, then nil.
func portraitPath(parsed *upload.Form) *string {
	if parsed.File != nil {
		return &parsed.File.PublicPath
	}
	return form.NullableString(parsed.Get("image_url"))
}
