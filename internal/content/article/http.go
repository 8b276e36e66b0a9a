// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

/*
Package article implements news/announcement management for the faculty
site: the public read endpoints and the authenticated admin write
endpoints under /api/news.

# Write Semantics

Writes arrive as multipart form data because they can carry a cover image
and up to twenty gallery files alongside the text fields. The handler is
the normalization boundary: it converts the loosely-typed form into typed
inputs, records which fields were present, and resolves the cover
precedence (new upload over explicit image_url over untouched) before the
service sees the request.
*/
package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pakapat-jp/edu-mcru/internal/platform/apperr"
	"github.com/pakapat-jp/edu-mcru/internal/platform/form"
	requestutil "github.com/pakapat-jp/edu-mcru/internal/platform/request"
	"github.com/pakapat-jp/edu-mcru/internal/platform/respond"
	"github.com/pakapat-jp/edu-mcru/internal/platform/upload"
	"github.com/pakapat-jp/edu-mcru/pkg/slice"
)

// Form field names shared by create and update requests.
const (
	fieldCover       = "image"
	fieldGallery     = "gallery"
	fieldKeptGallery = "existing_gallery_images"
)

// Handler implements the HTTP layer for article operations.
type Handler struct {
	service *Service
	uploads *upload.Store
}

// NewHandler constructs a new article [Handler].
func NewHandler(service *Service, uploads *upload.Store) *Handler {
	return &Handler{service: service, uploads: uploads}
}

// Routes returns a [chi.Router] with public reads and authenticated
// writes. requireAuth is the authentication gate applied to mutations.
func (handler *Handler) Routes(requireAuth func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	// ## Public Reads
	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	// ## Admin Writes
	router.Group(func(protected chi.Router) {
		protected.Use(requireAuth)
		protected.Post("/", handler.create)
		protected.Put("/{id}", handler.update)
		protected.Delete("/{id}", handler.delete)
	})

	return router
}

/*
GET /api/news.

Description: Returns every article, newest first by effective publication
time, with category and author names joined in.

Response:
  - 200: []Article: Full list
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	articles, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// The SPA expects an array even when the table is empty.
	if articles == nil {
		articles = []*Article{}
	}

	respond.OK(writer, articles)
}

/*
GET /api/news/{id}.

Response:
  - 200: Article: Success
  - 400: Invalid id parameter
  - 404: Article not found
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

/*
POST /api/news.

Description: Creates an article from a multipart form. The cover file
("image") and gallery files ("gallery") are stored before validation, so
a rejected create can leave orphan files on disk; the media library still
surfaces them.

Request (multipart):
  - title, content: string (required)
  - slug: string (optional; derived from title when blank)
  - category_id, status, publish_date, image_url: optional scalars
  - image: file, gallery: files (max 20)

Response:
  - 201: Article: Created entity
  - 400: Validation failure
  - 401: Authentication required
  - 409: Duplicate slug
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	parsed, err := handler.uploads.Parse(request, upload.ParseOptions{
		FileField:    fieldCover,
		GalleryField: fieldGallery,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	status, err := form.Status(parsed.Get("status"))
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Status must be a number"))
		return
	}

	input := CreateInput{
		Title:       form.TrimmedString(parsed.Get("title")),
		Content:     parsed.Get("content"),
		Slug:        form.TrimmedString(parsed.Get("slug")),
		ImageURL:    coverPath(parsed),
		CategoryID:  form.NullableInt(parsed.Get("category_id")),
		Status:      status,
		PublishDate: form.DateOrNull(parsed.Get("publish_date")),
		AuthorID:    &authorID,
		GalleryPaths: slice.Map(parsed.Gallery, func(file upload.SavedFile) string {
			return file.PublicPath
		}),
	}

	entity, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entity)
}

/*
PUT /api/news/{id}.

Description: Partially updates an article. Only fields present in the
form are written. The gallery column is rebuilt only when the request
carries existing_gallery_images; gallery uploads without that field are
stored but not referenced.

Response:
  - 200: message: "Article updated successfully" or "No changes"
  - 400: Validation failure
  - 401: Authentication required
  - 404: Article not found
  - 409: Duplicate slug
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	parsed, err := handler.uploads.Parse(request, upload.ParseOptions{
		FileField:    fieldCover,
		GalleryField: fieldGallery,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input, err := updateInputFromForm(parsed)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if !updated {
		respond.Message(writer, "No changes")
		return
	}
	respond.Message(writer, "Article updated successfully")
}

/*
DELETE /api/news/{id}.

Description: Removes the article row. Deleting an already-deleted id
still succeeds. Referenced files stay on disk.

Response:
  - 200: message: "Article deleted successfully"
  - 400: Invalid id parameter
  - 401: Authentication required
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

	respond.Message(writer, "Article deleted successfully")
}

// # Form Normalization

// updateInputFromForm converts a parsed update form into the partial
// update input, recording field presence.
func updateInputFromForm(parsed *upload.Form) (UpdateInput, error) {
	input := UpdateInput{}

	if raw, ok := parsed.Value("title"); ok {
		input.Title = form.Some(form.TrimmedString(raw))
	}
	if raw, ok := parsed.Value("content"); ok {
		input.Content = form.Some(raw)
	}
	if raw, ok := parsed.Value("slug"); ok {
		input.Slug = form.Some(form.TrimmedString(raw))
	}
	if raw, ok := parsed.Value("category_id"); ok {
		input.CategoryID = form.Some(form.NullableInt(raw))
	}
	if raw, ok := parsed.Value("publish_date"); ok {
		input.PublishDate = form.Some(form.DateOrNull(raw))
	}
	if raw, ok := parsed.Value("status"); ok {
		status, err := form.Status(raw)
		if err != nil {
			return UpdateInput{}, apperr.ValidationError("Status must be a number")
		}
		input.Status = form.Some(status)
	}

	// Cover precedence: a new upload wins over an explicit image_url value.
	if parsed.File != nil {
		input.ImageURL = form.Some(&parsed.File.PublicPath)
	} else if raw, ok := parsed.Value("image_url"); ok {
		input.ImageURL = form.Some(form.NullableString(raw))
	}

	// The gallery column is rebuilt only when the kept list was sent.
	if keptRaw, ok := parsed.Value(fieldKeptGallery); ok {
		uploadedPaths := slice.Map(parsed.Gallery, func(file upload.SavedFile) string {
			return file.PublicPath
		})
		input.Gallery = form.Some(MergeGallery(keptRaw, uploadedPaths))
	}

	return input, nil
}

// coverPath resolves the cover image for a create: uploaded file first,
// then an explicit image_url form value, then nil.
func coverPath(parsed *upload.Form) *string {
	if parsed.File != nil {
		return &parsed.File.PublicPath
	}
	if raw, ok := parsed.Value("image_url"); ok {
		return form.NullableString(raw)
	}
	return nil
}
