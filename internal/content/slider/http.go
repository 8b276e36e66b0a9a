// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

/*
Package slider implements homepage hero carousel management under
/api/hero-sliders.

Writes are multipart because each slider carries one image. Booleans
arrive as FormData strings ("true"/"1"); is_active defaults to true on
create so a new slider shows immediately.
*/
package slider

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pakapat-jp/edu-mcru/internal/platform/form"
	requestutil "github.com/pakapat-jp/edu-mcru/internal/platform/request"
	"github.com/pakapat-jp/edu-mcru/internal/platform/respond"
	"github.com/pakapat-jp/edu-mcru/internal/platform/upload"
)

// Handler implements the HTTP layer for hero slider operations.
type Handler struct {
	service *Service
	uploads *upload.Store
}

// NewHandler constructs a new slider [Handler].
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
GET /api/hero-sliders.

Request:
  - active: "true" restricts to currently visible sliders

Response:
  - 200: []Slider: Carousel order
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	activeOnly := request.URL.Query().Get("active") == "true"

	sliders, err := handler.service.List(request.Context(), activeOnly)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if sliders == nil {
		sliders = []*Slider{}
	}
	respond.OK(writer, sliders)
}

/*
POST /api/hero-sliders.

Request (multipart):
  - image: file, or image_url: string (one required)
  - title, subtitle, button_text, button_link: optional strings
  - overlay_enabled, is_active: form booleans (is_active defaults true)

Response:
  - 201: Slider: Created slider
  - 400: Missing image or validation failure
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	parsed, err := handler.uploads.Parse(request, upload.ParseOptions{FileField: "image"})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	imageURL := ""
	if parsed.File != nil {
		imageURL = parsed.File.PublicPath
	} else if raw := parsed.Get("image_url"); raw != "" {
		imageURL = raw
	}

	activeRaw, activePresent := parsed.Value("is_active")

	input := CreateInput{
		ImageURL:       imageURL,
		Title:          form.NullableString(parsed.Get("title")),
		Subtitle:       form.NullableString(parsed.Get("subtitle")),
		ButtonText:     form.NullableString(parsed.Get("button_text")),
		ButtonLink:     form.NullableString(parsed.Get("button_link")),
		OverlayEnabled: form.Bool(parsed.Get("overlay_enabled")),
		IsActive:       form.BoolOr(activeRaw, activePresent, true),
	}

	entity, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entity)
}

/*
PUT /api/hero-sliders/{id}.

Description: Partially updates a slider; only fields present in the form
are written. A new image upload replaces the stored image path.

Response:
  - 200: message: "Slider updated successfully" or "No changes"
  - 400: Validation failure
  - 404: Slider not found
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	parsed, err := handler.uploads.Parse(request, upload.ParseOptions{FileField: "image"})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := UpdateInput{}

	if parsed.File != nil {
		input.ImageURL = form.Some(parsed.File.PublicPath)
	} else if raw, ok := parsed.Value("image_url"); ok {
		input.ImageURL = form.Some(raw)
	}

	if raw, ok := parsed.Value("title"); ok {
		input.Title = form.Some(form.NullableString(raw))
	}
	if raw, ok := parsed.Value("subtitle"); ok {
		input.Subtitle = form.Some(form.NullableString(raw))
	}
	if raw, ok := parsed.Value("button_text"); ok {
		input.ButtonText = form.Some(form.NullableString(raw))
	}
	if raw, ok := parsed.Value("button_link"); ok {
		input.ButtonLink = form.Some(form.NullableString(raw))
	}
	if raw, ok := parsed.Value("overlay_enabled"); ok {
		input.OverlayEnabled = form.Some(form.Bool(raw))
	}
	if raw, ok := parsed.Value("is_active"); ok {
		input.IsActive = form.Some(form.Bool(raw))
	}
	if raw, ok := parsed.Value("sort_order"); ok {
		if order := form.NullableInt(raw); order != nil {
			input.SortOrder = form.Some(*order)
		}
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
	respond.Message(writer, "Slider updated successfully")
}

/*
DELETE /api/hero-sliders/{id}.

Response:
  - 200: message: "Slider deleted successfully"
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

	respond.Message(writer, "Slider deleted successfully")
}
