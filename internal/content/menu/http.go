// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

/*
Package menu implements site navigation management under /api/menus.

Unlike article writes, menu writes are plain JSON: there is no file
intake. Partial updates use pointer fields in the request body — a field
left out of the JSON stays untouched on the row.
*/
package menu

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pakapat-jp/edu-mcru/internal/platform/form"
	requestutil "github.com/pakapat-jp/edu-mcru/internal/platform/request"
	"github.com/pakapat-jp/edu-mcru/internal/platform/respond"
	"github.com/pakapat-jp/edu-mcru/pkg/pointer"
)

// Handler implements the HTTP layer for menu operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new menu [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
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
GET /api/menus.

Response:
  - 200: []Menu: All entries in display order
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	menus, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if menus == nil {
		menus = []*Menu{}
	}
	respond.OK(writer, menus)
}

/*
POST /api/menus.

Request (Body):
  - { "title": "string", "slug": "string", "type": "string",
    "parent_id": int, "url": "string" }

Response:
  - 201: Menu: Created entry with assigned sort order
  - 400: Validation failure
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		Title    string  `json:"title"`
		Slug     string  `json:"slug"`
		Type     string  `json:"type"`
		ParentID *int    `json:"parent_id"`
		URL      *string `json:"url"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.service.Create(request.Context(), CreateInput{
		Title:    body.Title,
		Slug:     body.Slug,
		Type:     body.Type,
		ParentID: pointer.Val(body.ParentID),
		URL:      body.URL,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entity)
}

/*
PUT /api/menus/{id}.

Description: Partially updates an entry; omitted JSON fields are not
written. An empty body is a successful no-op.

Response:
  - 200: message: "Menu updated successfully" or "No changes"
  - 400: Validation failure
  - 404: Menu not found
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body struct {
		Title     *string `json:"title"`
		Slug      *string `json:"slug"`
		Type      *string `json:"type"`
		ParentID  *int    `json:"parent_id"`
		URL       *string `json:"url"`
		SortOrder *int    `json:"sort_order"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := UpdateInput{}
	if body.Title != nil {
		input.Title = form.Some(*body.Title)
	}
	if body.Slug != nil {
		input.Slug = form.Some(*body.Slug)
	}
	if body.Type != nil {
		input.Type = form.Some(*body.Type)
	}
	if body.ParentID != nil {
		input.ParentID = form.Some(*body.ParentID)
	}
	if body.URL != nil {
		input.URL = form.Some(body.URL)
	}
	if body.SortOrder != nil {
		input.SortOrder = form.Some(*body.SortOrder)
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
	respond.Message(writer, "Menu updated successfully")
}

/*
DELETE /api/menus/{id}.

Response:
  - 200: message: "Menu deleted successfully"
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

	respond.Message(writer, "Menu deleted successfully")
}
