// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

/*
Package category implements article category management under
/api/categories: public listing plus authenticated create and delete.
*/
package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/pakapat-jp/edu-mcru/internal/platform/request"
	"github.com/pakapat-jp/edu-mcru/internal/platform/respond"
)

// Handler implements the HTTP layer for category operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new category [Handler].
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
		protected.Delete("/{id}", handler.delete)
	})

	return router
}

/*
GET /api/categories.

Response:
  - 200: []Category: All categories, alphabetical
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if categories == nil {
		categories = []*Category{}
	}
	respond.OK(writer, categories)
}

/*
POST /api/categories.

Request (Body):
  - { "name": "string" }

Response:
  - 201: Category: Created entity
  - 400: Validation failure
  - 409: Duplicate name
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Name string `json:"name"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	entity, err := handler.service.Create(request.Context(), input.Name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, entity)
}

/*
DELETE /api/categories/{id}.

Response:
  - 200: message: "Category deleted successfully"
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

	respond.Message(writer, "Category deleted successfully")
}
