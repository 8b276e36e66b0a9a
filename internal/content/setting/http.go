// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

/*
Package setting implements site-wide configuration under /api/settings: a
flat key/value map the public site reads on every render (site name,
contact details, social links, footer text).
*/
package setting

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/pakapat-jp/edu-mcru/internal/platform/request"
	"github.com/pakapat-jp/edu-mcru/internal/platform/respond"
)

// Handler implements the HTTP layer for settings operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new settings [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with a public read and authenticated save.
func (handler *Handler) Routes(requireAuth func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.getAll)

	router.Group(func(protected chi.Router) {
		protected.Use(requireAuth)
		protected.Post("/", handler.save)
	})

	return router
}

/*
GET /api/settings.

Response:
  - 200: map[string]string: All settings
*/
func (handler *Handler) getAll(writer http.ResponseWriter, request *http.Request) {
	settings, err := handler.service.GetAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, settings)
}

/*
POST /api/settings.

Request (Body):
  - flat JSON object: { "site_name": "...", "contact_email": "...", ... }

Response:
  - 200: message: "Settings saved successfully"
  - 400: Empty or malformed body
*/
func (handler *Handler) save(writer http.ResponseWriter, request *http.Request) {
	var body map[string]string
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Save(request.Context(), body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "Settings saved successfully")
}
