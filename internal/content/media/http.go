// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

/*
Package media implements the media library under /api/media: a folder
tree of uploaded files the admin SPA browses when embedding images.

All media endpoints require authentication — the library is an editor
tool, not a public surface.
*/
package media

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pakapat-jp/edu-mcru/internal/platform/apperr"
	requestutil "github.com/pakapat-jp/edu-mcru/internal/platform/request"
	"github.com/pakapat-jp/edu-mcru/internal/platform/respond"
	"github.com/pakapat-jp/edu-mcru/internal/platform/upload"
	"github.com/pakapat-jp/edu-mcru/pkg/convert"
	"github.com/pakapat-jp/edu-mcru/pkg/pagination"
)

// Handler implements the HTTP layer for media library operations.
type Handler struct {
	service *Service
	uploads *upload.Store
}

// NewHandler constructs a new media [Handler].
func NewHandler(service *Service, uploads *upload.Store) *Handler {
	return &Handler{service: service, uploads: uploads}
}

// Routes returns a [chi.Router]; every media route sits behind requireAuth.
func (handler *Handler) Routes(requireAuth func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()
	router.Use(requireAuth)

	router.Get("/", handler.list)
	router.Post("/folders", handler.createFolder)
	router.Post("/upload", handler.uploadFile)
	router.Delete("/{id}", handler.delete)

	return router
}

/*
GET /api/media.

Request:
  - parent_id: folder to browse (default 0, the root)
  - page, limit: pagination

Response:
  - 200: []Item + meta: One page of the folder's children
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	parentID := convert.ToIntD(request.URL.Query().Get("parent_id"), 0)
	params := pagination.FromRequest(request)

	items, total, err := handler.service.List(request.Context(), parentID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if items == nil {
		items = []*Item{}
	}

	respond.Paginated(writer, items, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
POST /api/media/folders.

Request (Body):
  - { "name": "string", "parent_id": int }

Response:
  - 201: Item: Created folder
  - 400: Validation failure
*/
func (handler *Handler) createFolder(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		Name     string `json:"name"`
		ParentID int    `json:"parent_id"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	folder, err := handler.service.CreateFolder(request.Context(), body.Name, body.ParentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, folder)
}

/*
POST /api/media/upload.

Request (multipart):
  - file: the file to store
  - parent_id: target folder (default 0)

Response:
  - 201: Item: Recorded file entry
  - 400: Missing file or oversized body
*/
func (handler *Handler) uploadFile(writer http.ResponseWriter, request *http.Request) {
	parsed, err := handler.uploads.Parse(request, upload.ParseOptions{FileField: "file"})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if parsed.File == nil {
		respond.Error(writer, request, apperr.ValidationError("A file is required"))
		return
	}

	parentID := convert.ToIntD(parsed.Get("parent_id"), 0)

	item, err := handler.service.RecordUpload(request.Context(), *parsed.File, parentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, item)
}

/*
DELETE /api/media/{id}.

Description: Removes the library row only; the stored file stays on disk
because published articles may still reference it.

Response:
  - 200: message: "Media deleted successfully"
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

	respond.Message(writer, "Media deleted successfully")
}
