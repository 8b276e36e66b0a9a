// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

/*
Package auth implements login and CMS account management.

# Routing

POST /api/login is public. Account management under /api/users requires
the admin role — content editors never see other accounts.
*/
package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pakapat-jp/edu-mcru/internal/platform/form"
	requestutil "github.com/pakapat-jp/edu-mcru/internal/platform/request"
	"github.com/pakapat-jp/edu-mcru/internal/platform/respond"
)

// Handler implements the HTTP layer for login and account management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new auth [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// LoginRoutes returns the public login router.
func (handler *Handler) LoginRoutes() chi.Router {
	router := chi.NewRouter()
	router.Post("/", handler.login)
	return router
}

// UserRoutes returns the account management router; requireAdmin must
// enforce both authentication and the admin role.
func (handler *Handler) UserRoutes(requireAdmin func(http.Handler) http.Handler) chi.Router {
	router := chi.NewRouter()
	router.Use(requireAdmin)

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.delete)

	return router
}

/*
POST /api/login.

Request (Body):
  - { "username": "string", "password": "string" }

Response:
  - 200: { token, user }: Signed access token and the account
  - 400: Unknown username or missing fields
  - 401: Wrong password
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Login(request.Context(), body.Username, body.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
GET /api/users.

Response:
  - 200: []User: All accounts, hashes stripped
  - 401/403: Authentication or role failure
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.service.ListUsers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if users == nil {
		users = []*User{}
	}
	respond.OK(writer, users)
}

/*
POST /api/users.

Request (Body):
  - { "username", "password", "email", "role" } (role defaults to member)

Response:
  - 201: User: Created account
  - 400: Validation failure
  - 409: Duplicate username
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		Username string  `json:"username"`
		Password string  `json:"password"`
		Email    *string `json:"email"`
		Role     string  `json:"role"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.service.CreateUser(request.Context(), CreateInput{
		Username: body.Username,
		Password: body.Password,
		Email:    body.Email,
		Role:     body.Role,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, account)
}

/*
PUT /api/users/{id}.

Description: Partially updates an account; omitted JSON fields stay
untouched. A supplied password is re-hashed.

Response:
  - 200: message: "User updated successfully" or "No changes"
  - 400: Validation failure
  - 404: User not found
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body struct {
		Email    *string `json:"email"`
		Role     *string `json:"role"`
		Password *string `json:"password"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := UpdateInput{}
	if body.Email != nil {
		input.Email = form.Some(body.Email)
	}
	if body.Role != nil {
		input.Role = form.Some(*body.Role)
	}
	if body.Password != nil {
		input.Password = form.Some(*body.Password)
	}

	updated, err := handler.service.UpdateUser(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if !updated {
		respond.Message(writer, "No changes")
		return
	}
	respond.Message(writer, "User updated successfully")
}

/*
DELETE /api/users/{id}.

Response:
  - 200: message: "User deleted successfully"
  - 400: Invalid id or attempted self-deletion
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	actorID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteUser(request.Context(), id, actorID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "User deleted successfully")
}
