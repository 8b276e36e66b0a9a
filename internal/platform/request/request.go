// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pakapat-jp/edu-mcru/internal/platform/apperr"
	"github.com/pakapat-jp/edu-mcru/internal/platform/ctxutil"
	"github.com/pakapat-jp/edu-mcru/internal/platform/sec"
	"github.com/pakapat-jp/edu-mcru/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntID retrieves a named URL parameter and parses it as a positive integer
row identifier. All CMS resources use serial integer keys.

Returns:
  - int: The parsed identifier
  - error: apperr.ValidationError if the parameter is not a valid integer
*/
func IntID(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, apperr.ValidationError("Invalid " + name + " parameter")
	}
	return id, nil
}

/*
Claims extracts the authenticated user claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

/*
RequiredClaims ensures the request is authenticated and returns the user claims.

Returns:
  - *sec.AuthClaims: The authenticated user claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}

/*
RequiredUserID returns the user id of the currently logged-in user.
Create operations record this as the article author.

Returns:
  - int: User id
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredUserID(request *http.Request) (int, error) {
	claims, err := RequiredClaims(request)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
