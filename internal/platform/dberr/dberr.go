// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pakapat-jp/edu-mcru/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error.
//
// The action string is retained in the cause chain for server-side logs.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations. A unique violation surfaces as a client-visible
	// conflict; a derived-slug race lands here rather than being silently dropped.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Conflict("A record with the same unique value already exists")
		case pgerrcode.ForeignKeyViolation:
			return apperr.ValidationError("Referenced record does not exist")
		}
	}

	// 3. Unknown query errors become internal server errors
	return apperr.Internal(&actionError{action: action, cause: err})
}

// actionError annotates a database error with the store action that produced it.
type actionError struct {
	action string
	cause  error
}

func (e *actionError) Error() string { return e.action + ": " + e.cause.Error() }
func (e *actionError) Unwrap() error { return e.cause }
