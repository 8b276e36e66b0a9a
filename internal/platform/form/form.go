// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

/*
Package form is the parsing boundary between loosely-typed multipart form
input and the typed domain layer.

The admin SPA submits everything as FormData, so integers, dates, and
booleans arrive as strings, absent fields arrive as missing keys, and
cleared fields arrive as the literal string "null" or as empty strings.
This package converts that input into typed values or nil — it never
returns an error for a malformed scalar; callers that need strictness
(article status) use the checked variants.
*/
package form

import (
	"strconv"
	"strings"
)

// nullSentinel is the literal string some form clients send for a cleared field.
const nullSentinel = "null"

// isAbsent reports whether a raw form value represents "no value":
// an empty string (including an absent key) or the "null" sentinel.
func isAbsent(raw string) bool {
	return raw == "" || raw == nullSentinel
}

// NullableInt parses a form value into an optional integer.
//
// Absent, empty, "null", and unparsable values all yield nil — never an
// error. A cleared category selection must round-trip to SQL NULL.
func NullableInt(raw string) *int {
	if isAbsent(raw) {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

// DateOrNull parses a form value into an optional date string.
//
// Absent, empty, and "null" yield nil. Anything else is passed through
// unmodified; the database validates the actual date syntax on write.
func DateOrNull(raw string) *string {
	if isAbsent(raw) {
		return nil
	}
	return &raw
}

// NullableString parses a form value into an optional string.
//
// Absent, empty, and "null" yield nil; anything else passes through.
// Clearing a cover image URL must round-trip to SQL NULL.
func NullableString(raw string) *string {
	if isAbsent(raw) {
		return nil
	}
	return &raw
}

// Status resolves an article status form value.
//
// Absent, empty, and "null" yield the published default (1). A defined
// value must parse as an integer; a garbage string is a client error
// rather than an unparseable value silently stored.
func Status(raw string) (int, error) {
	if isAbsent(raw) {
		return 1, nil
	}
	return strconv.Atoi(raw)
}

// Bool parses a form boolean.
//
// FormData serializes booleans as the strings "true"/"false" or "1"/"0";
// only "true" and "1" are truthy.
func Bool(raw string) bool {
	return raw == "true" || raw == "1"
}

// BoolOr parses a form boolean, returning fallback when the field was not
// present in the request at all.
func BoolOr(raw string, present bool, fallback bool) bool {
	if !present {
		return fallback
	}
	return Bool(raw)
}

// TrimmedString returns the value with surrounding whitespace removed.
func TrimmedString(raw string) string {
	return strings.TrimSpace(raw)
}

// # Optional Values

// Optional carries a form field value together with whether the field was
// present in the request. Partial updates overwrite a column only when the
// corresponding field was actually sent.
//
// Naming follows the database/sql Null* convention: Valid reports presence.
type Optional[T any] struct {
	Value T
	Valid bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Valid: true}
}

// None represents an absent field.
func None[T any]() Optional[T] {
	return Optional[T]{}
}
