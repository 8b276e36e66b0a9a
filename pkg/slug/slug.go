// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs are the human-readable aliases for articles (e.g. "open-house-2026").
// This package handles normalization, accent removal, and character
// sanitization, plus the time-suffixed derivation used when an editor does
// not supply an explicit slug.
package slug

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any sequence of non-alphanumeric, non-hyphen characters.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
// 4. Replaces non-alphanumeric characters with hyphens.
// 5. Collapses multiple hyphens and trims leading/trailing hyphens.
//
// Scripts with no ASCII decomposition (e.g. Thai titles) reduce to an empty
// base; [Derive] still yields a usable slug from its suffix.
func From(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Replace whitespace and special chars with hyphens
	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	// 4. Clean up hyphenation
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// Derive builds a slug from a title and appends a millisecond timestamp
// token so that two articles with identical titles receive distinct slugs.
//
// The suffix makes a collision require two derivations within the same
// millisecond for the same title; if that ever happens the database unique
// constraint still refuses the second row.
func Derive(title string) string {
	base := From(title)
	suffix := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
