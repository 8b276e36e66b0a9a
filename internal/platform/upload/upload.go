// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

/*
Package upload implements the multipart intake for the CMS.

It accepts at most one primary file and a bounded batch of gallery files
per request, writes each to the local upload directory under a generated
collision-resistant name, and hands the resulting public paths to the
domain services. Form text fields are exposed with presence reporting so
partial updates can distinguish "field absent" from "field empty".

# Stored Names

Generated names combine a millisecond timestamp with a random component
and the original extension (e.g. 1712345678901-483920175.jpg). The time
component keeps directory listings roughly chronological; the random
component makes two concurrent uploads of the same file collide only with
negligible probability.
*/
package upload

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/pakapat-jp/edu-mcru/internal/platform/apperr"
	"github.com/pakapat-jp/edu-mcru/internal/platform/constants"
)

// Store writes uploaded files into a local directory that is served
// statically under the public /uploads prefix.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore creates the upload directory if needed and returns a Store.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload: failed to create directory %s: %w", dir, err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// SavedFile describes one stored upload.
type SavedFile struct {
	// StoredName is the generated on-disk filename.
	StoredName string
	// OriginalName is the client-supplied filename, kept for the media library.
	OriginalName string
	// PublicPath is the URL path the row stores and the site serves.
	PublicPath string
	// Ext is the lowercase file extension including the dot.
	Ext string
	// Size is the file size in bytes.
	Size int64
}

// ParseOptions selects which file fields a route accepts.
type ParseOptions struct {
	// FileField is the single-file field name ("image" or "file"); empty disables.
	FileField string
	// GalleryField is the multi-file field name; empty disables.
	GalleryField string
	// MaxGallery caps the number of gallery files; zero means constants.MaxGalleryFiles.
	MaxGallery int
	// Subdir is an optional subdirectory under the upload root (e.g. "personnel").
	Subdir string
}

// Form is the parsed result of a multipart request: stored files plus the
// plain text fields.
type Form struct {
	values  url.Values
	File    *SavedFile
	Gallery []SavedFile
}

// Value returns a text field's value and whether the field was present in
// the request at all. Presence drives the partial-update semantics.
func (f *Form) Value(key string) (string, bool) {
	vals, ok := f.values[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// Get returns a text field's value, or "" when absent.
func (f *Form) Get(key string) string {
	v, _ := f.Value(key)
	return v
}

// Parse reads the request form and stores any accepted files.
//
// Oversized bodies and over-limit gallery batches are rejected with a
// client error before any domain logic runs. Non-multipart bodies
// (url-encoded forms) are accepted with zero files.
func (s *Store) Parse(r *http.Request, opts ParseOptions) (*Form, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, constants.MaxUploadBytes)

	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/") {
		if err := r.ParseForm(); err != nil {
			return nil, s.requestError(err)
		}
		return &Form{values: r.PostForm}, nil
	}

	if err := r.ParseMultipartForm(constants.MaxUploadMemory); err != nil {
		return nil, s.requestError(err)
	}

	result := &Form{values: url.Values(r.MultipartForm.Value)}

	// ── Single file ───────────────────────────────────────────────────────
	if opts.FileField != "" {
		if headers := r.MultipartForm.File[opts.FileField]; len(headers) > 0 {
			saved, err := s.Save(headers[0], opts.Subdir)
			if err != nil {
				return nil, err
			}
			result.File = saved
		}
	}

	// ── Gallery batch ─────────────────────────────────────────────────────
	if opts.GalleryField != "" {
		maxGallery := opts.MaxGallery
		if maxGallery == 0 {
			maxGallery = constants.MaxGalleryFiles
		}

		headers := r.MultipartForm.File[opts.GalleryField]
		if len(headers) > maxGallery {
			return nil, apperr.ValidationError(fmt.Sprintf("At most %d gallery images per request", maxGallery))
		}

		for _, header := range headers {
			saved, err := s.Save(header, opts.Subdir)
			if err != nil {
				return nil, err
			}
			result.Gallery = append(result.Gallery, *saved)
		}
	}

	return result, nil
}

// Save writes a single multipart file to disk under a generated name and
// returns its descriptor.
func (s *Store) Save(header *multipart.FileHeader, subdir string) (*SavedFile, error) {
	source, err := header.Open()
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("upload: failed to open part: %w", err))
	}
	defer source.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	storedName := generateName(ext)

	targetDir := s.dir
	if subdir != "" {
		targetDir = filepath.Join(s.dir, subdir)
		if err := os.MkdirAll(targetDir, 0o755); err != nil {
			return nil, apperr.Internal(fmt.Errorf("upload: failed to create subdirectory: %w", err))
		}
	}

	target, err := os.Create(filepath.Join(targetDir, storedName))
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("upload: failed to create file: %w", err))
	}
	defer target.Close()

	size, err := io.Copy(target, source)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("upload: failed to write file: %w", err))
	}

	saved := &SavedFile{
		StoredName:   storedName,
		OriginalName: header.Filename,
		PublicPath:   path.Join(constants.UploadPublicPrefix, subdir, storedName),
		Ext:          ext,
		Size:         size,
	}

	s.logger.Info("upload_stored",
		slog.String("name", storedName),
		slog.Int64("size", size),
	)

	return saved, nil
}

// generateName produces a collision-resistant stored filename:
// <unix-millis>-<random>.<ext>.
func generateName(ext string) string {
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Int64N(1_000_000_000), ext)
}

// requestError maps body-parsing failures to client errors. An oversized
// body must never surface as a 500.
func (s *Store) requestError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return apperr.ValidationError("Request body exceeds the upload size limit")
	}
	return apperr.ValidationError("Malformed form body")
}
