// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package upload_test

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakapat-jp/edu-mcru/internal/platform/apperr"
	"github.com/pakapat-jp/edu-mcru/internal/platform/upload"
)

func newTestStore(t *testing.T) *upload.Store {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := upload.NewStore(t.TempDir(), logger)
	require.NoError(t, err)
	return store
}

// buildMultipart assembles a multipart body with text fields and files.
func buildMultipart(t *testing.T, fields map[string]string, files map[string][]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for field, names := range files {
		for _, name := range names {
			part, err := writer.CreateFormFile(field, name)
			require.NoError(t, err)
			_, err = part.Write([]byte("fake image bytes"))
			require.NoError(t, err)
		}
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

/*
TestParse_CoverAndGallery verifies files are stored and paths generated in
upload order.
*/
func TestParse_CoverAndGallery(t *testing.T) {
	store := newTestStore(t)
	body, contentType := buildMultipart(t,
		map[string]string{"title": "Open House"},
		map[string][]string{
			"image":   {"cover.jpg"},
			"gallery": {"a.png", "b.png"},
		},
	)

	request := httptest.NewRequest("POST", "/api/news", body)
	request.Header.Set("Content-Type", contentType)

	parsed, err := store.Parse(request, upload.ParseOptions{FileField: "image", GalleryField: "gallery"})
	require.NoError(t, err)

	require.NotNil(t, parsed.File)
	assert.True(t, strings.HasPrefix(parsed.File.PublicPath, "/uploads/"))
	assert.Equal(t, ".jpg", parsed.File.Ext)
	assert.Equal(t, "cover.jpg", parsed.File.OriginalName)

	require.Len(t, parsed.Gallery, 2)
	assert.Equal(t, ".png", parsed.Gallery[0].Ext)

	title, present := parsed.Value("title")
	assert.True(t, present)
	assert.Equal(t, "Open House", title)

	_, present = parsed.Value("status")
	assert.False(t, present)
}

/*
TestParse_GalleryLimit verifies over-limit gallery batches are rejected
with a client error before anything is handed to the domain layer.
*/
func TestParse_GalleryLimit(t *testing.T) {
	store := newTestStore(t)

	names := make([]string, 3)
	for i := range names {
		names[i] = "img.png"
	}
	body, contentType := buildMultipart(t, nil, map[string][]string{"gallery": names})

	request := httptest.NewRequest("POST", "/api/news", body)
	request.Header.Set("Content-Type", contentType)

	_, err := store.Parse(request, upload.ParseOptions{GalleryField: "gallery", MaxGallery: 2})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

/*
TestParse_URLEncodedFallback verifies non-multipart bodies still expose
text fields with presence reporting and carry no files.
*/
func TestParse_URLEncodedFallback(t *testing.T) {
	store := newTestStore(t)

	request := httptest.NewRequest("POST", "/api/menus", strings.NewReader("title=Home&url=%2F"))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	parsed, err := store.Parse(request, upload.ParseOptions{})
	require.NoError(t, err)
	assert.Nil(t, parsed.File)
	assert.Empty(t, parsed.Gallery)

	title, present := parsed.Value("title")
	assert.True(t, present)
	assert.Equal(t, "Home", title)
}

/*
TestSave_Subdir verifies subdirectory placement used by personnel photos.
*/
func TestSave_Subdir(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := t.TempDir()
	store, err := upload.NewStore(dir, logger)
	require.NoError(t, err)

	body, contentType := buildMultipart(t, nil, map[string][]string{"image": {"portrait.webp"}})
	request := httptest.NewRequest("POST", "/api/personnel", body)
	request.Header.Set("Content-Type", contentType)

	parsed, err := store.Parse(request, upload.ParseOptions{FileField: "image", Subdir: "personnel"})
	require.NoError(t, err)
	require.NotNil(t, parsed.File)
	assert.True(t, strings.HasPrefix(parsed.File.PublicPath, "/uploads/personnel/"))

	// The file must physically exist under the subdirectory.
	onDisk := filepath.Join(dir, "personnel", parsed.File.StoredName)
	_, statErr := os.Stat(onDisk)
	assert.NoError(t, statErr)
}
