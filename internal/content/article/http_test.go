// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package article

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakapat-jp/edu-mcru/internal/platform/upload"
)

func newTestUploadStore(t *testing.T) *upload.Store {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := upload.NewStore(t.TempDir(), logger)
	require.NoError(t, err)
	return store
}

// parseUpdateForm runs a multipart body through the real upload parser
// and the update-form normalizer, the exact path PUT /api/news/{id} takes.
func parseUpdateForm(t *testing.T, fields map[string]string, galleryFiles []string) UpdateInput {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, name := range galleryFiles {
		part, err := writer.CreateFormFile(fieldGallery, name)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	request := httptest.NewRequest("PUT", "/api/news/1", body)
	request.Header.Set("Content-Type", writer.FormDataContentType())

	store := newTestUploadStore(t)
	parsed, err := store.Parse(request, upload.ParseOptions{
		FileField:    fieldCover,
		GalleryField: fieldGallery,
	})
	require.NoError(t, err)

	input, err := updateInputFromForm(parsed)
	require.NoError(t, err)
	return input
}

/*
TestUpdateForm_GalleryUntouchedWhenKeptListAbsent verifies the presence
rule at the form boundary: with no existing_gallery_images field the
gallery column is left alone — even when the request carries gallery
uploads — so a client updating unrelated fields can never wipe a gallery.
*/
func TestUpdateForm_GalleryUntouchedWhenKeptListAbsent(t *testing.T) {
	input := parseUpdateForm(t,
		map[string]string{"title": "Updated title"},
		[]string{"new.png"},
	)

	assert.True(t, input.Title.Valid)
	assert.False(t, input.Gallery.Valid, "gallery must not be written")
	assert.False(t, input.IsEmpty())
}

/*
TestUpdateForm_GalleryRebuiltWhenKeptListPresent verifies the opposite
side: a present kept-list triggers the rebuild, kept entries first and
uploads appended in order.
*/
func TestUpdateForm_GalleryRebuiltWhenKeptListPresent(t *testing.T) {
	input := parseUpdateForm(t,
		map[string]string{fieldKeptGallery: `["/uploads/a.jpg","/uploads/b.jpg"]`},
		[]string{"c.png"},
	)

	require.True(t, input.Gallery.Valid)

	var gallery []string
	require.NoError(t, json.Unmarshal([]byte(input.Gallery.Value), &gallery))
	require.Len(t, gallery, 3)
	assert.Equal(t, "/uploads/a.jpg", gallery[0])
	assert.Equal(t, "/uploads/b.jpg", gallery[1])
	assert.Contains(t, gallery[2], "/uploads/", "uploaded file appended last")
}

/*
TestUpdateForm_EmptyKeptListClearsGallery verifies that an explicitly
empty kept-list with no uploads stores the empty JSON array — the
client managed the gallery and chose to clear it.
*/
func TestUpdateForm_EmptyKeptListClearsGallery(t *testing.T) {
	input := parseUpdateForm(t,
		map[string]string{fieldKeptGallery: `[]`},
		nil,
	)

	require.True(t, input.Gallery.Valid)
	assert.Equal(t, "[]", input.Gallery.Value)
}
