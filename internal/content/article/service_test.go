// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package article

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakapat-jp/edu-mcru/internal/platform/apperr"
	"github.com/pakapat-jp/edu-mcru/internal/platform/form"
	"github.com/pakapat-jp/edu-mcru/pkg/pointer"
)

// fakeRepository is an in-memory [Repository] for service tests.
type fakeRepository struct {
	articles map[int]*Article
	nextID   int
	// lastUpdate records the input passed to Update for assertion.
	lastUpdate *UpdateInput
	updateHits int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{articles: map[int]*Article{}, nextID: 1}
}

func (repo *fakeRepository) List(_ context.Context) ([]*Article, error) {
	out := make([]*Article, 0, len(repo.articles))
	for _, entity := range repo.articles {
		out = append(out, entity)
	}
	return out, nil
}

func (repo *fakeRepository) FindByID(_ context.Context, id int) (*Article, error) {
	entity, ok := repo.articles[id]
	if !ok {
		return nil, apperr.NotFound("Article")
	}
	return entity, nil
}

func (repo *fakeRepository) Create(_ context.Context, entity *Article, _ *string) error {
	for _, existing := range repo.articles {
		if existing.Slug == entity.Slug {
			return apperr.Conflict("A record with the same unique value already exists")
		}
	}
	entity.ID = repo.nextID
	repo.nextID++
	repo.articles[entity.ID] = entity
	return nil
}

func (repo *fakeRepository) Update(_ context.Context, id int, input UpdateInput) error {
	repo.updateHits++
	repo.lastUpdate = &input

	entity, ok := repo.articles[id]
	if !ok {
		return apperr.NotFound("Article")
	}
	if input.Title.Valid {
		entity.Title = input.Title.Value
	}
	if input.Content.Valid {
		entity.Content = input.Content.Value
	}
	if input.ImageURL.Valid {
		entity.ImageURL = input.ImageURL.Value
	}
	if input.CategoryID.Valid {
		entity.CategoryID = input.CategoryID.Value
	}
	if input.Status.Valid {
		entity.Status = input.Status.Value
	}
	if input.Gallery.Valid {
		entity.GalleryImages = input.Gallery.Value
	}
	return nil
}

func (repo *fakeRepository) Delete(_ context.Context, id int) error {
	delete(repo.articles, id)
	return nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// # Create

func TestCreate_DerivesSlugFromTitle(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	entity, err := service.Create(context.Background(), CreateInput{
		Title:   "Open House 2026",
		Content: "Visit us.",
		Status:  StatusPublished,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(entity.Slug, "open-house-2026-"), "slug %q", entity.Slug)
	assert.Equal(t, `[]`, entity.GalleryImages)
}

func TestCreate_KeepsExplicitSlug(t *testing.T) {
	service := newTestService(newFakeRepository())

	entity, err := service.Create(context.Background(), CreateInput{
		Title:   "Open House 2026",
		Content: "Visit us.",
		Slug:    "open-house",
		Status:  StatusPublished,
	})
	require.NoError(t, err)
	assert.Equal(t, "open-house", entity.Slug)
}

func TestCreate_RequiresTitleAndContent(t *testing.T) {
	service := newTestService(newFakeRepository())

	_, err := service.Create(context.Background(), CreateInput{Status: StatusPublished})

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPStatus)
	assert.Len(t, appErr.Details, 2)
}

func TestCreate_RejectsUnknownStatus(t *testing.T) {
	service := newTestService(newFakeRepository())

	_, err := service.Create(context.Background(), CreateInput{
		Title:   "T",
		Content: "C",
		Status:  5,
	})

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPStatus)
}

func TestCreate_DuplicateSlugConflicts(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	_, err := service.Create(context.Background(), CreateInput{
		Title: "A", Content: "x", Slug: "same", Status: StatusPublished,
	})
	require.NoError(t, err)

	_, err = service.Create(context.Background(), CreateInput{
		Title: "B", Content: "y", Slug: "same", Status: StatusPublished,
	})

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.HTTPStatus)
}

func TestCreate_GalleryFromUploads(t *testing.T) {
	service := newTestService(newFakeRepository())

	entity, err := service.Create(context.Background(), CreateInput{
		Title:        "With gallery",
		Content:      "x",
		Status:       StatusPublished,
		GalleryPaths: []string{"/uploads/a.jpg", "/uploads/b.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, `["/uploads/a.jpg","/uploads/b.jpg"]`, entity.GalleryImages)
}

// # Update

func TestUpdate_EmptyInputIsNoOp(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	updated, err := service.Update(context.Background(), 1, UpdateInput{})
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Zero(t, repo.updateHits, "store must not be touched")
}

func TestUpdate_PartialWritesOnlyPresentFields(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	entity, err := service.Create(context.Background(), CreateInput{
		Title: "Original", Content: "body", Slug: "orig", Status: StatusPublished,
		ImageURL: pointer.To("/uploads/cover.jpg"),
	})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), entity.ID, UpdateInput{
		Title: form.Some("Renamed"),
	})
	require.NoError(t, err)
	assert.True(t, updated)

	assert.Equal(t, "Renamed", entity.Title)
	assert.Equal(t, "body", entity.Content)
	assert.Equal(t, "/uploads/cover.jpg", pointer.Val(entity.ImageURL))
	assert.False(t, repo.lastUpdate.Content.Valid)
	assert.False(t, repo.lastUpdate.ImageURL.Valid)
}

func TestUpdate_ClearsCategoryWithNull(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	entity, err := service.Create(context.Background(), CreateInput{
		Title: "T", Content: "c", Slug: "t", Status: StatusPublished,
		CategoryID: pointer.To(3),
	})
	require.NoError(t, err)

	_, err = service.Update(context.Background(), entity.ID, UpdateInput{
		CategoryID: form.Some[*int](nil),
	})
	require.NoError(t, err)
	assert.Nil(t, entity.CategoryID)
}

func TestUpdate_MissingArticle(t *testing.T) {
	service := newTestService(newFakeRepository())

	_, err := service.Update(context.Background(), 99, UpdateInput{
		Title: form.Some("x"),
	})

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

func TestUpdate_RejectsEmptyTitle(t *testing.T) {
	service := newTestService(newFakeRepository())

	_, err := service.Update(context.Background(), 1, UpdateInput{
		Title: form.Some(""),
	})

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPStatus)
}

// # Delete

func TestDelete_Idempotent(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	entity, err := service.Create(context.Background(), CreateInput{
		Title: "T", Content: "c", Slug: "gone", Status: StatusPublished,
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), entity.ID))
	// Second delete of the same id still succeeds.
	require.NoError(t, service.Delete(context.Background(), entity.ID))

	_, err = service.Get(context.Background(), entity.ID)
	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPStatus)
}
