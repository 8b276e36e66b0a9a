// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package slider

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakapat-jp/edu-mcru/internal/platform/apperr"
	"github.com/pakapat-jp/edu-mcru/internal/platform/form"
	"github.com/pakapat-jp/edu-mcru/pkg/pointer"
)

type fakeRepository struct {
	sliders map[int]*Slider
	nextID  int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{sliders: map[int]*Slider{}, nextID: 1}
}

func (repo *fakeRepository) List(_ context.Context, activeOnly bool) ([]*Slider, error) {
	var out []*Slider
	for _, entity := range repo.sliders {
		if activeOnly && !entity.IsActive {
			continue
		}
		out = append(out, entity)
	}
	return out, nil
}

func (repo *fakeRepository) Create(_ context.Context, entity *Slider) error {
	maxOrder := 0
	for _, existing := range repo.sliders {
		if existing.SortOrder > maxOrder {
			maxOrder = existing.SortOrder
		}
	}
	entity.ID = repo.nextID
	repo.nextID++
	entity.SortOrder = maxOrder + 1
	repo.sliders[entity.ID] = entity
	return nil
}

func (repo *fakeRepository) Update(_ context.Context, id int, input UpdateInput) error {
	entity, ok := repo.sliders[id]
	if !ok {
		return apperr.NotFound("Slider")
	}
	if input.IsActive.Valid {
		entity.IsActive = input.IsActive.Value
	}
	if input.Title.Valid {
		entity.Title = input.Title.Value
	}
	return nil
}

func (repo *fakeRepository) Delete(_ context.Context, id int) error {
	delete(repo.sliders, id)
	return nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreate_RequiresImage(t *testing.T) {
	service := newTestService(newFakeRepository())

	_, err := service.Create(context.Background(), CreateInput{
		Title: pointer.To("No image"),
	})

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPStatus)
}

func TestCreate_AppendsToCarousel(t *testing.T) {
	service := newTestService(newFakeRepository())

	first, err := service.Create(context.Background(), CreateInput{ImageURL: "/uploads/a.jpg", IsActive: true})
	require.NoError(t, err)
	second, err := service.Create(context.Background(), CreateInput{ImageURL: "/uploads/b.jpg", IsActive: true})
	require.NoError(t, err)

	assert.Equal(t, 1, first.SortOrder)
	assert.Equal(t, 2, second.SortOrder)
}

func TestList_ActiveFilter(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	_, err := service.Create(context.Background(), CreateInput{ImageURL: "/uploads/a.jpg", IsActive: true})
	require.NoError(t, err)
	hidden, err := service.Create(context.Background(), CreateInput{ImageURL: "/uploads/b.jpg", IsActive: false})
	require.NoError(t, err)

	visible, err := service.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, visible, 1)
	assert.NotEqual(t, hidden.ID, visible[0].ID)
}

func TestUpdate_TogglesActive(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	entity, err := service.Create(context.Background(), CreateInput{ImageURL: "/uploads/a.jpg", IsActive: true})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), entity.ID, UpdateInput{
		IsActive: form.Some(false),
	})
	require.NoError(t, err)
	assert.True(t, updated)
	assert.False(t, entity.IsActive)
}
