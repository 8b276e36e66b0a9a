// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package menu

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakapat-jp/edu-mcru/internal/platform/apperr"
	"github.com/pakapat-jp/edu-mcru/internal/platform/form"
)

type fakeRepository struct {
	menus      map[int]*Menu
	nextID     int
	updateHits int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{menus: map[int]*Menu{}, nextID: 1}
}

func (repo *fakeRepository) List(_ context.Context) ([]*Menu, error) {
	out := make([]*Menu, 0, len(repo.menus))
	for _, entity := range repo.menus {
		out = append(out, entity)
	}
	return out, nil
}

func (repo *fakeRepository) Create(_ context.Context, entity *Menu) error {
	maxOrder := 0
	for _, existing := range repo.menus {
		if existing.SortOrder > maxOrder {
			maxOrder = existing.SortOrder
		}
	}
	entity.ID = repo.nextID
	repo.nextID++
	entity.SortOrder = maxOrder + 1
	repo.menus[entity.ID] = entity
	return nil
}

func (repo *fakeRepository) Update(_ context.Context, id int, input UpdateInput) error {
	repo.updateHits++
	entity, ok := repo.menus[id]
	if !ok {
		return apperr.NotFound("Menu")
	}
	if input.Title.Valid {
		entity.Title = input.Title.Value
	}
	if input.SortOrder.Valid {
		entity.SortOrder = input.SortOrder.Value
	}
	return nil
}

func (repo *fakeRepository) Delete(_ context.Context, id int) error {
	delete(repo.menus, id)
	return nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreate_AppendsToEnd(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	first, err := service.Create(context.Background(), CreateInput{Title: "Home", Type: "page"})
	require.NoError(t, err)
	second, err := service.Create(context.Background(), CreateInput{Title: "About", Type: "page"})
	require.NoError(t, err)

	assert.Equal(t, 1, first.SortOrder)
	assert.Equal(t, 2, second.SortOrder)
}

func TestCreate_RequiresTitle(t *testing.T) {
	service := newTestService(newFakeRepository())

	_, err := service.Create(context.Background(), CreateInput{Type: "page"})

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPStatus)
}

func TestUpdate_EmptyInputIsNoOp(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	updated, err := service.Update(context.Background(), 1, UpdateInput{})
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Zero(t, repo.updateHits)
}

func TestUpdate_Partial(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	entity, err := service.Create(context.Background(), CreateInput{Title: "Home", Type: "page"})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), entity.ID, UpdateInput{
		Title: form.Some("Start"),
	})
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, "Start", entity.Title)
	assert.Equal(t, "page", entity.Type)
}
