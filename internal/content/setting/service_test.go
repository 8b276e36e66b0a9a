// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package setting

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakapat-jp/edu-mcru/internal/platform/apperr"
)

type fakeRepository struct {
	settings map[string]string
	saves    int
}

func (repo *fakeRepository) GetAll(_ context.Context) (map[string]string, error) {
	out := map[string]string{}
	for key, value := range repo.settings {
		out[key] = value
	}
	return out, nil
}

func (repo *fakeRepository) SaveAll(_ context.Context, settings map[string]string) error {
	repo.saves++
	for key, value := range settings {
		repo.settings[key] = value
	}
	return nil
}

// deadCache returns a client pointing at an unreachable address: every
// cache call fails, which must degrade to the database, not error out.
func deadCache() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
}

func newTestService(repo Repository) *Service {
	return NewService(repo, deadCache(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGetAll_FallsBackToStoreWhenCacheUnavailable(t *testing.T) {
	repo := &fakeRepository{settings: map[string]string{"site_name": "Faculty of Education"}}
	service := newTestService(repo)

	settings, err := service.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Faculty of Education", settings["site_name"])
}

func TestSave_RejectsEmptyMap(t *testing.T) {
	service := newTestService(&fakeRepository{settings: map[string]string{}})

	err := service.Save(context.Background(), map[string]string{})

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPStatus)
}

func TestSave_UpsertsAndSurvivesCacheFailure(t *testing.T) {
	repo := &fakeRepository{settings: map[string]string{"site_name": "Old"}}
	service := newTestService(repo)

	err := service.Save(context.Background(), map[string]string{
		"site_name":     "New",
		"contact_email": "office@mcru.ac.th",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.saves)
	assert.Equal(t, "New", repo.settings["site_name"])
	assert.Equal(t, "office@mcru.ac.th", repo.settings["contact_email"])
}
