// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package personnel

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakapat-jp/edu-mcru/internal/platform/apperr"
	"github.com/pakapat-jp/edu-mcru/internal/platform/upload"
)

type fakeRepository struct {
	people map[int]*Person
	nextID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{people: map[int]*Person{}, nextID: 1}
}

func (repo *fakeRepository) List(_ context.Context, typeFilter string) ([]*Person, error) {
	var out []*Person
	for _, entity := range repo.people {
		if typeFilter != "" && entity.Type != typeFilter {
			continue
		}
		out = append(out, entity)
	}
	return out, nil
}

func (repo *fakeRepository) Create(_ context.Context, entity *Person) error {
	entity.ID = repo.nextID
	repo.nextID++
	entity.SortOrder = entity.ID
	repo.people[entity.ID] = entity
	return nil
}

func (repo *fakeRepository) Update(_ context.Context, id int, input UpdateInput) error {
	entity, ok := repo.people[id]
	if !ok {
		return apperr.NotFound("Personnel")
	}
	if input.Name.Valid {
		entity.Name = input.Name.Value
	}
	if input.Type.Valid {
		entity.Type = input.Type.Value
	}
	return nil
}

func (repo *fakeRepository) Delete(_ context.Context, id int) error {
	delete(repo.people, id)
	return nil
}

// fakeRegistrar records media registrations and can be told to fail.
type fakeRegistrar struct {
	calls []string
	err   error
}

func (registrar *fakeRegistrar) RegisterFile(_ context.Context, folderName, fileName, _, _ string, _ int64) error {
	registrar.calls = append(registrar.calls, folderName+"/"+fileName)
	return registrar.err
}

func newTestService(repo Repository, registrar Registrar) *Service {
	return NewService(repo, registrar, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreate_DefaultsTypeToStaff(t *testing.T) {
	service := newTestService(newFakeRepository(), &fakeRegistrar{})

	entity, err := service.Create(context.Background(), CreateInput{Name: "Somchai"}, nil)
	require.NoError(t, err)
	assert.Equal(t, TypeStaff, entity.Type)
}

func TestCreate_RejectsUnknownType(t *testing.T) {
	service := newTestService(newFakeRepository(), &fakeRegistrar{})

	_, err := service.Create(context.Background(), CreateInput{Name: "Somchai", Type: "dean"}, nil)

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPStatus)
}

func TestCreate_RegistersPhotoInMediaLibrary(t *testing.T) {
	registrar := &fakeRegistrar{}
	service := newTestService(newFakeRepository(), registrar)

	photo := &upload.SavedFile{
		StoredName:   "1712345678901-42.jpg",
		OriginalName: "somchai.jpg",
		PublicPath:   "/uploads/personnel/1712345678901-42.jpg",
		Ext:          ".jpg",
		Size:         2048,
	}

	_, err := service.Create(context.Background(), CreateInput{Name: "Somchai"}, photo)
	require.NoError(t, err)
	assert.Equal(t, []string{"personnel/somchai.jpg"}, registrar.calls)
}

func TestCreate_RegistrationFailureIsSwallowed(t *testing.T) {
	registrar := &fakeRegistrar{err: errors.New("media store down")}
	service := newTestService(newFakeRepository(), registrar)

	photo := &upload.SavedFile{OriginalName: "x.jpg", PublicPath: "/uploads/personnel/x.jpg"}

	entity, err := service.Create(context.Background(), CreateInput{Name: "Somchai"}, photo)
	require.NoError(t, err, "entry creation must survive media failures")
	assert.NotZero(t, entity.ID)
}

func TestList_TypeFilter(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo, &fakeRegistrar{})

	_, err := service.Create(context.Background(), CreateInput{Name: "Dean", Type: TypeExecutive}, nil)
	require.NoError(t, err)
	_, err = service.Create(context.Background(), CreateInput{Name: "Clerk"}, nil)
	require.NoError(t, err)

	executives, err := service.List(context.Background(), TypeExecutive)
	require.NoError(t, err)
	require.Len(t, executives, 1)
	assert.Equal(t, "Dean", executives[0].Name)
}
