// Copyright (c) 2026 MCRU Faculty of Education. All rights reserved.

package media

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pakapat-jp/edu-mcru/internal/platform/apperr"
	"github.com/pakapat-jp/edu-mcru/internal/platform/upload"
)

type fakeRepository struct {
	items  map[int]*Item
	nextID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{items: map[int]*Item{}, nextID: 1}
}

func (repo *fakeRepository) ListChildren(_ context.Context, parentID, limit, offset int) ([]*Item, int, error) {
	var children []*Item
	for _, item := range repo.items {
		if item.ParentID == parentID {
			children = append(children, item)
		}
	}
	total := len(children)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return children[offset:end], total, nil
}

func (repo *fakeRepository) Insert(_ context.Context, item *Item) error {
	item.ID = repo.nextID
	repo.nextID++
	repo.items[item.ID] = item
	return nil
}

func (repo *fakeRepository) FindFolder(_ context.Context, name string) (*Item, error) {
	for _, item := range repo.items {
		if item.IsFolder && item.ParentID == 0 && item.FileName == name {
			return item, nil
		}
	}
	return nil, apperr.NotFound("Folder")
}

func (repo *fakeRepository) Delete(_ context.Context, id int) error {
	delete(repo.items, id)
	return nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateFolder_RequiresName(t *testing.T) {
	service := newTestService(newFakeRepository())

	_, err := service.CreateFolder(context.Background(), "", 0)

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPStatus)
}

func TestRecordUpload_FillsFileMetadata(t *testing.T) {
	service := newTestService(newFakeRepository())

	item, err := service.RecordUpload(context.Background(), upload.SavedFile{
		OriginalName: "brochure.pdf",
		PublicPath:   "/uploads/1712345678901-7.pdf",
		Ext:          ".pdf",
		Size:         4096,
	}, 0)
	require.NoError(t, err)

	assert.Equal(t, "brochure.pdf", item.FileName)
	assert.Equal(t, "/uploads/1712345678901-7.pdf", *item.FilePath)
	assert.Equal(t, ".pdf", *item.FileType)
	assert.EqualValues(t, 4096, *item.FileSize)
	assert.False(t, item.IsFolder)
}

func TestRegisterFile_CreatesFolderOnce(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	err := service.RegisterFile(context.Background(), "personnel", "a.jpg", "/uploads/personnel/a.jpg", ".jpg", 100)
	require.NoError(t, err)
	err = service.RegisterFile(context.Background(), "personnel", "b.jpg", "/uploads/personnel/b.jpg", ".jpg", 200)
	require.NoError(t, err)

	folders := 0
	for _, item := range repo.items {
		if item.IsFolder {
			folders++
		}
	}
	assert.Equal(t, 1, folders, "the named folder is reused")

	folder, err := repo.FindFolder(context.Background(), "personnel")
	require.NoError(t, err)

	children, total, err := service.List(context.Background(), folder.ID, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, children, 2)
}

/*
TestRootIsParentZero pins the tree contract: the root is parent_id 0, a
sentinel rather than a row reference — no media row ever has id 0, so
the column must never carry a foreign key.
*/
func TestRootIsParentZero(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	folder, err := service.CreateFolder(context.Background(), "documents", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, folder.ParentID)
	assert.GreaterOrEqual(t, folder.ID, 1, "ids start at 1, 0 is never a row")

	item, err := service.RecordUpload(context.Background(), upload.SavedFile{
		OriginalName: "banner.png",
		PublicPath:   "/uploads/1712345678902-4.png",
		Ext:          ".png",
		Size:         512,
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, item.ParentID)

	children, total, err := service.List(context.Background(), 0, 50, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, children, 2)
}

func TestList_Paginates(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	for range [5]struct{}{} {
		_, err := service.CreateFolder(context.Background(), "f", 0)
		require.NoError(t, err)
	}

	page, total, err := service.List(context.Background(), 0, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, page, 2)
}
