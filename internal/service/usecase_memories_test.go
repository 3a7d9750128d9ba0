// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Lukashev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mlukashe/go-photo-keeper/internal/connectivity"
	"github.com/mlukashe/go-photo-keeper/internal/logger"
	"github.com/mlukashe/go-photo-keeper/internal/mock"
	"github.com/mlukashe/go-photo-keeper/models"
)

type memoryListFixture struct {
	memories *fakeMemoryRepo
	albums   *fakeAlbumRepo
	gw       *mock.MockMemoryGateway
	monitor  *connectivity.Manual
	svc      MemoryListService
}

func newMemoryListFixture(t *testing.T, ctrl *gomock.Controller, online bool) *memoryListFixture {
	t.Helper()

	f := &memoryListFixture{
		memories: newFakeMemoryRepo(),
		albums:   newFakeAlbumRepo(),
		gw:       mock.NewMockMemoryGateway(ctrl),
		monitor:  connectivity.NewManual(online),
	}
	f.svc = NewMemoryListService(f.memories, f.albums, f.gw, f.monitor, 20, logger.Nop())
	return f
}

func (f *memoryListFixture) album(t *testing.T, localID string, serverID *int64) {
	t.Helper()
	require.NoError(t, f.albums.Insert(context.Background(), models.Album{
		LocalID:    localID,
		ServerID:   serverID,
		Title:      "Trip",
		SyncStatus: models.StatusSynced,
		CreatedAt:  time.Now(),
	}))
}

func TestMemoryListDisplay_AlbumMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newMemoryListFixture(t, ctrl, true)

	_, err := f.svc.Display(context.Background(), "missing")
	require.ErrorIs(t, err, ErrEntityNotFound)
}

func TestMemoryListDisplay_EmptyAlbumIsValid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newMemoryListFixture(t, ctrl, false)
	f.album(t, "a-1", nil)

	page, err := f.svc.Display(context.Background(), "a-1")
	require.NoError(t, err, "zero memories is a normal state, not a cache miss")
	assert.Empty(t, page.Memories)
	assert.False(t, page.HasMore)
}

func TestMemoryListDisplay_LocalOnlyAlbumServedFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// online, but the album has no server id: there is nothing to fetch,
	// so no gateway expectation is set
	f := newMemoryListFixture(t, ctrl, true)
	f.album(t, "a-1", nil)

	require.NoError(t, f.memories.Insert(context.Background(), models.Memory{
		LocalID: "m-1", AlbumLocalID: "a-1", Title: "shot",
		SyncStatus: models.StatusPendingCreate, CreatedAt: time.Now(),
	}))

	page, err := f.svc.Display(context.Background(), "a-1")
	require.NoError(t, err)
	require.Len(t, page.Memories, 1)
	assert.Equal(t, "m-1", page.Memories[0].LocalID)
}

func TestMemoryListDisplay_RefreshPreservesLocalIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newMemoryListFixture(t, ctrl, true)
	serverID := int64(5)
	f.album(t, "a-1", &serverID)
	ctx := context.Background()

	memServerID := int64(70)
	require.NoError(t, f.memories.Insert(ctx, models.Memory{
		LocalID: "local-70", AlbumLocalID: "a-1", ServerID: &memServerID,
		Title: "Old", SyncStatus: models.StatusSynced, CreatedAt: time.Now(),
	}))

	f.gw.EXPECT().
		ListMemories(gomock.Any(), int64(5), models.PagedRequest{Page: 1, PageSize: 20}).
		Return(models.Paged[models.MemoryResponse]{
			Items: []models.MemoryResponse{{ID: 70, AlbumID: 5, Title: "New", ImageURL: "https://cdn/70.jpg"}},
		}, nil)

	page, err := f.svc.Display(ctx, "a-1")
	require.NoError(t, err)

	require.Len(t, page.Memories, 1)
	assert.Equal(t, "local-70", page.Memories[0].LocalID)
	assert.Equal(t, "New", page.Memories[0].Title)
}

func TestMemoryListDisplay_RefreshKeepsOfflineCreations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newMemoryListFixture(t, ctrl, true)
	serverID := int64(5)
	f.album(t, "a-1", &serverID)
	ctx := context.Background()

	require.NoError(t, f.memories.Insert(ctx, models.Memory{
		LocalID: "m-local", AlbumLocalID: "a-1", Title: "Pending shot",
		SyncStatus: models.StatusPendingCreate, CreatedAt: time.Now(),
	}))

	f.gw.EXPECT().
		ListMemories(gomock.Any(), int64(5), gomock.Any()).
		Return(models.Paged[models.MemoryResponse]{
			Items: []models.MemoryResponse{{ID: 71, AlbumID: 5, Title: "Server shot"}},
		}, nil)

	page, err := f.svc.Display(ctx, "a-1")
	require.NoError(t, err)

	require.Len(t, page.Memories, 2)
	assert.GreaterOrEqual(t, indexOfMemory(page.Memories, "m-local"), 0)
}

func TestMemoryListNext_Offline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newMemoryListFixture(t, ctrl, false)

	_, err := f.svc.Next(context.Background(), "a-1", 2)
	require.ErrorIs(t, err, ErrOffline)
}

func TestMemoryListRun_IgnoresOtherAlbums(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newMemoryListFixture(t, ctrl, false)
	f.album(t, "a-1", nil)
	ctx := context.Background()

	_, err := f.svc.Display(ctx, "a-1")
	require.NoError(t, err)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go f.svc.Run(runCtx)

	// event for a different album: must not appear in the page
	require.NoError(t, f.memories.Insert(ctx, models.Memory{
		LocalID: "m-other", AlbumLocalID: "a-2", Title: "elsewhere",
		SyncStatus: models.StatusPendingCreate, CreatedAt: time.Now(),
	}))
	// event for the displayed album: must be spliced in
	require.NoError(t, f.memories.Insert(ctx, models.Memory{
		LocalID: "m-1", AlbumLocalID: "a-1", Title: "here",
		SyncStatus: models.StatusPendingCreate, CreatedAt: time.Now(),
	}))

	assert.Eventually(t, func() bool {
		page := f.svc.Current()
		return len(page.Memories) == 1 && page.Memories[0].LocalID == "m-1"
	}, 2*time.Second, 10*time.Millisecond)
}
