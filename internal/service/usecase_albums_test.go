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

	"github.com/mlukashe/go-photo-keeper/internal/adapter"
	"github.com/mlukashe/go-photo-keeper/internal/connectivity"
	"github.com/mlukashe/go-photo-keeper/internal/logger"
	"github.com/mlukashe/go-photo-keeper/internal/mock"
	"github.com/mlukashe/go-photo-keeper/models"
)

func newAlbumListFixture(t *testing.T, ctrl *gomock.Controller, online bool, pageSize int) (*fakeAlbumRepo, *mock.MockAlbumGateway, *connectivity.Manual, AlbumListService) {
	t.Helper()

	albums := newFakeAlbumRepo()
	gw := mock.NewMockAlbumGateway(ctrl)
	monitor := connectivity.NewManual(online)
	svc := NewAlbumListService(albums, gw, monitor, pageSize, logger.Nop())
	return albums, gw, monitor, svc
}

func TestAlbumListDisplay_RefreshPreservesLocalIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	albums, gw, _, svc := newAlbumListFixture(t, ctrl, true, 20)
	ctx := context.Background()

	serverID := int64(5)
	require.NoError(t, albums.Insert(ctx, models.Album{
		LocalID:    "local-5",
		ServerID:   &serverID,
		Title:      "Old Title",
		SyncStatus: models.StatusSynced,
		CreatedAt:  time.Now(),
	}))

	gw.EXPECT().
		ListAlbums(gomock.Any(), models.PagedRequest{Page: 1, PageSize: 20}).
		Return(models.Paged[models.AlbumResponse]{
			Items:   []models.AlbumResponse{{ID: 5, Title: "New Title"}},
			HasMore: false,
		}, nil)

	page, err := svc.Display(ctx)
	require.NoError(t, err)

	require.Len(t, page.Albums, 1)
	assert.Equal(t, "local-5", page.Albums[0].LocalID, "refresh must keep the cached local id")
	assert.Equal(t, "New Title", page.Albums[0].Title)
	assert.False(t, page.HasMore)
}

func TestAlbumListDisplay_RefreshKeepsOfflineCreations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	albums, gw, _, svc := newAlbumListFixture(t, ctrl, true, 20)
	ctx := context.Background()

	// never-synced local album: no server id, so the set-refresh prune must
	// not touch it
	require.NoError(t, albums.Insert(ctx, models.Album{
		LocalID:    "local-only",
		Title:      "Drafts",
		SyncStatus: models.StatusPendingCreate,
		CreatedAt:  time.Now(),
	}))

	gw.EXPECT().
		ListAlbums(gomock.Any(), gomock.Any()).
		Return(models.Paged[models.AlbumResponse]{
			Items: []models.AlbumResponse{{ID: 9, Title: "Server Album"}},
		}, nil)

	page, err := svc.Display(ctx)
	require.NoError(t, err)

	require.Len(t, page.Albums, 2)
	assert.GreaterOrEqual(t, indexOfAlbum(page.Albums, "local-only"), 0)
}

func TestAlbumListDisplay_OfflineServesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	albums, _, _, svc := newAlbumListFixture(t, ctrl, false, 20)
	ctx := context.Background()

	require.NoError(t, albums.Insert(ctx, models.Album{
		LocalID: "a-1", Title: "Trip", SyncStatus: models.StatusPendingCreate, CreatedAt: time.Now(),
	}))

	page, err := svc.Display(ctx)
	require.NoError(t, err)
	require.Len(t, page.Albums, 1)
	assert.False(t, page.HasMore, "cache depth is unknown, so no deeper page is offered")
}

func TestAlbumListDisplay_OfflineEmptyCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, _, svc := newAlbumListFixture(t, ctrl, false, 20)

	_, err := svc.Display(context.Background())
	require.ErrorIs(t, err, ErrNoCachedData)
}

func TestAlbumListDisplay_FetchFailureFallsBackToCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	albums, gw, _, svc := newAlbumListFixture(t, ctrl, true, 20)
	ctx := context.Background()

	require.NoError(t, albums.Insert(ctx, models.Album{
		LocalID: "a-1", Title: "Trip", SyncStatus: models.StatusSynced, CreatedAt: time.Now(),
	}))

	gw.EXPECT().
		ListAlbums(gomock.Any(), gomock.Any()).
		Return(models.Paged[models.AlbumResponse]{}, adapter.ErrTimeout)

	page, err := svc.Display(ctx)
	require.NoError(t, err)
	require.Len(t, page.Albums, 1)
}

func TestAlbumListDisplay_FetchFailureEmptyCacheCarriesCause(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, gw, _, svc := newAlbumListFixture(t, ctrl, true, 20)

	gw.EXPECT().
		ListAlbums(gomock.Any(), gomock.Any()).
		Return(models.Paged[models.AlbumResponse]{}, adapter.ErrTimeout)

	_, err := svc.Display(context.Background())
	require.ErrorIs(t, err, ErrNoCachedData)
	require.ErrorIs(t, err, adapter.ErrTimeout)
}

func TestAlbumListNext_OfflineIsTyped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, _, _, svc := newAlbumListFixture(t, ctrl, false, 20)

	_, err := svc.Next(context.Background(), 2)
	require.ErrorIs(t, err, ErrOffline)
}

func TestAlbumListNext_AppendsWithoutPruning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	albums, gw, _, svc := newAlbumListFixture(t, ctrl, true, 2)
	ctx := context.Background()

	base := time.Now()
	serverID := int64(1)
	require.NoError(t, albums.Insert(ctx, models.Album{
		LocalID: "a-1", ServerID: &serverID, Title: "One",
		SyncStatus: models.StatusSynced, CreatedAt: base.Add(3 * time.Second),
	}))
	require.NoError(t, albums.Insert(ctx, models.Album{
		LocalID: "a-local", Title: "Local Draft",
		SyncStatus: models.StatusPendingCreate, CreatedAt: base.Add(2 * time.Second),
	}))

	gw.EXPECT().
		ListAlbums(gomock.Any(), models.PagedRequest{Page: 2, PageSize: 2}).
		Return(models.Paged[models.AlbumResponse]{
			Items: []models.AlbumResponse{
				{ID: 3, Title: "Three", CreatedAt: base.Add(time.Second)},
				{ID: 4, Title: "Four", CreatedAt: base},
			},
			HasMore: true,
		}, nil)

	page, err := svc.Next(ctx, 2)
	require.NoError(t, err)

	assert.True(t, page.HasMore)
	assert.Len(t, page.Albums, 4)
	assert.GreaterOrEqual(t, indexOfAlbum(page.Albums, "a-local"), 0, "deepening must not prune local-only rows")
}

func TestAlbumListRun_SplicesCreatedEventToHead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	albums, _, _, svc := newAlbumListFixture(t, ctrl, false, 20)
	ctx := context.Background()

	require.NoError(t, albums.Insert(ctx, models.Album{
		LocalID: "a-1", Title: "Existing", SyncStatus: models.StatusSynced, CreatedAt: time.Now().Add(-time.Hour),
	}))
	_, err := svc.Display(ctx)
	require.NoError(t, err)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go svc.Run(runCtx)

	require.NoError(t, albums.Insert(ctx, models.Album{
		LocalID: "a-2", Title: "Fresh", SyncStatus: models.StatusPendingCreate, CreatedAt: time.Now(),
	}))

	select {
	case <-svc.Updated():
	case <-time.After(2 * time.Second):
		t.Fatal("no update notification after a create event")
	}

	page := svc.Current()
	require.Len(t, page.Albums, 2)
	assert.Equal(t, "a-2", page.Albums[0].LocalID, "fresh creation must appear at the head")
}

func TestAlbumListRun_AppliesUpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	albums, _, _, svc := newAlbumListFixture(t, ctrl, false, 20)
	ctx := context.Background()

	require.NoError(t, albums.Insert(ctx, models.Album{
		LocalID: "a-1", Title: "Old", SyncStatus: models.StatusSynced, CreatedAt: time.Now(),
	}))
	_, err := svc.Display(ctx)
	require.NoError(t, err)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go svc.Run(runCtx)

	require.NoError(t, albums.Update(ctx, models.Album{
		LocalID: "a-1", Title: "Renamed", SyncStatus: models.StatusPendingUpdate, CreatedAt: time.Now(),
	}))

	assert.Eventually(t, func() bool {
		page := svc.Current()
		return len(page.Albums) == 1 && page.Albums[0].Title == "Renamed"
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, albums.Delete(ctx, "a-1"))

	assert.Eventually(t, func() bool {
		return len(svc.Current().Albums) == 0
	}, 2*time.Second, 10*time.Millisecond)
}
