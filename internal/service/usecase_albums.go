// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Lukashev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/mlukashe/go-photo-keeper/internal/adapter"
	"github.com/mlukashe/go-photo-keeper/internal/connectivity"
	"github.com/mlukashe/go-photo-keeper/internal/logger"
	"github.com/mlukashe/go-photo-keeper/internal/store"
	"github.com/mlukashe/go-photo-keeper/internal/utils"
	"github.com/mlukashe/go-photo-keeper/models"
)

// DefaultPageSize is used when a list service is constructed with a
// non-positive page size.
const DefaultPageSize = 20

type albumListService struct {
	albums  store.AlbumRepository
	gateway adapter.AlbumGateway
	monitor connectivity.Monitor
	ids     *utils.UUIDGenerator
	logger  *logger.Logger

	pageSize int

	mu      sync.Mutex
	page    AlbumPage
	updated chan struct{}
}

// NewAlbumListService constructs the album overview read path.
func NewAlbumListService(
	albums store.AlbumRepository,
	gateway adapter.AlbumGateway,
	monitor connectivity.Monitor,
	pageSize int,
	log *logger.Logger,
) AlbumListService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &albumListService{
		albums:   albums,
		gateway:  gateway,
		monitor:  monitor,
		ids:      utils.NewUUIDGenerator(),
		logger:   log,
		pageSize: pageSize,
		updated:  make(chan struct{}, 1),
	}
}

// Display loads page 1. When connected it refreshes from the server and
// reads back through the repository, never from the raw response, so every
// returned entity carries its preserved local id. On fetch failure or
// offline it falls back to the cache; an empty cache is a typed failure.
func (s *albumListService) Display(ctx context.Context) (AlbumPage, error) {
	log := logger.FromContext(ctx)

	if !s.monitor.IsConnected() {
		return s.fromCache(ctx, nil)
	}

	resp, err := s.gateway.ListAlbums(ctx, models.PagedRequest{Page: 1, PageSize: s.pageSize})
	if err != nil {
		log.Err(err).Str("func", "albumListService.Display").Msg("album fetch failed, falling back to cache")
		return s.fromCache(ctx, err)
	}

	fetched := make([]models.Album, 0, len(resp.Items))
	for _, item := range resp.Items {
		fetched = append(fetched, albumFromResponse(item, s.ids.Generate()))
	}

	if err = s.albums.SyncSet(ctx, fetched); err != nil {
		return AlbumPage{}, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	cached, err := s.albums.GetAll(ctx, s.pageSize)
	if err != nil {
		return AlbumPage{}, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	return s.setPage(AlbumPage{Albums: cached, HasMore: resp.HasMore}), nil
}

// Next deepens the view. The merge is identity-preserving, so the re-read is
// truncated to page*pageSize to keep the displayed count aligned with the
// requested depth even when the join collapsed duplicates.
func (s *albumListService) Next(ctx context.Context, page int) (AlbumPage, error) {
	if !s.monitor.IsConnected() {
		return AlbumPage{}, ErrOffline
	}
	if page < 1 {
		page = 1
	}

	resp, err := s.gateway.ListAlbums(ctx, models.PagedRequest{Page: page, PageSize: s.pageSize})
	if err != nil {
		return AlbumPage{}, fmt.Errorf("fetch album page %d: %w", page, err)
	}

	fetched := make([]models.Album, 0, len(resp.Items))
	for _, item := range resp.Items {
		fetched = append(fetched, albumFromResponse(item, s.ids.Generate()))
	}

	if err = s.albums.SyncAppend(ctx, fetched); err != nil {
		return AlbumPage{}, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	cached, err := s.albums.GetAll(ctx, page*s.pageSize)
	if err != nil {
		return AlbumPage{}, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	return s.setPage(AlbumPage{Albums: cached, HasMore: resp.HasMore}), nil
}

func (s *albumListService) fromCache(ctx context.Context, cause error) (AlbumPage, error) {
	cached, err := s.albums.GetAll(ctx, s.pageSize)
	if err != nil {
		return AlbumPage{}, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	if len(cached) == 0 {
		if cause != nil {
			return AlbumPage{}, fmt.Errorf("%w: %w", ErrNoCachedData, cause)
		}
		return AlbumPage{}, ErrNoCachedData
	}
	return s.setPage(AlbumPage{Albums: cached, HasMore: false}), nil
}

// Run splices repository change events into the current page model so a
// form-completed creation appears at the head of the list without a refetch.
func (s *albumListService) Run(ctx context.Context) {
	events := s.albums.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case change := <-events:
			s.apply(change)
		}
	}
}

func (s *albumListService) apply(change store.Change[models.Album]) {
	s.mu.Lock()
	switch change.Kind {
	case store.ChangeCreated:
		if indexOfAlbum(s.page.Albums, change.Entity.LocalID) < 0 {
			s.page.Albums = append([]models.Album{change.Entity}, s.page.Albums...)
		}
	case store.ChangeUpdated:
		if i := indexOfAlbum(s.page.Albums, change.Entity.LocalID); i >= 0 {
			s.page.Albums[i] = change.Entity
		}
	case store.ChangeDeleted:
		if i := indexOfAlbum(s.page.Albums, change.Entity.LocalID); i >= 0 {
			s.page.Albums = append(s.page.Albums[:i], s.page.Albums[i+1:]...)
		}
	}
	s.mu.Unlock()

	s.notify()
}

func (s *albumListService) Current() AlbumPage {
	s.mu.Lock()
	defer s.mu.Unlock()

	albums := make([]models.Album, len(s.page.Albums))
	copy(albums, s.page.Albums)
	return AlbumPage{Albums: albums, HasMore: s.page.HasMore}
}

func (s *albumListService) Updated() <-chan struct{} {
	return s.updated
}

func (s *albumListService) setPage(page AlbumPage) AlbumPage {
	s.mu.Lock()
	s.page = page
	s.mu.Unlock()
	return page
}

func (s *albumListService) notify() {
	select {
	case s.updated <- struct{}{}:
	default:
	}
}

func indexOfAlbum(albums []models.Album, localID string) int {
	for i := range albums {
		if albums[i].LocalID == localID {
			return i
		}
	}
	return -1
}
