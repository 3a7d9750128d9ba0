// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Lukashev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mlukashe/go-photo-keeper/internal/adapter"
	"github.com/mlukashe/go-photo-keeper/internal/connectivity"
	"github.com/mlukashe/go-photo-keeper/internal/logger"
	"github.com/mlukashe/go-photo-keeper/internal/store"
	"github.com/mlukashe/go-photo-keeper/internal/utils"
	"github.com/mlukashe/go-photo-keeper/models"
)

type memoryListService struct {
	memories store.MemoryRepository
	albums   store.AlbumRepository
	gateway  adapter.MemoryGateway
	monitor  connectivity.Monitor
	ids      *utils.UUIDGenerator
	logger   *logger.Logger

	pageSize int

	mu      sync.Mutex
	albumID string
	page    MemoryPage
	updated chan struct{}
}

// NewMemoryListService constructs the per-album memory read path.
func NewMemoryListService(
	memories store.MemoryRepository,
	albums store.AlbumRepository,
	gateway adapter.MemoryGateway,
	monitor connectivity.Monitor,
	pageSize int,
	log *logger.Logger,
) MemoryListService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &memoryListService{
		memories: memories,
		albums:   albums,
		gateway:  gateway,
		monitor:  monitor,
		ids:      utils.NewUUIDGenerator(),
		logger:   log,
		pageSize: pageSize,
		updated:  make(chan struct{}, 1),
	}
}

// Display loads page 1 of one album's memories. An empty result is a valid
// success — unlike the album overview, an album with zero photos is a normal
// state, both online and offline. An album that exists only locally (no
// server id yet) is served purely from cache.
func (s *memoryListService) Display(ctx context.Context, albumLocalID string) (MemoryPage, error) {
	log := logger.FromContext(ctx)

	album, err := s.albums.GetByLocalID(ctx, albumLocalID)
	if err != nil {
		if errors.Is(err, store.ErrAlbumNotFound) {
			return MemoryPage{}, fmt.Errorf("%w: album %s", ErrEntityNotFound, albumLocalID)
		}
		return MemoryPage{}, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	if !s.monitor.IsConnected() || album.ServerID == nil {
		return s.fromCache(ctx, albumLocalID)
	}

	resp, err := s.gateway.ListMemories(ctx, *album.ServerID, models.PagedRequest{Page: 1, PageSize: s.pageSize})
	if err != nil {
		log.Err(err).Str("func", "memoryListService.Display").Str("album_local_id", albumLocalID).Msg("memory fetch failed, falling back to cache")
		return s.fromCache(ctx, albumLocalID)
	}

	fetched := make([]models.Memory, 0, len(resp.Items))
	for _, item := range resp.Items {
		fetched = append(fetched, memoryFromResponse(item, albumLocalID, s.ids.Generate()))
	}

	if err = s.memories.SyncSet(ctx, albumLocalID, fetched); err != nil {
		return MemoryPage{}, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	cached, err := s.memories.GetByAlbum(ctx, albumLocalID, s.pageSize)
	if err != nil {
		return MemoryPage{}, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	return s.setPage(albumLocalID, MemoryPage{Memories: cached, HasMore: resp.HasMore}), nil
}

// Next deepens the view within the album currently displayed.
func (s *memoryListService) Next(ctx context.Context, albumLocalID string, page int) (MemoryPage, error) {
	if !s.monitor.IsConnected() {
		return MemoryPage{}, ErrOffline
	}
	if page < 1 {
		page = 1
	}

	album, err := s.albums.GetByLocalID(ctx, albumLocalID)
	if err != nil {
		if errors.Is(err, store.ErrAlbumNotFound) {
			return MemoryPage{}, fmt.Errorf("%w: album %s", ErrEntityNotFound, albumLocalID)
		}
		return MemoryPage{}, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	if album.ServerID == nil {
		// nothing beyond the cache exists for a local-only album
		return s.fromCache(ctx, albumLocalID)
	}

	resp, err := s.gateway.ListMemories(ctx, *album.ServerID, models.PagedRequest{Page: page, PageSize: s.pageSize})
	if err != nil {
		return MemoryPage{}, fmt.Errorf("fetch memory page %d: %w", page, err)
	}

	fetched := make([]models.Memory, 0, len(resp.Items))
	for _, item := range resp.Items {
		fetched = append(fetched, memoryFromResponse(item, albumLocalID, s.ids.Generate()))
	}

	if err = s.memories.SyncAppend(ctx, albumLocalID, fetched); err != nil {
		return MemoryPage{}, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	cached, err := s.memories.GetByAlbum(ctx, albumLocalID, page*s.pageSize)
	if err != nil {
		return MemoryPage{}, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	return s.setPage(albumLocalID, MemoryPage{Memories: cached, HasMore: resp.HasMore}), nil
}

func (s *memoryListService) fromCache(ctx context.Context, albumLocalID string) (MemoryPage, error) {
	cached, err := s.memories.GetByAlbum(ctx, albumLocalID, s.pageSize)
	if err != nil {
		return MemoryPage{}, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	// empty is valid here: an album can legitimately have zero memories
	return s.setPage(albumLocalID, MemoryPage{Memories: cached, HasMore: false}), nil
}

// Run splices change events for the currently displayed album into the page
// model; events for other albums are ignored.
func (s *memoryListService) Run(ctx context.Context) {
	events := s.memories.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case change := <-events:
			s.apply(change)
		}
	}
}

func (s *memoryListService) apply(change store.Change[models.Memory]) {
	s.mu.Lock()
	if change.Entity.AlbumLocalID != s.albumID {
		s.mu.Unlock()
		return
	}

	switch change.Kind {
	case store.ChangeCreated:
		if indexOfMemory(s.page.Memories, change.Entity.LocalID) < 0 {
			s.page.Memories = append([]models.Memory{change.Entity}, s.page.Memories...)
		}
	case store.ChangeUpdated:
		if i := indexOfMemory(s.page.Memories, change.Entity.LocalID); i >= 0 {
			s.page.Memories[i] = change.Entity
		}
	case store.ChangeDeleted:
		if i := indexOfMemory(s.page.Memories, change.Entity.LocalID); i >= 0 {
			s.page.Memories = append(s.page.Memories[:i], s.page.Memories[i+1:]...)
		}
	}
	s.mu.Unlock()

	s.notify()
}

func (s *memoryListService) Current() MemoryPage {
	s.mu.Lock()
	defer s.mu.Unlock()

	memories := make([]models.Memory, len(s.page.Memories))
	copy(memories, s.page.Memories)
	return MemoryPage{Memories: memories, HasMore: s.page.HasMore}
}

func (s *memoryListService) Updated() <-chan struct{} {
	return s.updated
}

func (s *memoryListService) setPage(albumLocalID string, page MemoryPage) MemoryPage {
	s.mu.Lock()
	s.albumID = albumLocalID
	s.page = page
	s.mu.Unlock()
	return page
}

func (s *memoryListService) notify() {
	select {
	case s.updated <- struct{}{}:
	default:
	}
}

func indexOfMemory(memories []models.Memory, localID string) int {
	for i := range memories {
		if memories[i].LocalID == localID {
			return i
		}
	}
	return -1
}
