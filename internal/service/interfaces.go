// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Lukashev

// Package service implements the reconciliation engine: the sync queue
// service that drains deferred operations, the form use cases that write
// optimistically and sync inline when possible, and the read-through list
// use cases that merge server pages into the local cache.
package service

import (
	"context"
	"time"

	"github.com/mlukashe/go-photo-keeper/models"
)

// SyncQueueService owns the decision of when to attempt network work and
// guarantees that a drain pass is idempotent and exclusive.
type SyncQueueService interface {
	// Enqueue appends a durable operation for later execution. Storage
	// failures are logged, not surfaced: a user action that already wrote its
	// entity row must not be blocked by queue I/O.
	Enqueue(ctx context.Context, entityType models.EntityType, opType models.OperationType, localID string)

	// ProcessQueue runs one drain pass: connectivity gate, exclusive guard,
	// then strictly sequential execution of PENDING and FAILED operations
	// oldest-first. One operation's failure does not abort the batch.
	ProcessQueue(ctx context.Context) error

	// SyncNow executes one operation immediately, bypassing the queue
	// entirely. The inline path of the form use cases: when it succeeds the
	// queue was never touched.
	SyncNow(ctx context.Context, entityType models.EntityType, opType models.OperationType, localID string) error

	// PendingOperations returns every queued operation for diagnostics.
	PendingOperations(ctx context.Context) ([]models.SyncOperation, error)

	// QueueState subscribes to {PendingCount, IsSyncing} updates.
	QueueState() <-chan models.QueueState
}

// AlbumFormService is the album write path.
type AlbumFormService interface {
	CreateAlbum(ctx context.Context, title string, cover []byte) (models.Album, Outcome, error)
	UpdateAlbum(ctx context.Context, localID, title string, cover []byte) (models.Album, Outcome, error)
}

// MemoryFormService is the memory write path.
type MemoryFormService interface {
	CreateMemory(ctx context.Context, albumLocalID, title, description string, takenAt time.Time, image []byte) (models.Memory, Outcome, error)
}

// ProfileFormService is the profile write path.
type ProfileFormService interface {
	UpdateProfile(ctx context.Context, name string, birthday *time.Time, avatar []byte) (models.User, Outcome, error)
}

// AlbumPage is the list model handed to the UI.
type AlbumPage struct {
	Albums  []models.Album
	HasMore bool
}

// MemoryPage is the per-album list model.
type MemoryPage struct {
	Memories []models.Memory
	HasMore  bool
}

// AlbumListService is the read path for the album overview.
type AlbumListService interface {
	// Display loads page 1: server refresh when connected, cache fallback
	// otherwise. An empty cache while offline is an error — the overview has
	// nothing meaningful to show.
	Display(ctx context.Context) (AlbumPage, error)

	// Next deepens the view to the given 1-based page. Requires connectivity.
	Next(ctx context.Context, page int) (AlbumPage, error)

	// Run consumes repository change events and splices them into the
	// current page model until ctx is cancelled.
	Run(ctx context.Context)

	// Current returns a snapshot of the spliced page model.
	Current() AlbumPage

	// Updated signals after every splice so the UI can re-render.
	Updated() <-chan struct{}
}

// MemoryListService is the read path inside one album. An empty result is
// valid here: an album can legitimately have zero memories.
type MemoryListService interface {
	Display(ctx context.Context, albumLocalID string) (MemoryPage, error)
	Next(ctx context.Context, albumLocalID string, page int) (MemoryPage, error)
	Run(ctx context.Context)
	Current() MemoryPage
	Updated() <-chan struct{}
}

// ProfileService is the read path for the singleton profile.
type ProfileService interface {
	DisplayProfile(ctx context.Context) (models.User, error)
}

// AuthService opens the session the gateways need.
type AuthService interface {
	Register(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
}

// SyncJob triggers drain passes in the background: once at launch, on every
// offline-to-online edge, and on a periodic retry tick.
type SyncJob interface {
	Start(ctx context.Context, retryInterval time.Duration)
	Stop()
}
