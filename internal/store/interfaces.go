// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Lukashev

// Package store owns local persistence for the photo-keeper client: the
// SQLite row store for entities and the sync queue, plus the on-device image
// blob store.
//
// Every local-side join runs on local ids. Server-fetched records are merged
// through SyncSet/SyncAppend, which join by server id and keep the existing
// local id — the invariant that lets a page refresh never orphan a record the
// user is viewing or has queued operations against.
package store

import (
	"context"

	"github.com/mlukashe/go-photo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AlbumRepository is the local album cache.
type AlbumRepository interface {
	// GetAll returns cached albums newest-first. limit <= 0 means no limit.
	GetAll(ctx context.Context, limit int) ([]models.Album, error)
	GetByLocalID(ctx context.Context, localID string) (models.Album, error)
	GetByServerID(ctx context.Context, serverID int64) (models.Album, error)

	// SyncSet replaces the synced portion of the cache with fetched records.
	// Rows without a server id (offline creations) always survive; rows whose
	// server id matches an incoming record keep their local id and any
	// local-only state (pending status, not-yet-uploaded cover path).
	SyncSet(ctx context.Context, albums []models.Album) error

	// SyncAppend merges fetched records without removing anything.
	SyncAppend(ctx context.Context, albums []models.Album) error

	// Insert persists a locally created album and publishes a Created event.
	Insert(ctx context.Context, album models.Album) error

	// Update persists a local edit and publishes an Updated event.
	Update(ctx context.Context, album models.Album) error

	// Delete removes an album by local id and publishes a Deleted event.
	Delete(ctx context.Context, localID string) error

	// MarkAsSynced is the reconciliation write: it sets the server id (write
	// once) and flips the status to SYNCED. It publishes an Updated event so
	// a visible badge can flip.
	MarkAsSynced(ctx context.Context, localID string, serverID int64) error

	// SetCoverRemoteURL records the uploaded cover URL and clears the local
	// path. Silent: a cosmetic patch that must not reshuffle a visible list.
	SetCoverRemoteURL(ctx context.Context, localID, url string) error

	// SetSyncStatus flips the cached status tag (SYNCING, FAILED, ...).
	SetSyncStatus(ctx context.Context, localID string, status models.SyncStatus) error

	// Events returns a subscription to this repository's change stream.
	Events() <-chan Change[models.Album]
}

// MemoryRepository is the local memory (photo) cache.
type MemoryRepository interface {
	// GetByAlbum returns the album's cached memories newest-first.
	// limit <= 0 means no limit.
	GetByAlbum(ctx context.Context, albumLocalID string, limit int) ([]models.Memory, error)
	GetByLocalID(ctx context.Context, localID string) (models.Memory, error)

	// SyncSet replaces the synced portion of one album's memories; offline
	// creations survive, matched rows keep their local id.
	SyncSet(ctx context.Context, albumLocalID string, memories []models.Memory) error

	// SyncAppend merges fetched records for one album without removals.
	SyncAppend(ctx context.Context, albumLocalID string, memories []models.Memory) error

	Insert(ctx context.Context, memory models.Memory) error
	Update(ctx context.Context, memory models.Memory) error
	Delete(ctx context.Context, localID string) error

	// MarkAsSynced sets server id and resolved image URL, clears the local
	// path, and flips the status to SYNCED.
	MarkAsSynced(ctx context.Context, localID string, serverID int64, remoteURL string) error

	// SetAlbumServerID backfills the owning album's server id once known.
	SetAlbumServerID(ctx context.Context, albumLocalID string, albumServerID int64) error

	SetSyncStatus(ctx context.Context, localID string, status models.SyncStatus) error

	Events() <-chan Change[models.Memory]
}

// UserRepository is the local profile cache. Exactly one row exists.
type UserRepository interface {
	Get(ctx context.Context) (models.User, error)

	// Save upserts the profile row and publishes an Updated event.
	Save(ctx context.Context, user models.User) error

	// SaveSynced merges the server-confirmed profile into the local row:
	// status SYNCED, existing local id and creation time preserved, staged
	// avatar file kept only while the server has no URL for it. Publishes an
	// Updated event, mirroring MarkAsSynced on the other repositories.
	SaveSynced(ctx context.Context, user models.User) error

	SetSyncStatus(ctx context.Context, localID string, status models.SyncStatus) error

	Events() <-chan Change[models.User]
}

// SyncQueueRepository is the durable ordered list of pending operations plus
// the drain-exclusion guard.
type SyncQueueRepository interface {
	// Enqueue appends a durable operation record.
	Enqueue(ctx context.Context, op models.SyncOperation) error

	// Peek returns PENDING and FAILED operations ordered by created_at
	// ascending: FIFO with retry-in-place, not retry-to-back.
	Peek(ctx context.Context) ([]models.SyncOperation, error)

	// GetAll returns every operation regardless of status, for diagnostics.
	GetAll(ctx context.Context) ([]models.SyncOperation, error)

	// HasOutstanding reports whether a PENDING/IN_PROGRESS/FAILED operation
	// of the given type already targets the entity. Used to uphold the
	// at-most-one-outstanding-operation-per-(entity, type) invariant.
	HasOutstanding(ctx context.Context, localID string, opType models.OperationType) (bool, error)

	UpdateStatus(ctx context.Context, id string, status models.OperationStatus, errorMessage string) error
	Remove(ctx context.Context, id string) error

	// TryStartSyncing atomically flips the drain guard false -> true and
	// reports whether it succeeded. The sole mutual-exclusion primitive
	// preventing two concurrent drain passes.
	TryStartSyncing() bool

	// StopSyncing resets the guard so a future drain can proceed.
	StopSyncing()

	IsSyncing() bool

	// State returns a subscription receiving {PendingCount, IsSyncing} on
	// every queue mutation and guard flip.
	State() <-chan models.QueueState
}

// ImageStore persists image blobs on device, keyed by a local id and
// namespaced by image kind.
type ImageStore interface {
	// Save writes the blob and returns its absolute path.
	Save(ctx context.Context, kind models.ImageKind, key string, data []byte) (string, error)

	// Get reads the blob back; ErrImageNotFound when absent.
	Get(ctx context.Context, kind models.ImageKind, key string) ([]byte, error)

	// Delete removes the blob. Deleting an absent blob is not an error.
	Delete(ctx context.Context, kind models.ImageKind, key string) error
}
