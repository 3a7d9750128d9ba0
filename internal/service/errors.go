package service

import "errors"

var (
	// ErrImageStorage means the local blob store rejected a write. Raised
	// before any entity row is touched, so a failed save never leaves a
	// half-created record behind.
	ErrImageStorage = errors.New("image storage failed")

	// ErrDatabase means the local row store rejected a write.
	ErrDatabase = errors.New("database error")

	// ErrEntityNotFound means a queued operation's target row is gone.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrDependencyNotSynced means a child entity's parent has no server id
	// yet. The operation stays queued until the parent's create completes.
	ErrDependencyNotSynced = errors.New("dependency not synced")

	// ErrImageNotFound means the staged image blob for a queued upload is
	// missing from the local store.
	ErrImageNotFound = errors.New("image not found")

	// ErrServerIDMissing means an UPDATE operation targets an entity that was
	// never created on the server. A logic error upstream: the operation is
	// failed so it surfaces in diagnostics instead of corrupting state.
	ErrServerIDMissing = errors.New("server id missing for update")

	// ErrNoCachedData means the read path is offline (or the fetch failed)
	// and the local cache has nothing to show.
	ErrNoCachedData = errors.New("no cached data available")

	// ErrOffline means the requested operation needs connectivity right now
	// (pagination past the cached page).
	ErrOffline = errors.New("not connected")

	// ErrValidation wraps an input rule violation from the validators
	// package. Raised before anything is written, locally or remotely.
	ErrValidation = errors.New("invalid input")
)
