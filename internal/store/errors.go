package store

import "errors"

var (
	ErrAlbumNotFound     = errors.New("album not found")
	ErrMemoryNotFound    = errors.New("memory not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrOperationNotFound = errors.New("sync operation not found")
	ErrImageNotFound     = errors.New("image not found")

	// ErrServerIDImmutable is returned when a write would change an already
	// assigned server id. The nil -> value transition happens exactly once.
	ErrServerIDImmutable = errors.New("server id already assigned")
)
