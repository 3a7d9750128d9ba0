package store

import (
	"context"
	"fmt"

	"github.com/mlukashe/go-photo-keeper/internal/config"
	"github.com/mlukashe/go-photo-keeper/internal/logger"
)

// Storages groups the client-side repositories into a single value that can
// be passed around the service layer.
type Storages struct {
	Albums   AlbumRepository
	Memories MemoryRepository
	Users    UserRepository
	Queue    SyncQueueRepository
	Images   ImageStore
}

// NewStorages initialises the storage layer: it opens (creating if needed)
// the SQLite file from cfg.DB, applies pending migrations, prepares the image
// blob directory from cfg.Images, and wires every repository.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	images, err := NewImageFileStore(cfg.Images, log)
	if err != nil {
		return nil, fmt.Errorf("image store error: %w", err)
	}

	return &Storages{
		Albums:   NewAlbumRepository(db, log),
		Memories: NewMemoryRepository(db, log),
		Users:    NewUserRepository(db, log),
		Queue:    NewSyncQueueRepository(db, log),
		Images:   images,
	}, nil
}
