package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mlukashe/go-photo-keeper/internal/config"
	"github.com/mlukashe/go-photo-keeper/internal/logger"
	"github.com/mlukashe/go-photo-keeper/models"
)

// imageFileStore keeps image blobs as plain files under one root directory,
// one subdirectory per image kind. Paths stored in the DB point into it.
type imageFileStore struct {
	root   string
	logger *logger.Logger
}

// NewImageFileStore creates the root directory if needed and returns the
// filesystem-backed [ImageStore].
func NewImageFileStore(cfg config.Images, log *logger.Logger) (ImageStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		log.Err(err).Str("func", "NewImageFileStore").Str("dir", cfg.Dir).Msg("failed to create images directory")
		return nil, fmt.Errorf("failed to create images directory %s: %w", cfg.Dir, err)
	}

	return &imageFileStore{root: cfg.Dir, logger: log}, nil
}

func (s *imageFileStore) Save(ctx context.Context, kind models.ImageKind, key string, data []byte) (string, error) {
	log := logger.FromContext(ctx)

	if !kind.Valid() {
		return "", fmt.Errorf("invalid image kind %q", kind)
	}

	dir := filepath.Join(s.root, string(kind))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Err(err).Str("func", "imageFileStore.Save").Str("dir", dir).Msg("failed to create image kind directory")
		return "", fmt.Errorf("failed to create image directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, key)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Err(err).Str("func", "imageFileStore.Save").Str("path", path).Msg("failed to write image file")
		return "", fmt.Errorf("failed to write image file %s: %w", path, err)
	}

	return path, nil
}

func (s *imageFileStore) Get(ctx context.Context, kind models.ImageKind, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	path := filepath.Join(s.root, string(kind), key)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrImageNotFound
		}
		log.Err(err).Str("func", "imageFileStore.Get").Str("path", path).Msg("failed to read image file")
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}

	return data, nil
}

func (s *imageFileStore) Delete(ctx context.Context, kind models.ImageKind, key string) error {
	log := logger.FromContext(ctx)

	path := filepath.Join(s.root, string(kind), key)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Err(err).Str("func", "imageFileStore.Delete").Str("path", path).Msg("failed to delete image file")
		return fmt.Errorf("failed to delete image file %s: %w", path, err)
	}

	return nil
}
