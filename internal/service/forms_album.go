// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Lukashev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mlukashe/go-photo-keeper/internal/connectivity"
	"github.com/mlukashe/go-photo-keeper/internal/logger"
	"github.com/mlukashe/go-photo-keeper/internal/store"
	"github.com/mlukashe/go-photo-keeper/internal/utils"
	"github.com/mlukashe/go-photo-keeper/internal/validators"
	"github.com/mlukashe/go-photo-keeper/models"
)

type albumFormService struct {
	albums    store.AlbumRepository
	images    store.ImageStore
	engine    SyncQueueService
	monitor   connectivity.Monitor
	ids       *utils.UUIDGenerator
	validator validators.Validator
	logger    *logger.Logger
}

// NewAlbumFormService constructs the album write path.
func NewAlbumFormService(
	albums store.AlbumRepository,
	images store.ImageStore,
	engine SyncQueueService,
	monitor connectivity.Monitor,
	log *logger.Logger,
) AlbumFormService {
	return &albumFormService{
		albums:    albums,
		images:    images,
		engine:    engine,
		monitor:   monitor,
		ids:       utils.NewUUIDGenerator(),
		validator: validators.NewPhotoValidator(),
		logger:    log,
	}
}

// CreateAlbum writes the album locally first, then syncs inline when online
// or enqueues otherwise. Only local storage failures are hard errors; a
// failed network round-trip degrades to OutcomePending.
func (s *albumFormService) CreateAlbum(ctx context.Context, title string, cover []byte) (models.Album, Outcome, error) {
	log := logger.FromContext(ctx)

	if err := s.validateInput(ctx, title, cover); err != nil {
		return models.Album{}, OutcomePending, err
	}

	localID := s.ids.Generate()
	now := time.Now()

	album := models.Album{
		LocalID:    localID,
		Title:      title,
		SyncStatus: models.StatusPendingCreate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if len(cover) > 0 {
		path, err := s.images.Save(ctx, models.ImageAlbumCover, localID, cover)
		if err != nil {
			return models.Album{}, OutcomePending, fmt.Errorf("%w: %w", ErrImageStorage, err)
		}
		album.CoverLocalPath = &path
	}

	if err := s.albums.Insert(ctx, album); err != nil {
		// roll back the staged blob so nothing points at an orphan entity
		if album.CoverLocalPath != nil {
			if delErr := s.images.Delete(ctx, models.ImageAlbumCover, localID); delErr != nil {
				log.Err(delErr).Str("func", "CreateAlbum").Str("local_id", localID).Msg("failed to delete staged cover after insert failure")
			}
		}
		return models.Album{}, OutcomePending, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	if !s.monitor.IsConnected() {
		s.engine.Enqueue(ctx, models.EntityAlbum, models.OperationCreate, localID)
		return album, OutcomePending, nil
	}

	if err := s.engine.SyncNow(ctx, models.EntityAlbum, models.OperationCreate, localID); err != nil {
		log.Err(err).Str("func", "CreateAlbum").Str("local_id", localID).Msg("inline album sync failed, queued for retry")
		s.markFailed(ctx, localID)
		s.engine.Enqueue(ctx, models.EntityAlbum, models.OperationCreate, localID)
		album.SyncStatus = models.StatusFailed
		return album, OutcomePending, nil
	}

	return s.reload(ctx, localID, album)
}

// UpdateAlbum edits title and/or cover with the same branch logic as create.
// An album still waiting on its CREATE keeps that single queued operation;
// the executor pushes the row's current state, so the edit rides along.
func (s *albumFormService) UpdateAlbum(ctx context.Context, localID, title string, cover []byte) (models.Album, Outcome, error) {
	log := logger.FromContext(ctx)

	if err := s.validateInput(ctx, title, cover); err != nil {
		return models.Album{}, OutcomePending, err
	}

	album, err := s.albums.GetByLocalID(ctx, localID)
	if err != nil {
		if errors.Is(err, store.ErrAlbumNotFound) {
			return models.Album{}, OutcomePending, fmt.Errorf("%w: album %s", ErrEntityNotFound, localID)
		}
		return models.Album{}, OutcomePending, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	if len(cover) > 0 {
		path, saveErr := s.images.Save(ctx, models.ImageAlbumCover, localID, cover)
		if saveErr != nil {
			return models.Album{}, OutcomePending, fmt.Errorf("%w: %w", ErrImageStorage, saveErr)
		}
		album.CoverLocalPath = &path
	}

	album.Title = title
	album.UpdatedAt = time.Now()

	opType := models.OperationUpdate
	if album.ServerID == nil {
		// not created on the server yet: the pending CREATE will carry the
		// edited state when it runs
		opType = models.OperationCreate
		album.SyncStatus = models.StatusPendingCreate
	} else {
		album.SyncStatus = models.StatusPendingUpdate
	}

	if err = s.albums.Update(ctx, album); err != nil {
		return models.Album{}, OutcomePending, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	if !s.monitor.IsConnected() {
		s.engine.Enqueue(ctx, models.EntityAlbum, opType, localID)
		return album, OutcomePending, nil
	}

	if err = s.engine.SyncNow(ctx, models.EntityAlbum, opType, localID); err != nil {
		log.Err(err).Str("func", "UpdateAlbum").Str("local_id", localID).Msg("inline album sync failed, queued for retry")
		s.markFailed(ctx, localID)
		s.engine.Enqueue(ctx, models.EntityAlbum, opType, localID)
		album.SyncStatus = models.StatusFailed
		return album, OutcomePending, nil
	}

	return s.reload(ctx, localID, album)
}

func (s *albumFormService) validateInput(ctx context.Context, title string, cover []byte) error {
	if err := s.validator.Validate(ctx, models.CreateAlbumRequest{Title: title}); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if len(cover) > 0 {
		if err := s.validator.Validate(ctx, cover); err != nil {
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}
	return nil
}

func (s *albumFormService) markFailed(ctx context.Context, localID string) {
	if err := s.albums.SetSyncStatus(ctx, localID, models.StatusFailed); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "albumFormService.markFailed").Str("local_id", localID).Msg("failed to flip album status")
	}
}

// reload re-reads the row after a successful inline sync so the caller gets
// the server id and SYNCED status the executor just wrote.
func (s *albumFormService) reload(ctx context.Context, localID string, fallback models.Album) (models.Album, Outcome, error) {
	synced, err := s.albums.GetByLocalID(ctx, localID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "albumFormService.reload").Str("local_id", localID).Msg("failed to re-read synced album")
		return fallback, OutcomeSynced, nil
	}
	return synced, OutcomeSynced, nil
}
