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

type memoryFormService struct {
	memories  store.MemoryRepository
	albums    store.AlbumRepository
	images    store.ImageStore
	engine    SyncQueueService
	monitor   connectivity.Monitor
	ids       *utils.UUIDGenerator
	validator validators.Validator
	logger    *logger.Logger
}

// NewMemoryFormService constructs the memory write path.
func NewMemoryFormService(
	memories store.MemoryRepository,
	albums store.AlbumRepository,
	images store.ImageStore,
	engine SyncQueueService,
	monitor connectivity.Monitor,
	log *logger.Logger,
) MemoryFormService {
	return &memoryFormService{
		memories:  memories,
		albums:    albums,
		images:    images,
		engine:    engine,
		monitor:   monitor,
		ids:       utils.NewUUIDGenerator(),
		validator: validators.NewPhotoValidator(),
		logger:    log,
	}
}

// CreateMemory saves the photo blob, writes the memory locally, then syncs
// inline only when online and the parent album already has a server id. An
// unmet parent dependency is not an error: the operation queues and waits for
// the album's own CREATE.
func (s *memoryFormService) CreateMemory(ctx context.Context, albumLocalID, title, description string, takenAt time.Time, image []byte) (models.Memory, Outcome, error) {
	log := logger.FromContext(ctx)

	// the album id is resolved later, so it is excluded from validation here
	req := models.CreateMemoryRequest{Title: title, Description: description, TakenAt: takenAt}
	if err := s.validator.Validate(ctx, req, validators.FieldTitle, validators.FieldTakenAt); err != nil {
		return models.Memory{}, OutcomePending, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := s.validator.Validate(ctx, image); err != nil {
		return models.Memory{}, OutcomePending, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	album, err := s.albums.GetByLocalID(ctx, albumLocalID)
	if err != nil {
		if errors.Is(err, store.ErrAlbumNotFound) {
			return models.Memory{}, OutcomePending, fmt.Errorf("%w: album %s", ErrEntityNotFound, albumLocalID)
		}
		return models.Memory{}, OutcomePending, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	localID := s.ids.Generate()

	path, err := s.images.Save(ctx, models.ImageMemory, localID, image)
	if err != nil {
		return models.Memory{}, OutcomePending, fmt.Errorf("%w: %w", ErrImageStorage, err)
	}

	now := time.Now()
	memory := models.Memory{
		LocalID:       localID,
		AlbumLocalID:  albumLocalID,
		AlbumServerID: album.ServerID,
		Title:         title,
		Description:   description,
		LocalPath:     &path,
		TakenAt:       takenAt,
		SyncStatus:    models.StatusPendingCreate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err = s.memories.Insert(ctx, memory); err != nil {
		if delErr := s.images.Delete(ctx, models.ImageMemory, localID); delErr != nil {
			log.Err(delErr).Str("func", "CreateMemory").Str("local_id", localID).Msg("failed to delete staged image after insert failure")
		}
		return models.Memory{}, OutcomePending, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	if !s.monitor.IsConnected() || album.ServerID == nil {
		s.engine.Enqueue(ctx, models.EntityMemory, models.OperationCreate, localID)
		return memory, OutcomePending, nil
	}

	if err = s.engine.SyncNow(ctx, models.EntityMemory, models.OperationCreate, localID); err != nil {
		log.Err(err).Str("func", "CreateMemory").Str("local_id", localID).Msg("inline memory sync failed, queued for retry")
		if stErr := s.memories.SetSyncStatus(ctx, localID, models.StatusFailed); stErr != nil {
			log.Err(stErr).Str("func", "CreateMemory").Str("local_id", localID).Msg("failed to flip memory status")
		}
		s.engine.Enqueue(ctx, models.EntityMemory, models.OperationCreate, localID)
		memory.SyncStatus = models.StatusFailed
		return memory, OutcomePending, nil
	}

	synced, err := s.memories.GetByLocalID(ctx, localID)
	if err != nil {
		log.Err(err).Str("func", "CreateMemory").Str("local_id", localID).Msg("failed to re-read synced memory")
		return memory, OutcomeSynced, nil
	}
	return synced, OutcomeSynced, nil
}
