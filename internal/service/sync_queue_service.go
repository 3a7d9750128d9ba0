// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Lukashev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mlukashe/go-photo-keeper/internal/adapter"
	"github.com/mlukashe/go-photo-keeper/internal/connectivity"
	"github.com/mlukashe/go-photo-keeper/internal/logger"
	"github.com/mlukashe/go-photo-keeper/internal/store"
	"github.com/mlukashe/go-photo-keeper/internal/utils"
	"github.com/mlukashe/go-photo-keeper/models"
)

type syncQueueService struct {
	queue    store.SyncQueueRepository
	albums   store.AlbumRepository
	memories store.MemoryRepository
	users    store.UserRepository
	images   store.ImageStore

	albumGW  adapter.AlbumGateway
	memoryGW adapter.MemoryGateway
	userGW   adapter.UserGateway

	monitor connectivity.Monitor
	ids     *utils.UUIDGenerator
	logger  *logger.Logger
}

// NewSyncQueueService wires the drain engine to its stores and gateways.
func NewSyncQueueService(
	queue store.SyncQueueRepository,
	albums store.AlbumRepository,
	memories store.MemoryRepository,
	users store.UserRepository,
	images store.ImageStore,
	albumGW adapter.AlbumGateway,
	memoryGW adapter.MemoryGateway,
	userGW adapter.UserGateway,
	monitor connectivity.Monitor,
	log *logger.Logger,
) SyncQueueService {
	return &syncQueueService{
		queue:    queue,
		albums:   albums,
		memories: memories,
		users:    users,
		images:   images,
		albumGW:  albumGW,
		memoryGW: memoryGW,
		userGW:   userGW,
		monitor:  monitor,
		ids:      utils.NewUUIDGenerator(),
		logger:   log,
	}
}

// Enqueue appends a durable operation record. Errors are logged, never
// surfaced: the caller's entity row is already written, and blocking a user
// action on queue I/O would trade a rare lost retry for a common UI stall.
func (s *syncQueueService) Enqueue(ctx context.Context, entityType models.EntityType, opType models.OperationType, localID string) {
	log := logger.FromContext(ctx)

	outstanding, err := s.queue.HasOutstanding(ctx, localID, opType)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueService.Enqueue").
			Str("local_id", localID).
			Msg("failed to check outstanding operations, enqueueing anyway")
	} else if outstanding {
		log.Debug().
			Str("func", "syncQueueService.Enqueue").
			Str("local_id", localID).
			Str("op_type", string(opType)).
			Msg("operation already queued for entity, skipped")
		return
	}

	op := models.SyncOperation{
		ID:            s.ids.Generate(),
		EntityType:    entityType,
		OperationType: opType,
		LocalID:       localID,
		CreatedAt:     time.Now(),
		Status:        models.OperationPending,
	}

	if err := s.queue.Enqueue(ctx, op); err != nil {
		log.Err(err).
			Str("func", "syncQueueService.Enqueue").
			Str("entity", string(entityType)).
			Str("local_id", localID).
			Msg("failed to persist sync operation; it will not be retried")
	}
}

// ProcessQueue runs one drain pass. The pass is a no-op when offline or when
// another drain already holds the guard; otherwise it executes every PENDING
// and FAILED operation strictly sequentially, oldest first, so a child
// operation can rely on its parent's result from the same pass.
func (s *syncQueueService) ProcessQueue(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if !s.monitor.IsConnected() {
		log.Debug().Str("func", "syncQueueService.ProcessQueue").Msg("offline, drain skipped")
		return nil
	}

	if !s.queue.TryStartSyncing() {
		log.Debug().Str("func", "syncQueueService.ProcessQueue").Msg("drain already in progress")
		return nil
	}
	defer s.queue.StopSyncing()

	ops, err := s.queue.Peek(ctx)
	if err != nil {
		return fmt.Errorf("peek sync queue: %w", err)
	}
	if len(ops) == 0 {
		return nil
	}

	log.Debug().Str("func", "syncQueueService.ProcessQueue").Int("operations", len(ops)).Msg("drain pass started")

	for _, op := range ops {
		if err = ctx.Err(); err != nil {
			return err
		}

		if err = s.queue.UpdateStatus(ctx, op.ID, models.OperationInProgress, ""); err != nil {
			log.Err(err).Str("func", "syncQueueService.ProcessQueue").Str("op_id", op.ID).Msg("failed to mark operation in progress")
		}
		s.setEntityStatus(ctx, op, models.StatusSyncing)

		if execErr := s.execute(ctx, op); execErr != nil {
			log.Err(execErr).
				Str("func", "syncQueueService.ProcessQueue").
				Str("op_id", op.ID).
				Str("entity", string(op.EntityType)).
				Str("local_id", op.LocalID).
				Msg("sync operation failed")

			if err = s.queue.UpdateStatus(ctx, op.ID, models.OperationFailed, execErr.Error()); err != nil {
				log.Err(err).Str("func", "syncQueueService.ProcessQueue").Str("op_id", op.ID).Msg("failed to record operation failure")
			}
			s.setEntityStatus(ctx, op, models.StatusFailed)
			continue
		}

		if err = s.queue.Remove(ctx, op.ID); err != nil {
			log.Err(err).Str("func", "syncQueueService.ProcessQueue").Str("op_id", op.ID).Msg("failed to remove completed operation")
		}
	}

	return nil
}

// SyncNow runs one operation's executor directly, without a queue record.
// The form use cases call this on their inline path so queued and inline
// execution share the exact same semantics.
func (s *syncQueueService) SyncNow(ctx context.Context, entityType models.EntityType, opType models.OperationType, localID string) error {
	return s.execute(ctx, models.SyncOperation{
		EntityType:    entityType,
		OperationType: opType,
		LocalID:       localID,
	})
}

func (s *syncQueueService) PendingOperations(ctx context.Context) ([]models.SyncOperation, error) {
	return s.queue.GetAll(ctx)
}

func (s *syncQueueService) QueueState() <-chan models.QueueState {
	return s.queue.State()
}

func (s *syncQueueService) execute(ctx context.Context, op models.SyncOperation) error {
	switch {
	case op.EntityType == models.EntityAlbum && op.OperationType == models.OperationCreate:
		return s.executeAlbumCreate(ctx, op)
	case op.EntityType == models.EntityAlbum && op.OperationType == models.OperationUpdate:
		return s.executeAlbumUpdate(ctx, op)
	case op.EntityType == models.EntityMemory && op.OperationType == models.OperationCreate:
		return s.executeMemoryCreate(ctx, op)
	case op.EntityType == models.EntityUser && op.OperationType == models.OperationUpdate:
		return s.executeUserUpdate(ctx, op)
	default:
		return fmt.Errorf("no executor for %s %s", op.EntityType, op.OperationType)
	}
}

// setEntityStatus flips the cached badge on the operation's target. Failures
// are logged only: the badge is a convenience, the queue row is the truth.
func (s *syncQueueService) setEntityStatus(ctx context.Context, op models.SyncOperation, status models.SyncStatus) {
	var err error
	switch op.EntityType {
	case models.EntityAlbum:
		err = s.albums.SetSyncStatus(ctx, op.LocalID, status)
	case models.EntityMemory:
		err = s.memories.SetSyncStatus(ctx, op.LocalID, status)
	case models.EntityUser:
		err = s.users.SetSyncStatus(ctx, op.LocalID, status)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncQueueService.setEntityStatus").
			Str("local_id", op.LocalID).
			Str("status", string(status)).
			Msg("failed to update entity sync status")
	}
}
