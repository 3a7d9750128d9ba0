// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Lukashev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/mlukashe/go-photo-keeper/internal/logger"
	"github.com/mlukashe/go-photo-keeper/models"
)

// syncQueueRepository persists the ordered operation queue in SQLite and
// carries the in-memory drain guard. The guard is deliberately not a DB row:
// it must reset on process restart, so a crash mid-drain never wedges the
// queue shut.
type syncQueueRepository struct {
	*DB
	logger  *logger.Logger
	syncing atomic.Bool
	state   broadcaster[models.QueueState]
}

// NewSyncQueueRepository constructs the SQLite-backed [SyncQueueRepository].
func NewSyncQueueRepository(db *DB, log *logger.Logger) SyncQueueRepository {
	return &syncQueueRepository{DB: db, logger: log}
}

func (r *syncQueueRepository) Enqueue(ctx context.Context, op models.SyncOperation) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, insertOperation,
		op.ID,
		op.EntityType,
		op.OperationType,
		op.LocalID,
		op.CreatedAt,
		op.Status,
		op.ErrorMessage,
	)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.Enqueue").
			Str("operation_id", op.ID).
			Str("local_id", op.LocalID).
			Msg("failed to enqueue sync operation")
		return fmt.Errorf("failed to enqueue sync operation (id=%s): %w", op.ID, err)
	}

	r.publishState(ctx)
	return nil
}

func (r *syncQueueRepository) Peek(ctx context.Context) ([]models.SyncOperation, error) {
	query, args, err := buildPeekQuery()
	if err != nil {
		return nil, fmt.Errorf("build peek query: %w", err)
	}
	return r.queryOperations(ctx, "syncQueueRepository.Peek", query, args...)
}

func (r *syncQueueRepository) GetAll(ctx context.Context) ([]models.SyncOperation, error) {
	return r.queryOperations(ctx, "syncQueueRepository.GetAll", getAllOperations)
}

func (r *syncQueueRepository) queryOperations(ctx context.Context, caller, query string, args ...any) ([]models.SyncOperation, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("failed to query sync operations")
		return nil, fmt.Errorf("failed to query sync operations: %w", err)
	}
	defer rows.Close()

	var ops []models.SyncOperation
	for rows.Next() {
		op, scanErr := scanOperation(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", caller).Msg("failed to scan sync operation row")
			return nil, fmt.Errorf("failed to scan sync operation row: %w", scanErr)
		}
		ops = append(ops, op)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating sync operation rows: %w", rowsErr)
	}

	return ops, nil
}

func (r *syncQueueRepository) HasOutstanding(ctx context.Context, localID string, opType models.OperationType) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildHasOutstandingQuery(localID, string(opType))
	if err != nil {
		return false, fmt.Errorf("build outstanding query: %w", err)
	}

	var count int
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.HasOutstanding").
			Str("local_id", localID).
			Msg("failed to count outstanding operations")
		return false, fmt.Errorf("failed to count outstanding operations (local_id=%s): %w", localID, err)
	}

	return count > 0, nil
}

func (r *syncQueueRepository) UpdateStatus(ctx context.Context, id string, status models.OperationStatus, errorMessage string) error {
	log := logger.FromContext(ctx)

	var errMsg any
	if errorMessage != "" {
		errMsg = errorMessage
	}

	result, err := r.DB.ExecContext(ctx, updateOperationStatus, status, errMsg, id)
	if err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.UpdateStatus").
			Str("operation_id", id).
			Str("status", string(status)).
			Msg("failed to update sync operation status")
		return fmt.Errorf("failed to update sync operation status (id=%s): %w", id, err)
	}

	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		return fmt.Errorf("%w (id=%s)", ErrOperationNotFound, id)
	}

	r.publishState(ctx)
	return nil
}

func (r *syncQueueRepository) Remove(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, removeOperation, id); err != nil {
		log.Err(err).
			Str("func", "syncQueueRepository.Remove").
			Str("operation_id", id).
			Msg("failed to remove sync operation")
		return fmt.Errorf("failed to remove sync operation (id=%s): %w", id, err)
	}

	r.publishState(ctx)
	return nil
}

func (r *syncQueueRepository) TryStartSyncing() bool {
	if !r.syncing.CompareAndSwap(false, true) {
		return false
	}
	r.publishState(context.Background())
	return true
}

func (r *syncQueueRepository) StopSyncing() {
	r.syncing.Store(false)
	r.publishState(context.Background())
}

func (r *syncQueueRepository) IsSyncing() bool {
	return r.syncing.Load()
}

func (r *syncQueueRepository) State() <-chan models.QueueState {
	return r.state.subscribe()
}

func (r *syncQueueRepository) publishState(ctx context.Context) {
	var count int
	if err := r.DB.QueryRowContext(ctx, countOperations).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "syncQueueRepository.publishState").Msg("failed to count sync operations")
		return
	}

	r.state.publish(models.QueueState{
		PendingCount: count,
		IsSyncing:    r.syncing.Load(),
	})
}

func scanOperation(row rowScanner) (models.SyncOperation, error) {
	var (
		op     models.SyncOperation
		errMsg sql.NullString
	)

	err := row.Scan(
		&op.ID,
		&op.EntityType,
		&op.OperationType,
		&op.LocalID,
		&op.CreatedAt,
		&op.Status,
		&errMsg,
	)
	if err != nil {
		return models.SyncOperation{}, err
	}

	if errMsg.Valid {
		op.ErrorMessage = &errMsg.String
	}

	return op, nil
}
