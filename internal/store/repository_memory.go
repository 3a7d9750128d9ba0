package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mlukashe/go-photo-keeper/internal/logger"
	"github.com/mlukashe/go-photo-keeper/models"
)

type memoryRepository struct {
	*DB
	logger *logger.Logger
	events broadcaster[Change[models.Memory]]
}

// NewMemoryRepository constructs the SQLite-backed [MemoryRepository].
func NewMemoryRepository(db *DB, log *logger.Logger) MemoryRepository {
	return &memoryRepository{DB: db, logger: log}
}

func (r *memoryRepository) GetByAlbum(ctx context.Context, albumLocalID string, limit int) ([]models.Memory, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQuery("memories", memoryColumns, albumLocalID, limit)
	if err != nil {
		return nil, fmt.Errorf("build memory list query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "memoryRepository.GetByAlbum").Str("album_local_id", albumLocalID).Msg("failed to query memories")
		return nil, fmt.Errorf("failed to query memories: %w", err)
	}
	defer rows.Close()

	var memories []models.Memory
	for rows.Next() {
		memory, scanErr := scanMemory(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "memoryRepository.GetByAlbum").Msg("failed to scan memory row")
			return nil, fmt.Errorf("failed to scan memory row: %w", scanErr)
		}
		memories = append(memories, memory)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating memory rows: %w", rowsErr)
	}

	return memories, nil
}

func (r *memoryRepository) GetByLocalID(ctx context.Context, localID string) (models.Memory, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getMemoryByLocalID, localID)
	memory, err := scanMemory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Memory{}, ErrMemoryNotFound
		}
		log.Err(err).Str("func", "memoryRepository.GetByLocalID").Msg("failed to scan memory row")
		return models.Memory{}, fmt.Errorf("failed to scan memory row: %w", err)
	}

	return memory, nil
}

func (r *memoryRepository) SyncSet(ctx context.Context, albumLocalID string, memories []models.Memory) error {
	if err := r.SyncAppend(ctx, albumLocalID, memories); err != nil {
		return err
	}

	keep := make([]int64, 0, len(memories))
	for _, m := range memories {
		if m.ServerID != nil {
			keep = append(keep, *m.ServerID)
		}
	}

	query, args, err := buildPruneSyncedMemoriesQuery(albumLocalID, keep)
	if err != nil {
		return fmt.Errorf("build memory prune query: %w", err)
	}
	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "memoryRepository.SyncSet").Msg("failed to prune synced memories")
		return fmt.Errorf("failed to prune synced memories: %w", err)
	}

	return nil
}

func (r *memoryRepository) SyncAppend(ctx context.Context, albumLocalID string, memories []models.Memory) error {
	log := logger.FromContext(ctx)

	for _, memory := range memories {
		if memory.ServerID == nil {
			log.Warn().Str("func", "memoryRepository.SyncAppend").Str("local_id", memory.LocalID).Msg("fetched memory without server id skipped")
			continue
		}
		if memory.AlbumLocalID == "" {
			memory.AlbumLocalID = albumLocalID
		}

		_, err := r.DB.ExecContext(ctx, upsertMemoryByServerID,
			memory.LocalID,
			memory.ServerID,
			memory.AlbumLocalID,
			memory.AlbumServerID,
			memory.Title,
			memory.Description,
			memory.RemoteURL,
			memory.LocalPath,
			memory.TakenAt,
			memory.SyncStatus,
			memory.CreatedAt,
			memory.UpdatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "memoryRepository.SyncAppend").
				Int64("server_id", *memory.ServerID).
				Msg("failed to upsert fetched memory")
			return fmt.Errorf("failed to upsert fetched memory (server_id=%d): %w", *memory.ServerID, err)
		}
	}

	return nil
}

func (r *memoryRepository) Insert(ctx context.Context, memory models.Memory) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, insertMemory,
		memory.LocalID,
		memory.ServerID,
		memory.AlbumLocalID,
		memory.AlbumServerID,
		memory.Title,
		memory.Description,
		memory.RemoteURL,
		memory.LocalPath,
		memory.TakenAt,
		memory.SyncStatus,
		memory.CreatedAt,
		memory.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "memoryRepository.Insert").
			Str("local_id", memory.LocalID).
			Msg("failed to insert memory")
		return fmt.Errorf("failed to insert memory (local_id=%s): %w", memory.LocalID, err)
	}

	r.events.publish(Change[models.Memory]{Kind: ChangeCreated, Entity: memory})
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, memory models.Memory) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, updateMemory,
		memory.Title,
		memory.Description,
		memory.RemoteURL,
		memory.LocalPath,
		memory.SyncStatus,
		memory.UpdatedAt,
		memory.LocalID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "memoryRepository.Update").
			Str("local_id", memory.LocalID).
			Msg("failed to update memory")
		return fmt.Errorf("failed to update memory (local_id=%s): %w", memory.LocalID, err)
	}

	r.events.publish(Change[models.Memory]{Kind: ChangeUpdated, Entity: memory})
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, localID string) error {
	log := logger.FromContext(ctx)

	memory, err := r.GetByLocalID(ctx, localID)
	if err != nil {
		return err
	}

	if _, err = r.DB.ExecContext(ctx, deleteMemory, localID); err != nil {
		log.Err(err).
			Str("func", "memoryRepository.Delete").
			Str("local_id", localID).
			Msg("failed to delete memory")
		return fmt.Errorf("failed to delete memory (local_id=%s): %w", localID, err)
	}

	r.events.publish(Change[models.Memory]{Kind: ChangeDeleted, Entity: memory})
	return nil
}

// MarkAsSynced records the server-assigned id and the remote image URL in a
// single write, clearing the staged local file path at the same time.
func (r *memoryRepository) MarkAsSynced(ctx context.Context, localID string, serverID int64, remoteURL string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, markMemorySynced,
		serverID, remoteURL, models.StatusSynced, time.Now(), localID, serverID)
	if err != nil {
		log.Err(err).
			Str("func", "memoryRepository.MarkAsSynced").
			Str("local_id", localID).
			Int64("server_id", serverID).
			Msg("failed to mark memory synced")
		return fmt.Errorf("failed to mark memory synced (local_id=%s): %w", localID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (local_id=%s): %w", localID, err)
	}
	if affected == 0 {
		existing, getErr := r.GetByLocalID(ctx, localID)
		if getErr != nil {
			return getErr
		}
		if existing.ServerID != nil && *existing.ServerID != serverID {
			return fmt.Errorf("%w (local_id=%s)", ErrServerIDImmutable, localID)
		}
		return fmt.Errorf("failed to mark memory synced: no rows affected (local_id=%s)", localID)
	}

	if memory, getErr := r.GetByLocalID(ctx, localID); getErr == nil {
		r.events.publish(Change[models.Memory]{Kind: ChangeUpdated, Entity: memory})
	}
	return nil
}

// SetAlbumServerID backfills the parent album's server id on memories created
// while the album itself was still unsynced. Rows that already carry one are
// left alone.
func (r *memoryRepository) SetAlbumServerID(ctx context.Context, albumLocalID string, albumServerID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, setMemoryAlbumServerID, albumServerID, albumLocalID); err != nil {
		log.Err(err).
			Str("func", "memoryRepository.SetAlbumServerID").
			Str("album_local_id", albumLocalID).
			Msg("failed to set album server id on memories")
		return fmt.Errorf("failed to set album server id on memories (album_local_id=%s): %w", albumLocalID, err)
	}

	return nil
}

func (r *memoryRepository) SetSyncStatus(ctx context.Context, localID string, status models.SyncStatus) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, setMemorySyncStatus, status, time.Now(), localID); err != nil {
		log.Err(err).
			Str("func", "memoryRepository.SetSyncStatus").
			Str("local_id", localID).
			Str("status", string(status)).
			Msg("failed to set memory sync status")
		return fmt.Errorf("failed to set memory sync status (local_id=%s): %w", localID, err)
	}

	return nil
}

func (r *memoryRepository) Events() <-chan Change[models.Memory] {
	return r.events.subscribe()
}

func scanMemory(row rowScanner) (models.Memory, error) {
	var (
		memory        models.Memory
		serverID      sql.NullInt64
		albumServerID sql.NullInt64
		remoteURL     sql.NullString
		localPath     sql.NullString
	)

	err := row.Scan(
		&memory.LocalID,
		&serverID,
		&memory.AlbumLocalID,
		&albumServerID,
		&memory.Title,
		&memory.Description,
		&remoteURL,
		&localPath,
		&memory.TakenAt,
		&memory.SyncStatus,
		&memory.CreatedAt,
		&memory.UpdatedAt,
	)
	if err != nil {
		return models.Memory{}, err
	}

	if serverID.Valid {
		memory.ServerID = &serverID.Int64
	}
	if albumServerID.Valid {
		memory.AlbumServerID = &albumServerID.Int64
	}
	if remoteURL.Valid {
		memory.RemoteURL = &remoteURL.String
	}
	if localPath.Valid {
		memory.LocalPath = &localPath.String
	}

	return memory, nil
}
