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

type albumRepository struct {
	*DB
	logger *logger.Logger
	events broadcaster[Change[models.Album]]
}

// NewAlbumRepository constructs the SQLite-backed [AlbumRepository].
func NewAlbumRepository(db *DB, log *logger.Logger) AlbumRepository {
	return &albumRepository{DB: db, logger: log}
}

func (r *albumRepository) GetAll(ctx context.Context, limit int) ([]models.Album, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQuery("albums", albumColumns, "", limit)
	if err != nil {
		return nil, fmt.Errorf("build album list query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "albumRepository.GetAll").Msg("failed to query albums")
		return nil, fmt.Errorf("failed to query albums: %w", err)
	}
	defer rows.Close()

	var albums []models.Album
	for rows.Next() {
		album, scanErr := scanAlbum(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "albumRepository.GetAll").Msg("failed to scan album row")
			return nil, fmt.Errorf("failed to scan album row: %w", scanErr)
		}
		albums = append(albums, album)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating album rows: %w", rowsErr)
	}

	return albums, nil
}

func (r *albumRepository) GetByLocalID(ctx context.Context, localID string) (models.Album, error) {
	return r.getOne(ctx, getAlbumByLocalID, localID)
}

func (r *albumRepository) GetByServerID(ctx context.Context, serverID int64) (models.Album, error) {
	return r.getOne(ctx, getAlbumByServerID, serverID)
}

func (r *albumRepository) getOne(ctx context.Context, query string, arg any) (models.Album, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, query, arg)
	album, err := scanAlbum(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Album{}, ErrAlbumNotFound
		}
		log.Err(err).Str("func", "albumRepository.getOne").Msg("failed to scan album row")
		return models.Album{}, fmt.Errorf("failed to scan album row: %w", err)
	}

	return album, nil
}

func (r *albumRepository) SyncSet(ctx context.Context, albums []models.Album) error {
	if err := r.SyncAppend(ctx, albums); err != nil {
		return err
	}

	keep := make([]int64, 0, len(albums))
	for _, a := range albums {
		if a.ServerID != nil {
			keep = append(keep, *a.ServerID)
		}
	}

	query, args, err := buildPruneSyncedQuery("albums", keep)
	if err != nil {
		return fmt.Errorf("build album prune query: %w", err)
	}
	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "albumRepository.SyncSet").Msg("failed to prune synced albums")
		return fmt.Errorf("failed to prune synced albums: %w", err)
	}

	return nil
}

func (r *albumRepository) SyncAppend(ctx context.Context, albums []models.Album) error {
	log := logger.FromContext(ctx)

	for _, album := range albums {
		if album.ServerID == nil {
			// server-fetched records always carry an id; skip anything odd
			log.Warn().Str("func", "albumRepository.SyncAppend").Str("local_id", album.LocalID).Msg("fetched album without server id skipped")
			continue
		}

		_, err := r.DB.ExecContext(ctx, upsertAlbumByServerID,
			album.LocalID,
			album.ServerID,
			album.Title,
			album.CoverRemoteURL,
			album.CoverLocalPath,
			album.SyncStatus,
			album.CreatedAt,
			album.UpdatedAt,
		)
		if err != nil {
			log.Err(err).
				Str("func", "albumRepository.SyncAppend").
				Int64("server_id", *album.ServerID).
				Msg("failed to upsert fetched album")
			return fmt.Errorf("failed to upsert fetched album (server_id=%d): %w", *album.ServerID, err)
		}
	}

	return nil
}

func (r *albumRepository) Insert(ctx context.Context, album models.Album) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, insertAlbum,
		album.LocalID,
		album.ServerID,
		album.Title,
		album.CoverRemoteURL,
		album.CoverLocalPath,
		album.SyncStatus,
		album.CreatedAt,
		album.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "albumRepository.Insert").
			Str("local_id", album.LocalID).
			Msg("failed to insert album")
		return fmt.Errorf("failed to insert album (local_id=%s): %w", album.LocalID, err)
	}

	r.events.publish(Change[models.Album]{Kind: ChangeCreated, Entity: album})
	return nil
}

func (r *albumRepository) Update(ctx context.Context, album models.Album) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, updateAlbum,
		album.Title,
		album.CoverRemoteURL,
		album.CoverLocalPath,
		album.SyncStatus,
		album.UpdatedAt,
		album.LocalID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "albumRepository.Update").
			Str("local_id", album.LocalID).
			Msg("failed to update album")
		return fmt.Errorf("failed to update album (local_id=%s): %w", album.LocalID, err)
	}

	r.events.publish(Change[models.Album]{Kind: ChangeUpdated, Entity: album})
	return nil
}

func (r *albumRepository) Delete(ctx context.Context, localID string) error {
	log := logger.FromContext(ctx)

	album, err := r.GetByLocalID(ctx, localID)
	if err != nil {
		return err
	}

	if _, err = r.DB.ExecContext(ctx, deleteAlbum, localID); err != nil {
		log.Err(err).
			Str("func", "albumRepository.Delete").
			Str("local_id", localID).
			Msg("failed to delete album")
		return fmt.Errorf("failed to delete album (local_id=%s): %w", localID, err)
	}

	r.events.publish(Change[models.Album]{Kind: ChangeDeleted, Entity: album})
	return nil
}

func (r *albumRepository) MarkAsSynced(ctx context.Context, localID string, serverID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, markAlbumSynced,
		serverID, models.StatusSynced, time.Now(), localID, serverID)
	if err != nil {
		log.Err(err).
			Str("func", "albumRepository.MarkAsSynced").
			Str("local_id", localID).
			Int64("server_id", serverID).
			Msg("failed to mark album synced")
		return fmt.Errorf("failed to mark album synced (local_id=%s): %w", localID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (local_id=%s): %w", localID, err)
	}
	if affected == 0 {
		// either the row is gone or its server id is already set to a
		// different value; distinguish for the caller
		existing, getErr := r.GetByLocalID(ctx, localID)
		if getErr != nil {
			return getErr
		}
		if existing.ServerID != nil && *existing.ServerID != serverID {
			return fmt.Errorf("%w (local_id=%s)", ErrServerIDImmutable, localID)
		}
		return fmt.Errorf("failed to mark album synced: no rows affected (local_id=%s)", localID)
	}

	if album, getErr := r.GetByLocalID(ctx, localID); getErr == nil {
		r.events.publish(Change[models.Album]{Kind: ChangeUpdated, Entity: album})
	}
	return nil
}

func (r *albumRepository) SetCoverRemoteURL(ctx context.Context, localID, url string) error {
	log := logger.FromContext(ctx)

	// silent on purpose: a resolved cover URL is cosmetic and must not
	// reshuffle a visible list
	if _, err := r.DB.ExecContext(ctx, setAlbumCoverRemoteURL, url, time.Now(), localID); err != nil {
		log.Err(err).
			Str("func", "albumRepository.SetCoverRemoteURL").
			Str("local_id", localID).
			Msg("failed to set album cover url")
		return fmt.Errorf("failed to set album cover url (local_id=%s): %w", localID, err)
	}

	return nil
}

func (r *albumRepository) SetSyncStatus(ctx context.Context, localID string, status models.SyncStatus) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, setAlbumSyncStatus, status, time.Now(), localID); err != nil {
		log.Err(err).
			Str("func", "albumRepository.SetSyncStatus").
			Str("local_id", localID).
			Str("status", string(status)).
			Msg("failed to set album sync status")
		return fmt.Errorf("failed to set album sync status (local_id=%s): %w", localID, err)
	}

	return nil
}

func (r *albumRepository) Events() <-chan Change[models.Album] {
	return r.events.subscribe()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAlbum(row rowScanner) (models.Album, error) {
	var (
		album     models.Album
		serverID  sql.NullInt64
		remoteURL sql.NullString
		localPath sql.NullString
	)

	err := row.Scan(
		&album.LocalID,
		&serverID,
		&album.Title,
		&remoteURL,
		&localPath,
		&album.SyncStatus,
		&album.CreatedAt,
		&album.UpdatedAt,
	)
	if err != nil {
		return models.Album{}, err
	}

	if serverID.Valid {
		album.ServerID = &serverID.Int64
	}
	if remoteURL.Valid {
		album.CoverRemoteURL = &remoteURL.String
	}
	if localPath.Valid {
		album.CoverLocalPath = &localPath.String
	}

	return album, nil
}
