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

// userRepository stores the single signed-in profile. The users table holds
// at most one row, keyed by the profile's local id.
type userRepository struct {
	*DB
	logger *logger.Logger
	events broadcaster[Change[models.User]]
}

// NewUserRepository constructs the SQLite-backed [UserRepository].
func NewUserRepository(db *DB, log *logger.Logger) UserRepository {
	return &userRepository{DB: db, logger: log}
}

func (r *userRepository) Get(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getUser)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "userRepository.Get").Msg("failed to scan user row")
		return models.User{}, fmt.Errorf("failed to scan user row: %w", err)
	}

	return user, nil
}

func (r *userRepository) Save(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, upsertUser,
		user.LocalID,
		user.ServerID,
		user.Login,
		user.Name,
		user.Birthday,
		user.AvatarRemoteURL,
		user.AvatarLocalPath,
		user.SyncStatus,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.Save").
			Str("local_id", user.LocalID).
			Msg("failed to save user")
		return fmt.Errorf("failed to save user (local_id=%s): %w", user.LocalID, err)
	}

	r.events.publish(Change[models.User]{Kind: ChangeUpdated, Entity: user})
	return nil
}

// SaveSynced merges a server-fetched profile into the local row, keeping the
// local identity and any staged avatar file when the row already exists.
func (r *userRepository) SaveSynced(ctx context.Context, user models.User) error {
	existing, err := r.Get(ctx)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return err
	}

	if err == nil {
		user.LocalID = existing.LocalID
		user.CreatedAt = existing.CreatedAt
		// keep a staged avatar file only while the server has no URL for it
		if user.AvatarRemoteURL == nil && user.AvatarLocalPath == nil {
			user.AvatarLocalPath = existing.AvatarLocalPath
		}
	}
	user.SyncStatus = models.StatusSynced

	return r.Save(ctx, user)
}

func (r *userRepository) SetSyncStatus(ctx context.Context, localID string, status models.SyncStatus) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, setUserSyncStatus, status, time.Now(), localID); err != nil {
		log.Err(err).
			Str("func", "userRepository.SetSyncStatus").
			Str("local_id", localID).
			Str("status", string(status)).
			Msg("failed to set user sync status")
		return fmt.Errorf("failed to set user sync status (local_id=%s): %w", localID, err)
	}

	return nil
}

func (r *userRepository) Events() <-chan Change[models.User] {
	return r.events.subscribe()
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user      models.User
		serverID  sql.NullInt64
		birthday  sql.NullTime
		remoteURL sql.NullString
		localPath sql.NullString
	)

	err := row.Scan(
		&user.LocalID,
		&serverID,
		&user.Login,
		&user.Name,
		&birthday,
		&remoteURL,
		&localPath,
		&user.SyncStatus,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if serverID.Valid {
		user.ServerID = &serverID.Int64
	}
	if birthday.Valid {
		user.Birthday = &birthday.Time
	}
	if remoteURL.Valid {
		user.AvatarRemoteURL = &remoteURL.String
	}
	if localPath.Valid {
		user.AvatarLocalPath = &localPath.String
	}

	return user, nil
}
