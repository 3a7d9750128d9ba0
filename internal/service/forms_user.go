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
	"github.com/mlukashe/go-photo-keeper/internal/validators"
	"github.com/mlukashe/go-photo-keeper/models"
)

type profileFormService struct {
	users     store.UserRepository
	images    store.ImageStore
	engine    SyncQueueService
	monitor   connectivity.Monitor
	validator validators.Validator
	logger    *logger.Logger
}

// NewProfileFormService constructs the profile write path.
func NewProfileFormService(
	users store.UserRepository,
	images store.ImageStore,
	engine SyncQueueService,
	monitor connectivity.Monitor,
	log *logger.Logger,
) ProfileFormService {
	return &profileFormService{
		users:     users,
		images:    images,
		engine:    engine,
		monitor:   monitor,
		validator: validators.NewPhotoValidator(),
		logger:    log,
	}
}

// UpdateProfile edits name/birthday and optionally stages a new avatar, with
// the shared optimistic-write-then-sync-or-enqueue shape of the other forms.
func (s *profileFormService) UpdateProfile(ctx context.Context, name string, birthday *time.Time, avatar []byte) (models.User, Outcome, error) {
	log := logger.FromContext(ctx)

	req := models.UpdateUserRequest{Name: name}
	if birthday != nil {
		iso := birthday.Format("2006-01-02")
		req.Birthday = &iso
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, OutcomePending, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if len(avatar) > 0 {
		if err := s.validator.Validate(ctx, avatar); err != nil {
			return models.User{}, OutcomePending, fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	user, err := s.users.Get(ctx)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, OutcomePending, fmt.Errorf("%w: no profile loaded", ErrEntityNotFound)
		}
		return models.User{}, OutcomePending, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	if len(avatar) > 0 {
		path, saveErr := s.images.Save(ctx, models.ImageAvatar, user.LocalID, avatar)
		if saveErr != nil {
			return models.User{}, OutcomePending, fmt.Errorf("%w: %w", ErrImageStorage, saveErr)
		}
		user.AvatarLocalPath = &path
	}

	user.Name = name
	user.Birthday = birthday
	user.SyncStatus = models.StatusPendingUpdate
	user.UpdatedAt = time.Now()

	if err = s.users.Save(ctx, user); err != nil {
		return models.User{}, OutcomePending, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	if !s.monitor.IsConnected() {
		s.engine.Enqueue(ctx, models.EntityUser, models.OperationUpdate, user.LocalID)
		return user, OutcomePending, nil
	}

	if err = s.engine.SyncNow(ctx, models.EntityUser, models.OperationUpdate, user.LocalID); err != nil {
		log.Err(err).Str("func", "UpdateProfile").Str("local_id", user.LocalID).Msg("inline profile sync failed, queued for retry")
		if stErr := s.users.SetSyncStatus(ctx, user.LocalID, models.StatusFailed); stErr != nil {
			log.Err(stErr).Str("func", "UpdateProfile").Str("local_id", user.LocalID).Msg("failed to flip profile status")
		}
		s.engine.Enqueue(ctx, models.EntityUser, models.OperationUpdate, user.LocalID)
		user.SyncStatus = models.StatusFailed
		return user, OutcomePending, nil
	}

	synced, err := s.users.Get(ctx)
	if err != nil {
		log.Err(err).Str("func", "UpdateProfile").Msg("failed to re-read synced profile")
		return user, OutcomeSynced, nil
	}
	return synced, OutcomeSynced, nil
}
