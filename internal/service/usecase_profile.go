package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mlukashe/go-photo-keeper/internal/adapter"
	"github.com/mlukashe/go-photo-keeper/internal/connectivity"
	"github.com/mlukashe/go-photo-keeper/internal/logger"
	"github.com/mlukashe/go-photo-keeper/internal/store"
	"github.com/mlukashe/go-photo-keeper/internal/utils"
	"github.com/mlukashe/go-photo-keeper/models"
)

type profileService struct {
	users   store.UserRepository
	gateway adapter.UserGateway
	monitor connectivity.Monitor
	ids     *utils.UUIDGenerator
	logger  *logger.Logger
}

// NewProfileService constructs the profile read path.
func NewProfileService(
	users store.UserRepository,
	gateway adapter.UserGateway,
	monitor connectivity.Monitor,
	log *logger.Logger,
) ProfileService {
	return &profileService{
		users:   users,
		gateway: gateway,
		monitor: monitor,
		ids:     utils.NewUUIDGenerator(),
		logger:  log,
	}
}

// DisplayProfile reads through the cache: fetch and merge when connected,
// cached row otherwise. Offline with no cached profile is a typed failure.
func (s *profileService) DisplayProfile(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	if !s.monitor.IsConnected() {
		return s.fromCache(ctx, nil)
	}

	resp, err := s.gateway.GetUser(ctx)
	if err != nil {
		log.Err(err).Str("func", "profileService.DisplayProfile").Msg("profile fetch failed, falling back to cache")
		return s.fromCache(ctx, err)
	}

	fetched, err := userFromResponse(resp, s.ids.Generate())
	if err != nil {
		return models.User{}, fmt.Errorf("map profile response: %w", err)
	}
	if err = s.users.SaveSynced(ctx, fetched); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	user, err := s.users.Get(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	return user, nil
}

func (s *profileService) fromCache(ctx context.Context, cause error) (models.User, error) {
	user, err := s.users.Get(ctx)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			if cause != nil {
				return models.User{}, fmt.Errorf("%w: %w", ErrNoCachedData, cause)
			}
			return models.User{}, ErrNoCachedData
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	return user, nil
}
