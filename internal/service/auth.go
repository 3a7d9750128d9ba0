package service

import (
	"context"
	"fmt"

	"github.com/mlukashe/go-photo-keeper/internal/adapter"
	"github.com/mlukashe/go-photo-keeper/internal/logger"
	"github.com/mlukashe/go-photo-keeper/internal/store"
	"github.com/mlukashe/go-photo-keeper/internal/utils"
	"github.com/mlukashe/go-photo-keeper/internal/validators"
	"github.com/mlukashe/go-photo-keeper/models"
)

type authService struct {
	users     store.UserRepository
	authGW    adapter.AuthGateway
	userGW    adapter.UserGateway
	ids       *utils.UUIDGenerator
	validator validators.Validator
	logger    *logger.Logger
}

// NewAuthService constructs the session-opening service. The auth gateway
// keeps the bearer token; this service additionally primes the local profile
// cache so the app has a user row to work against immediately.
func NewAuthService(users store.UserRepository, authGW adapter.AuthGateway, userGW adapter.UserGateway, log *logger.Logger) AuthService {
	return &authService{
		users:     users,
		authGW:    authGW,
		userGW:    userGW,
		ids:       utils.NewUUIDGenerator(),
		validator: validators.NewPhotoValidator(),
		logger:    log,
	}
}

func (s *authService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	if err := s.validator.Validate(ctx, creds); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if _, err := s.authGW.Register(ctx, creds); err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}
	return s.primeProfile(ctx)
}

func (s *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	// existing passwords may predate the current length rule
	if err := s.validator.Validate(ctx, creds, validators.FieldLogin); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if _, err := s.authGW.Login(ctx, creds); err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}
	return s.primeProfile(ctx)
}

func (s *authService) primeProfile(ctx context.Context) (models.User, error) {
	resp, err := s.userGW.GetUser(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("fetch profile after auth: %w", err)
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
