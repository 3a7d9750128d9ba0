package validators

import (
	"context"
	"fmt"
	"time"

	"github.com/mlukashe/go-photo-keeper/models"
)

const (
	FieldTitle    = "title"
	FieldTakenAt  = "taken_at"
	FieldAlbumID  = "album_id"
	FieldBirthday = "birthday"
	FieldLogin    = "login"
	FieldPassword = "password"
)

const (
	// MaxTitleLength bounds album and memory titles.
	MaxTitleLength = 200

	// MaxImageBytes bounds a single uploaded image (memory photo, album
	// cover or avatar).
	MaxImageBytes = 10 << 20

	// MinPasswordLength applies to registration only; login accepts whatever
	// was registered.
	MinPasswordLength = 8
)

// PhotoValidator validates the write-path payloads of the photo engine.
type PhotoValidator struct {
}

func NewPhotoValidator() Validator {
	return &PhotoValidator{}
}

func (v *PhotoValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateAlbumRequest:
		return v.validateTitle(value.Title)
	case *models.CreateAlbumRequest:
		return v.validateTitle(value.Title)

	case models.UpdateAlbumRequest:
		return v.validateTitle(value.Title)
	case *models.UpdateAlbumRequest:
		return v.validateTitle(value.Title)

	case models.CreateMemoryRequest:
		return v.validateCreateMemory(value, fields...)
	case *models.CreateMemoryRequest:
		return v.validateCreateMemory(*value, fields...)

	case models.UpdateUserRequest:
		return v.validateUpdateUser(value)
	case *models.UpdateUserRequest:
		return v.validateUpdateUser(*value)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case []byte:
		return v.validateImage(value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *PhotoValidator) validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func (v *PhotoValidator) validateCreateMemory(req models.CreateMemoryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldTakenAt, FieldAlbumID}
	}

	for _, field := range fields {
		switch field {
		case FieldTitle:
			if err := v.validateTitle(req.Title); err != nil {
				return err
			}
		case FieldTakenAt:
			if req.TakenAt.After(time.Now().Add(time.Minute)) {
				return ErrTakenAtInFuture
			}
		case FieldAlbumID:
			if req.AlbumID <= 0 {
				return ErrInvalidAlbumID
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *PhotoValidator) validateUpdateUser(req models.UpdateUserRequest) error {
	if err := v.validateTitle(req.Name); err != nil {
		return err
	}
	if req.Birthday != nil {
		birthday, err := time.Parse("2006-01-02", *req.Birthday)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidBirthday, err)
		}
		if birthday.After(time.Now()) {
			return ErrBirthdayInFuture
		}
	}
	return nil
}

func (v *PhotoValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldLogin:
			if creds.Login == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if len(creds.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *PhotoValidator) validateImage(image []byte) error {
	if len(image) == 0 {
		return ErrEmptyImage
	}
	if len(image) > MaxImageBytes {
		return ErrImageTooLarge
	}
	return nil
}
