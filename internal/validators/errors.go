package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle        = errors.New("title is required")
	ErrTitleTooLong      = errors.New("title is too long")
	ErrEmptyImage        = errors.New("image data is required")
	ErrImageTooLarge     = errors.New("image exceeds the size limit")
	ErrTakenAtInFuture   = errors.New("taken_at cannot be in the future")
	ErrBirthdayInFuture  = errors.New("birthday cannot be in the future")
	ErrInvalidBirthday   = errors.New("birthday must be an ISO date")
	ErrEmptyLogin        = errors.New("login is required")
	ErrPasswordTooShort  = errors.New("password is too short")
	ErrInvalidAlbumID    = errors.New("invalid album id")
	ErrInvalidPageNumber = errors.New("invalid page number")
)
