package validators

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mlukashe/go-photo-keeper/models"
)

func TestPhotoValidator_AlbumTitle(t *testing.T) {
	v := NewPhotoValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.CreateAlbumRequest{Title: "Trip"}))
	require.ErrorIs(t, v.Validate(ctx, models.CreateAlbumRequest{}), ErrEmptyTitle)
	require.ErrorIs(t, v.Validate(ctx, models.UpdateAlbumRequest{Title: strings.Repeat("x", MaxTitleLength+1)}), ErrTitleTooLong)
	require.NoError(t, v.Validate(ctx, &models.CreateAlbumRequest{Title: "Trip"}))
}

func TestPhotoValidator_CreateMemory(t *testing.T) {
	v := NewPhotoValidator()
	ctx := context.Background()

	valid := models.CreateMemoryRequest{AlbumID: 1, Title: "shot", TakenAt: time.Now().Add(-time.Hour)}
	require.NoError(t, v.Validate(ctx, valid))

	noTitle := valid
	noTitle.Title = ""
	require.ErrorIs(t, v.Validate(ctx, noTitle), ErrEmptyTitle)

	future := valid
	future.TakenAt = time.Now().Add(time.Hour)
	require.ErrorIs(t, v.Validate(ctx, future), ErrTakenAtInFuture)

	noAlbum := valid
	noAlbum.AlbumID = 0
	require.ErrorIs(t, v.Validate(ctx, noAlbum), ErrInvalidAlbumID)

	// field scoping skips unrequested checks
	require.NoError(t, v.Validate(ctx, noAlbum, FieldTitle, FieldTakenAt))
	require.ErrorIs(t, v.Validate(ctx, valid, "bogus"), ErrUnknownField)
}

func TestPhotoValidator_UpdateUser(t *testing.T) {
	v := NewPhotoValidator()
	ctx := context.Background()

	iso := "1990-05-01"
	require.NoError(t, v.Validate(ctx, models.UpdateUserRequest{Name: "John", Birthday: &iso}))

	bad := "01.05.1990"
	require.ErrorIs(t, v.Validate(ctx, models.UpdateUserRequest{Name: "John", Birthday: &bad}), ErrInvalidBirthday)

	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	require.ErrorIs(t, v.Validate(ctx, models.UpdateUserRequest{Name: "John", Birthday: &future}), ErrBirthdayInFuture)

	require.ErrorIs(t, v.Validate(ctx, models.UpdateUserRequest{}), ErrEmptyTitle)
}

func TestPhotoValidator_Credentials(t *testing.T) {
	v := NewPhotoValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.Credentials{Login: "john", Password: "longenough"}))
	require.ErrorIs(t, v.Validate(ctx, models.Credentials{Password: "longenough"}), ErrEmptyLogin)
	require.ErrorIs(t, v.Validate(ctx, models.Credentials{Login: "john", Password: "short"}), ErrPasswordTooShort)

	// login flow checks only the login field
	require.NoError(t, v.Validate(ctx, models.Credentials{Login: "john", Password: "short"}, FieldLogin))
}

func TestPhotoValidator_Image(t *testing.T) {
	v := NewPhotoValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, []byte("jpeg")))
	require.ErrorIs(t, v.Validate(ctx, []byte{}), ErrEmptyImage)
}

func TestPhotoValidator_UnsupportedType(t *testing.T) {
	v := NewPhotoValidator()
	require.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
