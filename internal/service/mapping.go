package service

import (
	"fmt"
	"time"

	"github.com/mlukashe/go-photo-keeper/models"
)

// Response-to-entity mapping. Every mapped record is SYNCED by definition and
// carries a freshly generated local id; the repositories' identity-preserving
// merge discards that fresh id whenever a cached row already owns the same
// server id.

func albumFromResponse(resp models.AlbumResponse, localID string) models.Album {
	return models.Album{
		LocalID:        localID,
		ServerID:       &resp.ID,
		Title:          resp.Title,
		CoverRemoteURL: resp.CoverURL,
		SyncStatus:     models.StatusSynced,
		CreatedAt:      resp.CreatedAt,
		UpdatedAt:      resp.UpdatedAt,
	}
}

func memoryFromResponse(resp models.MemoryResponse, albumLocalID, localID string) models.Memory {
	remoteURL := resp.ImageURL
	return models.Memory{
		LocalID:       localID,
		ServerID:      &resp.ID,
		AlbumLocalID:  albumLocalID,
		AlbumServerID: &resp.AlbumID,
		Title:         resp.Title,
		Description:   resp.Description,
		RemoteURL:     &remoteURL,
		TakenAt:       resp.TakenAt,
		SyncStatus:    models.StatusSynced,
		CreatedAt:     resp.CreatedAt,
		UpdatedAt:     resp.CreatedAt,
	}
}

func userFromResponse(resp models.UserResponse, localID string) (models.User, error) {
	now := time.Now()
	user := models.User{
		LocalID:         localID,
		ServerID:        &resp.ID,
		Login:           resp.Login,
		Name:            resp.Name,
		AvatarRemoteURL: resp.AvatarURL,
		SyncStatus:      models.StatusSynced,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if resp.Birthday != nil && *resp.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", *resp.Birthday)
		if err != nil {
			return models.User{}, fmt.Errorf("parse birthday %q: %w", *resp.Birthday, err)
		}
		user.Birthday = &birthday
	}

	return user, nil
}
