// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Lukashev

package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mlukashe/go-photo-keeper/internal/logger"
	"github.com/mlukashe/go-photo-keeper/internal/store"
	"github.com/mlukashe/go-photo-keeper/models"
)

// executeAlbumCreate pushes an offline-created album. Identity sync is the
// operation's contract; the cover upload afterwards is best-effort.
func (s *syncQueueService) executeAlbumCreate(ctx context.Context, op models.SyncOperation) error {
	log := logger.FromContext(ctx)

	album, err := s.albums.GetByLocalID(ctx, op.LocalID)
	if err != nil {
		if errors.Is(err, store.ErrAlbumNotFound) {
			// the row was deleted after enqueueing; nothing left to do
			log.Warn().Str("func", "executeAlbumCreate").Str("local_id", op.LocalID).Msg("album gone, operation dropped")
			return nil
		}
		return fmt.Errorf("read album %s: %w", op.LocalID, err)
	}

	if album.ServerID == nil {
		resp, gwErr := s.albumGW.CreateAlbum(ctx, models.CreateAlbumRequest{Title: album.Title})
		if gwErr != nil {
			return fmt.Errorf("create album on server: %w", gwErr)
		}

		if err = s.albums.MarkAsSynced(ctx, album.LocalID, resp.ID); err != nil {
			return fmt.Errorf("mark album synced: %w", err)
		}

		// backfill the new server id onto memories created under this album
		// while it was offline-only
		if err = s.memories.SetAlbumServerID(ctx, album.LocalID, resp.ID); err != nil {
			log.Err(err).Str("func", "executeAlbumCreate").Str("local_id", album.LocalID).Msg("failed to backfill album server id on memories")
		}

		album.ServerID = &resp.ID
	}

	s.uploadAlbumCover(ctx, album)
	return nil
}

// executeAlbumUpdate pushes a title edit. The album must already exist on the
// server: an UPDATE for an uncreated album is an upstream logic error and is
// failed loudly so it shows up in diagnostics.
func (s *syncQueueService) executeAlbumUpdate(ctx context.Context, op models.SyncOperation) error {
	log := logger.FromContext(ctx)

	album, err := s.albums.GetByLocalID(ctx, op.LocalID)
	if err != nil {
		if errors.Is(err, store.ErrAlbumNotFound) {
			log.Warn().Str("func", "executeAlbumUpdate").Str("local_id", op.LocalID).Msg("album gone, operation dropped")
			return nil
		}
		return fmt.Errorf("read album %s: %w", op.LocalID, err)
	}

	if album.ServerID == nil {
		return fmt.Errorf("%w: album %s", ErrServerIDMissing, album.LocalID)
	}

	if _, err = s.albumGW.UpdateAlbum(ctx, *album.ServerID, models.UpdateAlbumRequest{Title: album.Title}); err != nil {
		return fmt.Errorf("update album on server: %w", err)
	}

	s.uploadAlbumCover(ctx, album)

	if err = s.albums.SetSyncStatus(ctx, album.LocalID, models.StatusSynced); err != nil {
		return fmt.Errorf("mark album synced after update: %w", err)
	}

	return nil
}

// uploadAlbumCover uploads a staged cover image and records the resolved URL.
// Every failure is logged and swallowed: a create or update whose cover
// upload failed is still complete, the cover simply stays local until a
// future edit retries it.
func (s *syncQueueService) uploadAlbumCover(ctx context.Context, album models.Album) {
	log := logger.FromContext(ctx)

	if !album.HasLocalCover() || album.ServerID == nil {
		return
	}

	image, err := s.images.Get(ctx, models.ImageAlbumCover, album.LocalID)
	if err != nil {
		log.Err(err).Str("func", "uploadAlbumCover").Str("local_id", album.LocalID).Msg("failed to read staged cover image")
		return
	}

	resp, err := s.albumGW.UploadAlbumCover(ctx, *album.ServerID, filepath.Base(*album.CoverLocalPath), image)
	if err != nil {
		log.Err(err).Str("func", "uploadAlbumCover").Str("local_id", album.LocalID).Msg("cover upload failed, keeping local copy")
		return
	}

	if err = s.albums.SetCoverRemoteURL(ctx, album.LocalID, resp.URL); err != nil {
		log.Err(err).Str("func", "uploadAlbumCover").Str("local_id", album.LocalID).Msg("failed to record cover url")
		return
	}
	if err = s.images.Delete(ctx, models.ImageAlbumCover, album.LocalID); err != nil {
		log.Err(err).Str("func", "uploadAlbumCover").Str("local_id", album.LocalID).Msg("failed to delete uploaded cover blob")
	}
}

// executeMemoryCreate pushes an offline-created memory. Unlike album covers
// the image here is the payload, not an accessory: any image problem fails
// the operation.
func (s *syncQueueService) executeMemoryCreate(ctx context.Context, op models.SyncOperation) error {
	log := logger.FromContext(ctx)

	memory, err := s.memories.GetByLocalID(ctx, op.LocalID)
	if err != nil {
		if errors.Is(err, store.ErrMemoryNotFound) {
			return fmt.Errorf("%w: memory %s", ErrEntityNotFound, op.LocalID)
		}
		return fmt.Errorf("read memory %s: %w", op.LocalID, err)
	}

	albumServerID := memory.AlbumServerID
	if albumServerID == nil {
		album, albErr := s.albums.GetByLocalID(ctx, memory.AlbumLocalID)
		if albErr == nil {
			albumServerID = album.ServerID
		}
	}
	if albumServerID == nil {
		return fmt.Errorf("%w: album %s has no server id yet", ErrDependencyNotSynced, memory.AlbumLocalID)
	}

	image, err := s.images.Get(ctx, models.ImageMemory, memory.LocalID)
	if err != nil {
		if errors.Is(err, store.ErrImageNotFound) {
			return fmt.Errorf("%w: memory %s", ErrImageNotFound, memory.LocalID)
		}
		return fmt.Errorf("read memory image %s: %w", memory.LocalID, err)
	}

	req := models.CreateMemoryRequest{
		AlbumID:     *albumServerID,
		Title:       memory.Title,
		Description: memory.Description,
		TakenAt:     memory.TakenAt,
	}

	fileName := memory.LocalID + ".jpg"
	if memory.LocalPath != nil {
		fileName = filepath.Base(*memory.LocalPath)
	}

	resp, err := s.memoryGW.CreateMemory(ctx, req, fileName, image)
	if err != nil {
		return fmt.Errorf("create memory on server: %w", err)
	}

	if err = s.images.Delete(ctx, models.ImageMemory, memory.LocalID); err != nil {
		log.Err(err).Str("func", "executeMemoryCreate").Str("local_id", memory.LocalID).Msg("failed to delete uploaded memory blob")
	}

	if err = s.memories.MarkAsSynced(ctx, memory.LocalID, resp.ID, resp.ImageURL); err != nil {
		return fmt.Errorf("mark memory synced: %w", err)
	}

	return nil
}

// executeUserUpdate pushes the profile. When a staged avatar exists the
// post-avatar-upload response is the authoritative record; avatar upload
// failure is best-effort like album covers.
func (s *syncQueueService) executeUserUpdate(ctx context.Context, op models.SyncOperation) error {
	log := logger.FromContext(ctx)

	user, err := s.users.Get(ctx)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return fmt.Errorf("%w: user %s", ErrEntityNotFound, op.LocalID)
		}
		return fmt.Errorf("read user: %w", err)
	}

	req := models.UpdateUserRequest{Name: user.Name}
	if user.Birthday != nil {
		iso := user.Birthday.Format("2006-01-02")
		req.Birthday = &iso
	}

	resp, err := s.userGW.UpdateUser(ctx, req)
	if err != nil {
		return fmt.Errorf("update user on server: %w", err)
	}

	if user.HasLocalAvatar() {
		if image, imgErr := s.images.Get(ctx, models.ImageAvatar, user.LocalID); imgErr != nil {
			log.Err(imgErr).Str("func", "executeUserUpdate").Str("local_id", user.LocalID).Msg("failed to read staged avatar image")
		} else if uploaded, upErr := s.userGW.UploadAvatar(ctx, filepath.Base(*user.AvatarLocalPath), image); upErr != nil {
			log.Err(upErr).Str("func", "executeUserUpdate").Str("local_id", user.LocalID).Msg("avatar upload failed, keeping local copy")
		} else {
			resp = uploaded
			if delErr := s.images.Delete(ctx, models.ImageAvatar, user.LocalID); delErr != nil {
				log.Err(delErr).Str("func", "executeUserUpdate").Str("local_id", user.LocalID).Msg("failed to delete uploaded avatar blob")
			}
		}
	}

	synced, err := userFromResponse(resp, s.ids.Generate())
	if err != nil {
		return fmt.Errorf("map user response: %w", err)
	}
	if err = s.users.SaveSynced(ctx, synced); err != nil {
		return fmt.Errorf("save synced user: %w", err)
	}

	return nil
}
