// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Lukashev

// Package adapter provides transport-layer abstractions for communicating
// with the photo-keeper backend.
//
// The engine never talks HTTP directly: it depends on the gateway interfaces
// below, which decouple the service layer from the wire protocol. The package
// ships a resty-based HTTP implementation ([NewHTTPGateways]); tests substitute
// generated mocks.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/mlukashe/go-photo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateways_mock.go -package=mock

// AlbumGateway is the server boundary for album operations.
type AlbumGateway interface {
	// CreateAlbum registers a new album on the server and returns the
	// server-side record, including the assigned id.
	CreateAlbum(ctx context.Context, req models.CreateAlbumRequest) (models.AlbumResponse, error)

	// UpdateAlbum pushes the current title of an already-created album.
	UpdateAlbum(ctx context.Context, serverID int64, req models.UpdateAlbumRequest) (models.AlbumResponse, error)

	// ListAlbums fetches one page of the user's albums, newest first.
	ListAlbums(ctx context.Context, page models.PagedRequest) (models.Paged[models.AlbumResponse], error)

	// UploadAlbumCover uploads the cover image for an album and returns the
	// resolved remote URL.
	UploadAlbumCover(ctx context.Context, serverID int64, fileName string, image []byte) (models.UploadResponse, error)
}

// MemoryGateway is the server boundary for memory (photo) operations.
type MemoryGateway interface {
	// CreateMemory uploads a new memory — metadata plus image bytes in a
	// single multipart request — under the album identified by req.AlbumID.
	CreateMemory(ctx context.Context, req models.CreateMemoryRequest, fileName string, image []byte) (models.MemoryResponse, error)

	// ListMemories fetches one page of an album's memories.
	ListMemories(ctx context.Context, albumServerID int64, page models.PagedRequest) (models.Paged[models.MemoryResponse], error)
}

// UserGateway is the server boundary for the profile.
type UserGateway interface {
	// GetUser fetches the authenticated user's profile.
	GetUser(ctx context.Context) (models.UserResponse, error)

	// UpdateUser pushes name and birthday. Birthday crosses the wire as an
	// ISO date string.
	UpdateUser(ctx context.Context, req models.UpdateUserRequest) (models.UserResponse, error)

	// UploadAvatar uploads the avatar image and returns the updated profile
	// record, which callers must treat as authoritative.
	UploadAvatar(ctx context.Context, fileName string, image []byte) (models.UserResponse, error)
}

// AuthGateway manages the session with the backend. On success both Register
// and Login store the bearer token so subsequent gateway calls are
// authenticated.
type AuthGateway interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when not logged in.
	Token() string

	// Register creates an account and opens a session.
	Register(ctx context.Context, creds models.Credentials) (models.Token, error)

	// Login authenticates and opens a session.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)
}
