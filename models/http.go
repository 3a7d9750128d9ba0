package models

import "time"

// CreateAlbumRequest is the payload for POST /api/albums.
type CreateAlbumRequest struct {
	Title string `json:"title"`
}

// UpdateAlbumRequest is the payload for PUT /api/albums/{id}.
type UpdateAlbumRequest struct {
	Title string `json:"title"`
}

// AlbumResponse is the server's representation of an album. It carries no
// local id — the client joins it back to its cached row by ID.
type AlbumResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CoverURL  *string   `json:"cover_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateMemoryRequest accompanies the multipart image upload for
// POST /api/albums/{albumID}/memories.
type CreateMemoryRequest struct {
	AlbumID     int64  `json:"album_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// TakenAt is serialised as ISO-8601.
	TakenAt time.Time `json:"taken_at"`
}

// MemoryResponse is the server's representation of a memory.
type MemoryResponse struct {
	ID          int64     `json:"id"`
	AlbumID     int64     `json:"album_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	TakenAt     time.Time `json:"taken_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// UpdateUserRequest is the payload for PUT /api/user. Birthday crosses the
// wire as an ISO date (yyyy-mm-dd), not a full timestamp.
type UpdateUserRequest struct {
	Name     string  `json:"name"`
	Birthday *string `json:"birthday,omitempty"`
}

// UserResponse is the server's representation of the profile.
type UserResponse struct {
	ID        int64   `json:"id"`
	Login     string  `json:"login"`
	Name      string  `json:"name"`
	Birthday  *string `json:"birthday,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// UploadResponse is returned by every image upload endpoint.
type UploadResponse struct {
	URL string `json:"url"`
}

// Credentials is the payload for the register and login endpoints.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// Token is the session state the auth gateway hands back after a successful
// register or login: the raw bearer token plus the user id parsed from it.
type Token struct {
	SignedString string `json:"-"`
	UserID       int64  `json:"-"`
}

// PagedRequest describes one page of a list query. Pages are 1-based.
type PagedRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Paged wraps a page of server results together with the has-more marker the
// list use cases need for pagination.
type Paged[T any] struct {
	Items   []T  `json:"items"`
	HasMore bool `json:"has_more"`
}
