package models

import "time"

// Memory is a single photo with caption inside an album. A memory always
// belongs to exactly one album and joins it by the album's local id; the
// album's server id is cached on the memory once known so the executor does
// not have to re-resolve it on every push.
type Memory struct {
	LocalID  string `json:"local_id"`
	ServerID *int64 `json:"server_id,omitempty"`

	// AlbumLocalID is the owning album's local id. Like every local-side
	// join it survives the album's own identity reconciliation untouched.
	AlbumLocalID string `json:"album_local_id"`

	// AlbumServerID is the owning album's server id, nil while the album
	// itself has not been created on the server. A memory cannot sync before
	// this resolves.
	AlbumServerID *int64 `json:"album_server_id,omitempty"`

	Title       string `json:"title"`
	Description string `json:"description"`

	RemoteURL *string `json:"remote_url,omitempty"`
	LocalPath *string `json:"local_path,omitempty"`

	// TakenAt is when the photo was captured, as reported by the picker.
	TakenAt time.Time `json:"taken_at"`

	SyncStatus SyncStatus `json:"sync_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ImageDisplay prefers the uploaded URL and falls back to the on-device path.
func (m Memory) ImageDisplay() string {
	if m.RemoteURL != nil && *m.RemoteURL != "" {
		return *m.RemoteURL
	}
	if m.LocalPath != nil {
		return *m.LocalPath
	}
	return ""
}

func (m Memory) TableName() string {
	return "memories"
}
