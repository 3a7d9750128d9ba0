package models

import "time"

// Album is a user-created photo album. An album exists locally from the
// moment the user confirms the create form; ServerID stays nil until the
// engine completes the CREATE round-trip.
type Album struct {
	// LocalID is the client-generated permanent identifier. It is assigned
	// once at creation and never changes; every local join (queue, selection,
	// navigation) uses it.
	LocalID string `json:"local_id"`

	// ServerID is assigned by the backend on the first successful create
	// sync. It transitions nil -> non-nil exactly once and never changes
	// afterwards.
	ServerID *int64 `json:"server_id,omitempty"`

	Title string `json:"title"`

	// CoverRemoteURL is set once the cover image has been uploaded.
	CoverRemoteURL *string `json:"cover_remote_url,omitempty"`

	// CoverLocalPath points at the on-device copy of the cover image. It is
	// cleared only after a confirmed upload.
	CoverLocalPath *string `json:"cover_local_path,omitempty"`

	SyncStatus SyncStatus `json:"sync_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CoverDisplay returns the image reference the UI should render: the remote
// URL when the cover has been uploaded, otherwise the local path. Empty when
// no cover has ever been attached.
func (a Album) CoverDisplay() string {
	if a.CoverRemoteURL != nil && *a.CoverRemoteURL != "" {
		return *a.CoverRemoteURL
	}
	if a.CoverLocalPath != nil {
		return *a.CoverLocalPath
	}
	return ""
}

// HasLocalCover reports whether a not-yet-uploaded cover image exists.
func (a Album) HasLocalCover() bool {
	return a.CoverLocalPath != nil && *a.CoverLocalPath != ""
}

func (a Album) TableName() string {
	return "albums"
}
