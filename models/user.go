package models

import "time"

// User is the device owner's profile. Exactly one row exists locally; its
// local id is generated on first launch and the only operation ever queued
// against it is UPDATE (the account itself is created through the auth flow).
type User struct {
	LocalID  string `json:"local_id"`
	ServerID *int64 `json:"server_id,omitempty"`

	Login string `json:"login"`
	Name  string `json:"name"`

	// Birthday is optional; it crosses the wire as an ISO-8601 date.
	Birthday *time.Time `json:"birthday,omitempty"`

	AvatarRemoteURL *string `json:"avatar_remote_url,omitempty"`
	AvatarLocalPath *string `json:"avatar_local_path,omitempty"`

	SyncStatus SyncStatus `json:"sync_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AvatarDisplay prefers the uploaded URL and falls back to the on-device path.
func (u User) AvatarDisplay() string {
	if u.AvatarRemoteURL != nil && *u.AvatarRemoteURL != "" {
		return *u.AvatarRemoteURL
	}
	if u.AvatarLocalPath != nil {
		return *u.AvatarLocalPath
	}
	return ""
}

// HasLocalAvatar reports whether a not-yet-uploaded avatar exists.
func (u User) HasLocalAvatar() bool {
	return u.AvatarLocalPath != nil && *u.AvatarLocalPath != ""
}

func (u User) TableName() string {
	return "users"
}
