package models

// ImageKind namespaces the local blob store. Each kind maps to its own
// directory so a memory photo and an album cover saved under the same local
// id can never collide.
type ImageKind string

const (
	ImageAlbumCover ImageKind = "album-cover"
	ImageMemory     ImageKind = "memory"
	ImageAvatar     ImageKind = "avatar"
)

func (k ImageKind) Valid() bool {
	switch k {
	case ImageAlbumCover, ImageMemory, ImageAvatar:
		return true
	}
	return false
}
