package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates invalid backend endpoint settings
	// (missing base URL or non-positive timeouts).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (empty DSN, in-memory DSN, or missing images directory). Queued sync
	// operations must survive a restart, so an in-memory DSN is rejected.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background job settings
	// (non-positive sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
