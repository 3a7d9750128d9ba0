// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Lukashev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the client
// engine. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the backend endpoint settings used by the HTTP gateways and
	// the connectivity probe.
	API API `envPrefix:"API_"`

	// Storage holds the local persistence settings: the SQLite database and
	// the on-device image directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background sync job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// App holds application-level settings such as the log file location.
	App App `envPrefix:"APP_"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged after env and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API groups backend endpoint settings.
type API struct {
	// BaseURL is the root of the photo API, e.g. "https://api.example.com".
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound gateway request.
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// HealthInterval is how often the connectivity monitor probes the
	// backend's health endpoint.
	// Env: API_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// Storage groups local persistence settings.
type Storage struct {
	DB     DB     `envPrefix:"DB_"`
	Images Images `envPrefix:"IMAGES_"`
}

// DB holds the local SQLite database settings.
type DB struct {
	// DSN is the SQLite file path. In-memory databases are rejected by
	// validation: queued operations must survive a process restart.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Images holds the on-device image blob store settings.
type Images struct {
	// Dir is the root directory for locally stored images, namespaced by
	// image kind below it.
	// Env: STORAGE_IMAGES_DIR
	Dir string `env:"DIR"`
}

// Workers holds background job settings.
type Workers struct {
	// SyncInterval is the periodic retry tick of the sync job. Drains are
	// also triggered on launch and on connectivity regained; this interval
	// only guarantees FAILED operations are retried without user action.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// App holds application-level settings.
type App struct {
	// LogFile is an optional path for engine logs. Empty means stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// defaults returns the config layer applied last, so every field a user left
// unset still ends up usable.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		API: API{
			RequestTimeout: 15 * time.Second,
			HealthInterval: 30 * time.Second,
		},
		Workers: Workers{
			SyncInterval: 5 * time.Minute,
		},
	}
}

// GetClientConfig assembles the merged configuration from environment
// variables, command-line flags, the optional JSON file, and defaults, then
// validates it.
func GetClientConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
