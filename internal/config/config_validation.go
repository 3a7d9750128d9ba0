// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Lukashev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// engine invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Images.Dir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.API.BaseURL == "" || cfg.API.RequestTimeout <= 0 || cfg.API.HealthInterval <= 0 {
		return ErrInvalidAPIConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
