// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Lukashev

package config

import (
	"time"
)

// DevServer holds the configuration of the in-memory development server that
// stands in for the production photo API during client development.
type DevServer struct {
	// Address is the listen address, e.g. ":8080".
	// Env: DEVSERVER_ADDRESS
	Address string `env:"DEVSERVER_ADDRESS"`

	// SignKey signs the HS256 bearer tokens the dev server issues.
	// Env: DEVSERVER_SIGN_KEY
	SignKey string `env:"DEVSERVER_SIGN_KEY"`

	// HashKey keys the HMAC digests under which passwords are stored.
	// Env: DEVSERVER_HASH_KEY
	HashKey string `env:"DEVSERVER_HASH_KEY"`

	// TokenTTL is the issued token lifetime.
	// Env: DEVSERVER_TOKEN_TTL
	TokenTTL time.Duration `env:"DEVSERVER_TOKEN_TTL"`

	// TokenIssuer is the iss claim on issued tokens.
	// Env: DEVSERVER_TOKEN_ISSUER
	TokenIssuer string `env:"DEVSERVER_TOKEN_ISSUER"`
}

// GetDevServerConfig reads the dev server configuration from the environment
// and applies defaults. Default keys are fine here: the server holds
// throwaway development data and never runs in production.
func GetDevServerConfig() (*DevServer, error) {
	cfg := &DevServer{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.Address == "" {
		cfg.Address = ":8080"
	}
	if cfg.SignKey == "" {
		cfg.SignKey = "dev-sign-key"
	}
	if cfg.HashKey == "" {
		cfg.HashKey = "dev-hash-key"
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.TokenIssuer == "" {
		cfg.TokenIssuer = "photo-keeper-dev"
	}

	return cfg, nil
}
