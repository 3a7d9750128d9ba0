package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("API_REQUEST_TIMEOUT", "7s")
	t.Setenv("STORAGE_DB_DSN", "/data/photokeeper.db")
	t.Setenv("STORAGE_IMAGES_DIR", "/data/images")
	t.Setenv("WORKERS_SYNC_INTERVAL", "2m")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "https://api.example.com", cfg.API.BaseURL)
	assert.Equal(t, 7*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "/data/photokeeper.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/data/images", cfg.Storage.Images.Dir)
	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "http://localhost:8080",
		"-d", "client.db",
		"-images-dir", "imgs",
		"-request-timeout", "5s",
		"-health-interval", "10s",
		"-sync-interval", "1m",
		"-c", "cfg.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, "client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "imgs", cfg.Storage.Images.Dir)
	assert.Equal(t, 5*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.API.HealthInterval)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_UnknownFlagErrors(t *testing.T) {
	_, err := parseFlags([]string{"-nope"})
	require.Error(t, err)
}

func TestParseJSON_DurationsFromStrings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	payload := map[string]any{
		"api": map[string]any{
			"base_url":        "https://json.example.com",
			"request_timeout": "30s",
		},
		"storage": map[string]any{
			"db":     map[string]any{"dsn": "json.db"},
			"images": map[string]any{"dir": "json-images"},
		},
		"workers": map[string]any{"sync_interval": "90s"},
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "https://json.example.com", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 90*time.Second, cfg.Workers.SyncInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

// Earlier sources win: a field set via env must not be overridden by a later
// layer (flags, json, defaults).
func TestBuilder_EnvTakesPrecedence(t *testing.T) {
	envLayer := &StructuredConfig{
		API:     API{BaseURL: "https://env.example.com"},
		Storage: Storage{DB: DB{DSN: "env.db"}, Images: Images{Dir: "env-images"}},
	}
	jsonLayer := &StructuredConfig{
		API: API{BaseURL: "https://json.example.com", RequestTimeout: 9 * time.Second},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, envLayer, jsonLayer)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.API.BaseURL)
	// json filled the hole env left
	assert.Equal(t, 9*time.Second, cfg.API.RequestTimeout)
	// defaults filled the rest
	assert.Equal(t, 30*time.Second, cfg.API.HealthInterval)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
}

func TestValidate_RejectsInMemoryDSN(t *testing.T) {
	cfg := defaults()
	cfg.API.BaseURL = "http://localhost:8080"
	cfg.Storage.DB.DSN = ":memory:"
	cfg.Storage.Images.Dir = "imgs"

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_RejectsMissingBaseURL(t *testing.T) {
	cfg := defaults()
	cfg.Storage.DB.DSN = "client.db"
	cfg.Storage.Images.Dir = "imgs"

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAPIConfigs)
}

func TestValidate_AcceptsCompleteConfig(t *testing.T) {
	cfg := defaults()
	cfg.API.BaseURL = "http://localhost:8080"
	cfg.Storage.DB.DSN = "client.db"
	cfg.Storage.Images.Dir = "imgs"

	assert.NoError(t, cfg.validate())
}
