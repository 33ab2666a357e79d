package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	content := `
server:
  port: 9090
  mode: release
  api_key: secret
mysql:
  host: db.internal
  port: 3306
  user: fieldtrack
  password: pw
  database: fieldtrack
redis:
  addr: cache.internal:6379
  db: 2
logger:
  level: info
  output: console
presence:
  cache_ttl: 15
  refresh_interval: 120
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("CONFIG_PATH", path)

	require.NoError(t, Init())

	assert.Equal(t, 9090, GlobalConfig.Server.Port)
	assert.Equal(t, "release", GlobalConfig.Server.Mode)
	assert.Equal(t, "secret", GlobalConfig.Server.APIKey)
	assert.Equal(t, "db.internal", GlobalConfig.MySQL.Host)
	assert.Equal(t, "cache.internal:6379", GlobalConfig.Redis.Addr)
	assert.Equal(t, 2, GlobalConfig.Redis.DB)
	assert.Equal(t, 15, GlobalConfig.Presence.CacheTTL)
	assert.Equal(t, 120, GlobalConfig.Presence.RefreshInterval)
	// Unset presence settings fall back to defaults
	assert.Equal(t, 5, GlobalConfig.Presence.WatchInterval)
	assert.Equal(t, 16, GlobalConfig.Presence.StaleSessionHours)
}

func TestInit_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, Init())
}

func TestInit_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a mapping"), 0o644))
	t.Setenv("CONFIG_PATH", path)
	assert.Error(t, Init())
}

func TestValidateAndApplyDefaults(t *testing.T) {
	var cfg Config
	validateAndApplyDefaults(&cfg)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DefaultPresenceConfig(), cfg.Presence)

	cfg = Config{Presence: PresenceConfig{CacheTTL: -1, RefreshInterval: 10}}
	validateAndApplyDefaults(&cfg)
	assert.Equal(t, 30, cfg.Presence.CacheTTL)
	assert.Equal(t, 10, cfg.Presence.RefreshInterval)
}
