package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "factors.yaml")
	content := `
log_level: debug
output: json
cache:
  backend: redis
  redis:
    addr: redis:6380
    db: 2
    ttl: 90s
server:
  port: 9090
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, CacheRedis, cfg.Cache.Backend)
	assert.Equal(t, "redis:6380", cfg.Cache.Redis.Addr)
	assert.Equal(t, 2, cfg.Cache.Redis.DB)
	assert.Equal(t, 90*time.Second, cfg.Cache.Redis.TTL)
	// Untouched keys keep their defaults.
	assert.Equal(t, "factors:result:", cfg.Cache.Redis.Prefix)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"bad yaml":     "cache: [",
		"unknown key":  "colour: blue\n",
		"bad backend":  "cache:\n  backend: disk\n",
		"bad output":   "output: xml\n",
		"bad duration": "cache:\n  redis:\n    ttl: soon\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(content), Default())
			assert.Error(t, err)
		})
	}
}
