package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Applies defaults", func(t *testing.T) {
		// Given: a config file with a single key
		path := writeConfig(t, "log-level: debug\n")

		// When: it is loaded
		conf, err := Load(path)

		// Then: everything else takes the defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "words.db", conf.SQLiteStoragePath)
		assert.True(t, conf.SeedWords)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 10*time.Minute, conf.Redis.CacheTTL)
		assert.Equal(t, time.Second, conf.Game.TickInterval)
	})

	t.Run("Reads nested values", func(t *testing.T) {
		// Given: a config with redis and game sections
		path := writeConfig(t, `
http-port: "8081"
redis:
  enabled: true
  host: cache
  port: "6380"
  cache-ttl: 30s
game:
  tick-interval: 500ms
`)

		// When: it is loaded
		conf, err := Load(path)

		// Then: the values are used
		require.NoError(t, err)
		assert.Equal(t, "8081", conf.HTTPPort)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 30*time.Second, conf.Redis.CacheTTL)
		assert.Equal(t, 500*time.Millisecond, conf.Game.TickInterval)
	})

	t.Run("Missing file", func(t *testing.T) {
		// When: a missing file is loaded
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: an error is returned and MustLoad panics
		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(filepath.Join(t.TempDir(), "missing.yml")) })
	})
}
