package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// unsetEnv clears a variable for the test while letting t.Setenv restore the
// original value afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SPOTIFY_CLIENT_ID", "SPOTIFY_CLIENT_SECRET", "PORT",
		"LOG_LEVEL", "LOG_PATH", "LOG_MAX_SIZE", "LOG_MAX_BACKUPS", "LOG_MAX_AGE",
	} {
		unsetEnv(t, key)
	}

	cfg := Load()

	assert.Empty(t, cfg.SpotifyClientID)
	assert.Empty(t, cfg.SpotifyClientSecret)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogPath)
	assert.Equal(t, 100, cfg.LogMaxSize)
	assert.Equal(t, 3, cfg.LogMaxBackups)
	assert.Equal(t, 28, cfg.LogMaxAge)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SPOTIFY_CLIENT_ID", "test-id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_MAX_SIZE", "50")

	cfg := Load()

	assert.Equal(t, "test-id", cfg.SpotifyClientID)
	assert.Equal(t, "test-secret", cfg.SpotifyClientSecret)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 50, cfg.LogMaxSize)
}

func TestGetEnvIntInvalidValue(t *testing.T) {
	t.Setenv("LOG_MAX_SIZE", "not-a-number")

	cfg := Load()

	assert.Equal(t, 100, cfg.LogMaxSize)
}
