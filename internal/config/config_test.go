package config

import (
	"os"
	"testing"

	"github.com/iftikharramnandan/chess960-fen-generator/pkg/fengen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"SERVER_HOST", "SERVER_PORT", "MONGO_ADDRESS", "MONGO_DATABASE", "MONGO_COLLECTION",
		"LOG_LEVEL", "LOG_DEVELOPMENT", "DEFAULT_COLOR", "RECENT_LIMIT",
	} {
		// Setenv restores the old value on cleanup, Unsetenv hides it from envconfig
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestInitConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := InitConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "fengen", cfg.Database.DatabaseName)
	assert.Equal(t, "positions", cfg.Database.Collection)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 20, cfg.Generator.RecentLimit)
	assert.False(t, cfg.PersistenceEnabled())

	color, err := cfg.DefaultColor()
	require.NoError(t, err)
	assert.Equal(t, fengen.White, color)
}

func TestInitConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("MONGO_ADDRESS", "mongodb://localhost:27017")
	t.Setenv("LOG_DEVELOPMENT", "true")
	t.Setenv("DEFAULT_COLOR", "black")
	t.Setenv("RECENT_LIMIT", "5")

	cfg, err := InitConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr())
	assert.True(t, cfg.PersistenceEnabled())
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, 5, cfg.Generator.RecentLimit)

	color, err := cfg.DefaultColor()
	require.NoError(t, err)
	assert.Equal(t, fengen.Black, color)
}

func TestInitConfigErrors(t *testing.T) {
	t.Run("bad color", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DEFAULT_COLOR", "green")
		_, err := InitConfig()
		assert.Error(t, err)
	})

	t.Run("bad limit", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RECENT_LIMIT", "0")
		_, err := InitConfig()
		assert.Error(t, err)
	})

	t.Run("malformed limit", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RECENT_LIMIT", "twenty")
		_, err := InitConfig()
		assert.Error(t, err)
	})
}
