package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"database_path": "/data/palette.db",
		"log_level":     "warn",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "/data/palette.db", cfg.DatabasePath)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("no config flag means no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{DatabasePath: "defaults.db", LogLevel: "error"}
		parseJson(cfg)

		assert.Equal(t, "defaults.db", cfg.DatabasePath)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("absent fields keep current values", func(t *testing.T) {
		partial := writeTempJSON(t, map[string]any{"log_level": "debug"})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{DatabasePath: "keep.db", LogLevel: "info"}
		parseJson(cfg)

		assert.Equal(t, "keep.db", cfg.DatabasePath)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("flags override json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path, "-l", "debug"}

		cfg := LoadConfig()

		assert.Equal(t, "/data/palette.db", cfg.DatabasePath)
		assert.Equal(t, "debug", cfg.LogLevel)
	})
}
