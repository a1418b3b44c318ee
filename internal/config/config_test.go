package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should fall back to defaults when no file exists", func(t *testing.T) {
		// when
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.NoError(t, err)
		assert.Equal(t, ":8181", cfg.Listen)
		assert.Equal(t, "./data/expenses.db", cfg.Database.Path)
	})

	t.Run("should read values from a yaml file", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "application.yaml")
		content := "listen: \":9999\"\ndb:\n  path: \"/tmp/test.db\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		// when
		cfg, err := Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, ":9999", cfg.Listen)
		assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	})

	t.Run("should let environment variables override the file", func(t *testing.T) {
		// given
		t.Setenv("EXPENSE_LISTEN", ":7777")

		// when
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.NoError(t, err)
		assert.Equal(t, ":7777", cfg.Listen)
	})
}
