package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("no .tdconfig.yaml returns defaults", func(t *testing.T) {
		s, err := Init(t.TempDir())
		require.NoError(t, err)

		cfg, err := s.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
		assert.Equal(t, DefaultMaxTitleWidth, cfg.MaxTitleWidth)
		assert.Equal(t, DefaultColor, cfg.Color)
	})

	t.Run("full .tdconfig.yaml loads all values", func(t *testing.T) {
		dir := t.TempDir()
		s, err := Init(dir)
		require.NoError(t, err)

		configContent := `log_level: debug
max_title_width: 30
color: false
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".tdconfig.yaml"), []byte(configContent), 0644))

		cfg, err := s.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 30, cfg.MaxTitleWidth)
		assert.False(t, cfg.Color)
	})

	t.Run("partial .tdconfig.yaml merges with defaults", func(t *testing.T) {
		dir := t.TempDir()
		s, err := Init(dir)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(dir, ".tdconfig.yaml"), []byte("log_level: info\n"), 0644))

		cfg, err := s.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, DefaultMaxTitleWidth, cfg.MaxTitleWidth) // default
		assert.Equal(t, DefaultColor, cfg.Color)                 // default
	})

	t.Run("invalid yaml returns error", func(t *testing.T) {
		dir := t.TempDir()
		s, err := Init(dir)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(dir, ".tdconfig.yaml"), []byte("log_level: [unclosed"), 0644))

		_, err = s.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), ".tdconfig.yaml")
	})

	t.Run("config file is never written by td", func(t *testing.T) {
		s, err := Init(t.TempDir())
		require.NoError(t, err)

		_, err = s.LoadConfig()
		require.NoError(t, err)

		_, err = os.Stat(s.ConfigPath())
		assert.True(t, os.IsNotExist(err))
	})
}
