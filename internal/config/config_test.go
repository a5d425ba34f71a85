package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.General.Interval)
	assert.Equal(t, "en", cfg.General.Language)
	assert.Equal(t, "en-US", cfg.Format.Locale)
	assert.Equal(t, "USD", cfg.Format.Currency)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Format.Locale = "de-DE"
	cfg.Format.Currency = "EUR"
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "de-DE", loaded.Format.Locale)
	assert.Equal(t, "EUR", loaded.Format.Currency)
}

func TestLoad_Precision(t *testing.T) {
	path := filepath.Join(t.TempDir(), "precision.toml")
	data := `
[format]
locale = "ja-JP"
precision = [
  { below = 1, decimals = 3 },
  { below = 1000, decimals = 1 },
]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Format.Precision, 2)
	assert.Equal(t, 3, cfg.Format.Precision.Decimals(0.5))
	assert.Equal(t, 10, cfg.General.Interval, "unset interval keeps the default")
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("{{invalid toml}}"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.toml")
	data := `
[general]
interval = 0
language = "xx"

[format]
locale = "??"
precision = [{ below = 10, decimals = 1 }, { below = 100, decimals = 4 }]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	_, err := Load(path)
	require.Error(t, err)
	for _, want := range []string{"interval", "language", "format.locale", "format.precision"} {
		assert.ErrorContains(t, err, want)
	}
}

func TestValidate_Overrides(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.General.Language = "fr"
	assert.ErrorContains(t, cfg.Validate(), "general.language")
}

func TestSave_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perms.toml")
	require.NoError(t, Save(DefaultConfig(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestDefaultPath_NotEmpty(t *testing.T) {
	assert.NotEmpty(t, DefaultPath())
}
