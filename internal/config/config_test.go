package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, 900, cfg.Preview.MaxWidth)
	require.Equal(t, 700, cfg.Preview.MaxHeight)
	require.Equal(t, 1, cfg.Export.Workers)
	require.Equal(t, "templates", cfg.Templates.Dir)
	require.Equal(t, 128, cfg.Thumbnails.Width)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
preview:
  max_width: 1200
  max_height: 900
export:
  workers: 4
templates:
  dir: /var/lib/studio/templates
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1200, cfg.Preview.MaxWidth)
	require.Equal(t, 900, cfg.Preview.MaxHeight)
	require.Equal(t, 4, cfg.Export.Workers)
	require.Equal(t, "/var/lib/studio/templates", cfg.Templates.Dir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("export:\n  workers: 100\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
