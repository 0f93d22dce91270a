package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Load reads HOME and SEEDPLATE_* env vars, so these tests pin both
// and cannot run in parallel.

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SEEDPLATE_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "bip39_en.txt", cfg.Wordlist.Path)
	require.Equal(t, 24, cfg.Session.Words)
	require.Equal(t, 12, cfg.Plate.Rows)
	require.Equal(t, "●", cfg.UI.PunchMarker)
	require.Equal(t, "·", cfg.UI.EmptyMarker)
	require.Empty(t, cfg.Log.Path)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SEEDPLATE_CONFIG", "")
	t.Setenv("SEEDPLATE_WORDLIST_PATH", "/tmp/list.txt")
	t.Setenv("SEEDPLATE_SESSION_WORDS", "48")
	t.Setenv("SEEDPLATE_LOG_PATH", "seedplate.log")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/list.txt", cfg.Wordlist.Path)
	require.Equal(t, 48, cfg.Session.Words)
	require.Equal(t, "seedplate.log", cfg.Log.Path)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "config.toml")
	content := `
[wordlist]
path = "custom.txt"

[session]
words = 12

[plate]
rows = 6

[ui]
punch_marker = "X"
empty_marker = "."
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("SEEDPLATE_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "custom.txt", cfg.Wordlist.Path)
	require.Equal(t, 12, cfg.Session.Words)
	require.Equal(t, 6, cfg.Plate.Rows)
	require.Equal(t, "X", cfg.UI.PunchMarker)
	require.Equal(t, ".", cfg.UI.EmptyMarker)
}

func TestLoadRejectsUnevenPlateSplit(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SEEDPLATE_CONFIG", "")
	t.Setenv("SEEDPLATE_SESSION_WORDS", "10")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "multiple of plate.rows")
}

func TestLoadRejectsNonPositiveValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SEEDPLATE_CONFIG", "")
	t.Setenv("SEEDPLATE_PLATE_ROWS", "0")

	_, err := Load()
	require.Error(t, err)
}
