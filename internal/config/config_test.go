package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsZeroValue(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	enabled, set := cfg.ColorEnabled()
	require.False(t, enabled)
	require.False(t, set)
}

func TestLoadParsesColorAndRoots(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".sourcecc.toml")
	content := "color = true\nroots = [\"src\", \"vendor/src\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	enabled, set := cfg.ColorEnabled()
	require.True(t, set)
	require.True(t, enabled)
	require.Equal(t, []string{"src", "vendor/src"}, cfg.Roots)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".sourcecc.toml")
	require.NoError(t, os.WriteFile(path, []byte("color = not-a-bool"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
