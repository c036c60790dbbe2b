package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/termtint/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfigHome points XDG_CONFIG_HOME at a temp dir for the test.
func withConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	withConfigHome(t)

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.Theme)
	assert.Equal(t, "auto", cfg.Color)
	assert.True(t, cfg.Emoji)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.Quiet)
	assert.Empty(t, cfg.ThemeFiles)
}

func TestLoadUserFile(t *testing.T) {
	dir := withConfigHome(t)

	path := filepath.Join(dir, "termtint", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`
theme = "mono"
quiet = true
theme_files = ["/etc/termtint/extra.yaml"]
`), 0o644))

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "mono", cfg.Theme)
	assert.True(t, cfg.Quiet)
	assert.Equal(t, []string{"/etc/termtint/extra.yaml"}, cfg.ThemeFiles)
	// Untouched keys keep their defaults.
	assert.Equal(t, "auto", cfg.Color)
}

func TestLoadMalformedUserFile(t *testing.T) {
	dir := withConfigHome(t)

	path := filepath.Join(dir, "termtint", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("theme = [broken"), 0o644))

	_, err := config.Load(nil)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	withConfigHome(t)

	t.Setenv("TERMTINT_THEME", "minimal")
	t.Setenv("TERMTINT_VERBOSE", "true")

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "minimal", cfg.Theme)
	assert.True(t, cfg.Verbose)
}

func TestOverridesWinOverEnv(t *testing.T) {
	withConfigHome(t)

	t.Setenv("TERMTINT_THEME", "minimal")

	cfg, err := config.Load(map[string]any{
		"theme": "mono",
		"quiet": true,
	})
	require.NoError(t, err)

	assert.Equal(t, "mono", cfg.Theme)
	assert.True(t, cfg.Quiet)
}

func TestDefaultTOML(t *testing.T) {
	out, err := config.DefaultTOML()
	require.NoError(t, err)
	assert.Contains(t, out, `theme = 'default'`)
	assert.Contains(t, out, `color = 'auto'`)
}
