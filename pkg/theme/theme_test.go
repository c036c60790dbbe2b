package theme_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/termtint/pkg/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Dummy renderer so styling is deterministic regardless of the
	// environment running the tests.
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(io.Discard))
	os.Exit(m.Run())
}

func TestBuiltinThemes(t *testing.T) {
	for _, name := range []string{"default", "dark", "light", "mono", "minimal"} {
		t.Run(name, func(t *testing.T) {
			th, err := theme.Get(name)
			require.NoError(t, err)
			assert.Equal(t, name, th.Name)

			// Every built-in defines the full semantic style set.
			for _, style := range []string{
				"title", "subtitle", "success", "error", "warning",
				"info", "debug", "muted", "bold", "code", "path",
				"prompt", "value",
			} {
				assert.True(t, th.HasStyle(style), "missing style %q", style)
			}
		})
	}
}

func TestGetUnknownTheme(t *testing.T) {
	th, err := theme.Get("no-such-theme")
	require.Error(t, err)
	assert.ErrorIs(t, err, theme.ErrUnknownTheme)

	// Falls back to the default theme so callers can keep going.
	assert.Equal(t, theme.DefaultName, th.Name)
}

func TestGetEmptyNameIsDefault(t *testing.T) {
	th, err := theme.Get("")
	require.NoError(t, err)
	assert.Equal(t, theme.DefaultName, th.Name)
}

func TestStyleUnknownNameIsZero(t *testing.T) {
	th := theme.Default()
	s := th.Style("nonexistent")
	assert.Equal(t, "hello", s.Render("hello"))
}

func TestMonoThemeHasNoColor(t *testing.T) {
	th, err := theme.Get("mono")
	require.NoError(t, err)
	assert.False(t, th.Color)
	assert.False(t, th.Emoji)
}

func TestMinimalThemeUsesASCIIIcons(t *testing.T) {
	th, err := theme.Get("minimal")
	require.NoError(t, err)
	assert.Equal(t, "+", th.Icons.Success)
	assert.Equal(t, "x", th.Icons.Error)
	assert.False(t, th.Emoji)
}

func TestDefaultThemeIcons(t *testing.T) {
	th := theme.Default()
	assert.Equal(t, "✓", th.Icons.Success)
	assert.Equal(t, "✗", th.Icons.Error)
}

func TestNames(t *testing.T) {
	names := theme.Names()
	assert.Contains(t, names, "default")
	assert.Contains(t, names, "mono")

	// Sorted.
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i])
	}
}

func TestRegisterOverride(t *testing.T) {
	custom := theme.New("custom-test", theme.DefaultPalette, theme.ASCIIIcons, true, false)
	theme.Register(custom)

	got, err := theme.Get("custom-test")
	require.NoError(t, err)
	assert.Equal(t, "custom-test", got.Name)
	assert.Equal(t, ">", got.Icons.Pointer)
}

func TestLoadThemeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "themes.yaml")

	data := `
themes:
  - name: ocean
    color: true
    emoji: true
    colors:
      primary: {light: "#005F87", dark: "#5FAFD7"}
    styles:
      title: {bold: true, underline: true, foreground: primary}
    icons:
      success: "~"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	require.NoError(t, theme.Load(path))

	th, err := theme.Get("ocean")
	require.NoError(t, err)
	assert.Equal(t, "ocean", th.Name)
	assert.Equal(t, "~", th.Icons.Success)
	// Unset icons fall back to the unicode set.
	assert.Equal(t, "✗", th.Icons.Error)
}

func TestLoadMissingFile(t *testing.T) {
	err := theme.Load("/nonexistent/themes.yaml")
	assert.Error(t, err)
}

func TestRegisterDataInvalid(t *testing.T) {
	t.Run("bad yaml", func(t *testing.T) {
		err := theme.RegisterData([]byte("themes: ["))
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		err := theme.RegisterData([]byte("themes: []"))
		assert.Error(t, err)
	})

	t.Run("missing name", func(t *testing.T) {
		err := theme.RegisterData([]byte("themes:\n  - color: true"))
		assert.Error(t, err)
	})
}

func TestMessageTextUnchangedAcrossThemes(t *testing.T) {
	// Styling decorates but never rewrites the text itself.
	const msg = "deployment finished in 3.2s"

	for _, name := range theme.Names() {
		th, err := theme.Get(name)
		require.NoError(t, err)
		for _, style := range []string{"success", "error", "muted", "title"} {
			rendered := th.Style(style).Render(msg)
			assert.Contains(t, rendered, msg, "theme %s style %s", name, style)
		}
	}
}
