// Package theme defines the visual styling for termtint output.
//
// A Theme is a named bundle of adaptive colors, semantic lipgloss styles
// and icons that is applied uniformly by the output, prompt and display
// packages. Style names are semantic ("success", "muted", "code") and are
// also usable as tags in markup templates:
//
//	<success>Operation completed</success>
//	<path>~/.config/termtint</path>
//
// Themes never alter message text, only its decoration.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is a named bundle of style, color and icon choices.
type Theme struct {
	Name    string
	Palette Palette
	Icons   IconSet

	// Color disables all color attributes when false; bold and
	// other text attributes survive.
	Color bool

	// Emoji gates decorative glyphs in prompts and spinners. Icons
	// themselves degrade separately through IconSet.
	Emoji bool

	styles map[string]lipgloss.Style
}

// Style returns the named semantic style. Unknown names return a zero
// style so callers never have to guard lookups.
func (t Theme) Style(name string) lipgloss.Style {
	if s, ok := t.styles[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// HasStyle reports whether the theme defines the named style.
func (t Theme) HasStyle(name string) bool {
	_, ok := t.styles[name]
	return ok
}

// StyleNames returns the semantic style names the theme defines.
func (t Theme) StyleNames() []string {
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	return names
}

// Styles returns a copy of the full style table, keyed by semantic name.
// The markup package consumes this as its StyleMap.
func (t Theme) Styles() map[string]lipgloss.Style {
	out := make(map[string]lipgloss.Style, len(t.styles))
	for name, s := range t.styles {
		out[name] = s
	}
	return out
}

// WithStyle returns a copy of the theme with the named style replaced.
func (t Theme) WithStyle(name string, style lipgloss.Style) Theme {
	styles := t.Styles()
	styles[name] = style
	t.styles = styles
	return t
}

// buildStyles derives the semantic style table from the palette,
// honoring the Color flag.
func buildStyles(p Palette, color bool) map[string]lipgloss.Style {
	fg := func(c lipgloss.AdaptiveColor) lipgloss.Style {
		s := lipgloss.NewStyle()
		if color {
			s = s.Foreground(c)
		}
		return s
	}

	styles := map[string]lipgloss.Style{
		"title":     fg(p.Heading).Bold(true),
		"subtitle":  fg(p.Heading).Bold(true),
		"text":      fg(p.Text),
		"muted":     fg(p.Muted),
		"success":   fg(p.Success).Bold(true),
		"error":     fg(p.Error).Bold(true),
		"warning":   fg(p.Warning).Bold(true),
		"info":      fg(p.Info),
		"debug":     fg(p.Muted),
		"prompt":    fg(p.Primary).Bold(true),
		"value":     fg(p.Secondary),
		"path":      fg(p.Secondary).Italic(true),
		"bold":      lipgloss.NewStyle().Bold(true),
		"italic":    lipgloss.NewStyle().Italic(true),
		"underline": lipgloss.NewStyle().Underline(true),
	}

	code := lipgloss.NewStyle().Padding(0, 1)
	if color {
		code = code.Foreground(p.Primary).Background(p.Surface)
	}
	styles["code"] = code

	return styles
}

// New builds a theme from a palette with the full semantic style set.
func New(name string, palette Palette, icons IconSet, color, emoji bool) Theme {
	return Theme{
		Name:    name,
		Palette: palette,
		Icons:   icons.merge(UnicodeIcons),
		Color:   color,
		Emoji:   emoji,
		styles:  buildStyles(palette, color),
	}
}
