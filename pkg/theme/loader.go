package theme

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef is an adaptive color definition in YAML.
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style override in YAML. Foreground and Background name
// palette colors, not literal values.
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Faint      bool   `yaml:"faint,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Def is a single theme definition in YAML.
type Def struct {
	Name   string              `yaml:"name"`
	Color  *bool               `yaml:"color,omitempty"`
	Emoji  *bool               `yaml:"emoji,omitempty"`
	Colors map[string]ColorDef `yaml:"colors,omitempty"`
	Styles map[string]StyleDef `yaml:"styles,omitempty"`
	Icons  IconSet             `yaml:"icons,omitempty"`
	ASCII  bool                `yaml:"ascii,omitempty"`
}

// File is the top-level structure of a theme YAML file.
type File struct {
	Themes []Def `yaml:"themes"`
}

//go:embed themes.yaml
var embeddedThemes []byte

func init() {
	if len(embeddedThemes) > 0 {
		if err := RegisterData(embeddedThemes); err == nil {
			return
		}
	}

	// Broken embed; register bare approximations so lookups keep working.
	registerFallbackThemes()
}

func registerFallbackThemes() {
	Register(New("default", DefaultPalette, UnicodeIcons, true, true))
	Register(New("dark", DefaultPalette, UnicodeIcons, true, true))
	Register(New("light", DefaultPalette, UnicodeIcons, true, true))
	Register(New("mono", DefaultPalette, UnicodeIcons, false, false))
	Register(New("minimal", DefaultPalette, ASCIIIcons, true, false))
}

// Load reads a theme YAML file and registers every theme it defines.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read theme file %s: %w", path, err)
	}
	if err := RegisterData(data); err != nil {
		return fmt.Errorf("failed to load themes from %s: %w", path, err)
	}
	return nil
}

// RegisterData parses theme definitions from YAML bytes and registers them.
func RegisterData(data []byte) error {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse theme data: %w", err)
	}
	if len(file.Themes) == 0 {
		return fmt.Errorf("theme data defines no themes")
	}

	for _, def := range file.Themes {
		t, err := Build(def)
		if err != nil {
			return err
		}
		Register(t)
	}
	return nil
}

// Build constructs a Theme from a definition.
func Build(def Def) (Theme, error) {
	if def.Name == "" {
		return Theme{}, fmt.Errorf("theme definition missing name")
	}

	color := true
	if def.Color != nil {
		color = *def.Color
	}
	emoji := true
	if def.Emoji != nil {
		emoji = *def.Emoji
	}

	palette := paletteFromDefs(def.Colors)

	icons := def.Icons
	if def.ASCII {
		icons = icons.merge(ASCIIIcons)
	}

	t := New(def.Name, palette, icons, color, emoji)

	// Apply explicit style overrides on top of the derived table.
	for name, sd := range def.Styles {
		t = t.WithStyle(name, buildStyle(sd, palette, color))
	}

	return t, nil
}

// paletteFromDefs overlays named color definitions on the default palette.
func paletteFromDefs(colors map[string]ColorDef) Palette {
	p := DefaultPalette
	for name, def := range colors {
		c := lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
		switch name {
		case "primary":
			p.Primary = c
		case "secondary":
			p.Secondary = c
		case "success":
			p.Success = c
		case "error":
			p.Error = c
		case "warning":
			p.Warning = c
		case "info":
			p.Info = c
		case "heading":
			p.Heading = c
		case "text":
			p.Text = c
		case "muted":
			p.Muted = c
		case "surface":
			p.Surface = c
		case "border":
			p.Border = c
		}
	}
	return p
}

// paletteColor resolves a palette color by name.
func paletteColor(p Palette, name string) (lipgloss.AdaptiveColor, bool) {
	switch name {
	case "primary":
		return p.Primary, true
	case "secondary":
		return p.Secondary, true
	case "success":
		return p.Success, true
	case "error":
		return p.Error, true
	case "warning":
		return p.Warning, true
	case "info":
		return p.Info, true
	case "heading":
		return p.Heading, true
	case "text":
		return p.Text, true
	case "muted":
		return p.Muted, true
	case "surface":
		return p.Surface, true
	case "border":
		return p.Border, true
	}
	return lipgloss.AdaptiveColor{}, false
}

// buildStyle constructs a lipgloss style from a style definition.
func buildStyle(def StyleDef, p Palette, color bool) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Faint {
		style = style.Faint(true)
	}

	if !color {
		return style
	}

	if def.Foreground != "" {
		if c, ok := paletteColor(p, def.Foreground); ok {
			style = style.Foreground(c)
		}
	}
	if def.Background != "" {
		if c, ok := paletteColor(p, def.Background); ok {
			style = style.Background(c)
		}
	}

	return style
}
