// Package display renders rich content blocks: source code, diffs,
// tables, rules and markdown. Every helper takes a Console for theme
// and format decisions and returns the rendered string; printing is
// the caller's business.
package display

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/arthur-debert/termtint/pkg/output"
	"github.com/arthur-debert/termtint/pkg/terminal"
)

// chromaStyle is the highlight palette used for code blocks. Themes
// control everything else; syntax palettes are chroma's department.
const chromaStyle = "monokai"

// chromaFormatter picks the chroma formatter matching the terminal's
// color depth.
func chromaFormatter() string {
	switch terminal.Detect().ColorLevel {
	case terminal.ColorTrue:
		return "terminal16m"
	case terminal.Color256:
		return "terminal256"
	case terminal.Color16:
		return "terminal16"
	default:
		return "noop"
	}
}

// Code renders source code with syntax highlighting and a line-number
// gutter. In plain text mode the source is returned with the gutter
// but no coloring. Unknown languages fall back to chroma's analysis.
func Code(c *output.Console, source, lang string) string {
	source = strings.TrimRight(source, "\n")

	highlighted := source
	if c.Format() == output.FormatTerminal {
		var sb strings.Builder
		if err := quick.Highlight(&sb, source, lang, chromaFormatter(), chromaStyle); err == nil {
			highlighted = strings.TrimRight(sb.String(), "\n")
		}
	}

	lines := strings.Split(highlighted, "\n")
	width := len(fmt.Sprintf("%d", len(lines)))

	var sb strings.Builder
	for i, line := range lines {
		gutter := fmt.Sprintf("%*d │ ", width, i+1)
		if c.Format() == output.FormatTerminal {
			gutter = c.Theme().Style("muted").Render(gutter)
		}
		sb.WriteString(gutter)
		sb.WriteString(line)
		if i < len(lines)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// JSON renders v as indented JSON, syntax highlighted on a terminal.
func JSON(c *output.Console, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal value: %w", err)
	}

	if c.Format() != output.FormatTerminal {
		return string(data), nil
	}

	var sb strings.Builder
	if err := quick.Highlight(&sb, string(data), "json", chromaFormatter(), chromaStyle); err != nil {
		return string(data), nil
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
