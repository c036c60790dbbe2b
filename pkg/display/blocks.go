package display

import (
	"strings"

	"github.com/arthur-debert/termtint/pkg/output"
	"github.com/arthur-debert/termtint/pkg/terminal"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Table renders headers and rows as an aligned table with a themed
// header row.
func Table(c *output.Console, headers []string, rows [][]string) (string, error) {
	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, headers)
	data = append(data, rows...)

	style := tableHeaderStyle(c)
	table := pterm.DefaultTable.WithHasHeader().WithHeaderStyle(&style).WithData(data)
	rendered, err := table.Srender()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(rendered, "\n"), nil
}

// tableHeaderStyle maps the theme's title style onto a pterm style.
// Text attributes carry over; plain format gets no styling at all so
// piped tables stay free of escape sequences.
func tableHeaderStyle(c *output.Console) pterm.Style {
	style := pterm.Style{}
	if c.Format() != output.FormatTerminal {
		return style
	}

	title := c.Theme().Style("title")
	if title.GetBold() {
		style = append(style, pterm.Bold)
	}
	if title.GetItalic() {
		style = append(style, pterm.Italic)
	}
	if title.GetUnderline() {
		style = append(style, pterm.Underscore)
	}
	return style
}

// Rule renders a horizontal rule across the terminal, optionally with
// a centered title.
func Rule(c *output.Console, title string) string {
	width := terminal.Detect().Width
	if width <= 0 {
		width = 80
	}

	line := "─"
	if c.Format() != output.FormatTerminal && !terminal.Detect().Unicode {
		line = "-"
	}

	if title == "" {
		rule := strings.Repeat(line, width)
		if c.Format() == output.FormatTerminal {
			rule = c.Theme().Style("muted").Render(rule)
		}
		return rule
	}

	// Center the title inside the rule with one space of padding.
	label := " " + title + " "
	side := (width - len([]rune(label))) / 2
	if side < 2 {
		side = 2
	}
	left := strings.Repeat(line, side)
	rightN := width - side - len([]rune(label))
	if rightN < 2 {
		rightN = 2
	}
	right := strings.Repeat(line, rightN)

	if c.Format() == output.FormatTerminal {
		th := c.Theme()
		return th.Style("muted").Render(left) +
			th.Style("title").Render(label) +
			th.Style("muted").Render(right)
	}
	return left + label + right
}

// Header renders text inside a bordered box.
func Header(c *output.Console, text string) string {
	if c.Format() != output.FormatTerminal {
		rule := strings.Repeat("=", len([]rune(text))+4)
		return rule + "\n| " + text + " |\n" + rule
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.Theme().Palette.Border).
		Padding(0, 2).
		Bold(true)
	return style.Render(text)
}

// Markdown renders markdown source for the terminal via glamour,
// wrapped to the terminal width. Rendering failures fall back to the
// raw source rather than erroring an output path.
func Markdown(c *output.Console, source string) string {
	width := terminal.Detect().Width
	if width <= 0 || width > 120 {
		width = 100
	}

	style := glamour.WithAutoStyle()
	if c.Format() != output.FormatTerminal {
		style = glamour.WithStandardStyle("notty")
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return source
	}
	rendered, err := renderer.Render(source)
	if err != nil {
		return source
	}
	return strings.TrimRight(rendered, "\n")
}
