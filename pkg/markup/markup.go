// Package markup is a small template engine for rich terminal rendering.
//
// It combines Go's text/template with lipgloss styling through XML-like
// tags, so output can be written declaratively:
//
//	styles := markup.StyleMap{
//		"title": lipgloss.NewStyle().Bold(true),
//		"date":  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
//	}
//	out, err := markup.Render(`<title>{{.Title}}</title>`, data, styles)
//
// Tags nest and style inside-out. Unknown tags render their content
// unstyled. The special <no-format> tag renders its content only when
// the terminal has no color support, which lets templates carry plain
// text fallbacks:
//
//	<success>done</success><no-format> OK</no-format>
//
// Invalid XML is returned unchanged rather than erroring; templates
// degrade to their raw text instead of breaking output paths.
package markup

import (
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/beevik/etree"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// StyleMap maps tag names to the styles applied to their content.
type StyleMap = map[string]lipgloss.Style

// noFormatTag renders only when color is unavailable.
const noFormatTag = "no-format"

var (
	rendererMu      sync.RWMutex
	defaultRenderer = lipgloss.DefaultRenderer()
)

// SetDefaultRenderer sets the renderer used to decide color support
// for <no-format> handling. Tests pin a buffer-backed renderer here.
func SetDefaultRenderer(r *lipgloss.Renderer) {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	defaultRenderer = r
}

func colorEnabled() bool {
	rendererMu.RLock()
	defer rendererMu.RUnlock()
	return defaultRenderer.ColorProfile() != termenv.Ascii
}

// Render expands tmpl as a Go template with data, then expands style tags.
func Render(tmpl string, data any, styles StyleMap) (string, error) {
	t, err := template.New("markup").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return ExpandTags(sb.String(), styles)
}

// RenderPlain expands tmpl as a Go template with data, then strips all
// style tags. This is the text-mode counterpart of Render.
func RenderPlain(tmpl string, data any) (string, error) {
	t, err := template.New("markup").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return StripTags(sb.String()), nil
}

// ExpandTags replaces style tags in s with styled text. Tags without a
// matching style render their content unchanged. Invalid XML returns
// the input as-is.
func ExpandTags(s string, styles StyleMap) (string, error) {
	root, ok := parse(s)
	if !ok {
		return s, nil
	}
	return renderChildren(root, styles, colorEnabled()), nil
}

// StripTags removes all style tags, returning the plain text content.
// <no-format> content is kept; plain text is exactly when it applies.
func StripTags(s string) string {
	root, ok := parse(s)
	if !ok {
		return s
	}
	return stripChildren(root)
}

// parse wraps s in a synthetic root so fragments with multiple
// top-level tags parse as one document.
func parse(s string) (*etree.Element, bool) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString("<markup>" + s + "</markup>"); err != nil {
		return nil, false
	}
	root := doc.Root()
	if root == nil {
		return nil, false
	}
	return root, true
}

func renderChildren(el *etree.Element, styles StyleMap, color bool) string {
	var sb strings.Builder
	for _, child := range el.Child {
		switch node := child.(type) {
		case *etree.CharData:
			sb.WriteString(node.Data)
		case *etree.Element:
			sb.WriteString(renderElement(node, styles, color))
		}
	}
	return sb.String()
}

func renderElement(el *etree.Element, styles StyleMap, color bool) string {
	if el.Tag == noFormatTag {
		if color {
			return ""
		}
		return renderChildren(el, styles, color)
	}

	content := renderChildren(el, styles, color)
	if style, ok := styles[el.Tag]; ok {
		return style.Render(content)
	}
	return content
}

func stripChildren(el *etree.Element) string {
	var sb strings.Builder
	for _, child := range el.Child {
		switch node := child.(type) {
		case *etree.CharData:
			sb.WriteString(node.Data)
		case *etree.Element:
			sb.WriteString(stripChildren(node))
		}
	}
	return sb.String()
}
