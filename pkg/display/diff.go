package display

import (
	"strings"

	"github.com/arthur-debert/termtint/pkg/output"
	"github.com/pmezard/go-difflib/difflib"
)

// diffOp is one line of diff output.
type diffOp struct {
	kind byte // '+', '-' or ' '
	text string
}

// Diff computes a line diff between before and after and renders it
// with +/- gutters. Added lines take the success style, removed lines
// the error style, context the muted style; the gutters survive in
// plain mode so piped diffs stay readable.
func Diff(c *output.Console, before, after string) string {
	a := splitLines(before)
	b := splitLines(after)
	return renderOps(c, diffLines(a, b))
}

// DiffUnified colorizes an existing unified diff without altering its
// content.
func DiffUnified(c *output.Console, unified string) string {
	if c.Format() != output.FormatTerminal {
		return strings.TrimRight(unified, "\n")
	}

	th := c.Theme()
	lines := splitLines(unified)
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			out[i] = th.Style("bold").Render(line)
		case strings.HasPrefix(line, "@@"):
			out[i] = th.Style("info").Render(line)
		case strings.HasPrefix(line, "+"):
			out[i] = th.Style("success").Render(line)
		case strings.HasPrefix(line, "-"):
			out[i] = th.Style("error").Render(line)
		default:
			out[i] = line
		}
	}
	return strings.Join(out, "\n")
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// diffLines turns difflib's opcodes into the flat edit script the
// renderer consumes. Replacements emit removals before additions.
func diffLines(a, b []string) []diffOp {
	var ops []diffOp
	for _, op := range difflib.NewMatcher(a, b).GetOpCodes() {
		switch op.Tag {
		case 'e':
			for _, line := range a[op.I1:op.I2] {
				ops = append(ops, diffOp{' ', line})
			}
		case 'd':
			for _, line := range a[op.I1:op.I2] {
				ops = append(ops, diffOp{'-', line})
			}
		case 'i':
			for _, line := range b[op.J1:op.J2] {
				ops = append(ops, diffOp{'+', line})
			}
		case 'r':
			for _, line := range a[op.I1:op.I2] {
				ops = append(ops, diffOp{'-', line})
			}
			for _, line := range b[op.J1:op.J2] {
				ops = append(ops, diffOp{'+', line})
			}
		}
	}
	return ops
}

func renderOps(c *output.Console, ops []diffOp) string {
	th := c.Theme()
	rich := c.Format() == output.FormatTerminal

	var sb strings.Builder
	for i, op := range ops {
		line := string(op.kind) + " " + op.text
		if rich {
			switch op.kind {
			case '+':
				line = th.Style("success").Render(line)
			case '-':
				line = th.Style("error").Render(line)
			default:
				line = th.Style("muted").Render(line)
			}
		}
		sb.WriteString(line)
		if i < len(ops)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
