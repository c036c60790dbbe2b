package terminal

import (
	"io"

	"github.com/muesli/termenv"
)

// Cursor and line control. All functions write standard ANSI sequences
// through termenv and are no-ops on nil writers. Callers are expected
// to gate on Detect().IsTTY; escape sequences in piped output are
// rarely what anyone wants.

// ClearLines clears the current line and the n lines above it, leaving
// the cursor at the start of the topmost cleared line. Printing n lines
// afterwards puts the cursor back where it started.
func ClearLines(w io.Writer, n int) {
	if w == nil || n < 0 {
		return
	}
	termenv.NewOutput(w).ClearLines(n)
}

// ClearLine erases the line under the cursor.
func ClearLine(w io.Writer) {
	if w == nil {
		return
	}
	termenv.NewOutput(w).ClearLine()
}

// CursorUp moves the cursor up n lines.
func CursorUp(w io.Writer, n int) {
	if w == nil || n <= 0 {
		return
	}
	termenv.NewOutput(w).CursorUp(n)
}

// CursorDown moves the cursor down n lines.
func CursorDown(w io.Writer, n int) {
	if w == nil || n <= 0 {
		return
	}
	termenv.NewOutput(w).CursorDown(n)
}

// HideCursor makes the cursor invisible until ShowCursor or Restore.
func HideCursor(w io.Writer) {
	if w == nil {
		return
	}
	termenv.NewOutput(w).HideCursor()
	markDirty(w)
}

// ShowCursor makes the cursor visible again.
func ShowCursor(w io.Writer) {
	if w == nil {
		return
	}
	termenv.NewOutput(w).ShowCursor()
	clearDirty(w)
}

// SaveCursor records the cursor position.
func SaveCursor(w io.Writer) {
	if w == nil {
		return
	}
	termenv.NewOutput(w).SaveCursorPosition()
}

// RestoreCursor moves the cursor back to the saved position.
func RestoreCursor(w io.Writer) {
	if w == nil {
		return
	}
	termenv.NewOutput(w).RestoreCursorPosition()
}
