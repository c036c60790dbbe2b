package output

import (
	"fmt"
	"strings"
)

// Level is the severity/category tag of an output line. It controls
// verbosity filtering and which theme style decorates the line.
type Level int

const (
	// LevelDebug prints only when the console is verbose.
	LevelDebug Level = iota
	// LevelInfo is ordinary progress output.
	LevelInfo
	// LevelSuccess marks a completed operation.
	LevelSuccess
	// LevelWarning signals something that might break; goes to stderr.
	LevelWarning
	// LevelError signals something broken; goes to stderr.
	LevelError
	// LevelFatal prints like an error, then terminates the process.
	LevelFatal
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ParseLevel parses a level name.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "success":
		return LevelSuccess, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return LevelInfo, fmt.Errorf("unknown level: %s", s)
	}
}

// styleName maps the level to its theme style.
func (l Level) styleName() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError, LevelFatal:
		return "error"
	default:
		return "info"
	}
}
