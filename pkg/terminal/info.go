// Package terminal detects terminal capabilities and provides cursor
// and line control over ANSI terminals.
//
// Detection runs once and is cached; Refresh re-probes after window
// resizes and SetOverride pins a fixed Info for tests or --no-color.
package terminal

import (
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorLevel is the degree of color support a terminal offers.
type ColorLevel int

const (
	// ColorNone indicates a monochrome terminal with no color support.
	ColorNone ColorLevel = iota
	// Color16 indicates basic 16-color ANSI support.
	Color16
	// Color256 indicates ANSI 256 palette support.
	Color256
	// ColorTrue indicates 24-bit true color support.
	ColorTrue
)

// String returns the conventional name of the color level.
func (l ColorLevel) String() string {
	switch l {
	case Color16:
		return "16"
	case Color256:
		return "256"
	case ColorTrue:
		return "truecolor"
	default:
		return "none"
	}
}

// Info describes the capabilities of the attached terminal.
type Info struct {
	Width      int
	Height     int
	ColorLevel ColorLevel
	IsTTY      bool
	Unicode    bool
	Emoji      bool
}

const (
	defaultWidth  = 80
	defaultHeight = 24
)

var (
	once     sync.Once
	cached   Info
	override *Info
	mu       sync.RWMutex
)

// Detect returns the cached terminal capabilities, probing on first use.
func Detect() Info {
	mu.RLock()
	if override != nil {
		info := *override
		mu.RUnlock()
		return info
	}
	mu.RUnlock()

	once.Do(func() {
		mu.Lock()
		cached = probe(os.Stdout)
		mu.Unlock()
	})

	mu.RLock()
	defer mu.RUnlock()
	return cached
}

// Refresh re-probes the terminal and returns the new capabilities.
// Overrides set via SetOverride stay in effect.
func Refresh() Info {
	mu.RLock()
	if override != nil {
		info := *override
		mu.RUnlock()
		return info
	}
	mu.RUnlock()

	info := probe(os.Stdout)
	mu.Lock()
	cached = info
	mu.Unlock()
	return info
}

// SetOverride pins terminal capabilities, bypassing detection. Passing
// nil removes the override.
func SetOverride(info *Info) {
	mu.Lock()
	defer mu.Unlock()
	override = info
}

// probe inspects the environment and the given file for capabilities.
func probe(f *os.File) Info {
	info := Info{
		Width:  defaultWidth,
		Height: defaultHeight,
	}

	info.IsTTY = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())

	if w, h, err := term.GetSize(int(f.Fd())); err == nil && w > 0 && h > 0 {
		info.Width = w
		info.Height = h
	}

	info.ColorLevel = colorLevel(f)
	info.Unicode = unicodeLocale()
	info.Emoji = info.Unicode && runtime.GOOS != "windows"

	return info
}

// colorLevel maps environment facts to a color level. NO_COLOR and
// TERM=dumb force monochrome; piped output degrades silently.
func colorLevel(f *os.File) ColorLevel {
	if os.Getenv("NO_COLOR") != "" {
		return ColorNone
	}
	if os.Getenv("TERM") == "dumb" {
		return ColorNone
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return ColorNone
	}

	switch termenv.ColorProfile() {
	case termenv.TrueColor:
		return ColorTrue
	case termenv.ANSI256:
		return Color256
	case termenv.ANSI:
		return Color16
	default:
		return ColorNone
	}
}

// unicodeLocale reports whether the locale advertises UTF-8.
func unicodeLocale() bool {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(key); v != "" {
			v = strings.ToUpper(v)
			return strings.Contains(v, "UTF-8") || strings.Contains(v, "UTF8")
		}
	}
	// No locale info; modern terminal emulators default to UTF-8.
	return runtime.GOOS != "windows"
}
