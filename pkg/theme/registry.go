package theme

import (
	"fmt"
	"sort"
	"sync"
)

// DefaultName is the theme used when no other selection applies.
const DefaultName = "default"

// ErrUnknownTheme is wrapped by Get for names with no registered theme.
var ErrUnknownTheme = fmt.Errorf("unknown theme")

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

// Register adds or replaces a theme under its name.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[t.Name] = t
}

// Get returns the named theme. Unknown names return the default theme
// together with an error wrapping ErrUnknownTheme, so callers can
// report the bad name and keep going.
func Get(name string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	if name == "" {
		name = DefaultName
	}
	if t, ok := registry[name]; ok {
		return t, nil
	}
	return registry[DefaultName], fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// Default returns the default theme.
func Default() Theme {
	t, _ := Get(DefaultName)
	return t
}

// Names returns the registered theme names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
