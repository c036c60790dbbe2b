package output

import (
	"sync"
)

// Package-level default console, mirroring how zerolog exposes a
// global log.Logger. Commands that want full control build their own
// Console; everything else uses the convenience functions below.

var (
	defaultMu      sync.RWMutex
	defaultConsole *Console
)

// Default returns the package default console, creating it on first use.
func Default() *Console {
	defaultMu.RLock()
	c := defaultConsole
	defaultMu.RUnlock()
	if c != nil {
		return c
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultConsole == nil {
		defaultConsole = New()
	}
	return defaultConsole
}

// SetDefault replaces the package default console.
func SetDefault(c *Console) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultConsole = c
}

// Debug prints a debug message through the default console.
func Debug(msg string) { Default().Debug(msg) }

// Debugf prints a formatted debug message through the default console.
func Debugf(format string, args ...any) { Default().Debugf(format, args...) }

// Info prints an info message through the default console.
func Info(msg string) { Default().Info(msg) }

// Infof prints a formatted info message through the default console.
func Infof(format string, args ...any) { Default().Infof(format, args...) }

// Success prints a success message through the default console.
func Success(msg string) { Default().Success(msg) }

// Successf prints a formatted success message through the default console.
func Successf(format string, args ...any) { Default().Successf(format, args...) }

// Warning prints a warning through the default console.
func Warning(msg string) { Default().Warning(msg) }

// Warningf prints a formatted warning through the default console.
func Warningf(format string, args ...any) { Default().Warningf(format, args...) }

// Error prints an error through the default console.
func Error(msg string) { Default().Error(msg) }

// Errorf prints a formatted error through the default console.
func Errorf(format string, args ...any) { Default().Errorf(format, args...) }

// Fatal prints an error through the default console and exits.
func Fatal(msg string) { Default().Fatal(msg) }

// Fatalf prints a formatted error through the default console and exits.
func Fatalf(format string, args ...any) { Default().Fatalf(format, args...) }
