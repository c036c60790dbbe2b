package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerLevels(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{9, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		SetupLogger(tt.verbosity)
		assert.Equal(t, tt.want, zerolog.GlobalLevel(), "verbosity %d", tt.verbosity)
	}
}

func TestLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	path := LogFilePath()
	assert.Equal(t, filepath.Join(xdg.StateHome, "termtint", "termtint.log"), path)
}

func TestSetupLoggerCreatesLogFile(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	SetupLogger(1)

	_, err := os.Stat(LogFilePath())
	require.NoError(t, err)
}

func TestLogDuration(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	LogDuration(time.Now().Add(-time.Millisecond), "render")

	out := buf.String()
	assert.Contains(t, out, `"operation":"render"`)
	assert.Contains(t, out, "duration")
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("console")
	// Logging at a disabled level must not panic.
	logger.Trace().Msg("noop")
}
