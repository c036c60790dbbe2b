package terminal

import (
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/muesli/termenv"
)

// Exit restoration. HideCursor records the writer it dirtied; Restore
// undoes the damage on that same writer, exactly once no matter how
// many paths call it.

var (
	restoreMu sync.Mutex
	dirtyOut  io.Writer
)

func markDirty(w io.Writer) {
	restoreMu.Lock()
	dirtyOut = w
	restoreMu.Unlock()
}

func clearDirty(w io.Writer) {
	restoreMu.Lock()
	if dirtyOut == w {
		dirtyOut = nil
	}
	restoreMu.Unlock()
}

// Restore puts the terminal back into a usable state. Safe to call
// multiple times and from deferred paths; it only writes when a prior
// HideCursor left a writer dirty, and writes to that writer.
func Restore() {
	restoreMu.Lock()
	defer restoreMu.Unlock()
	if dirtyOut == nil {
		return
	}
	termenv.NewOutput(dirtyOut).ShowCursor()
	dirtyOut = nil
}

// RestoreOnExit installs a signal handler so an interrupted process
// still leaves the cursor visible. Call once from main.
func RestoreOnExit() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-ch
		Restore()
		signal.Stop(ch)
		// Re-raise so the default disposition applies.
		if s, ok := sig.(syscall.Signal); ok {
			_ = syscall.Kill(os.Getpid(), s)
		} else {
			os.Exit(1)
		}
	}()
}
