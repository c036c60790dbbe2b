package output

import (
	"github.com/pterm/pterm"
)

// Spinner is a progress indicator handle. On a live terminal it wraps a
// pterm spinner; elsewhere it degrades to plain info lines so piped
// output stays readable.
type Spinner struct {
	console *Console
	printer *pterm.SpinnerPrinter
	message string
}

// Spinner starts a progress indicator with the given message.
func (c *Console) Spinner(msg string) *Spinner {
	s := &Spinner{console: c, message: msg}

	if !c.Interactive() || c.quiet {
		if !c.quiet {
			c.Infof("%s %s", msg, c.theme.Icons.Ellipsis)
		}
		return s
	}

	printer, err := pterm.DefaultSpinner.WithWriter(c.out).Start(msg)
	if err != nil {
		c.Info(msg)
		return s
	}
	s.printer = printer
	return s
}

// UpdateText changes the spinner message.
func (s *Spinner) UpdateText(msg string) {
	s.message = msg
	if s.printer != nil {
		s.printer.UpdateText(msg)
	}
}

// Success stops the spinner with a success line.
func (s *Spinner) Success(msg string) {
	if msg == "" {
		msg = s.message
	}
	if s.printer != nil {
		s.printer.Success(msg)
		return
	}
	s.console.Success(msg)
}

// Fail stops the spinner with an error line.
func (s *Spinner) Fail(msg string) {
	if msg == "" {
		msg = s.message
	}
	if s.printer != nil {
		s.printer.Fail(msg)
		return
	}
	s.console.Error(msg)
}

// Stop halts the spinner without a status line.
func (s *Spinner) Stop() {
	if s.printer != nil {
		_ = s.printer.Stop()
	}
}
