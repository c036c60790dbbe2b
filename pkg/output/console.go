// Package output provides leveled, theme-aware console output.
//
// The central type is Console, an explicit configuration object
// carrying writers, the active theme, verbosity and quiet flags.
// Nothing here mutates global state besides the swappable package
// default console, so tests construct their own Console with buffer
// writers and a fake exit func.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/termtint/pkg/markup"
	"github.com/arthur-debert/termtint/pkg/terminal"
	"github.com/arthur-debert/termtint/pkg/theme"
	"github.com/rs/zerolog"
)

// Console writes leveled, themed output. The zero value is not usable;
// construct with New.
type Console struct {
	out     io.Writer
	errOut  io.Writer
	theme   theme.Theme
	format  Format
	verbose bool
	quiet   bool
	exit    func(int)
	logger  zerolog.Logger
}

// Option configures a Console.
type Option func(*Console)

// WithTheme sets the active theme.
func WithTheme(t theme.Theme) Option {
	return func(c *Console) { c.theme = t }
}

// WithWriter sets the writer for debug/info/success lines.
func WithWriter(w io.Writer) Option {
	return func(c *Console) { c.out = w }
}

// WithErrWriter sets the writer for warning/error/fatal lines.
func WithErrWriter(w io.Writer) Option {
	return func(c *Console) { c.errOut = w }
}

// WithFormat forces an output format instead of auto-detection.
func WithFormat(f Format) Option {
	return func(c *Console) { c.format = f }
}

// WithVerbose enables debug output.
func WithVerbose(v bool) Option {
	return func(c *Console) { c.verbose = v }
}

// WithQuiet suppresses everything below warning.
func WithQuiet(q bool) Option {
	return func(c *Console) { c.quiet = q }
}

// WithExitFunc replaces the process-exit hook used by Fatal.
func WithExitFunc(fn func(int)) Option {
	return func(c *Console) { c.exit = fn }
}

// WithLogger mirrors every output line to the given structured logger
// at debug level. Off by default so library users don't get surprise
// log output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Console) { c.logger = logger }
}

// New creates a Console writing to stdout/stderr with the default
// theme and auto-detected format.
func New(opts ...Option) *Console {
	c := &Console{
		out:    os.Stdout,
		errOut: os.Stderr,
		theme:  theme.Default(),
		format: FormatAuto,
		exit:   os.Exit,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.format == FormatAuto {
		c.format = resolveFormat(c.out)
	}
	return c
}

// resolveFormat detects the format for the writer, falling back to
// plain text for anything that isn't a real file.
func resolveFormat(w io.Writer) Format {
	if f, ok := w.(*os.File); ok {
		return DetectFormat(f)
	}
	return FormatText
}

// Theme returns the console's active theme.
func (c *Console) Theme() theme.Theme {
	return c.theme
}

// Format returns the console's resolved output format.
func (c *Console) Format() Format {
	return c.format
}

// Verbose reports whether debug output is enabled.
func (c *Console) Verbose() bool {
	return c.verbose
}

// Quiet reports whether sub-warning output is suppressed.
func (c *Console) Quiet() bool {
	return c.quiet
}

// Writer returns the writer ordinary output goes to.
func (c *Console) Writer() io.Writer {
	return c.out
}

// ErrWriter returns the writer warnings and errors go to.
func (c *Console) ErrWriter() io.Writer {
	return c.errOut
}

// WithOptions returns a copy of the console with the options applied.
func (c *Console) WithOptions(opts ...Option) *Console {
	clone := *c
	for _, opt := range opts {
		opt(&clone)
	}
	return &clone
}

// icon returns the theme icon for a level.
func (c *Console) icon(level Level) string {
	icons := c.theme.Icons
	switch level {
	case LevelDebug:
		return icons.Debug
	case LevelSuccess:
		return icons.Success
	case LevelWarning:
		return icons.Warning
	case LevelError, LevelFatal:
		return icons.Error
	default:
		return icons.Info
	}
}

// decorate styles s with the named theme style unless the console is
// in plain text mode. The text content is never altered.
func (c *Console) decorate(styleName, s string) string {
	if c.format != FormatTerminal {
		return s
	}
	return c.theme.Style(styleName).Render(s)
}

// write emits one leveled line, applying gating rules.
func (c *Console) write(level Level, msg string) {
	switch level {
	case LevelDebug:
		if !c.verbose || c.quiet {
			return
		}
	case LevelInfo, LevelSuccess:
		if c.quiet {
			return
		}
	}

	w := c.out
	if level >= LevelWarning {
		w = c.errOut
	}

	icon := c.decorate(level.styleName(), c.icon(level))
	fmt.Fprintf(w, "%s %s\n", icon, msg)

	// Mirror to the structured log so the file log captures what the
	// user saw.
	c.logger.Debug().Str("level", level.String()).Msg(msg)
}

// Debug prints a message that is only visible in verbose mode.
func (c *Console) Debug(msg string) { c.write(LevelDebug, msg) }

// Debugf prints a formatted debug message.
func (c *Console) Debugf(format string, args ...any) {
	c.write(LevelDebug, fmt.Sprintf(format, args...))
}

// Info tells the user what's going on.
func (c *Console) Info(msg string) { c.write(LevelInfo, msg) }

// Infof prints a formatted info message.
func (c *Console) Infof(format string, args ...any) {
	c.write(LevelInfo, fmt.Sprintf(format, args...))
}

// Success marks an operation as completed.
func (c *Console) Success(msg string) { c.write(LevelSuccess, msg) }

// Successf prints a formatted success message.
func (c *Console) Successf(format string, args ...any) {
	c.write(LevelSuccess, fmt.Sprintf(format, args...))
}

// Warning tells the user something might break.
func (c *Console) Warning(msg string) { c.write(LevelWarning, msg) }

// Warningf prints a formatted warning.
func (c *Console) Warningf(format string, args ...any) {
	c.write(LevelWarning, fmt.Sprintf(format, args...))
}

// Error tells the user something is broken.
func (c *Console) Error(msg string) { c.write(LevelError, msg) }

// Errorf prints a formatted error.
func (c *Console) Errorf(format string, args ...any) {
	c.write(LevelError, fmt.Sprintf(format, args...))
}

// Fatal prints an error and terminates the process.
func (c *Console) Fatal(msg string) {
	c.write(LevelFatal, msg)
	c.exit(1)
}

// Fatalf prints a formatted error and terminates the process.
func (c *Console) Fatalf(format string, args ...any) {
	c.Fatal(fmt.Sprintf(format, args...))
}

// Print writes undecorated output, honoring quiet mode.
func (c *Console) Print(args ...any) {
	if c.quiet {
		return
	}
	fmt.Fprint(c.out, args...)
}

// Println writes an undecorated line, honoring quiet mode.
func (c *Console) Println(args ...any) {
	if c.quiet {
		return
	}
	fmt.Fprintln(c.out, args...)
}

// Printf writes undecorated formatted output, honoring quiet mode.
func (c *Console) Printf(format string, args ...any) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.out, format, args...)
}

// Markup renders a markup template with the console's theme styles and
// prints the result. In plain text mode the tags are stripped instead.
func (c *Console) Markup(tmpl string, data any) error {
	if c.quiet {
		return nil
	}

	if c.format != FormatTerminal {
		rendered, err := markup.RenderPlain(tmpl, data)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, rendered)
		return nil
	}

	rendered, err := markup.Render(tmpl, data, c.theme.Styles())
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, rendered)
	return nil
}

// ClearLines clears the last n output lines when attached to a
// terminal; off-terminal it does nothing.
func (c *Console) ClearLines(n int) {
	if c.format != FormatTerminal {
		return
	}
	terminal.ClearLines(c.out, n)
}

// Interactive reports whether prompts can expect a human: rich format
// on a real TTY.
func (c *Console) Interactive() bool {
	return c.format == FormatTerminal && terminal.Detect().IsTTY
}
