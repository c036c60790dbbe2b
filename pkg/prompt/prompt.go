// Package prompt provides interactive question helpers.
//
// Every prompt takes an explicit Console and follows the same
// degradation rules: on a live terminal the pterm interactive
// components handle input; with an injected reader (pipes, tests) a
// plain line-reader takes over; with neither, prompts return their
// defaults immediately and never block.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/termtint/pkg/output"
	"github.com/pterm/pterm"
)

// maxAttempts bounds re-prompting on invalid input before falling back
// to the default value.
const maxAttempts = 3

// ErrNoInput is returned when a required prompt has no terminal, no
// reader and no default to fall back to.
var ErrNoInput = fmt.Errorf("no interactive input available")

type config struct {
	def       string
	defNum    float64
	hasDef    bool
	required  bool
	secret    bool
	validator func(string) error
	reader    io.Reader
	min, max  *float64
}

// Option configures a prompt.
type Option func(*config)

// WithDefault sets the value returned on empty or unavailable input.
func WithDefault(value string) Option {
	return func(c *config) {
		c.def = value
		c.hasDef = true
	}
}

// WithNumberDefault sets the default for AskNumber.
func WithNumberDefault(value float64) Option {
	return func(c *config) {
		c.defNum = value
		c.def = strconv.FormatFloat(value, 'f', -1, 64)
		c.hasDef = true
	}
}

// WithValidator rejects answers; the user is re-prompted on error.
func WithValidator(fn func(string) error) Option {
	return func(c *config) { c.validator = fn }
}

// WithReader reads answers from r instead of the terminal.
func WithReader(r io.Reader) Option {
	return func(c *config) { c.reader = r }
}

// WithSecret masks typed input (passwords).
func WithSecret() Option {
	return func(c *config) { c.secret = true }
}

// Required makes an answerless prompt an error instead of returning
// the empty string.
func Required() Option {
	return func(c *config) { c.required = true }
}

// WithMin sets a lower bound for AskNumber.
func WithMin(v float64) Option {
	return func(c *config) { c.min = &v }
}

// WithMax sets an upper bound for AskNumber.
func WithMax(v float64) Option {
	return func(c *config) { c.max = &v }
}

func buildConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Ask poses a free-form question and returns the answer.
func Ask(c *output.Console, question string, opts ...Option) (string, error) {
	cfg := buildConfig(opts)

	if cfg.reader == nil {
		if !c.Interactive() {
			return fallbackAnswer(cfg)
		}
		return askTerminal(c, question, cfg)
	}
	return askReader(c, question, cfg)
}

// fallbackAnswer resolves a prompt that cannot read input.
func fallbackAnswer(cfg config) (string, error) {
	if cfg.hasDef {
		return cfg.def, nil
	}
	if cfg.required {
		return "", ErrNoInput
	}
	return "", nil
}

func askTerminal(c *output.Console, question string, cfg config) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		input := pterm.DefaultInteractiveTextInput.WithDefaultValue(cfg.def)
		if cfg.secret {
			input = input.WithMask("*")
		}
		answer, err := input.Show(question)
		if err != nil {
			return fallbackAnswer(cfg)
		}
		answer = strings.TrimSpace(answer)
		if answer == "" && cfg.hasDef {
			answer = cfg.def
		}
		if cfg.validator != nil {
			if verr := cfg.validator(answer); verr != nil {
				c.Warningf("invalid input: %v", verr)
				continue
			}
		}
		if answer == "" && cfg.required {
			c.Warning("a value is required")
			continue
		}
		return answer, nil
	}
	return fallbackAnswer(cfg)
}

func askReader(c *output.Console, question string, cfg config) (string, error) {
	scanner := bufio.NewScanner(cfg.reader)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		printQuestion(c, question, cfg.def)

		if !scanner.Scan() {
			return fallbackAnswer(cfg)
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" && cfg.hasDef {
			answer = cfg.def
		}
		if cfg.validator != nil {
			if verr := cfg.validator(answer); verr != nil {
				c.Warningf("invalid input: %v", verr)
				continue
			}
		}
		if answer == "" && cfg.required {
			c.Warning("a value is required")
			continue
		}
		return answer, nil
	}
	return fallbackAnswer(cfg)
}

// printQuestion writes the themed question line without a newline.
func printQuestion(c *output.Console, question, def string) {
	th := c.Theme()
	q := question
	if c.Format() == output.FormatTerminal {
		q = th.Style("prompt").Render(question)
	}
	if def != "" {
		fmt.Fprintf(c.Writer(), "%s %s [%s]: ", th.Icons.Question, q, def)
		return
	}
	fmt.Fprintf(c.Writer(), "%s %s: ", th.Icons.Question, q)
}

// Confirm poses a yes/no question. Empty input returns def; invalid
// input re-prompts, then falls back to def.
func Confirm(c *output.Console, question string, def bool, opts ...Option) (bool, error) {
	cfg := buildConfig(opts)

	if cfg.reader == nil {
		if !c.Interactive() {
			return def, nil
		}
		answer, err := pterm.DefaultInteractiveConfirm.WithDefaultValue(def).Show(question)
		if err != nil {
			return def, nil
		}
		return answer, nil
	}

	scanner := bufio.NewScanner(cfg.reader)
	marker := "[y/N]"
	if def {
		marker = "[Y/n]"
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		fmt.Fprintf(c.Writer(), "%s %s %s: ", c.Theme().Icons.Question, question, marker)

		if !scanner.Scan() {
			return def, nil
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			c.Warning("please answer y or n")
		}
	}
	return def, nil
}

// Select asks the user to pick one of options. Non-interactively it
// returns the default option, or the first one when no default is set.
func Select(c *output.Console, question string, options []string, opts ...Option) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("select needs at least one option")
	}
	cfg := buildConfig(opts)

	def := options[0]
	if cfg.hasDef {
		def = cfg.def
	}

	if cfg.reader == nil {
		if !c.Interactive() {
			return def, nil
		}
		answer, err := pterm.DefaultInteractiveSelect.
			WithOptions(options).
			WithDefaultOption(def).
			Show(question)
		if err != nil {
			return def, nil
		}
		return answer, nil
	}

	scanner := bufio.NewScanner(cfg.reader)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		fmt.Fprintf(c.Writer(), "%s %s\n", c.Theme().Icons.Question, question)
		for i, opt := range options {
			marker := " "
			if opt == def {
				marker = c.Theme().Icons.Pointer
			}
			fmt.Fprintf(c.Writer(), "%s %d) %s\n", marker, i+1, opt)
		}
		fmt.Fprintf(c.Writer(), "choice [1-%d]: ", len(options))

		if !scanner.Scan() {
			return def, nil
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			return def, nil
		}

		// Accept an index or an exact option name.
		if idx, err := strconv.Atoi(answer); err == nil {
			if idx >= 1 && idx <= len(options) {
				return options[idx-1], nil
			}
			c.Warningf("choice out of range: %d", idx)
			continue
		}
		for _, opt := range options {
			if strings.EqualFold(opt, answer) {
				return opt, nil
			}
		}
		c.Warningf("no such option: %s", answer)
	}
	return def, nil
}

// AskNumber poses a numeric question with optional bounds.
func AskNumber(c *output.Console, question string, opts ...Option) (float64, error) {
	cfg := buildConfig(opts)

	parse := func(answer string) (float64, error) {
		n, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %s", answer)
		}
		if cfg.min != nil && n < *cfg.min {
			return 0, fmt.Errorf("must be at least %v", *cfg.min)
		}
		if cfg.max != nil && n > *cfg.max {
			return 0, fmt.Errorf("must be at most %v", *cfg.max)
		}
		return n, nil
	}

	if cfg.reader == nil && !c.Interactive() {
		if cfg.hasDef {
			return cfg.defNum, nil
		}
		if cfg.required {
			return 0, ErrNoInput
		}
		return 0, nil
	}

	// Route through Ask with a numeric validator, then parse the
	// answer it settles on.
	validator := func(answer string) error {
		if answer == "" {
			return fmt.Errorf("a number is required")
		}
		_, err := parse(answer)
		return err
	}

	askOpts := []Option{WithValidator(validator), Required()}
	if cfg.hasDef {
		askOpts = append(askOpts, WithDefault(cfg.def))
	}
	if cfg.reader != nil {
		askOpts = append(askOpts, WithReader(cfg.reader))
	}

	answer, err := Ask(c, question, askOpts...)
	if err != nil {
		if cfg.hasDef {
			return cfg.defNum, nil
		}
		return 0, err
	}
	if answer == "" {
		if cfg.hasDef {
			return cfg.defNum, nil
		}
		return 0, ErrNoInput
	}
	// Ask validated the final answer; a parse failure here means it
	// fell back to an unvalidated default.
	n, perr := parse(answer)
	if perr != nil {
		if cfg.hasDef {
			return cfg.defNum, nil
		}
		return 0, perr
	}
	return n, nil
}
