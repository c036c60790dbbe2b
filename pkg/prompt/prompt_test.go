package prompt_test

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/arthur-debert/termtint/pkg/output"
	"github.com/arthur-debert/termtint/pkg/prompt"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(io.Discard))
	m.Run()
}

func testConsole() (*output.Console, *bytes.Buffer) {
	var out bytes.Buffer
	c := output.New(
		output.WithWriter(&out),
		output.WithErrWriter(&out),
		output.WithFormat(output.FormatText),
	)
	return c, &out
}

func TestAsk(t *testing.T) {
	t.Run("reads an answer", func(t *testing.T) {
		c, _ := testConsole()
		answer, err := prompt.Ask(c, "Your name", prompt.WithReader(strings.NewReader("Ada\n")))
		require.NoError(t, err)
		assert.Equal(t, "Ada", answer)
	})

	t.Run("empty answer uses default", func(t *testing.T) {
		c, _ := testConsole()
		answer, err := prompt.Ask(c, "Your name",
			prompt.WithReader(strings.NewReader("\n")),
			prompt.WithDefault("anonymous"))
		require.NoError(t, err)
		assert.Equal(t, "anonymous", answer)
	})

	t.Run("validator reprompts then accepts", func(t *testing.T) {
		c, out := testConsole()
		validator := func(s string) error {
			if !strings.Contains(s, "@") {
				return fmt.Errorf("not an email")
			}
			return nil
		}
		answer, err := prompt.Ask(c, "Email",
			prompt.WithReader(strings.NewReader("nope\nada@example.com\n")),
			prompt.WithValidator(validator))
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", answer)
		assert.Contains(t, out.String(), "invalid input")
	})

	t.Run("validator exhausts attempts and falls back to default", func(t *testing.T) {
		c, _ := testConsole()
		validator := func(s string) error { return fmt.Errorf("never valid") }
		answer, err := prompt.Ask(c, "Email",
			prompt.WithReader(strings.NewReader("a\nb\nc\nd\n")),
			prompt.WithValidator(validator),
			prompt.WithDefault("fallback"))
		require.NoError(t, err)
		assert.Equal(t, "fallback", answer)
	})

	t.Run("non-interactive returns default without blocking", func(t *testing.T) {
		c, out := testConsole()
		answer, err := prompt.Ask(c, "Your name", prompt.WithDefault("anonymous"))
		require.NoError(t, err)
		assert.Equal(t, "anonymous", answer)
		// Nothing printed: no blocked prompt, no stray question.
		assert.Empty(t, out.String())
	})

	t.Run("non-interactive required without default errors", func(t *testing.T) {
		c, _ := testConsole()
		_, err := prompt.Ask(c, "Token", prompt.Required())
		require.Error(t, err)
		assert.ErrorIs(t, err, prompt.ErrNoInput)
	})

	t.Run("exhausted reader uses default", func(t *testing.T) {
		c, _ := testConsole()
		answer, err := prompt.Ask(c, "Your name",
			prompt.WithReader(strings.NewReader("")),
			prompt.WithDefault("anonymous"))
		require.NoError(t, err)
		assert.Equal(t, "anonymous", answer)
	})
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{"yes", "y\n", false, true},
		{"yes word", "yes\n", false, true},
		{"no", "n\n", true, false},
		{"no word", "NO\n", true, false},
		{"empty uses default true", "\n", true, true},
		{"empty uses default false", "\n", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := testConsole()
			got, err := prompt.Confirm(c, "Continue?", tt.def,
				prompt.WithReader(strings.NewReader(tt.input)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid input reprompts then accepts", func(t *testing.T) {
		c, out := testConsole()
		got, err := prompt.Confirm(c, "Continue?", false,
			prompt.WithReader(strings.NewReader("maybe\ny\n")))
		require.NoError(t, err)
		assert.True(t, got)
		assert.Contains(t, out.String(), "please answer y or n")
	})

	t.Run("persistent invalid input falls back to default", func(t *testing.T) {
		c, _ := testConsole()
		got, err := prompt.Confirm(c, "Continue?", true,
			prompt.WithReader(strings.NewReader("a\nb\nc\n")))
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("non-interactive returns default", func(t *testing.T) {
		c, _ := testConsole()
		got, err := prompt.Confirm(c, "Continue?", true)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("default marker in prompt", func(t *testing.T) {
		c, out := testConsole()
		_, err := prompt.Confirm(c, "Continue?", true,
			prompt.WithReader(strings.NewReader("\n")))
		require.NoError(t, err)
		assert.Contains(t, out.String(), "[Y/n]")
	})
}

func TestSelect(t *testing.T) {
	options := []string{"red", "green", "blue"}

	t.Run("picks by index", func(t *testing.T) {
		c, _ := testConsole()
		got, err := prompt.Select(c, "Color?", options,
			prompt.WithReader(strings.NewReader("2\n")))
		require.NoError(t, err)
		assert.Equal(t, "green", got)
	})

	t.Run("picks by name", func(t *testing.T) {
		c, _ := testConsole()
		got, err := prompt.Select(c, "Color?", options,
			prompt.WithReader(strings.NewReader("BLUE\n")))
		require.NoError(t, err)
		assert.Equal(t, "blue", got)
	})

	t.Run("empty picks default", func(t *testing.T) {
		c, _ := testConsole()
		got, err := prompt.Select(c, "Color?", options,
			prompt.WithReader(strings.NewReader("\n")),
			prompt.WithDefault("green"))
		require.NoError(t, err)
		assert.Equal(t, "green", got)
	})

	t.Run("out of range reprompts", func(t *testing.T) {
		c, out := testConsole()
		got, err := prompt.Select(c, "Color?", options,
			prompt.WithReader(strings.NewReader("7\n1\n")))
		require.NoError(t, err)
		assert.Equal(t, "red", got)
		assert.Contains(t, out.String(), "out of range")
	})

	t.Run("non-interactive returns default option", func(t *testing.T) {
		c, _ := testConsole()
		got, err := prompt.Select(c, "Color?", options, prompt.WithDefault("blue"))
		require.NoError(t, err)
		assert.Equal(t, "blue", got)
	})

	t.Run("non-interactive without default returns first", func(t *testing.T) {
		c, _ := testConsole()
		got, err := prompt.Select(c, "Color?", options)
		require.NoError(t, err)
		assert.Equal(t, "red", got)
	})

	t.Run("no options errors", func(t *testing.T) {
		c, _ := testConsole()
		_, err := prompt.Select(c, "Color?", nil)
		assert.Error(t, err)
	})
}

func TestAskNumber(t *testing.T) {
	t.Run("parses a number", func(t *testing.T) {
		c, _ := testConsole()
		got, err := prompt.AskNumber(c, "Count",
			prompt.WithReader(strings.NewReader("42\n")))
		require.NoError(t, err)
		assert.Equal(t, 42.0, got)
	})

	t.Run("rejects non-numbers then accepts", func(t *testing.T) {
		c, out := testConsole()
		got, err := prompt.AskNumber(c, "Count",
			prompt.WithReader(strings.NewReader("many\n7\n")))
		require.NoError(t, err)
		assert.Equal(t, 7.0, got)
		assert.Contains(t, out.String(), "not a number")
	})

	t.Run("enforces bounds", func(t *testing.T) {
		c, out := testConsole()
		got, err := prompt.AskNumber(c, "Port",
			prompt.WithReader(strings.NewReader("99999\n8080\n")),
			prompt.WithMin(1), prompt.WithMax(65535))
		require.NoError(t, err)
		assert.Equal(t, 8080.0, got)
		assert.Contains(t, out.String(), "at most")
	})

	t.Run("empty input uses default", func(t *testing.T) {
		c, _ := testConsole()
		got, err := prompt.AskNumber(c, "Count",
			prompt.WithReader(strings.NewReader("\n")),
			prompt.WithNumberDefault(3))
		require.NoError(t, err)
		assert.Equal(t, 3.0, got)
	})

	t.Run("non-interactive returns default", func(t *testing.T) {
		c, _ := testConsole()
		got, err := prompt.AskNumber(c, "Count", prompt.WithNumberDefault(5))
		require.NoError(t, err)
		assert.Equal(t, 5.0, got)
	})

	t.Run("non-interactive required without default errors", func(t *testing.T) {
		c, _ := testConsole()
		_, err := prompt.AskNumber(c, "Count", prompt.Required())
		assert.Error(t, err)
	})
}
