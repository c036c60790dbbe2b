package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/arthur-debert/termtint/pkg/logging"
	"github.com/spf13/cobra"
)

var runData []string

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Render a markup template file",
	Long: `Read a markup template and render it through the active theme.
Template variables are supplied with repeated --data key=value flags
and referenced as {{.key}}:

  termtint run greeting.tpl --data name=Ada --data version=1.2.0

Style tags (<success>, <error>, <path>, ...) map to the theme's
semantic styles. Piped output strips tags instead of styling them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logging.LogDuration(time.Now(), "run")

		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", args[0], err)
		}

		vars := make(map[string]string, len(runData))
		for _, pair := range runData {
			key, value, ok := strings.Cut(pair, "=")
			if !ok || key == "" {
				return fmt.Errorf("invalid --data value %q, want key=value", pair)
			}
			vars[key] = value
		}

		return console.Markup(strings.TrimRight(string(content), "\n"), vars)
	},
}

func init() {
	runCmd.Flags().StringArrayVar(&runData, "data", nil, "Template variable as key=value (repeatable)")
}
