package main

import (
	"fmt"

	"github.com/arthur-debert/termtint/internal/version"
	"github.com/arthur-debert/termtint/pkg/config"
	"github.com/arthur-debert/termtint/pkg/logging"
	"github.com/arthur-debert/termtint/pkg/output"
	"github.com/arthur-debert/termtint/pkg/theme"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var (
	verbosity int
	quiet     bool
	noColor   bool
	themeName string

	// console is built in PersistentPreRun and shared by all commands.
	console *output.Console

	rootCmd = &cobra.Command{
		Use:   "termtint",
		Short: "Themed terminal output toolkit",
		Long: `termtint is a terminal styling toolkit: themed leveled output,
interactive prompts, code and diff display, and terminal capability
detection, usable as a library or through this CLI.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			console = buildConsole()
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// buildConsole resolves config, flags and environment into the shared
// console. Flags win over config; config wins over built-in defaults.
func buildConsole() *output.Console {
	var warnings []string

	overrides := map[string]any{}
	if themeName != "" {
		overrides["theme"] = themeName
	}
	if verbosity > 0 {
		overrides["verbose"] = true
	}
	if quiet {
		overrides["quiet"] = true
	}
	if noColor {
		overrides["color"] = "never"
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("ignoring config: %v", err))
		cfg = &config.Config{Theme: theme.DefaultName, Color: "auto", Emoji: true}
		if themeName != "" {
			cfg.Theme = themeName
		}
	}

	for _, path := range cfg.ThemeFiles {
		if err := theme.Load(path); err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping theme file: %v", err))
		}
	}

	th, themeErr := theme.Get(cfg.Theme)
	if themeErr != nil {
		warnings = append(warnings, fmt.Sprintf("%v, using %q", themeErr, th.Name))
	}

	format := output.FormatAuto
	switch cfg.Color {
	case "never":
		format = output.FormatText
	case "always":
		format = output.FormatTerminal
	}

	c := output.New(
		output.WithTheme(th),
		output.WithFormat(format),
		output.WithVerbose(cfg.Verbose),
		output.WithQuiet(cfg.Quiet),
		output.WithLogger(logging.GetLogger("console")),
	)
	output.SetDefault(c)

	for _, w := range warnings {
		c.Warning(w)
	}
	return c
}

func init() {
	initTemplateFormatting()

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress output below warnings")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colors and styling")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Theme to use (see 'termtint themes')")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(manCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(configCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for termtint`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("termtint version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `To load completions:

Bash:
  $ source <(termtint completion bash)

Zsh:
  $ termtint completion zsh > "${fpath[1]}/_termtint"

Fish:
  $ termtint completion fish | source

PowerShell:
  PS> termtint completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate bash completion")
			}
		case "zsh":
			if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate zsh completion")
			}
		case "fish":
			if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
				log.Error().Err(err).Msg("Failed to generate fish completion")
			}
		case "powershell":
			if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate powershell completion")
			}
		}
	},
}

var manCmd = &cobra.Command{
	Use:   "man",
	Short: "Generate man page",
	Long:  `Generate man page for termtint`,
	RunE: func(cmd *cobra.Command, args []string) error {
		header := &doc.GenManHeader{
			Title:   "TERMTINT",
			Section: "1",
		}
		return doc.GenManTree(rootCmd, header, "/tmp")
	},
}
