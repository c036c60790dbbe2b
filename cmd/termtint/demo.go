package main

import (
	"github.com/arthur-debert/termtint/pkg/display"
	"github.com/arthur-debert/termtint/pkg/prompt"
	"github.com/spf13/cobra"
)

const demoCode = `func greet(name string) string {
	if name == "" {
		name = "world"
	}
	return fmt.Sprintf("hello, %s", name)
}`

const demoMarkdown = `# termtint

Themed output for terminals. **Bold**, *italic*, and ` + "`code`" + ` all
render through the active theme.
`

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Showcase output levels, prompts and display helpers",
	Long: `Render one of everything with the active theme: leveled output,
rules, code, diffs, tables and markdown. On an interactive terminal
the prompt helpers run too; piped, they fall back to their defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		console.Println(display.Header(console, "termtint demo ("+console.Theme().Name+" theme)"))
		console.Println()

		console.Println(display.Rule(console, "Levels"))
		console.Debug("debug lines show up with --verbose")
		console.Info("info: resolving dependencies")
		console.Success("success: 14 files written")
		console.Warning("warning: config file not found, using defaults")
		console.Error("error: connection refused")
		console.Println()

		console.Println(display.Rule(console, "Markup"))
		if err := console.Markup(
			`<success>{{.Count}} packages</success> installed to <path>{{.Path}}</path>`,
			struct {
				Count int
				Path  string
			}{Count: 3, Path: "~/.local/share"},
		); err != nil {
			return err
		}
		console.Println()

		console.Println(display.Rule(console, "Code"))
		console.Println(display.Code(console, demoCode, "go"))
		console.Println()

		console.Println(display.Rule(console, "Diff"))
		console.Println(display.Diff(console,
			"host = localhost\nport = 8080\n",
			"host = localhost\nport = 9090\ntls = true\n"))
		console.Println()

		console.Println(display.Rule(console, "Table"))
		table, err := display.Table(console,
			[]string{"THEME", "COLOR", "EMOJI"},
			[][]string{
				{"default", "yes", "yes"},
				{"mono", "no", "no"},
				{"minimal", "yes", "no"},
			})
		if err != nil {
			return err
		}
		console.Println(table)
		console.Println()

		console.Println(display.Rule(console, "Markdown"))
		console.Println(display.Markdown(console, demoMarkdown))
		console.Println()

		if console.Interactive() {
			console.Println(display.Rule(console, "Prompts"))
			name, err := prompt.Ask(console, "What should I call you", prompt.WithDefault("friend"))
			if err != nil {
				return err
			}
			ok, err := prompt.Confirm(console, "Enjoying the demo", true)
			if err != nil {
				return err
			}
			if ok {
				console.Successf("glad to hear it, %s", name)
			} else {
				console.Infof("noted, %s", name)
			}
		}

		return nil
	},
}
