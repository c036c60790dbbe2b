package main

import (
	"strings"

	"github.com/arthur-debert/termtint/pkg/config"
	"github.com/arthur-debert/termtint/pkg/theme"
	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes",
	Long:  `List registered themes, marking the active one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		active := console.Theme()

		for _, name := range theme.Names() {
			th, err := theme.Get(name)
			if err != nil {
				return err
			}

			var traits []string
			if !th.Color {
				traits = append(traits, "no color")
			}
			if !th.Emoji {
				traits = append(traits, "no emoji")
			}

			marker := " "
			if name == active.Name {
				marker = active.Icons.Pointer
			}

			line := marker + " " + name
			if len(traits) > 0 {
				line += " (" + strings.Join(traits, ", ") + ")"
			}
			console.Println(line)
		}
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the default configuration as TOML. Redirect it to start a
user config file:

  termtint config > $XDG_CONFIG_HOME/termtint/config.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := config.DefaultTOML()
		if err != nil {
			return err
		}
		console.Print(out)
		return nil
	},
}
