package main

import (
	"fmt"
	"strconv"

	"github.com/arthur-debert/termtint/pkg/display"
	"github.com/arthur-debert/termtint/pkg/terminal"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show terminal capabilities and active theme",
	Long: `Report what termtint detected about the attached terminal: TTY
status, size, color depth, unicode and emoji support, plus the active
theme and output format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ti := terminal.Detect()

		rows := [][]string{
			{"tty", strconv.FormatBool(ti.IsTTY)},
			{"size", fmt.Sprintf("%dx%d", ti.Width, ti.Height)},
			{"colors", ti.ColorLevel.String()},
			{"unicode", strconv.FormatBool(ti.Unicode)},
			{"emoji", strconv.FormatBool(ti.Emoji)},
			{"theme", console.Theme().Name},
			{"format", console.Format().String()},
		}

		table, err := display.Table(console, []string{"CAPABILITY", "VALUE"}, rows)
		if err != nil {
			return err
		}
		console.Println(table)
		return nil
	},
}
