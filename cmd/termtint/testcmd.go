package main

import (
	"fmt"
	"time"

	"github.com/arthur-debert/termtint/pkg/display"
	"github.com/arthur-debert/termtint/pkg/logging"
	"github.com/arthur-debert/termtint/pkg/markup"
	"github.com/arthur-debert/termtint/pkg/terminal"
	"github.com/arthur-debert/termtint/pkg/theme"
	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Exercise detection, themes and rendering end to end",
	Long: `Run a self-check: terminal detection, every registered theme,
markup expansion and each display helper. Prints one line per check
and exits non-zero when anything fails to render.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logging.LogDuration(time.Now(), "test")

		var failed int

		check := func(name string, fn func() error) {
			if err := fn(); err != nil {
				console.Errorf("%s: %v", name, err)
				failed++
				return
			}
			console.Successf("%s ok", name)
		}

		check("terminal detection", func() error {
			ti := terminal.Detect()
			if ti.Width <= 0 || ti.Height <= 0 {
				return fmt.Errorf("bad terminal size %dx%d", ti.Width, ti.Height)
			}
			return nil
		})

		check("themes", func() error {
			for _, name := range theme.Names() {
				th, err := theme.Get(name)
				if err != nil {
					return err
				}
				for _, style := range []string{"success", "error", "warning", "info", "muted"} {
					if !th.HasStyle(style) {
						return fmt.Errorf("theme %s missing style %s", name, style)
					}
				}
			}
			return nil
		})

		check("markup", func() error {
			rendered, err := markup.Render(
				`<success>{{.N}} checks</success>`,
				struct{ N int }{N: 1},
				console.Theme().Styles(),
			)
			if err != nil {
				return err
			}
			if rendered == "" {
				return fmt.Errorf("empty render")
			}
			return nil
		})

		check("code display", func() error {
			if display.Code(console, "x := 1", "go") == "" {
				return fmt.Errorf("empty render")
			}
			return nil
		})

		check("diff display", func() error {
			if display.Diff(console, "a\n", "b\n") == "" {
				return fmt.Errorf("empty render")
			}
			return nil
		})

		check("table display", func() error {
			_, err := display.Table(console, []string{"A"}, [][]string{{"1"}})
			return err
		})

		check("markdown display", func() error {
			if display.Markdown(console, "# ok") == "" {
				return fmt.Errorf("empty render")
			}
			return nil
		})

		if failed > 0 {
			return fmt.Errorf("%d of 7 checks failed", failed)
		}
		console.Info("all checks passed")
		return nil
	},
}
