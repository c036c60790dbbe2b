package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/termtint/pkg/terminal"
)

func main() {
	terminal.RestoreOnExit()
	defer terminal.Restore()

	if err := Execute(); err != nil {
		if console != nil {
			console.Error(err.Error())
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		terminal.Restore()
		os.Exit(1)
	}
}
