package ui

import (
	"os"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ConfigureColor turns colour off when asked to or when out is not a terminal.
func ConfigureColor(noColor bool, out *os.File) {
	if noColor || !IsTerminal(out) {
		pterm.DisableColor()
		return
	}
	pterm.EnableColor()
}
