package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

func PrintBanner(w io.Writer, version string) {
	logo := `
 _       ___ _______       ___             ___ __ 
| |     / (_) ____(_)     /   | __  ______/ (_) /_
| | /| / / / /_  / /_____/ /| |/ / / / __  / / __/
| |/ |/ / / __/ / /_____/ ___ / /_/ / /_/ / / /_  
|__/|__/_/_/   /_/     /_/  |_\__,_/\__,_/_/\__/  
`
	fmt.Fprintln(w, pterm.FgCyan.Sprint(logo))
	fmt.Fprintln(w, pterm.DefaultCenter.Sprint(pterm.FgGray.Sprintf("%s - offline Wi-Fi security check", version)))

	fmt.Fprintln(w, pterm.DefaultBox.
		WithTitle(pterm.FgYellow.Sprint("AUTHORIZED USE ONLY")).
		WithTitleBottomCenter().
		WithRightPadding(2).
		WithLeftPadding(2).
		Sprint("Assess only networks YOU OWN or administer.\nThe score is a heuristic, not a penetration test."))
	fmt.Fprintln(w)
}
