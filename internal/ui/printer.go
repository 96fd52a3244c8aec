package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dhbcndoe3062/vsosh-project-ib/internal/models"
	"github.com/pterm/pterm"
)

const completedLayout = "02.01.2006 15:04"

// Renderer prints an audit report as console text.
type Renderer struct {
	Out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{Out: out}
}

func (r *Renderer) Render(rep *models.Report) {
	bold := pterm.NewStyle(pterm.Bold)
	a := rep.Assessment

	fmt.Fprintln(r.Out)
	if rep.Host.Hostname != "" {
		fmt.Fprintf(r.Out, "%s %s\n", bold.Sprint("Host:"), hostLine(rep.Host))
	}
	fmt.Fprintf(r.Out, "%s %s\n", bold.Sprint("Current network (SSID):"), rep.Network.SSID)
	fmt.Fprintf(r.Out, "%s %s\n\n", bold.Sprint("Encryption type:"), rep.Network.Auth)
	fmt.Fprintf(r.Out, "%s %s %s\n\n", bold.Sprint("Risk level:"), LevelLabel(a.Level), pterm.FgGray.Sprintf("(score %d)", a.Score))

	if len(a.Problems) > 0 {
		fmt.Fprintln(r.Out, pterm.FgRed.Sprint("Identified problems:"))
		for _, p := range a.Problems {
			fmt.Fprintf(r.Out, " • %s\n", p)
		}
		fmt.Fprintln(r.Out)
	} else {
		fmt.Fprintln(r.Out, pterm.FgGreen.Sprint("No problems found. Excellent protection!"))
		fmt.Fprintln(r.Out)
	}

	if len(a.Threats) > 0 {
		fmt.Fprintln(r.Out, pterm.FgYellow.Sprint("Related MITRE ATT&CK tactics:"))
		for _, t := range a.Threats {
			fmt.Fprintf(r.Out, " • %s\n", t)
		}
		fmt.Fprintln(r.Out)
	}

	if len(a.Recommendations) > 0 {
		fmt.Fprintln(r.Out, pterm.FgLightBlue.Sprint("Recommendations:"))
		for _, rec := range a.Recommendations {
			fmt.Fprintf(r.Out, "   → %s\n", rec)
		}
		fmt.Fprintln(r.Out)
	}

	if len(a.Contributions) > 0 {
		r.renderBreakdown(a)
	}

	fmt.Fprintln(r.Out, bold.Sprintf("Check completed %s", rep.CompletedAt.Format(completedLayout)))
	fmt.Fprintln(r.Out)
}

func (r *Renderer) renderBreakdown(a models.Assessment) {
	data := [][]string{{"Factor", "Points"}}
	for _, c := range a.Contributions {
		data = append(data, []string{c.Factor, "+" + strconv.Itoa(c.Points)})
	}
	data = append(data, []string{pterm.Bold.Sprint("Total"), pterm.Bold.Sprint(strconv.Itoa(a.Score))})

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		table = totalLine(a.Score)
	}
	fmt.Fprintln(r.Out, table)
	fmt.Fprintln(r.Out)
}

func totalLine(score int) string {
	return "Total: " + strconv.Itoa(score)
}

// LevelLabel colours a tier: HIGH red, MEDIUM yellow, LOW green.
func LevelLabel(level models.RiskLevel) string {
	switch level {
	case models.RiskHigh:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint(string(level))
	case models.RiskMedium:
		return pterm.NewStyle(pterm.FgYellow, pterm.Bold).Sprint(string(level))
	default:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint(string(level))
	}
}

func hostLine(h models.HostInfo) string {
	switch {
	case h.Platform == "":
		return h.Hostname
	case h.PlatformVersion == "":
		return fmt.Sprintf("%s (%s)", h.Hostname, h.Platform)
	default:
		return fmt.Sprintf("%s (%s %s)", h.Hostname, h.Platform, h.PlatformVersion)
	}
}

// StartSpinner returns nil when the spinner cannot start; StopSpinner accepts nil.
func StartSpinner(text string) *pterm.SpinnerPrinter {
	spinner, err := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(text)
	if err != nil {
		return nil
	}
	return spinner
}

func StopSpinner(spinner *pterm.SpinnerPrinter) {
	if spinner != nil {
		_ = spinner.Stop()
	}
}
