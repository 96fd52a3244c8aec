package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dhbcndoe3062/vsosh-project-ib/internal/platform"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const (
	ExitFailure             = 1
	ExitUnsupportedPlatform = 2
)

var rootCmd = &cobra.Command{
	Use:   "wifiaudit",
	Short: "wifiaudit rates the security of the Wi-Fi network you are connected to",
	Long: `wifiaudit reads the current Wi-Fi network's name and authentication type from the
operating system (netsh on Windows, nmcli on Linux), asks a few questions about the
router and prints a risk score with recommendations. No traffic is captured.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAudit,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, pterm.Error.Sprint(err))
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, platform.ErrUnsupported) {
		return ExitUnsupportedPlatform
	}
	return ExitFailure
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgPath, "config", "c", "", "path to a YAML config file")
	flags.StringVarP(&outputFormat, "format", "f", "text", "output format: text or json")
	flags.BoolVar(&noColor, "no-color", false, "disable coloured output")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.DurationVar(&timeout, "timeout", 0, "bound the OS command and notification (0 = no timeout)")
	flags.StringVar(&slackWebhook, "slack-webhook", "", "post the report to this Slack incoming webhook")
}
