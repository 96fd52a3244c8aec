package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dhbcndoe3062/vsosh-project-ib/internal/assessor"
	"github.com/dhbcndoe3062/vsosh-project-ib/internal/collector"
	"github.com/dhbcndoe3062/vsosh-project-ib/internal/config"
	"github.com/dhbcndoe3062/vsosh-project-ib/internal/logging"
	"github.com/dhbcndoe3062/vsosh-project-ib/internal/models"
	"github.com/dhbcndoe3062/vsosh-project-ib/internal/notifications"
	"github.com/dhbcndoe3062/vsosh-project-ib/internal/platform"
	"github.com/dhbcndoe3062/vsosh-project-ib/internal/report"
	"github.com/dhbcndoe3062/vsosh-project-ib/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	cfgPath      string
	outputFormat string
	noColor      bool
	logLevel     string
	timeout      time.Duration
	slackWebhook string
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Assess the security of the connected Wi-Fi network",
	Long: `Reads the connected network's SSID and authentication type, asks whether WPS is
enabled, how long the password is and whether similarly named guest/open networks
are nearby, then prints a risk level (LOW, MEDIUM, HIGH) with recommendations.`,
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)
}

type reportNotifier interface {
	SendReport(ctx context.Context, rep *models.Report) error
}

// auditRun is one pass of detect -> collect -> assess -> render.
type auditRun struct {
	cfg      *config.Config
	platform platform.Platform
	runner   collector.CommandRunner
	in       io.Reader
	out      io.Writer // report
	msg      io.Writer // banner, prompts, user-facing errors
	logger   *slog.Logger
	hostInfo func(ctx context.Context) models.HostInfo
	now      func() time.Time
	notifier reportNotifier
	spinner  bool
	timeout  time.Duration // bounds the OS command and the notification, 0 = none
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel, os.Stderr)
	ui.ConfigureColor(cfg.NoColor, os.Stdout)

	var msg io.Writer = os.Stdout
	if cfg.OutputFormat == config.FormatJSON {
		msg = os.Stderr
	}
	if cfg.OutputFormat == config.FormatText {
		ui.PrintBanner(msg, Version)
	}

	p, err := platform.Current()
	if err != nil {
		return err
	}
	logger.Debug("platform detected", "platform", p.String())


	run := &auditRun{
		cfg:      cfg,
		platform: p,
		runner:   collector.ExecRunner{},
		in:       os.Stdin,
		out:      os.Stdout,
		msg:      msg,
		logger:   logger,
		hostInfo: func(ctx context.Context) models.HostInfo { return platform.HostDetails(ctx, logger) },
		now:      time.Now,
		spinner:  cfg.OutputFormat == config.FormatText && ui.IsTerminal(os.Stdout),
		timeout:  timeout,
	}
	if cfg.Slack.WebhookURL != "" {
		run.notifier = notifications.NewSlackNotifier(cfg.Slack.WebhookURL, cfg.Slack.Channel)
	}

	return run.run(cmd.Context())
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.LoadConfig(cfgPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.OutputFormat = outputFormat
	}
	if flags.Changed("no-color") {
		cfg.NoColor = noColor
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("slack-webhook") {
		cfg.Slack.WebhookURL = slackWebhook
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (a *auditRun) run(ctx context.Context) error {
	coll, err := collector.New(a.platform, a.runner)
	if err != nil {
		return err
	}

	var spinner *pterm.SpinnerPrinter
	if a.spinner {
		spinner = ui.StartSpinner("Reading Wi-Fi details...")
	}
	collectCtx, cancel := a.bounded(ctx)
	info, err := coll.Collect(collectCtx)
	cancel()
	ui.StopSpinner(spinner)

	var collErr *collector.CollectionError
	if errors.As(err, &collErr) {
		a.logger.Debug("collection failed", "command", collErr.Command, "error", collErr.Cause)
		fmt.Fprintln(a.msg, pterm.Error.Sprint(collErr.Error()))
		return nil
	}
	if err != nil {
		return err
	}
	a.logger.Debug("network collected", "ssid", info.SSID, "auth", info.Auth)

	fmt.Fprintf(a.msg, "%s %s (%s)\n\n", pterm.Info.Sprint("Connected to"), info.SSID, info.Auth)

	prompter := assessor.NewPrompter(a.in, a.msg)
	answers, err := assessor.Interview(ctx, prompter, assessor.Preset{
		WPSEnabled:     a.cfg.Answers.WPSEnabled,
		PasswordLength: a.cfg.Answers.PasswordLength,
		GuestNetworks:  a.cfg.Answers.GuestNetworks,
	})
	if err != nil {
		return fmt.Errorf("interview aborted: %w", err)
	}

	assessment := assessor.Assess(info, answers)
	for _, c := range assessment.Contributions {
		a.logger.Debug("risk contribution", "factor", c.Factor, "points", c.Points)
	}

	rep := report.New(logging.NewRunID(), a.hostInfo(ctx), info, assessment, a.now())

	if a.cfg.OutputFormat == config.FormatJSON {
		if err := report.WriteJSON(a.out, rep); err != nil {
			return err
		}
	} else {
		ui.NewRenderer(a.out).Render(rep)
	}

	if a.notifier != nil {
		notifyCtx, cancel := a.bounded(ctx)
		err := a.notifier.SendReport(notifyCtx, rep)
		cancel()
		if err != nil {
			a.logger.Warn("slack notification failed", "error", err)
		} else {
			a.logger.Debug("slack notification sent", "run_id", rep.RunID)
		}
	}

	return nil
}

// bounded applies the configured timeout to a step that waits on another
// process or service. The interview is never bounded.
func (a *auditRun) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}
