package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dhbcndoe3062/vsosh-project-ib/internal/models"
)

type SlackNotifier struct {
	WebhookURL string
	Channel    string
	Client     *http.Client
}

type slackMessage struct {
	Channel     string            `json:"channel,omitempty"`
	Username    string            `json:"username"`
	IconEmoji   string            `json:"icon_emoji"`
	Text        string            `json:"text"`
	Attachments []slackAttachment `json:"attachments"`
}

type slackAttachment struct {
	Color  string       `json:"color"`
	Title  string       `json:"title"`
	Text   string       `json:"text,omitempty"`
	Fields []slackField `json:"fields,omitempty"`
	Footer string       `json:"footer,omitempty"`
}

type slackField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

func NewSlackNotifier(webhookURL, channel string) *SlackNotifier {
	return &SlackNotifier{
		WebhookURL: webhookURL,
		Channel:    channel,
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *SlackNotifier) SendReport(ctx context.Context, rep *models.Report) error {
	a := rep.Assessment

	text := fmt.Sprintf("*Wi-Fi audit complete* for `%s`: risk *%s* (score %d)", rep.Network.SSID, a.Level, a.Score)

	summary := slackAttachment{
		Color: levelColor(a.Level),
		Title: "Network",
		Fields: []slackField{
			{Title: "SSID", Value: rep.Network.SSID, Short: true},
			{Title: "Authentication", Value: rep.Network.Auth, Short: true},
			{Title: "Risk", Value: string(a.Level), Short: true},
			{Title: "Score", Value: fmt.Sprintf("%d", a.Score), Short: true},
		},
		Footer: "wifiaudit run " + rep.RunID,
	}
	if rep.Host.Hostname != "" {
		summary.Fields = append(summary.Fields, slackField{Title: "Host", Value: rep.Host.Hostname, Short: true})
	}

	attachments := []slackAttachment{summary}

	if len(a.Problems) > 0 {
		attachments = append(attachments, slackAttachment{
			Color: levelColor(a.Level),
			Title: fmt.Sprintf("Problems (%d)", len(a.Problems)),
			Text:  bulletList(a.Problems),
		})
	}
	if len(a.Recommendations) > 0 {
		attachments = append(attachments, slackAttachment{
			Color: "#439FE0",
			Title: "Recommendations",
			Text:  bulletList(a.Recommendations),
		})
	}

	msg := slackMessage{
		Channel:     s.Channel,
		Username:    "wifiaudit",
		IconEmoji:   ":satellite_antenna:",
		Text:        text,
		Attachments: attachments,
	}

	return s.sendMessage(ctx, msg)
}

func (s *SlackNotifier) sendMessage(ctx context.Context, msg slackMessage) error {
	jsonData, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal slack message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.WebhookURL, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to build slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send slack message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack returned non-200 status: %d", resp.StatusCode)
	}

	return nil
}

func levelColor(level models.RiskLevel) string {
	switch level {
	case models.RiskHigh:
		return "danger"
	case models.RiskMedium:
		return "warning"
	default:
		return "good"
	}
}

func bulletList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("• " + item + "\n")
	}
	return b.String()
}
