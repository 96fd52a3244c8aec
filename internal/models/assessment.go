package models

import "time"

type NetworkInfo struct {
	SSID string `json:"ssid"`
	Auth string `json:"auth"`
}

type HostInfo struct {
	Hostname        string `json:"hostname,omitempty"`
	Platform        string `json:"platform,omitempty"`
	PlatformVersion string `json:"platform_version,omitempty"`
}

// Contribution is a single weighted addition to the risk score.
type Contribution struct {
	Factor string `json:"factor"`
	Points int    `json:"points"`
}

type Assessment struct {
	Score           int            `json:"score"`
	Level           RiskLevel      `json:"level"`
	Problems        []string       `json:"problems"`
	Threats         []Threat       `json:"threats"`
	Recommendations []string       `json:"recommendations"`
	Contributions   []Contribution `json:"contributions"`
}

type Report struct {
	RunID       string      `json:"run_id"`
	Host        HostInfo    `json:"host"`
	Network     NetworkInfo `json:"network"`
	Assessment  Assessment  `json:"assessment"`
	CompletedAt time.Time   `json:"completed_at"`
}
