package models

import "fmt"

type RiskLevel string

const (
	RiskHigh   RiskLevel = "HIGH"   // score >= 6
	RiskMedium RiskLevel = "MEDIUM" // score >= 3
	RiskLow    RiskLevel = "LOW"
)

const (
	highThreshold   = 6
	mediumThreshold = 3
)

// LevelForScore maps a risk score onto its tier.
func LevelForScore(score int) RiskLevel {
	switch {
	case score >= highThreshold:
		return RiskHigh
	case score >= mediumThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Threat is a MITRE ATT&CK tactic an identified problem enables.
type Threat struct {
	Tactic string `json:"tactic"`
	ID     string `json:"id"`
}

var (
	ThreatInitialAccess    = Threat{Tactic: "Initial Access", ID: "TA0001"}
	ThreatCredentialAccess = Threat{Tactic: "Credential Access", ID: "TA0006"}
)

func (t Threat) String() string {
	return fmt.Sprintf("%s (%s)", t.Tactic, t.ID)
}
