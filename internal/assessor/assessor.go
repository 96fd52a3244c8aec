// Package assessor turns the collected network details and the operator's
// answers into a heuristic risk assessment.
package assessor

import (
	"fmt"
	"strings"

	"github.com/dhbcndoe3062/vsosh-project-ib/internal/models"
)

const (
	minPasswordLength         = 8
	recommendedPasswordLength = 12
)

// Answers holds what the operator told us about the router.
type Answers struct {
	WPSEnabled     bool
	PasswordLength int
	GuestNetworks  bool
}

type authRule struct {
	factor         string
	match          func(auth string) bool
	points         int
	problem        string
	threat         *models.Threat
	recommendation string
}

// Evaluated top to bottom; only the first matching rule applies.
var authRules = []authRule{
	{
		factor:         "Open network",
		match:          func(a string) bool { return strings.Contains(a, "OPEN") || a == "NONE" },
		points:         4,
		problem:        "Open network: anyone nearby can connect",
		threat:         &models.ThreatInitialAccess,
		recommendation: "Enable WPA3 encryption (WPA2 at minimum)",
	},
	{
		factor:         "WEP encryption",
		match:          func(a string) bool { return strings.Contains(a, "WEP") },
		points:         4,
		problem:        "WEP is an obsolete protocol that can be cracked",
		threat:         &models.ThreatInitialAccess,
		recommendation: "Migrate to WPA2/WPA3",
	},
	{
		factor: "WPA encryption",
		match: func(a string) bool {
			return strings.Contains(a, "WPA") && !strings.Contains(a, "WPA2") && !strings.Contains(a, "WPA3")
		},
		points:         2,
		problem:        "WPA is an obsolete protocol",
		recommendation: "Migrate to WPA3, or at least WPA2",
	},
	{
		factor: "WPA2 encryption",
		match:  func(a string) bool { return strings.Contains(a, "WPA2") },
		points: 1,
	},
}

func matchAuthRule(auth string) (authRule, bool) {
	upper := strings.ToUpper(strings.TrimSpace(auth))
	for _, rule := range authRules {
		if rule.match(upper) {
			return rule, true
		}
	}
	return authRule{}, false
}

// Assess scores a network. It is deterministic and performs no I/O.
func Assess(info models.NetworkInfo, answers Answers) models.Assessment {
	b := newBuilder()

	if rule, ok := matchAuthRule(info.Auth); ok {
		b.add(rule.factor, rule.points)
		b.problem(rule.problem)
		if rule.threat != nil {
			b.threat(*rule.threat)
		}
		b.recommend(rule.recommendation)
	}

	if answers.WPSEnabled {
		b.add("WPS enabled", 2)
		b.problem("WPS is enabled: its PIN is vulnerable to brute force")
		b.threat(models.ThreatCredentialAccess)
		b.recommend("Disable WPS in the router settings")
	}

	switch {
	case answers.PasswordLength < minPasswordLength:
		b.add("Short password", 3)
		b.problem(fmt.Sprintf("Password is too short (%d characters)", answers.PasswordLength))
		b.threat(models.ThreatCredentialAccess)
		b.recommend("Use a password of at least 12 characters")
	case answers.PasswordLength < recommendedPasswordLength:
		b.add("Password under 12 characters", 1)
		b.recommend("A password of 12+ characters is recommended")
	}

	if answers.GuestNetworks {
		b.add("Guest networks nearby", 1)
		b.problem("Guest or open networks with a similar name are nearby")
		b.recommend("Secure or remove the guest networks")
	}

	return b.finish()
}

// builder only ever adds: the score grows and the lists grow.
type builder struct {
	assessment models.Assessment
	threats    map[models.Threat]struct{}
	recs       map[string]struct{}
}

func newBuilder() *builder {
	return &builder{
		assessment: models.Assessment{
			Problems:        []string{},
			Threats:         []models.Threat{},
			Recommendations: []string{},
			Contributions:   []models.Contribution{},
		},
		threats: map[models.Threat]struct{}{},
		recs:    map[string]struct{}{},
	}
}

func (b *builder) add(factor string, points int) {
	b.assessment.Score += points
	b.assessment.Contributions = append(b.assessment.Contributions, models.Contribution{Factor: factor, Points: points})
}

func (b *builder) problem(text string) {
	if text != "" {
		b.assessment.Problems = append(b.assessment.Problems, text)
	}
}

func (b *builder) threat(t models.Threat) {
	if _, ok := b.threats[t]; ok {
		return
	}
	b.threats[t] = struct{}{}
	b.assessment.Threats = append(b.assessment.Threats, t)
}

func (b *builder) recommend(text string) {
	if text == "" {
		return
	}
	if _, ok := b.recs[text]; ok {
		return
	}
	b.recs[text] = struct{}{}
	b.assessment.Recommendations = append(b.assessment.Recommendations, text)
}

func (b *builder) finish() models.Assessment {
	b.assessment.Level = models.LevelForScore(b.assessment.Score)
	return b.assessment
}
