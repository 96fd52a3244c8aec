package collector

import (
	"context"
	"regexp"
	"strings"

	"github.com/dhbcndoe3062/vsosh-project-ib/internal/models"
	"github.com/dhbcndoe3062/vsosh-project-ib/internal/platform"
)

const (
	NotConnected = "Not connected"
	UnknownAuth  = "Unknown"
)

var netshCommand = Command{Name: "netsh", Args: []string{"wlan", "show", "interfaces"}}

// Label patterns are tried in order; add a locale by appending to the list.
var (
	ssidPatterns = []*regexp.Regexp{
		labelPattern("SSID"),
	}
	authPatterns = []*regexp.Regexp{
		labelPattern("Authentication"),
		labelPattern("Аутентификация"),
		labelPattern("Проверка подлинности"),
	}
)

func labelPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(label) + `[ \t]*:[ \t]*(\S.*?)[ \t]*$`)
}

// Netsh collects Wi-Fi details on Windows from `netsh wlan show interfaces`.
type Netsh struct {
	Runner CommandRunner
}

func (n *Netsh) Collect(ctx context.Context) (models.NetworkInfo, error) {
	out, err := n.Runner.Run(ctx, netshCommand)
	if err != nil {
		return models.NetworkInfo{}, &CollectionError{
			Platform: platform.Windows,
			Command:  netshCommand.String(),
			Cause:    err,
		}
	}

	return parseNetsh(decodeConsole(out)), nil
}

func parseNetsh(text string) models.NetworkInfo {
	info := models.NetworkInfo{SSID: NotConnected, Auth: UnknownAuth}

	if ssid, ok := firstMatch(text, ssidPatterns); ok {
		info.SSID = ssid
	}
	if auth, ok := firstMatch(text, authPatterns); ok {
		info.Auth = auth
	}
	return info
}

func firstMatch(text string, patterns []*regexp.Regexp) (string, bool) {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); len(m) >= 2 {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}
