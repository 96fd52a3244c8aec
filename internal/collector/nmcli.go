package collector

import (
	"context"
	"strings"

	"github.com/dhbcndoe3062/vsosh-project-ib/internal/models"
	"github.com/dhbcndoe3062/vsosh-project-ib/internal/platform"
)

const (
	UnknownSSID  = "Unknown"
	OpenSecurity = "Open"
)

var nmcliCommand = Command{
	Name: "nmcli",
	Args: []string{"-t", "-f", "ACTIVE,SSID,SECURITY", "device", "wifi"},
	Env:  []string{"LC_ALL=C"},
}

// Nmcli collects Wi-Fi details on Linux from NetworkManager's terse listing.
type Nmcli struct {
	Runner CommandRunner
}

func (n *Nmcli) Collect(ctx context.Context) (models.NetworkInfo, error) {
	out, err := n.Runner.Run(ctx, nmcliCommand)
	if err != nil {
		return models.NetworkInfo{}, &CollectionError{
			Platform: platform.Linux,
			Command:  nmcliCommand.String(),
			Cause:    err,
		}
	}

	info, ok := parseNmcli(decodeConsole(out))
	if !ok {
		return models.NetworkInfo{}, &CollectionError{
			Platform: platform.Linux,
			Command:  nmcliCommand.String(),
			Cause:    ErrNotConnected,
		}
	}
	return info, nil
}

// parseNmcli returns the first row whose ACTIVE column is "yes".
func parseNmcli(text string) (models.NetworkInfo, bool) {
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}

		// A bare "yes" row with no other columns still counts as the
		// active connection; its SSID and security fall back to placeholders.
		fields := splitTerse(line)
		if strings.TrimSpace(fields[0]) != "yes" {
			continue
		}

		info := models.NetworkInfo{SSID: UnknownSSID, Auth: OpenSecurity}
		if len(fields) > 1 && fields[1] != "" {
			info.SSID = fields[1]
		}
		if len(fields) > 2 {
			if sec := strings.TrimSpace(fields[2]); sec != "" && sec != "--" {
				info.Auth = sec
			}
		}
		return info, true
	}
	return models.NetworkInfo{}, false
}

// splitTerse splits an nmcli terse row on ':' honouring the "\:" and "\\"
// escapes nmcli uses inside values.
func splitTerse(line string) []string {
	var (
		fields  []string
		field   strings.Builder
		escaped bool
	)

	for _, r := range line {
		switch {
		case escaped:
			field.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ':':
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	if escaped {
		field.WriteRune('\\')
	}
	return append(fields, field.String())
}
