// Package platform identifies the host operating system family and reports
// descriptive host details for the audit header.
package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/dhbcndoe3062/vsosh-project-ib/internal/models"
	"github.com/shirou/gopsutil/v4/host"
)

type Platform string

const (
	Windows Platform = "windows"
	Linux   Platform = "linux"
)

var ErrUnsupported = errors.New("unsupported platform")

// Detect maps a GOOS value onto a supported platform.
func Detect(goos string) (Platform, error) {
	switch goos {
	case "windows":
		return Windows, nil
	case "linux":
		return Linux, nil
	default:
		return "", fmt.Errorf("%w: %s (only Windows and Linux are supported)", ErrUnsupported, goos)
	}
}

func Current() (Platform, error) {
	return Detect(runtime.GOOS)
}

func (p Platform) String() string {
	switch p {
	case Windows:
		return "Windows"
	case Linux:
		return "Linux"
	default:
		return string(p)
	}
}

// HostDetails never fails: missing details only make the report header shorter.
func HostDetails(ctx context.Context, logger *slog.Logger) models.HostInfo {
	info, err := host.InfoWithContext(ctx)
	if err != nil || info == nil {
		logger.Debug("host details unavailable", "error", err)
		return models.HostInfo{}
	}

	return models.HostInfo{
		Hostname:        info.Hostname,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
	}
}
