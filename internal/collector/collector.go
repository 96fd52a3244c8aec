// Package collector reads the currently connected Wi-Fi network's name and
// authentication scheme by running one OS-provided command and parsing its
// text output.
package collector

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/dhbcndoe3062/vsosh-project-ib/internal/models"
	"github.com/dhbcndoe3062/vsosh-project-ib/internal/platform"
)

var (
	ErrEmptyOutput  = errors.New("command produced no output")
	ErrNotConnected = errors.New("no active Wi-Fi connection")
)

// Collector reads the current Wi-Fi network details for one platform.
type Collector interface {
	Collect(ctx context.Context) (models.NetworkInfo, error)
}

// Command describes a single external process invocation.
type Command struct {
	Name string
	Args []string
	Env  []string // appended to the parent environment
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// CommandRunner executes a command and returns its standard output.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) ([]byte, error)
}

// ExecRunner runs commands through os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, c Command) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, err
	}
	if len(strings.TrimSpace(string(out))) == 0 {
		return nil, ErrEmptyOutput
	}
	return out, nil
}

// CollectionError reports that Wi-Fi details could not be read. It is
// recoverable: the run ends without an assessment.
type CollectionError struct {
	Platform platform.Platform
	Command  string
	Cause    error
}

func (e *CollectionError) Error() string {
	switch {
	case errors.Is(e.Cause, exec.ErrNotFound):
		return fmt.Sprintf("%s not found: cannot read Wi-Fi details on %s", commandName(e.Command), e.Platform)
	case errors.Is(e.Cause, ErrNotConnected):
		return fmt.Sprintf("%s reports no active Wi-Fi connection", commandName(e.Command))
	default:
		return fmt.Sprintf("failed to read Wi-Fi details on %s via %q: %v", e.Platform, e.Command, e.Cause)
	}
}

func (e *CollectionError) Unwrap() error {
	return e.Cause
}

func commandName(command string) string {
	if name, _, ok := strings.Cut(command, " "); ok {
		return name
	}
	return command
}

// New returns the collector variant for the given platform.
func New(p platform.Platform, runner CommandRunner) (Collector, error) {
	if runner == nil {
		runner = ExecRunner{}
	}

	switch p {
	case platform.Windows:
		return &Netsh{Runner: runner}, nil
	case platform.Linux:
		return &Nmcli{Runner: runner}, nil
	default:
		return nil, fmt.Errorf("%w: %s", platform.ErrUnsupported, p)
	}
}
