package collector

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
}

func shell(script string, env ...string) Command {
	return Command{Name: "sh", Args: []string{"-c", script}, Env: env}
}

func TestExecRunner_ReturnsStdout(t *testing.T) {
	skipWithoutShell(t)

	out, err := ExecRunner{}.Run(context.Background(), shell("echo yes:HomeNet:WPA2"))
	require.NoError(t, err)
	assert.Equal(t, "yes:HomeNet:WPA2\n", string(out))
}

func TestExecRunner_BlankOutput(t *testing.T) {
	skipWithoutShell(t)

	_, err := ExecRunner{}.Run(context.Background(), shell(`printf '  \n\n'`))
	assert.ErrorIs(t, err, ErrEmptyOutput)
}

func TestExecRunner_NonZeroExitAttachesStderr(t *testing.T) {
	skipWithoutShell(t)

	_, err := ExecRunner{}.Run(context.Background(), shell("echo 'radio is off' >&2; exit 3"))
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode())
	assert.Contains(t, err.Error(), "radio is off")
}

func TestExecRunner_MissingCommand(t *testing.T) {
	_, err := ExecRunner{}.Run(context.Background(), Command{Name: "wifiaudit-no-such-tool"})
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestExecRunner_EnvAppendedToParent(t *testing.T) {
	skipWithoutShell(t)
	t.Setenv("WIFIAUDIT_PARENT_VAR", "kept")

	out, err := ExecRunner{}.Run(context.Background(),
		shell(`echo "$LC_ALL $WIFIAUDIT_PARENT_VAR"`, "LC_ALL=C"))
	require.NoError(t, err)
	assert.Equal(t, "C kept\n", string(out))
}

func TestExecRunner_CancelledContext(t *testing.T) {
	skipWithoutShell(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ExecRunner{}.Run(ctx, shell("sleep 5"))
	assert.Error(t, err)
}

func TestNmcli_ThroughExecRunner(t *testing.T) {
	skipWithoutShell(t)

	bin := t.TempDir()
	script := "#!/bin/sh\necho \"no:Neighbour:WPA2\"\necho \"yes:Locale-$LC_ALL:WPA2 WPA3\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(bin, "nmcli"), []byte(script), 0o755))
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	info, err := (&Nmcli{Runner: ExecRunner{}}).Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Locale-C", info.SSID)
	assert.Equal(t, "WPA2 WPA3", info.Auth)
}

func TestNmcli_MissingToolThroughExecRunner(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := (&Nmcli{Runner: ExecRunner{}}).Collect(context.Background())
	var collErr *CollectionError
	require.True(t, errors.As(err, &collErr))
	assert.ErrorIs(t, err, exec.ErrNotFound)
	assert.Contains(t, collErr.Error(), "nmcli not found")
}
