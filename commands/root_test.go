package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dhbcndoe3062/vsosh-project-ib/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "wifiaudit "+Version+"\n", buf.String())
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wifiaudit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_format: json\nlog_level: debug\n"), 0o600))

	cmd := auditCmd
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--log-level", "warn"}))
	t.Cleanup(func() {
		cfgPath, logLevel = "", "info"
		cmd.Flags().Lookup("log-level").Changed = false
		cmd.Flags().Lookup("config").Changed = false
	})

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, config.FormatJSON, cfg.OutputFormat)
	assert.Equal(t, "warn", cfg.LogLevel)
}
