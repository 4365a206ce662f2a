package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrishayuk/chuk-acp-agent/internal/errors"
	"github.com/chrishayuk/chuk-acp-agent/internal/logging"
	"github.com/chrishayuk/chuk-acp-agent/internal/paths"
)

// isolate points XDG_CONFIG_HOME and the working directory at empty temp
// dirs so the developer's own config is never picked up.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	paths.Reload()
	t.Cleanup(paths.Reload)
	t.Chdir(t.TempDir())
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_NoConfigFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_UserConfigDir(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, "chuk-acp-agent", "config.yaml"),
		"log_level: debug\nlog_format: json\nmcp_config: /tmp/servers.toml\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, logging.FormatJSON, cfg.LogFormat)
	assert.Equal(t, "/tmp/servers.toml", cfg.MCPConfigPath())
}

func TestLoad_ExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "agent.yaml")
	writeFile(t, path, "version: 2\nlog_level: info\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Version)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, logging.FormatText, cfg.LogFormat)
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	isolate(t)

	_, err := Load("/non/existent/path/config.yaml")
	assert.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("CHUK_ACP_AGENT_LOG_LEVEL", "trace")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.LogLevel)
}

func TestLoad_InvalidValues(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "log_level: shouty\nlog_format: xml\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
}

func TestMCPConfigPath_Default(t *testing.T) {
	home := isolate(t)

	assert.Equal(t, filepath.Join(home, "chuk-acp-agent", "mcp.json"), Default().MCPConfigPath())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr []error
	}{
		{"nil config", nil, nil},
		{"defaults", Default(), nil},
		{"version zero", &Config{Version: 0}, []error{ErrVersionTooLow}},
		{"bad level", &Config{Version: 1, LogLevel: "loud"}, []error{logging.ErrInvalidLevel}},
		{"bad format", &Config{Version: 1, LogFormat: "xml"}, []error{ErrInvalidFormat}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.cfg)
			if tt.cfg == nil {
				assert.Len(t, errs, 1)
				return
			}
			require.Len(t, errs, len(tt.wantErr))
			for i, want := range tt.wantErr {
				assert.True(t, errors.Is(errs[i], want), "got %v, want %v", errs[i], want)
			}
		})
	}
}
