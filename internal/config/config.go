package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/chrishayuk/chuk-acp-agent/internal/errors"
	"github.com/chrishayuk/chuk-acp-agent/internal/logging"
	"github.com/chrishayuk/chuk-acp-agent/internal/paths"
)

// EnvPrefix is prepended to environment variable overrides.
const EnvPrefix = "CHUK_ACP_AGENT"

// Config represents the agent runtime configuration.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// LogFormat is text or json.
	LogFormat logging.Format `mapstructure:"log_format" yaml:"log_format"`

	// MCPConfig is the path of the MCP server definitions file.
	// Empty means paths.DefaultMCPConfigFile.
	MCPConfig string `mapstructure:"mcp_config" yaml:"mcp_config"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:   1,
		LogLevel:  "warn",
		LogFormat: logging.FormatText,
	}
}

// MCPConfigPath returns the effective MCP config path.
func (c *Config) MCPConfigPath() string {
	if c.MCPConfig != "" {
		return c.MCPConfig
	}
	return paths.DefaultMCPConfigFile()
}

// newViper returns a viper instance with search paths, env binding and
// defaults applied. A fresh instance per load keeps tests independent.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName(strings.TrimSuffix(paths.ConfigFileName, ".yaml"))
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	v.AddConfigPath(paths.ConfigDir())

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("version", d.Version)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", string(d.LogFormat))
	v.SetDefault("mcp_config", d.MCPConfig)
	return v
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file and a missing
// file is an error. If path is empty, it searches the default locations
// and falls back to defaults when nothing is found.
// The result is validated before it is returned.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case path != "":
			return nil, errors.Wrapf(err, "reading config file %s", path)
		case errors.As(err, &notFound):
			// no file in the search path; defaults and env apply
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Mark(errors.Join(errs...), errors.ErrInvalidConfig)
	}

	return &cfg, nil
}
