package agent

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/chrishayuk/chuk-acp-agent/internal/config"
	"github.com/chrishayuk/chuk-acp-agent/internal/errors"
	"github.com/chrishayuk/chuk-acp-agent/internal/logging"
	"github.com/chrishayuk/chuk-acp-agent/internal/paths"
	"github.com/chrishayuk/chuk-acp-agent/pkg/mcp"
)

// Context is the execution context handed to an agent for one session.
// It embeds context.Context for cancellation and deadlines.
type Context struct {
	context.Context

	sessionID  string
	workingDir string
	logger     *slog.Logger
	mcp        *mcp.Config
}

// Option configures a Context.
type Option func(*Context)

// WithSessionID sets the session ID. By default a random UUID is used.
func WithSessionID(id string) Option {
	return func(c *Context) { c.sessionID = id }
}

// WithWorkingDir sets the project directory the session operates in.
func WithWorkingDir(dir string) Option {
	return func(c *Context) { c.workingDir = dir }
}

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) { c.logger = l }
}

// WithMCPConfig sets the MCP servers available to the session.
func WithMCPConfig(cfg *mcp.Config) Option {
	return func(c *Context) { c.mcp = cfg }
}

// NewContext builds a Context from parent and opts.
// The logger defaults to the one attached to parent, and the MCP config
// defaults to an empty one.
func NewContext(parent context.Context, opts ...Option) *Context {
	c := applyOptions(opts)
	c.bind(parent)
	return c
}

func applyOptions(opts []Option) *Context {
	c := &Context{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// bind fills unset fields and binds the session logger to parent.
func (c *Context) bind(parent context.Context) {
	if parent == nil {
		parent = context.Background()
	}
	if c.sessionID == "" {
		c.sessionID = uuid.NewString()
	}
	if c.logger == nil {
		c.logger = logging.FromContext(parent)
	}
	c.logger = c.logger.With("session", c.sessionID)
	if c.mcp == nil {
		c.mcp = mcp.NewConfig()
	}
	c.Context = logging.NewContext(parent, c.logger)
}

// LoadContext builds a Context from the runtime configuration at
// configPath (or the default search path when empty).
//
// Options are applied once, before anything is loaded. Unless
// WithLogger is given, the logger is configured from log_level and
// log_format and writes to stderr. Unless WithMCPConfig is given, MCP
// servers are read from the configured file and, when WithWorkingDir
// names a project, overlaid with the project-local file. Validation
// errors fail the load; warnings are logged.
func LoadContext(parent context.Context, configPath string, opts ...Option) (*Context, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "loading agent config")
	}

	c := applyOptions(opts)
	if c.logger == nil {
		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		c.logger = logging.New(logging.Config{
			Level:  level,
			Format: cfg.LogFormat,
			Output: os.Stderr,
		})
	}

	var warnings []*mcp.ValidationError
	if c.mcp == nil {
		servers, err := loadServers(cfg.MCPConfigPath(), c.workingDir)
		if err != nil {
			return nil, err
		}

		issues := mcp.Validate(servers, mcp.WithAllowEmpty(true))
		if mcp.HasErrors(issues) {
			errs := make([]error, 0, len(issues))
			for _, e := range mcp.Errors(issues) {
				errs = append(errs, e)
			}
			return nil, errors.Mark(errors.Join(errs...), errors.ErrInvalidConfig)
		}
		warnings = mcp.Warnings(issues)
		c.mcp = servers
	}

	c.bind(parent)
	for _, w := range warnings {
		c.Logger().Warn("mcp config", "issue", w.Error())
	}
	c.Logger().Debug("context loaded", "mcp_config", cfg.MCPConfigPath(), "servers", len(c.mcp.Servers))
	return c, nil
}

// loadServers reads the user MCP file at path and overlays the
// project-local file under workingDir, if any.
func loadServers(path, workingDir string) (*mcp.Config, error) {
	servers, err := mcp.ParseFile(path)
	if err != nil {
		return nil, err
	}
	if project := paths.ProjectMCPConfigFile(workingDir); project != "" {
		local, err := mcp.ParseFile(project)
		if err != nil {
			return nil, err
		}
		servers = servers.Merge(local)
	}
	return servers, nil
}

// SessionID returns the session identifier.
func (c *Context) SessionID() string { return c.sessionID }

// WorkingDir returns the project directory, or "" if none was set.
func (c *Context) WorkingDir() string { return c.workingDir }

// Logger returns the session logger. It is never nil.
func (c *Context) Logger() *slog.Logger { return c.logger }

// MCP returns the full MCP configuration, including disabled servers.
func (c *Context) MCP() *mcp.Config { return c.mcp }

// Servers returns the enabled MCP servers sorted by name.
func (c *Context) Servers() []*mcp.ServerConfig { return c.mcp.Enabled() }
