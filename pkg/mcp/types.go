package mcp

import (
	"cmp"
	"maps"
	"slices"

	"github.com/chrishayuk/chuk-acp-agent/internal/errors"
)

// Transport type constants for MCP server communication.
const (
	// TransportStdio indicates local process communication via stdin/stdout.
	// This is the default transport when a Command is specified.
	TransportStdio = "stdio"

	// TransportSSE indicates remote server communication via Server-Sent Events.
	TransportSSE = "sse"

	// TransportHTTP indicates remote server communication via streamable HTTP.
	TransportHTTP = "http"
)

// ErrServerExists is returned by Config.Add when the name is taken.
var ErrServerExists = errors.New("server already exists")

// ServerConfig describes a single MCP server an agent can connect to.
type ServerConfig struct {
	// Name is the server's unique identifier. On disk it is the map key
	// under "mcpServers", not a field of the entry.
	Name string `json:"-" yaml:"-" toml:"-"`

	// Command is the executable for local (stdio) servers.
	Command string `json:"command,omitempty" yaml:"command,omitempty" toml:"command,omitempty"`

	// Args are passed to Command.
	Args []string `json:"args,omitempty" yaml:"args,omitempty" toml:"args,omitempty"`

	// URL is the endpoint for remote servers.
	URL string `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty"`

	// Transport is "stdio", "sse", "http", or empty to infer from
	// Command and URL.
	Transport string `json:"transport,omitempty" yaml:"transport,omitempty" toml:"transport,omitempty"`

	// Env is added to the environment of local server processes.
	Env map[string]string `json:"env,omitempty" yaml:"env,omitempty" toml:"env,omitempty"`

	// Headers are sent with every request to remote servers.
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty" toml:"headers,omitempty"`

	// Disabled keeps the entry in the file without connecting to it.
	Disabled bool `json:"disabled,omitempty" yaml:"disabled,omitempty" toml:"disabled,omitempty"`
}

// EffectiveTransport returns the explicit Transport, or the one implied by
// the populated fields. Command wins over URL when both are set.
func (s *ServerConfig) EffectiveTransport() string {
	switch {
	case s.Transport != "":
		return s.Transport
	case s.Command != "":
		return TransportStdio
	case s.URL != "":
		return TransportSSE
	default:
		return ""
	}
}

// IsLocal reports whether the server is launched as a local process.
func (s *ServerConfig) IsLocal() bool {
	return s.EffectiveTransport() == TransportStdio
}

// IsRemote reports whether the server is reached over the network.
func (s *ServerConfig) IsRemote() bool {
	t := s.EffectiveTransport()
	return t == TransportSSE || t == TransportHTTP
}

// Clone returns a deep copy of s.
func (s *ServerConfig) Clone() *ServerConfig {
	if s == nil {
		return nil
	}
	c := *s
	c.Args = slices.Clone(s.Args)
	c.Env = maps.Clone(s.Env)
	c.Headers = maps.Clone(s.Headers)
	return &c
}

// Config is a collection of MCP server definitions keyed by name.
type Config struct {
	Servers map[string]*ServerConfig `json:"mcpServers" yaml:"mcpServers" toml:"mcpServers"`
}

// NewConfig creates a new Config with initialized maps.
func NewConfig() *Config {
	return &Config{
		Servers: make(map[string]*ServerConfig),
	}
}

// Get returns the named server.
func (c *Config) Get(name string) (*ServerConfig, bool) {
	s, ok := c.Servers[name]
	return s, ok
}

// Add registers server under its Name.
func (c *Config) Add(server *ServerConfig) error {
	if server == nil || server.Name == "" {
		return errors.Wrap(ErrMissingServerName, "adding server")
	}
	if c.Servers == nil {
		c.Servers = make(map[string]*ServerConfig)
	}
	if _, exists := c.Servers[server.Name]; exists {
		return errors.Wrapf(ErrServerExists, "%q", server.Name)
	}
	c.Servers[server.Name] = server
	return nil
}

// Remove deletes the named server and reports whether it was present.
func (c *Config) Remove(name string) bool {
	if _, ok := c.Servers[name]; !ok {
		return false
	}
	delete(c.Servers, name)
	return true
}

// Names returns all server names in sorted order.
func (c *Config) Names() []string {
	return slices.Sorted(maps.Keys(c.Servers))
}

// Enabled returns the servers that are not disabled, sorted by name.
func (c *Config) Enabled() []*ServerConfig {
	var out []*ServerConfig
	for _, s := range c.Servers {
		if s != nil && !s.Disabled {
			out = append(out, s)
		}
	}
	slices.SortFunc(out, func(a, b *ServerConfig) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

// Merge returns a new Config containing c's servers overlaid by other's.
// Entries in other replace entries of the same name.
func (c *Config) Merge(other *Config) *Config {
	merged := NewConfig()
	for _, src := range []*Config{c, other} {
		if src == nil {
			continue
		}
		for name, s := range src.Servers {
			merged.Servers[name] = s.Clone()
		}
	}
	return merged
}

// normalize sets each server's Name from its map key and guarantees a
// non-nil map.
func (c *Config) normalize() {
	if c.Servers == nil {
		c.Servers = make(map[string]*ServerConfig)
	}
	for name, s := range c.Servers {
		if s == nil {
			s = &ServerConfig{}
			c.Servers[name] = s
		}
		s.Name = name
	}
}
