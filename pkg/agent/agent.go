package agent

import (
	"reflect"

	"github.com/chrishayuk/chuk-acp-agent/internal/errors"
)

// ErrNotImplemented is returned by Base for operations an agent must
// provide itself.
var ErrNotImplemented = errors.ErrNotImplemented

// ErrNilAgent is returned by Start when there is no agent to run.
var ErrNilAgent = errors.New("agent is nil")

// Agent is implemented by every agent built on this kit.
type Agent interface {
	// Name identifies the agent to the editor.
	Name() string
	// Version is the agent's own semantic version.
	Version() string
	// Initialize runs once per session before the first prompt.
	Initialize(ctx *Context) error
	// Prompt handles one user turn and returns the reply text.
	Prompt(ctx *Context, text string) (string, error)
}

// Base provides Name, Version and a no-op Initialize. Embed it and
// implement Prompt.
type Base struct {
	name    string
	version string
}

// NewBase returns a Base reporting name and version.
func NewBase(name, version string) Base {
	return Base{name: name, version: version}
}

// Name returns the agent name.
func (b *Base) Name() string { return b.name }

// Version returns the agent version.
func (b *Base) Version() string { return b.version }

// Initialize does nothing.
func (b *Base) Initialize(*Context) error { return nil }

// Prompt always fails with ErrNotImplemented.
func (b *Base) Prompt(_ *Context, _ string) (string, error) {
	return "", errors.Wrapf(ErrNotImplemented, "agent %q has no Prompt", b.name)
}

// Start initializes a for the session described by ctx.
func Start(ctx *Context, a Agent) error {
	if isNil(a) {
		return ErrNilAgent
	}
	ctx.Logger().Info("starting agent",
		"agent", a.Name(),
		"version", a.Version(),
		"mcp_servers", len(ctx.Servers()),
	)
	if err := a.Initialize(ctx); err != nil {
		return errors.Wrapf(err, "initializing agent %q", a.Name())
	}
	return nil
}

// isNil reports whether a is nil or holds a nil pointer.
func isNil(a Agent) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
