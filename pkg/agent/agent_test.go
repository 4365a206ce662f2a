package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrishayuk/chuk-acp-agent/internal/errors"
	"github.com/chrishayuk/chuk-acp-agent/internal/logging"
)

type echoAgent struct {
	Base
	initialized bool
}

func (e *echoAgent) Initialize(*Context) error {
	e.initialized = true
	return nil
}

func (e *echoAgent) Prompt(_ *Context, text string) (string, error) {
	return strings.ToUpper(text), nil
}

type failingAgent struct{ Base }

func (f *failingAgent) Initialize(*Context) error {
	return errors.New("no credentials")
}

func TestBase(t *testing.T) {
	b := NewBase("bare", "1.2.3")
	var a Agent = &b

	assert.Equal(t, "bare", a.Name())
	assert.Equal(t, "1.2.3", a.Version())

	ctx := NewContext(t.Context(), WithLogger(logging.ForTest(t)))
	require.NoError(t, a.Initialize(ctx))

	_, err := a.Prompt(ctx, "hi")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotImplemented))
	assert.Contains(t, err.Error(), `"bare"`)
}

func TestStart(t *testing.T) {
	ctx := NewContext(t.Context(), WithLogger(logging.ForTest(t)))
	a := &echoAgent{Base: NewBase("echo", "0.1.0")}

	require.NoError(t, Start(ctx, a))
	assert.True(t, a.initialized)

	reply, err := a.Prompt(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, "HELLO", reply)
}

func TestStart_InitializeError(t *testing.T) {
	ctx := NewContext(t.Context(), WithLogger(logging.ForTest(t)))

	err := Start(ctx, &failingAgent{Base: NewBase("broken", "0.0.1")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `initializing agent "broken"`)
	assert.Contains(t, err.Error(), "no credentials")
}

func TestStart_NilAgent(t *testing.T) {
	ctx := NewContext(t.Context(), WithLogger(logging.ForTest(t)))

	var typed *echoAgent
	tests := []struct {
		name  string
		agent Agent
	}{
		{"nil interface", nil},
		{"nil pointer", typed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Start(ctx, tt.agent)
			assert.True(t, errors.Is(err, ErrNilAgent))
		})
	}
}
