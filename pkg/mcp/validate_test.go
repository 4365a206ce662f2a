package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrishayuk/chuk-acp-agent/internal/errors"
)

func configOf(servers ...*ServerConfig) *Config {
	cfg := NewConfig()
	for _, s := range servers {
		cfg.Servers[s.Name] = s
	}
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		cfg          *Config
		opts         []ValidateOption
		wantErrs     []error
		wantWarnings int
	}{
		{
			name: "valid local and remote",
			cfg: configOf(
				&ServerConfig{Name: "github", Command: "npx"},
				&ServerConfig{Name: "search", URL: "https://s.example/mcp", Transport: TransportHTTP},
			),
		},
		{
			name:     "nil config",
			cfg:      nil,
			wantErrs: []error{nil},
		},
		{
			name:     "empty config",
			cfg:      NewConfig(),
			wantErrs: []error{ErrEmptyConfig},
		},
		{
			name: "empty config allowed",
			cfg:  NewConfig(),
			opts: []ValidateOption{WithAllowEmpty(true)},
		},
		{
			name:     "missing command and url",
			cfg:      configOf(&ServerConfig{Name: "bare"}),
			wantErrs: []error{ErrMissingCommand},
		},
		{
			name:     "stdio without command",
			cfg:      configOf(&ServerConfig{Name: "s", Transport: TransportStdio, URL: "https://x.example"}),
			wantErrs: []error{ErrMissingCommand},
			// both-set warning is not raised because command is empty
		},
		{
			name:     "sse without url",
			cfg:      configOf(&ServerConfig{Name: "s", Transport: TransportSSE}),
			wantErrs: []error{ErrMissingURL},
		},
		{
			name:     "relative url",
			cfg:      configOf(&ServerConfig{Name: "s", URL: "/mcp"}),
			wantErrs: []error{ErrInvalidURL},
		},
		{
			name:     "unknown transport",
			cfg:      configOf(&ServerConfig{Name: "s", Command: "x", Transport: "websocket"}),
			wantErrs: []error{ErrInvalidTransport},
		},
		{
			name:     "empty env key",
			cfg:      configOf(&ServerConfig{Name: "s", Command: "x", Env: map[string]string{"": "v"}}),
			wantErrs: []error{ErrEmptyEnvKey},
		},
		{
			name:     "empty header key",
			cfg:      configOf(&ServerConfig{Name: "s", URL: "https://x.example", Headers: map[string]string{"": "v"}}),
			wantErrs: []error{ErrEmptyHeaderKey},
		},
		{
			name:         "both command and url warns",
			cfg:          configOf(&ServerConfig{Name: "s", Command: "x", URL: "https://x.example"}),
			wantWarnings: 1,
		},
		{
			name:         "headers on stdio warns",
			cfg:          configOf(&ServerConfig{Name: "s", Command: "x", Headers: map[string]string{"A": "b"}}),
			wantWarnings: 1,
		},
		{
			name:         "env on remote warns",
			cfg:          configOf(&ServerConfig{Name: "s", URL: "https://x.example", Env: map[string]string{"A": "b"}}),
			wantWarnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := Validate(tt.cfg, tt.opts...)

			errs := Errors(issues)
			require.Len(t, errs, len(tt.wantErrs), "issues: %v", issues)
			for i, want := range tt.wantErrs {
				if want != nil {
					assert.True(t, errors.Is(errs[i], want), "got %v, want %v", errs[i], want)
				}
			}
			assert.Equal(t, len(tt.wantErrs) > 0, HasErrors(issues))
			assert.Len(t, Warnings(issues), tt.wantWarnings)

			if len(tt.wantErrs) == 0 && tt.wantWarnings == 0 {
				assert.Nil(t, issues)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		err  *ValidationError
		want string
	}{
		{
			&ValidationError{ServerName: "gh", Field: "url", Message: "bad", Severity: SeverityError},
			`error: server "gh" field "url": bad`,
		},
		{
			&ValidationError{ServerName: "gh", Message: "odd", Severity: SeverityWarning},
			`warning: server "gh": odd`,
		},
		{
			&ValidationError{Message: "config has no servers", Severity: SeverityError},
			"error: config has no servers",
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
