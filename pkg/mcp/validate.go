package mcp

import (
	"fmt"
	"net/url"
	"slices"

	"github.com/chrishayuk/chuk-acp-agent/internal/errors"
)

// Sentinel errors for validation failures.
var (
	ErrEmptyConfig       = errors.New("config has no servers")
	ErrMissingServerName = errors.New("server name is required")
	ErrMissingCommand    = errors.New("local server requires command")
	ErrMissingURL        = errors.New("remote server requires URL")
	ErrInvalidURL        = errors.New("invalid server URL")
	ErrInvalidTransport  = errors.New("invalid transport value")
	ErrEmptyEnvKey       = errors.New("environment variable key is empty")
	ErrEmptyHeaderKey    = errors.New("header key is empty")
)

var validTransports = []string{"", TransportStdio, TransportSSE, TransportHTTP}

// Severity indicates whether a validation issue is an error or warning.
type Severity int

const (
	// SeverityError makes the config unusable.
	SeverityError Severity = iota

	// SeverityWarning flags a likely mistake that does not prevent use.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// ValidationError represents a single validation issue with context.
type ValidationError struct {
	// ServerName is empty for config-level issues.
	ServerName string
	Field      string
	Message    string
	Severity   Severity

	// Err is the underlying sentinel error, if any.
	Err error
}

func (e *ValidationError) Error() string {
	prefix := e.Severity.String()
	switch {
	case e.ServerName != "" && e.Field != "":
		return fmt.Sprintf("%s: server %q field %q: %s", prefix, e.ServerName, e.Field, e.Message)
	case e.ServerName != "":
		return fmt.Sprintf("%s: server %q: %s", prefix, e.ServerName, e.Message)
	default:
		return fmt.Sprintf("%s: %s", prefix, e.Message)
	}
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidateOption configures Validate.
type ValidateOption func(*validateOptions)

type validateOptions struct {
	allowEmpty bool
}

// WithAllowEmpty permits configs with no servers.
// By default at least one server is required.
func WithAllowEmpty(allow bool) ValidateOption {
	return func(o *validateOptions) {
		o.allowEmpty = allow
	}
}

// Validate checks cfg and returns every issue found, or nil.
// Issues are ordered by server name.
func Validate(cfg *Config, opts ...ValidateOption) []*ValidationError {
	var o validateOptions
	for _, opt := range opts {
		opt(&o)
	}

	if cfg == nil {
		return []*ValidationError{{Message: "config is nil", Severity: SeverityError}}
	}

	var errs []*ValidationError
	if !o.allowEmpty && len(cfg.Servers) == 0 {
		errs = append(errs, &ValidationError{
			Message:  "config has no servers",
			Severity: SeverityError,
			Err:      ErrEmptyConfig,
		})
	}

	for _, name := range cfg.Names() {
		errs = append(errs, validateServer(name, cfg.Servers[name])...)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateServer(name string, s *ServerConfig) []*ValidationError {
	issue := func(field, msg string, sev Severity, err error) *ValidationError {
		return &ValidationError{ServerName: name, Field: field, Message: msg, Severity: sev, Err: err}
	}

	if s == nil {
		return []*ValidationError{issue("", "server definition is empty", SeverityError, ErrMissingCommand)}
	}

	var errs []*ValidationError
	if s.Name == "" {
		errs = append(errs, issue("name", "server name is required", SeverityError, ErrMissingServerName))
	}

	if !slices.Contains(validTransports, s.Transport) {
		errs = append(errs, issue("transport", "transport must be 'stdio', 'sse', 'http', or empty", SeverityError, ErrInvalidTransport))
		return errs
	}

	switch s.EffectiveTransport() {
	case TransportStdio:
		if s.Command == "" {
			errs = append(errs, issue("command", "stdio transport requires command", SeverityError, ErrMissingCommand))
		}
		if len(s.Headers) > 0 {
			errs = append(errs, issue("headers", "headers are ignored for stdio servers", SeverityWarning, nil))
		}
	case TransportSSE, TransportHTTP:
		if s.URL == "" {
			errs = append(errs, issue("url", s.EffectiveTransport()+" transport requires URL", SeverityError, ErrMissingURL))
		} else if u, err := url.Parse(s.URL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, issue("url", "URL must be absolute: "+s.URL, SeverityError, ErrInvalidURL))
		}
		if len(s.Env) > 0 {
			errs = append(errs, issue("env", "env is ignored for remote servers", SeverityWarning, nil))
		}
	default:
		errs = append(errs, issue("command/url", "server must have command (for local) or URL (for remote)", SeverityError, ErrMissingCommand))
	}

	if s.Command != "" && s.URL != "" {
		errs = append(errs, issue("", "server has both command and URL; "+s.EffectiveTransport()+" transport is used", SeverityWarning, nil))
	}

	for k := range s.Env {
		if k == "" {
			errs = append(errs, issue("env", "environment variable key is empty", SeverityError, ErrEmptyEnvKey))
		}
	}
	for k := range s.Headers {
		if k == "" {
			errs = append(errs, issue("headers", "header key is empty", SeverityError, ErrEmptyHeaderKey))
		}
	}

	return errs
}

// HasErrors reports whether any issue has error severity.
func HasErrors(errs []*ValidationError) bool {
	return slices.ContainsFunc(errs, func(e *ValidationError) bool { return e.Severity == SeverityError })
}

// Errors returns only the issues with error severity.
func Errors(errs []*ValidationError) []*ValidationError {
	return filterSeverity(errs, SeverityError)
}

// Warnings returns only the issues with warning severity.
func Warnings(errs []*ValidationError) []*ValidationError {
	return filterSeverity(errs, SeverityWarning)
}

func filterSeverity(errs []*ValidationError, sev Severity) []*ValidationError {
	var out []*ValidationError
	for _, e := range errs {
		if e.Severity == sev {
			out = append(out, e)
		}
	}
	return out
}
