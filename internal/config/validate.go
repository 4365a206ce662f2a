package config

import (
	"github.com/chrishayuk/chuk-acp-agent/internal/errors"
	"github.com/chrishayuk/chuk-acp-agent/internal/logging"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidFormat indicates an unrecognized log format.
	ErrInvalidFormat = errors.New("invalid log format")
)

// FieldError reports a problem with a single configuration field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, &FieldError{Field: "log_level", Value: cfg.LogLevel, Err: logging.ErrInvalidLevel})
	}

	switch cfg.LogFormat {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, &FieldError{Field: "log_format", Value: string(cfg.LogFormat), Err: ErrInvalidFormat})
	}

	return errs
}
