package mcp

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/chrishayuk/chuk-acp-agent/internal/errors"
	"github.com/chrishayuk/chuk-acp-agent/internal/paths"
	"github.com/chrishayuk/chuk-acp-agent/pkg/fileutil"
)

// Format identifies an on-disk encoding of a Config.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Sentinel errors for parser operations.
var (
	// ErrInvalidFormat indicates the input could not be decoded.
	ErrInvalidFormat = errors.New("invalid MCP configuration")

	// ErrUnsupportedFormat indicates an unknown format or file extension.
	ErrUnsupportedFormat = errors.New("unsupported MCP configuration format")
)

// ParseError wraps errors that occur during parsing with path context.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return "parsing MCP config " + e.Path + ": " + e.Err.Error()
	}
	return "parsing MCP config: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "extension %q", filepath.Ext(path))
	}
}

// Parse decodes a Config from data in the given format.
// Empty input yields an empty config. Server names are taken from the
// map keys.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := NewConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, cfg)
	case FormatYAML:
		err = yaml.Unmarshal(data, cfg)
	case FormatTOML:
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "decoding %s", format), ErrInvalidFormat)
	}

	cfg.normalize()
	return cfg, nil
}

// ParseFile reads a Config from path, choosing the decoder by extension.
// A missing file yields an empty config: no file means no servers.
func ParseFile(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	data, err := fileutil.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewConfig(), nil
		}
		return nil, &ParseError{Path: path, Err: err}
	}

	cfg, err := Parse(data, format)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return cfg, nil
}

// Marshal encodes cfg in the given format with a trailing newline.
func Marshal(cfg *Config, format Format) ([]byte, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(cfg, "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(cfg)
	case FormatTOML:
		data, err = toml.Marshal(cfg)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "marshaling MCP config as %s", format)
	}

	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data, nil
}

// WriteFile atomically writes cfg to path in the format implied by its
// extension, creating parent directories as needed.
func WriteFile(path string, cfg *Config) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return &ParseError{Path: path, Err: err}
	}
	if cfg == nil {
		cfg = NewConfig()
	}

	if err := paths.EnsureDir(filepath.Dir(path), 0o755); err != nil {
		return &ParseError{Path: path, Err: err}
	}

	switch format {
	case FormatJSON:
		err = fileutil.AtomicWriteJSON(path, cfg)
	case FormatYAML:
		err = fileutil.AtomicWriteYAML(path, cfg)
	case FormatTOML:
		err = fileutil.AtomicWriteTOML(path, cfg)
	}
	if err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}
