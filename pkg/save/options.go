// Package save holds the options for writing the compiled catalog.
package save

import (
	"strings"

	"github.com/etalab/sill-data/pkg/errors"
)

// Format is the encoding of the compiled catalog files.
type Format int

// Format constants.
const (
	FormatJSON Format = iota
	FormatYAML
)

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// ParseFormat parses "json" or "yaml" (case-insensitive). An empty string
// means json.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatJSON, errors.NewConfigError("save", "unsupported format "+s+" (use json or yaml)", nil)
}

// Options is the configuration for save.
type Options struct {
	path   string
	format Format
}

// Path returns the output directory.
func (s *Options) Path() string {
	return s.path
}

// Format returns the format for the save options.
func (s *Options) Format() Format {
	return s.format
}

// Defaults returns the default save options.
func Defaults() *Options {
	return &Options{
		format: FormatJSON,
	}
}

// Apply applies the given options to the save options.
func (s *Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(s)
	}
	return *s
}

// Option is a function that configures save options.
type Option func(*Options)

// WithFormat for custom output format.
func WithFormat(f Format) Option {
	return func(s *Options) {
		s.format = f
	}
}

// WithPath sets the output directory.
func WithPath(path string) Option {
	return func(s *Options) {
		s.path = path
	}
}
