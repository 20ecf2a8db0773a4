package parser

import (
	"io"

	"github.com/erraggy/realmtools/realmerrors"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	// Configuration options
	validateStructure bool
	logger            Logger

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// ParseWithOptions parses a realm export using functional options.
// This provides a flexible, extensible API that combines input source selection
// and configuration in a single function call.
//
// Example:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("realm.json"),
//	    parser.WithValidateStructure(false),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, &realmerrors.ConfigError{Message: "invalid parser options", Cause: err}
	}

	p := &Parser{
		ValidateStructure: cfg.validateStructure,
		Logger:            cfg.logger,
	}

	// Route to appropriate parsing method based on input source
	var result *ParseResult
	var parseErr error
	switch {
	case cfg.filePath != nil:
		result, parseErr = p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		result, parseErr = p.ParseReader(cfg.reader)
	case cfg.bytes != nil:
		result, parseErr = p.ParseBytes(cfg.bytes)
	default:
		// Should never reach here due to validation in applyOptions
		return nil, &realmerrors.ConfigError{Message: "no input source specified"}
	}

	if parseErr != nil {
		return result, parseErr
	}

	// Apply source name override if specified
	if result != nil && cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}

	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{
		// Set defaults to match Parser defaults
		validateStructure: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	sources := 0
	if cfg.filePath != nil {
		sources++
	}
	if cfg.reader != nil {
		sources++
	}
	if cfg.bytes != nil {
		sources++
	}

	if sources == 0 {
		return nil, &realmerrors.ConfigError{Message: "no input source specified: use WithFilePath, WithReader, or WithBytes"}
	}
	if sources > 1 {
		return nil, &realmerrors.ConfigError{Message: "multiple input sources specified: use only one of WithFilePath, WithReader, or WithBytes"}
	}

	return cfg, nil
}

// WithFilePath specifies the file path to parse
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		if path == "" {
			return &realmerrors.ConfigError{Option: "file path", Message: "cannot be empty"}
		}
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return &realmerrors.ConfigError{Option: "reader", Message: "cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return &realmerrors.ConfigError{Option: "bytes", Message: "cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithValidateStructure enables or disables basic structure validation
func WithValidateStructure(validate bool) Option {
	return func(cfg *parseConfig) error {
		cfg.validateStructure = validate
		return nil
	}
}

// WithLogger sets the structured logger for debug output
func WithLogger(logger Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = logger
		return nil
	}
}

// WithSourceName overrides the SourcePath in the result.
// This is useful when parsing from a reader or bytes where the actual
// source has a meaningful name (e.g., an original filename).
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		if name == "" {
			return &realmerrors.ConfigError{Option: "source name", Message: "cannot be empty"}
		}
		cfg.sourceName = &name
		return nil
	}
}
