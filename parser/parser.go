package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/realmtools/realmerrors"
)

// Parser handles realm export parsing
type Parser struct {
	// ValidateStructure determines whether to perform basic structure validation
	ValidateStructure bool
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		ValidateStructure: true,
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// SourceFormat represents the format of the source realm export file
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains the parsed realm export and metadata.
//
// # Ownership
//
// Data holds the live document tree. The cloner package mutates it in place,
// so callers that need the original after cloning must re-parse the source.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// Note: if the source was not a file path, this will be set to the name of the method
	// and end in '.yaml' or '.json' based on the detected format
	SourcePath string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat SourceFormat
	// RealmName is the realm name declared by the document's own 'realm' field
	RealmName string
	// KeycloakVersion is the exporting server version, if the document declares one
	KeycloakVersion string
	// Data contains the raw parsed document as a generic tree
	Data map[string]any
	// Errors contains any validation errors encountered
	Errors []error
	// Warnings contains non-fatal issues such as a missing root identifier
	Warnings []string
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats RealmStats
}

// RootID returns the document's own entity identifier (the 'id' field)
// and whether a usable one is present. Only non-empty string values count;
// a realm export without one is cloneable but its self-references cannot
// be specially resolved.
func (pr *ParseResult) RootID() (string, bool) {
	if pr.Data == nil {
		return "", false
	}
	id, ok := pr.Data["id"].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// Parse parses a realm export file from a local path
func (p *Parser) Parse(realmPath string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(realmPath)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, &realmerrors.ParseError{Path: realmPath, Message: "failed to read file", Cause: err}
	}

	format := detectFormatFromPath(realmPath)

	res, err := p.parseBytes(data, format)
	if err != nil {
		return nil, err
	}

	res.SourcePath = realmPath
	res.LoadTime = loadTime
	res.SourceSize = int64(len(data))
	return res, nil
}

// ParseReader parses a realm export from an io.Reader
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseReader.yaml or ParseReader.json
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, &realmerrors.ParseError{Message: "failed to read data", Cause: err}
	}
	res, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	if res.SourceFormat == SourceFormatJSON {
		res.SourcePath = "ParseReader.json"
	} else {
		res.SourcePath = "ParseReader.yaml"
	}
	return res, nil
}

// ParseBytes parses a realm export from a byte slice
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseBytes.yaml or ParseBytes.json
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.parseBytes(data, SourceFormatUnknown)
	if err != nil {
		return nil, err
	}
	if res.SourceFormat == SourceFormatJSON {
		res.SourcePath = "ParseBytes.json"
	} else {
		res.SourcePath = "ParseBytes.yaml"
	}
	res.SourceSize = int64(len(data))
	return res, nil
}

// parseBytes parses data with an optional pre-detected format hint.
func (p *Parser) parseBytes(data []byte, format SourceFormat) (*ParseResult, error) {
	result := &ParseResult{
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}

	// JSON fast-path: realm exports are JSON in practice, and encoding/json
	// avoids the YAML AST overhead for them. YAML remains the fallback so
	// hand-maintained exports keep working.
	var rawData map[string]any
	if format == SourceFormatJSON {
		if err := json.Unmarshal(data, &rawData); err != nil {
			return nil, &realmerrors.ParseError{Message: "failed to parse JSON", Cause: err}
		}
		result.SourceFormat = SourceFormatJSON
	} else {
		if err := yaml.Unmarshal(data, &rawData); err != nil {
			return nil, &realmerrors.ParseError{Message: "failed to parse YAML/JSON", Cause: err}
		}
		result.SourceFormat = SourceFormatYAML
	}
	result.Data = rawData

	name, err := detectRealmName(rawData)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to detect realm name: %w", err)
	}
	result.RealmName = name
	p.log().Debug("detected realm", "realm", name)

	if kv, ok := rawData["keycloakVersion"].(string); ok {
		result.KeycloakVersion = kv
	}

	if p.ValidateStructure {
		p.validateStructure(result)
	}

	result.Stats = GetRealmStats(rawData)

	return result, nil
}

// detectRealmName determines the realm name from the raw data
func detectRealmName(data map[string]any) (string, error) {
	if realm, ok := data["realm"].(string); ok && realm != "" {
		return realm, nil
	}
	return "", &realmerrors.DocumentError{
		Field:   "realm",
		Message: "document must declare a non-empty 'realm' name at the root level",
	}
}

// validateStructure performs basic structure validation and records
// non-fatal findings on the result.
func (p *Parser) validateStructure(result *ParseResult) {
	if _, ok := result.RootID(); !ok {
		result.Warnings = append(result.Warnings,
			"document has no root 'id' field: realm self-references will not be specially resolved when cloning")
	}

	// Collection fields must be sequences when present. A record where a
	// sequence belongs usually means a hand-edited export.
	for _, field := range []string{"clients", "clientScopes", "users", "groups", "identityProviders", "authenticationFlows"} {
		if v, ok := result.Data[field]; ok {
			if _, isSeq := v.([]any); !isSeq {
				result.Errors = append(result.Errors,
					&realmerrors.DocumentError{Field: field, Value: v, Message: "expected a sequence"})
			}
		}
	}

	if v, ok := result.Data["roles"]; ok {
		if _, isMap := v.(map[string]any); !isMap {
			result.Errors = append(result.Errors,
				&realmerrors.DocumentError{Field: "roles", Value: v, Message: "expected a record with 'realm' and 'client' collections"})
		}
	}
}
