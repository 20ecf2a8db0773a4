package cloner

import (
	"fmt"
	"strings"

	"github.com/erraggy/realmtools/parser"
	"github.com/erraggy/realmtools/realmerrors"
)

// RewriteType classifies a named-field rewrite recorded on a CloneResult.
type RewriteType string

// Rewrite classifications.
const (
	RewriteTypeRealmName     RewriteType = "realm-name"
	RewriteTypeDisplayName   RewriteType = "display-name"
	RewriteTypeDefaultRole   RewriteType = "default-role"
	RewriteTypeRoleName      RewriteType = "role-name"
	RewriteTypeClientURL     RewriteType = "client-url"
	RewriteTypeSecretRemoved RewriteType = "secret-removed"
	RewriteTypeContainerRef  RewriteType = "container-ref"
)

// Rewrite records one named-field change made while cloning. Identifier
// substitutions are not recorded individually; see CloneResult.IDCount.
type Rewrite struct {
	// Type classifies the rewrite
	Type RewriteType
	// Path locates the rewritten field in the document, e.g.
	// "roles.realm[2].name" or "clients[0].secret"
	Path string
	// Description explains the change
	Description string
	// Before is the value prior to the rewrite
	Before string
	// After is the value after the rewrite; empty for removals
	After string
}

// CloneResult contains the cloned document and a ledger of what changed.
type CloneResult struct {
	// Document is the cloned realm export, mutated in place from the
	// parsed source
	Document map[string]any
	// SourceFormat is the format the source was parsed from
	SourceFormat parser.SourceFormat
	// SourcePath is the location the source was read from
	SourcePath string
	// OldName is the source realm's name
	OldName string
	// NewName is the cloned realm's name
	NewName string
	// OldID is the source realm's root identifier; empty when the
	// export carried none
	OldID string
	// NewID is the identifier assigned to the cloned realm; empty when
	// the export carried no root identifier
	NewID string
	// IDCount is the number of distinct identifiers that were remapped
	IDCount int
	// Rewrites lists the named-field changes in the order they were made
	Rewrites []Rewrite
	// RewriteCount is len(Rewrites)
	RewriteCount int
	// Stats summarizes the cloned realm's contents
	Stats parser.RealmStats
}

// HasRewrites reports whether any named-field rewrites were recorded.
func (cr *CloneResult) HasRewrites() bool {
	return len(cr.Rewrites) > 0
}

func (cr *CloneResult) addRewrite(t RewriteType, path, description, before, after string) {
	cr.Rewrites = append(cr.Rewrites, Rewrite{
		Type:        t,
		Path:        path,
		Description: description,
		Before:      before,
		After:       after,
	})
	cr.RewriteCount = len(cr.Rewrites)
}

// Cloner produces an importable copy of a realm export under a new name
// with every identifier remapped.
type Cloner struct {
	// OldName overrides the realm name detected from the document; leave
	// empty to use the document's own realm field
	OldName string
	// NewID generates replacement identifiers; defaults to random UUIDs
	NewID func() string
	// Logger receives diagnostic messages; nil disables logging
	Logger parser.Logger
}

// New creates a Cloner with default settings.
func New() *Cloner {
	return &Cloner{}
}

func (c *Cloner) log() parser.Logger {
	if c.Logger == nil {
		return parser.NopLogger{}
	}
	return c.Logger
}

// DefaultNewName returns the name a clone receives when the caller does
// not choose one.
func DefaultNewName(oldName string) string {
	return oldName + "-copy"
}

// Clone parses the realm export at path and clones it under newName.
func (c *Cloner) Clone(path, newName string) (*CloneResult, error) {
	p := parser.New()
	p.Logger = c.Logger
	pr, err := p.Parse(path)
	if err != nil {
		return nil, err
	}
	return c.CloneParsed(pr, newName)
}

// CloneParsed clones an already parsed realm export under newName. The
// parsed document is mutated in place; parse the source again if the
// original tree is still needed.
func (c *Cloner) CloneParsed(pr *parser.ParseResult, newName string) (*CloneResult, error) {
	if pr == nil || pr.Data == nil {
		return nil, &realmerrors.DocumentError{
			Message: "no parsed document to clone",
		}
	}
	oldName := c.OldName
	if oldName == "" {
		oldName = pr.RealmName
	}
	if oldName == "" {
		return nil, &realmerrors.DocumentError{
			Field:   realmField,
			Message: "source realm name is unknown",
		}
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		newName = DefaultNewName(oldName)
	}
	if newName == oldName {
		c.log().Warn("clone keeps the source realm name; importing alongside the source will conflict", "realm", oldName)
	}

	doc := pr.Data
	ids := NewIDMap(c.NewID)

	rc := &realmContext{oldName: oldName, newName: newName}
	if rootID, ok := pr.RootID(); ok {
		rc.oldID = rootID
		rc.newID = ids.Resolve(rootID)
	}

	result := &CloneResult{
		Document:     doc,
		SourceFormat: pr.SourceFormat,
		SourcePath:   pr.SourcePath,
		OldName:      oldName,
		NewName:      newName,
		OldID:        rc.oldID,
		NewID:        rc.newID,
	}

	rewriteRealmFields(doc, rc, result)
	remapValues(doc, rc, ids)
	if rc.hasRootID() {
		doc[idField] = rc.newID
	}
	fixContainerRefs(doc, rc, result)

	result.IDCount = ids.Len()
	result.Stats = parser.GetRealmStats(doc)

	c.log().Info("cloned realm",
		"oldName", oldName,
		"newName", newName,
		"identifiers", result.IDCount,
		"rewrites", result.RewriteCount)

	return result, nil
}

// Option configures CloneWithOptions.
type Option func(*cloneConfig) error

type cloneConfig struct {
	filePath string
	parsed   *parser.ParseResult
	newName  string
	oldName  string
	newID    func() string
	logger   parser.Logger
}

// WithFilePath clones the realm export at the given path.
func WithFilePath(path string) Option {
	return func(cfg *cloneConfig) error {
		if path == "" {
			return &realmerrors.ConfigError{
				Option:  "WithFilePath",
				Message: "path cannot be empty",
			}
		}
		cfg.filePath = path
		return nil
	}
}

// WithParsed clones an already parsed realm export. The parsed document
// is mutated in place.
func WithParsed(pr *parser.ParseResult) Option {
	return func(cfg *cloneConfig) error {
		if pr == nil {
			return &realmerrors.ConfigError{
				Option:  "WithParsed",
				Message: "parse result cannot be nil",
			}
		}
		cfg.parsed = pr
		return nil
	}
}

// WithNewName sets the name of the cloned realm.
func WithNewName(name string) Option {
	return func(cfg *cloneConfig) error {
		cfg.newName = name
		return nil
	}
}

// WithOldName overrides the source realm name detected from the document.
func WithOldName(name string) Option {
	return func(cfg *cloneConfig) error {
		cfg.oldName = name
		return nil
	}
}

// WithIDGenerator sets the replacement-identifier generator. Useful for
// deterministic output in tests.
func WithIDGenerator(generate func() string) Option {
	return func(cfg *cloneConfig) error {
		if generate == nil {
			return &realmerrors.ConfigError{
				Option:  "WithIDGenerator",
				Message: "generator cannot be nil",
			}
		}
		cfg.newID = generate
		return nil
	}
}

// WithLogger sets the logger for clone diagnostics.
func WithLogger(logger parser.Logger) Option {
	return func(cfg *cloneConfig) error {
		cfg.logger = logger
		return nil
	}
}

// CloneWithOptions clones a realm export configured by options. Exactly
// one input source must be provided via WithFilePath or WithParsed.
func CloneWithOptions(opts ...Option) (*CloneResult, error) {
	var cfg cloneConfig
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	sources := 0
	if cfg.filePath != "" {
		sources++
	}
	if cfg.parsed != nil {
		sources++
	}
	if sources != 1 {
		return nil, &realmerrors.ConfigError{
			Message: fmt.Sprintf("exactly one input source required, got %d (use WithFilePath or WithParsed)", sources),
		}
	}

	c := &Cloner{
		OldName: cfg.oldName,
		NewID:   cfg.newID,
		Logger:  cfg.logger,
	}
	if cfg.parsed != nil {
		return c.CloneParsed(cfg.parsed, cfg.newName)
	}
	return c.Clone(cfg.filePath, cfg.newName)
}
