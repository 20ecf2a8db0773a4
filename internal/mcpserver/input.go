package mcpserver

import (
	"fmt"
	"strings"

	"github.com/erraggy/realmtools/parser"
)

// realmInput represents the two ways a realm export can be provided to a
// tool. Exactly one of File or Content must be set.
//
// Results are deliberately not cached: cloning rewrites the parsed
// document tree in place, so a cached entry would be corrupted by the
// first clone call that used it.
type realmInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a realm export file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline realm export content (JSON or YAML)"`
}

// resolve parses the realm export from whichever input was provided.
func (r realmInput) resolve() (*parser.ParseResult, error) {
	count := 0
	if r.File != "" {
		count++
	}
	if r.Content != "" {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file or content must be provided (got %d)", count)
	}

	// Enforce inline content size limit.
	if r.Content != "" && int64(len(r.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set REALMTOOLS_MAX_INLINE_SIZE to increase",
			len(r.Content), cfg.MaxInlineSize)
	}

	if r.File != "" {
		return parser.ParseWithOptions(parser.WithFilePath(r.File))
	}
	return parser.ParseWithOptions(parser.WithReader(strings.NewReader(r.Content)))
}
