package cloner

import (
	"regexp"

	"github.com/google/uuid"
)

// identifierPattern matches the 8-4-4-4-12 hexadecimal identifier shape
// Keycloak uses for entity identifiers. Matching is shape-only and
// case-insensitive; the exemption set is the only other guard against
// false positives.
var identifierPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// IsIdentifier reports whether v is a string value shaped like an entity
// identifier. Non-string values never match.
func IsIdentifier(v any) bool {
	s, ok := v.(string)
	return ok && identifierPattern.MatchString(s)
}

// IDMap is a run-scoped mapping from original identifiers to freshly
// generated replacements. It is lazily populated: the first Resolve of an
// original identifier records a replacement, and every later Resolve of
// the same identifier returns that same replacement. This is what keeps
// reference relationships intact across the document.
//
// An IDMap must not be reused across documents; construct one per run.
type IDMap struct {
	entries  map[string]string
	generate func() string
}

// NewIDMap creates an empty IDMap. Replacements come from generate, or
// from uuid.NewString when generate is nil.
func NewIDMap(generate func() string) *IDMap {
	if generate == nil {
		generate = uuid.NewString
	}
	return &IDMap{
		entries:  make(map[string]string),
		generate: generate,
	}
}

// Resolve returns the replacement for original, generating and recording
// one on first sight. Idempotent within a run.
func (m *IDMap) Resolve(original string) string {
	if replacement, ok := m.entries[original]; ok {
		return replacement
	}
	replacement := m.generate()
	m.entries[original] = replacement
	return replacement
}

// Seed force-registers a replacement for original before generic
// resolution begins. The root realm identifier is seeded so that every
// reference to it resolves to the explicitly chosen new root identifier
// instead of an arbitrarily generated one.
func (m *IDMap) Seed(original, replacement string) {
	m.entries[original] = replacement
}

// Len returns the number of registered pairs.
func (m *IDMap) Len() int {
	return len(m.entries)
}
