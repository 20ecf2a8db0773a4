// walk.go implements the generic identifier-remapping traversal and the
// corrective container-reference sweep that runs after it.
package cloner

import "fmt"

// remapValues walks node depth-first and substitutes identifier-shaped
// field values through ids. Children are visited before the enclosing
// field's own substitution decision. For each record field the order of
// checks is: exemption set, containerId short-circuit, shape match.
//
// The containerId short-circuit exists because the generic map may have
// already assigned the root identifier a different replacement by the
// time a container reference is visited; such fields are redirected
// straight to the chosen new root identifier. Sequence elements carry no
// field name, so neither the exemption set nor the short-circuit applies
// to them: bare identifier-shaped strings in sequences are substituted on
// shape alone.
//
// Scalars that are not identifier-shaped strings pass through untouched.
func remapValues(node any, rc *realmContext, ids *IDMap) {
	switch val := node.(type) {
	case map[string]any:
		for name, child := range val {
			switch child.(type) {
			case map[string]any, []any:
				remapValues(child, rc, ids)
				continue
			}
			if IsExemptField(name) {
				continue
			}
			if name == containerIDField && rc.hasRootID() && child == any(rc.oldID) {
				val[name] = rc.newID
				continue
			}
			if s, ok := child.(string); ok && IsIdentifier(s) {
				val[name] = ids.Resolve(s)
			}
		}
	case []any:
		for i, child := range val {
			switch child.(type) {
			case map[string]any, []any:
				remapValues(child, rc, ids)
			default:
				if s, ok := child.(string); ok && IsIdentifier(s) {
					val[i] = ids.Resolve(s)
				}
			}
		}
	}
}

// fixContainerRefs is the corrective sweep over the whole tree after the
// generic walk: any containerId field still holding the original root
// identifier is rewritten to the new one. Running it on an already
// correct tree is a no-op, so it is safe to repeat.
func fixContainerRefs(node any, rc *realmContext, result *CloneResult) {
	if !rc.hasRootID() {
		return
	}
	fixContainerRefsAt(node, "", rc, result)
}

func fixContainerRefsAt(node any, path string, rc *realmContext, result *CloneResult) {
	switch val := node.(type) {
	case map[string]any:
		for name, child := range val {
			childPath := joinPath(path, name)
			switch child.(type) {
			case map[string]any, []any:
				fixContainerRefsAt(child, childPath, rc, result)
			default:
				if name == containerIDField && child == any(rc.oldID) {
					val[name] = rc.newID
					result.addRewrite(RewriteTypeContainerRef, childPath,
						"redirected container reference to the new realm identifier", rc.oldID, rc.newID)
				}
			}
		}
	case []any:
		for i, child := range val {
			fixContainerRefsAt(child, fmt.Sprintf("%s[%d]", path, i), rc, result)
		}
	}
}

// joinPath appends a field name to a dotted document path.
func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}
