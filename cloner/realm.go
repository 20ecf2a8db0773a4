// realm.go rewrites the fields where the realm's name leaks into the
// document beyond the top-level realm field itself: display names,
// composite default-role names, client URLs, and the masked secrets a
// partial export substitutes for real credentials.
package cloner

import (
	"fmt"
	"regexp"
	"strings"
)

// Well-known field names in a realm export.
const (
	realmField       = "realm"
	idField          = "id"
	containerIDField = "containerId"
	secretField      = "secret"
)

// maskedSecret is the placeholder an export writes in place of a real
// client secret. Fields holding it are removed so the server mints a
// fresh credential on import.
const maskedSecret = "**********"

// defaultRolePrefix is the prefix of the composite role a server creates
// for every realm; the realm's name is baked into the role name.
const defaultRolePrefix = "default-roles-"

// realmContext carries the naming decisions for one clone run.
type realmContext struct {
	oldName string
	newName string
	oldID   string
	newID   string
}

func (rc *realmContext) hasRootID() bool {
	return rc.oldID != ""
}

// oldDefaultRole is the composite default-role name of the source realm.
func (rc *realmContext) oldDefaultRole() string {
	return defaultRolePrefix + strings.ToLower(rc.oldName)
}

// newDefaultRole is the composite default-role name of the cloned realm.
func (rc *realmContext) newDefaultRole() string {
	return defaultRolePrefix + strings.ToLower(rc.newName)
}

// rewriteRealmFields renames the realm and repairs every place its old
// name leaks into the document. It mutates doc in place and records each
// change on result.
func rewriteRealmFields(doc map[string]any, rc *realmContext, result *CloneResult) {
	doc[realmField] = rc.newName
	result.addRewrite(RewriteTypeRealmName, realmField, "renamed realm", rc.oldName, rc.newName)

	// The old name may appear with arbitrary casing inside display text.
	oldNamePattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(rc.oldName))

	for _, field := range []string{"displayName", "displayNameHtml"} {
		s, ok := doc[field].(string)
		if !ok || !oldNamePattern.MatchString(s) {
			continue
		}
		replaced := oldNamePattern.ReplaceAllLiteralString(s, rc.newName)
		doc[field] = replaced
		result.addRewrite(RewriteTypeDisplayName, field, "rewrote realm name inside display text", s, replaced)
	}

	rewriteDefaultRole(doc, rc, result)
	rewriteDefaultRoleRefs(doc, "", rc, result)
	rewriteClients(doc, rc, result)
}

// rewriteDefaultRole renames the realm's composite default role object.
func rewriteDefaultRole(doc map[string]any, rc *realmContext, result *CloneResult) {
	role, ok := doc["defaultRole"].(map[string]any)
	if !ok {
		return
	}
	name, ok := role["name"].(string)
	if !ok || name != rc.oldDefaultRole() {
		return
	}
	role["name"] = rc.newDefaultRole()
	result.addRewrite(RewriteTypeDefaultRole, "defaultRole.name", "renamed composite default role", name, rc.newDefaultRole())
}

// rewriteDefaultRoleRefs walks the whole tree replacing role names that
// embed the old composite default-role name. The role is referenced by
// name, not identifier, from role records, user realm-role memberships,
// and group role lists, so every string scalar is a candidate.
func rewriteDefaultRoleRefs(node any, path string, rc *realmContext, result *CloneResult) {
	oldRole := rc.oldDefaultRole()
	switch val := node.(type) {
	case map[string]any:
		for name, child := range val {
			childPath := joinPath(path, name)
			switch c := child.(type) {
			case map[string]any, []any:
				rewriteDefaultRoleRefs(c, childPath, rc, result)
			case string:
				if strings.Contains(c, oldRole) {
					replaced := strings.ReplaceAll(c, oldRole, rc.newDefaultRole())
					val[name] = replaced
					result.addRewrite(RewriteTypeRoleName, childPath, "renamed role reference embedding the realm name", c, replaced)
				}
			}
		}
	case []any:
		for i, child := range val {
			childPath := fmt.Sprintf("%s[%d]", path, i)
			switch c := child.(type) {
			case map[string]any, []any:
				rewriteDefaultRoleRefs(c, childPath, rc, result)
			case string:
				if strings.Contains(c, oldRole) {
					replaced := strings.ReplaceAll(c, oldRole, rc.newDefaultRole())
					val[i] = replaced
					result.addRewrite(RewriteTypeRoleName, childPath, "renamed role reference embedding the realm name", c, replaced)
				}
			}
		}
	}
}

// rewriteClients repairs realm-scoped URLs on each client and drops masked
// secrets so the server issues fresh credentials on import.
func rewriteClients(doc map[string]any, rc *realmContext, result *CloneResult) {
	clients, ok := doc["clients"].([]any)
	if !ok {
		return
	}
	oldSegment := "/realms/" + rc.oldName + "/"
	newSegment := "/realms/" + rc.newName + "/"

	for i, item := range clients {
		client, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for _, field := range []string{"baseUrl", "adminUrl", "rootUrl"} {
			s, ok := client[field].(string)
			if !ok || !strings.Contains(s, oldSegment) {
				continue
			}
			replaced := strings.ReplaceAll(s, oldSegment, newSegment)
			client[field] = replaced
			result.addRewrite(RewriteTypeClientURL, fmt.Sprintf("clients[%d].%s", i, field), "rewrote realm path in client URL", s, replaced)
		}
		if uris, ok := client["redirectUris"].([]any); ok {
			for j, u := range uris {
				s, ok := u.(string)
				if !ok || !strings.Contains(s, oldSegment) {
					continue
				}
				replaced := strings.ReplaceAll(s, oldSegment, newSegment)
				uris[j] = replaced
				result.addRewrite(RewriteTypeClientURL, fmt.Sprintf("clients[%d].redirectUris[%d]", i, j), "rewrote realm path in redirect URI", s, replaced)
			}
		}
		if s, ok := client[secretField].(string); ok && s == maskedSecret {
			delete(client, secretField)
			result.addRewrite(RewriteTypeSecretRemoved, fmt.Sprintf("clients[%d].secret", i), "removed masked client secret", maskedSecret, "")
		}
	}
}
