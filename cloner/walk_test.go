package cloner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemapValuesSubstitutesReferences(t *testing.T) {
	roleID := "11111111-1111-1111-1111-111111111111"
	scopeID := "22222222-2222-2222-2222-222222222222"

	doc := map[string]any{
		"defaultRole": map[string]any{
			"id": roleID,
		},
		"clients": []any{
			map[string]any{
				"clientId":           "web-app",
				"defaultClientScopes": []any{scopeID},
			},
		},
		"composites": map[string]any{
			"realm": []any{roleID},
		},
	}

	ids := NewIDMap(sequentialIDs())
	rc := &realmContext{oldName: "ajax", newName: "ajax-copy"}
	remapValues(doc, rc, ids)

	newRoleID := doc["defaultRole"].(map[string]any)["id"]
	require.NotEqual(t, roleID, newRoleID)

	// The same original resolves to the same replacement everywhere.
	composites := doc["composites"].(map[string]any)["realm"].([]any)
	assert.Equal(t, newRoleID, composites[0], "referential integrity across the tree")

	scopes := doc["clients"].([]any)[0].(map[string]any)["defaultClientScopes"].([]any)
	assert.NotEqual(t, scopeID, scopes[0])
	assert.NotEqual(t, newRoleID, scopes[0], "distinct originals get distinct replacements")

	assert.Equal(t, 2, ids.Len())
}

func TestRemapValuesExemptFieldsUntouched(t *testing.T) {
	externalID := "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"

	doc := map[string]any{
		"clients": []any{
			map[string]any{
				// An external client ID that happens to be UUID-shaped.
				"clientId": externalID,
				"name":     externalID,
				"id":       "11111111-1111-1111-1111-111111111111",
			},
		},
	}

	ids := NewIDMap(sequentialIDs())
	rc := &realmContext{oldName: "ajax", newName: "ajax-copy"}
	remapValues(doc, rc, ids)

	client := doc["clients"].([]any)[0].(map[string]any)
	assert.Equal(t, externalID, client["clientId"], "exempt field keeps its value")
	assert.Equal(t, externalID, client["name"], "exempt field keeps its value")
	assert.NotEqual(t, "11111111-1111-1111-1111-111111111111", client["id"])
}

func TestRemapValuesNonIdentifierScalarsUntouched(t *testing.T) {
	doc := map[string]any{
		"enabled":         true,
		"ssoSessionIdle":  float64(1800),
		"description":     "not an identifier",
		"almostAnID":      "11111111-1111-1111-1111-11111111111", // one digit short
		"nullField":       nil,
		"webAuthnAcceptableAaguids": []any{"word", float64(3), true},
	}

	ids := NewIDMap(sequentialIDs())
	rc := &realmContext{oldName: "ajax", newName: "ajax-copy"}
	remapValues(doc, rc, ids)

	assert.Equal(t, true, doc["enabled"])
	assert.Equal(t, float64(1800), doc["ssoSessionIdle"])
	assert.Equal(t, "not an identifier", doc["description"])
	assert.Equal(t, "11111111-1111-1111-1111-11111111111", doc["almostAnID"])
	assert.Nil(t, doc["nullField"])
	assert.Equal(t, 0, ids.Len())
}

func TestRemapValuesContainerShortCircuit(t *testing.T) {
	// A root identifier that is not UUID-shaped is never substituted by
	// the generic shape match; the containerId short-circuit must still
	// redirect references to it.
	doc := map[string]any{
		"roles": map[string]any{
			"realm": []any{
				map[string]any{
					"name":        "offline_access",
					"containerId": "legacy-root",
				},
			},
		},
	}

	ids := NewIDMap(sequentialIDs())
	rc := &realmContext{
		oldName: "ajax", newName: "ajax-copy",
		oldID: "legacy-root", newID: "00000000-0000-0000-0000-000000000099",
	}
	remapValues(doc, rc, ids)

	role := doc["roles"].(map[string]any)["realm"].([]any)[0].(map[string]any)
	assert.Equal(t, rc.newID, role["containerId"])
}

func TestFixContainerRefs(t *testing.T) {
	oldID := "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	newID := "00000000-0000-0000-0000-000000000042"

	doc := map[string]any{
		"roles": map[string]any{
			"realm": []any{
				map[string]any{"name": "uma_authorization", "containerId": oldID},
				map[string]any{"name": "offline_access", "containerId": newID},
			},
		},
		"defaultRole": map[string]any{
			"containerId": oldID,
		},
	}

	rc := &realmContext{oldName: "ajax", newName: "ajax-copy", oldID: oldID, newID: newID}
	result := &CloneResult{}
	fixContainerRefs(doc, rc, result)

	realmRoles := doc["roles"].(map[string]any)["realm"].([]any)
	assert.Equal(t, newID, realmRoles[0].(map[string]any)["containerId"])
	assert.Equal(t, newID, realmRoles[1].(map[string]any)["containerId"])
	assert.Equal(t, newID, doc["defaultRole"].(map[string]any)["containerId"])

	require.Len(t, result.Rewrites, 2)
	for _, rw := range result.Rewrites {
		assert.Equal(t, RewriteTypeContainerRef, rw.Type)
		assert.Equal(t, oldID, rw.Before)
		assert.Equal(t, newID, rw.After)
	}
	paths := []string{result.Rewrites[0].Path, result.Rewrites[1].Path}
	assert.Contains(t, paths, "roles.realm[0].containerId")
	assert.Contains(t, paths, "defaultRole.containerId")
}

func TestFixContainerRefsIdempotent(t *testing.T) {
	oldID := "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	newID := "00000000-0000-0000-0000-000000000042"

	doc := map[string]any{
		"defaultRole": map[string]any{"containerId": oldID},
	}
	rc := &realmContext{oldName: "ajax", newName: "ajax-copy", oldID: oldID, newID: newID}

	first := &CloneResult{}
	fixContainerRefs(doc, rc, first)
	require.Len(t, first.Rewrites, 1)

	second := &CloneResult{}
	fixContainerRefs(doc, rc, second)
	assert.Empty(t, second.Rewrites, "second sweep finds nothing to fix")
	assert.Equal(t, newID, doc["defaultRole"].(map[string]any)["containerId"])
}

func TestFixContainerRefsNoRootID(t *testing.T) {
	doc := map[string]any{
		"defaultRole": map[string]any{"containerId": "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"},
	}
	rc := &realmContext{oldName: "ajax", newName: "ajax-copy"}
	result := &CloneResult{}
	fixContainerRefs(doc, rc, result)

	assert.Empty(t, result.Rewrites)
	assert.Equal(t, "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		doc["defaultRole"].(map[string]any)["containerId"])
}
