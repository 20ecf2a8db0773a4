package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRealmStats(t *testing.T) {
	p := New()
	result, err := p.ParseBytes([]byte(`{
		"realm": "ajax",
		"id": "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		"clients": [{"clientId": "a"}, {"clientId": "b"}],
		"clientScopes": [{"name": "profile"}],
		"groups": [{"name": "staff"}],
		"users": [{"username": "u1"}, {"username": "u2"}, {"username": "u3"}],
		"identityProviders": [{"alias": "github"}],
		"authenticationFlows": [{"alias": "browser"}, {"alias": "registration"}],
		"roles": {
			"realm": [{"name": "r1"}, {"name": "r2"}],
			"client": {
				"a": [{"name": "c1"}],
				"b": [{"name": "c2"}, {"name": "c3"}]
			}
		},
		"components": {
			"org.keycloak.keys.KeyProvider": [{"name": "rsa"}, {"name": "hmac"}],
			"org.keycloak.storage.UserStorageProvider": [{"name": "ldap"}]
		}
	}`))
	require.NoError(t, err)

	stats := result.Stats
	assert.Equal(t, 2, stats.ClientCount)
	assert.Equal(t, 1, stats.ClientScopeCount)
	assert.Equal(t, 1, stats.GroupCount)
	assert.Equal(t, 3, stats.UserCount)
	assert.Equal(t, 1, stats.IdentityProviderCount)
	assert.Equal(t, 2, stats.AuthenticationFlowCount)
	assert.Equal(t, 2, stats.RealmRoleCount)
	assert.Equal(t, 3, stats.ClientRoleCount)
	assert.Equal(t, 3, stats.ComponentCount)
}

func TestGetRealmStats_Empty(t *testing.T) {
	assert.Equal(t, RealmStats{}, GetRealmStats(nil))
	assert.Equal(t, RealmStats{}, GetRealmStats(map[string]any{}))
}

func TestGetRealmStats_MalformedShapes(t *testing.T) {
	// Wrong types should count as zero, not panic.
	stats := GetRealmStats(map[string]any{
		"clients":    "not-a-sequence",
		"roles":      []any{"not-a-record"},
		"components": map[string]any{"provider": "not-a-sequence"},
	})
	assert.Equal(t, RealmStats{}, stats)
}
