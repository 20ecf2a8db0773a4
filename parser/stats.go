package parser

// RealmStats contains statistical information about a realm export document
type RealmStats struct {
	// ClientCount is the number of client records
	ClientCount int
	// ClientScopeCount is the number of client scope records
	ClientScopeCount int
	// RealmRoleCount is the number of realm-level role records
	RealmRoleCount int
	// ClientRoleCount is the number of client-level role records across all clients
	ClientRoleCount int
	// GroupCount is the number of top-level group records
	GroupCount int
	// UserCount is the number of user records
	UserCount int
	// IdentityProviderCount is the number of identity provider records
	IdentityProviderCount int
	// AuthenticationFlowCount is the number of authentication flow records
	AuthenticationFlowCount int
	// ComponentCount is the number of component records across all provider types
	ComponentCount int
}

// GetRealmStats calculates statistics for a realm export document.
// A nil or malformed document yields zero counts rather than an error;
// the stats exist for reporting, not validation.
func GetRealmStats(data map[string]any) RealmStats {
	var stats RealmStats
	if data == nil {
		return stats
	}

	stats.ClientCount = sequenceLen(data["clients"])
	stats.ClientScopeCount = sequenceLen(data["clientScopes"])
	stats.GroupCount = sequenceLen(data["groups"])
	stats.UserCount = sequenceLen(data["users"])
	stats.IdentityProviderCount = sequenceLen(data["identityProviders"])
	stats.AuthenticationFlowCount = sequenceLen(data["authenticationFlows"])

	// roles: { "realm": [...], "client": { "<clientId>": [...] } }
	if roles, ok := data["roles"].(map[string]any); ok {
		stats.RealmRoleCount = sequenceLen(roles["realm"])
		if clientRoles, ok := roles["client"].(map[string]any); ok {
			for _, list := range clientRoles {
				stats.ClientRoleCount += sequenceLen(list)
			}
		}
	}

	// components: { "<providerType>": [...component records...] }
	if components, ok := data["components"].(map[string]any); ok {
		for _, list := range components {
			stats.ComponentCount += sequenceLen(list)
		}
	}

	return stats
}

// sequenceLen returns the length of v when it is a sequence, otherwise 0.
func sequenceLen(v any) int {
	seq, ok := v.([]any)
	if !ok {
		return 0
	}
	return len(seq)
}
