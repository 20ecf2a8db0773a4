package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/erraggy/realmtools/parser"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.yaml.in/yaml/v4"
)

type inspectInput struct {
	Realm realmInput `json:"realm"          jsonschema:"The realm export to inspect"`
	Full  bool       `json:"full,omitempty" jsonschema:"Return the full parsed document instead of a summary"`
}

type inspectOutput struct {
	Realm                   string   `json:"realm"`
	ID                      string   `json:"id,omitempty"`
	KeycloakVersion         string   `json:"keycloak_version,omitempty"`
	Format                  string   `json:"format"`
	ClientCount             int      `json:"client_count"`
	ClientScopeCount        int      `json:"client_scope_count"`
	RealmRoleCount          int      `json:"realm_role_count"`
	ClientRoleCount         int      `json:"client_role_count"`
	GroupCount              int      `json:"group_count"`
	UserCount               int      `json:"user_count"`
	IdentityProviderCount   int      `json:"identity_provider_count"`
	AuthenticationFlowCount int      `json:"authentication_flow_count"`
	ComponentCount          int      `json:"component_count"`
	Warnings                []string `json:"warnings,omitempty"`
	FullDocument            string   `json:"full_document,omitempty"`
}

func handleInspect(_ context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	result, err := input.Realm.resolve()
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	rootID, _ := result.RootID()
	output := inspectOutput{
		Realm:                   result.RealmName,
		ID:                      rootID,
		KeycloakVersion:         result.KeycloakVersion,
		Format:                  string(result.SourceFormat),
		ClientCount:             result.Stats.ClientCount,
		ClientScopeCount:        result.Stats.ClientScopeCount,
		RealmRoleCount:          result.Stats.RealmRoleCount,
		ClientRoleCount:         result.Stats.ClientRoleCount,
		GroupCount:              result.Stats.GroupCount,
		UserCount:               result.Stats.UserCount,
		IdentityProviderCount:   result.Stats.IdentityProviderCount,
		AuthenticationFlowCount: result.Stats.AuthenticationFlowCount,
		ComponentCount:          result.Stats.ComponentCount,
		Warnings:                result.Warnings,
	}

	if input.Full {
		data, err := marshalRealmDocument(result.Data, result.SourceFormat)
		if err != nil {
			return errResult(err), inspectOutput{}, nil
		}
		output.FullDocument = string(data)
	}

	return nil, output, nil
}

// marshalRealmDocument marshals a realm document in its source format.
func marshalRealmDocument(doc map[string]any, format parser.SourceFormat) ([]byte, error) {
	if format == parser.SourceFormatJSON {
		return json.MarshalIndent(doc, "", "  ")
	}
	return yaml.Marshal(doc)
}
