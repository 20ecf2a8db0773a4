package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/erraggy/realmtools/cloner"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type cloneInput struct {
	Realm           realmInput `json:"realm"                      jsonschema:"The realm export to clone"`
	Name            string     `json:"name,omitempty"             jsonschema:"Name for the cloned realm (default: <realm>-copy)"`
	OldName         string     `json:"old_name,omitempty"         jsonschema:"Override the source realm name detected from the document"`
	Output          string     `json:"output,omitempty"           jsonschema:"File path to write the cloned document. If omitted the document is returned inline when include_document is true."`
	IncludeDocument bool       `json:"include_document,omitempty" jsonschema:"Include the full cloned document in output"`
}

type cloneRewrite struct {
	Type        string `json:"type"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

type cloneOutput struct {
	OldName      string         `json:"old_name"`
	NewName      string         `json:"new_name"`
	OldID        string         `json:"old_id,omitempty"`
	NewID        string         `json:"new_id,omitempty"`
	IDCount      int            `json:"id_count"`
	RewriteCount int            `json:"rewrite_count"`
	Rewrites     []cloneRewrite `json:"rewrites,omitempty"`
	Format       string         `json:"format"`
	WrittenTo    string         `json:"written_to,omitempty"`
	Document     string         `json:"document,omitempty"`
}

func handleClone(_ context.Context, _ *mcp.CallToolRequest, input cloneInput) (*mcp.CallToolResult, cloneOutput, error) {
	pr, err := input.Realm.resolve()
	if err != nil {
		return errResult(err), cloneOutput{}, nil
	}

	opts := []cloner.Option{
		cloner.WithParsed(pr),
		cloner.WithNewName(input.Name),
	}
	if input.OldName != "" {
		opts = append(opts, cloner.WithOldName(input.OldName))
	}

	result, err := cloner.CloneWithOptions(opts...)
	if err != nil {
		return errResult(err), cloneOutput{}, nil
	}

	output := cloneOutput{
		OldName:      result.OldName,
		NewName:      result.NewName,
		OldID:        result.OldID,
		NewID:        result.NewID,
		IDCount:      result.IDCount,
		RewriteCount: result.RewriteCount,
		Format:       string(result.SourceFormat),
	}

	rewrites := result.Rewrites
	if len(rewrites) > cfg.MaxRewrites {
		rewrites = rewrites[:cfg.MaxRewrites]
	}
	output.Rewrites = makeSlice[cloneRewrite](len(rewrites))
	for _, rw := range rewrites {
		output.Rewrites = append(output.Rewrites, cloneRewrite{
			Type:        string(rw.Type),
			Path:        rw.Path,
			Description: rw.Description,
		})
	}

	if input.Output != "" || input.IncludeDocument {
		data, err := marshalRealmDocument(result.Document, result.SourceFormat)
		if err != nil {
			return errResult(err), cloneOutput{}, nil
		}

		if input.Output != "" {
			if err := os.WriteFile(input.Output, data, 0o644); err != nil {
				return errResult(fmt.Errorf("failed to write output file: %w", err)), cloneOutput{}, nil
			}
			output.WrittenTo = input.Output
		}
		if input.IncludeDocument {
			output.Document = string(data)
		}
	}

	return nil, output, nil
}
