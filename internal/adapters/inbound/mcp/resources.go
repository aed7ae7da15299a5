package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/i18nverify/i18nverify/internal/application"
	"github.com/i18nverify/i18nverify/internal/domain"
)

// registerResources registers all i18nverify MCP resources on the given server.
func registerResources(s *server.MCPServer, svc *application.VerifyService, cfg domain.ToolConfig) {
	// 1. i18nverify://config - resolved tool config
	s.AddResource(
		mcplib.NewResource(
			"i18nverify://config",
			"Tool Config",
			mcplib.WithResourceDescription("Resolved directories, policies and display limits the server verifies with"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(cfg),
	)

	// 2. i18nverify://modules/{key} - one patch definition (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"i18nverify://modules/{key}",
			"Module Replacements",
			mcplib.WithTemplateDescription("Target file and ordered replacements of a single module"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleModuleResource(svc, cfg),
	)
}

// moduleDetail is the resource view of one patch definition.
type moduleDetail struct {
	moduleSummary
	Entries []domain.Replacement `json:"entries"`
}

func handleConfigResource(cfg domain.ToolConfig) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents(request.Params.URI, cfg)
	}
}

func handleModuleResource(svc *application.VerifyService, cfg domain.ToolConfig) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		key := templateArg(request, "key")
		if key == "" {
			return nil, fmt.Errorf("module key is required")
		}

		set, err := svc.LoadPatchSet(cfg)
		if err != nil {
			return nil, err
		}
		def, ok := set.Get(key)
		if !ok {
			return nil, fmt.Errorf("unknown module %q", key)
		}

		return jsonContents(request.Params.URI, moduleDetail{
			moduleSummary: summarize(def),
			Entries:       def.ReplacementList(),
		})
	}
}

// templateArg reads a template variable. Matching fills it as a string or a
// one-element slice depending on the mcp-go version.
func templateArg(request mcplib.ReadResourceRequest, name string) string {
	switch v := request.Params.Arguments[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func jsonContents(uri string, v interface{}) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
