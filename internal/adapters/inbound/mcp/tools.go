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

// registerTools registers all i18nverify MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *application.VerifyService, cfg domain.ToolConfig) {
	// 1. i18nverify_verify
	s.AddTool(
		mcplib.NewTool("i18nverify_verify",
			mcplib.WithDescription("Verify that every translated string of the patch set is present in its target file. Returns the result as JSON."),
			mcplib.WithBoolean("strict", mcplib.Description("Fail on missing modules, malformed modules, missing targets and key collisions")),
		),
		handleVerify(svc, cfg),
	)

	// 2. i18nverify_list_modules
	s.AddTool(
		mcplib.NewTool("i18nverify_list_modules",
			mcplib.WithDescription("List the modules of the merged patch set with their target file and replacement count"),
		),
		handleListModules(svc, cfg),
	)
}

// moduleSummary is the list_modules view of one patch definition.
type moduleSummary struct {
	Key          string `json:"key"`
	Category     string `json:"category"`
	Source       string `json:"source"`
	File         string `json:"file,omitempty"`
	Replacements int    `json:"replacements"`
}

// verifyResponse wraps a Result with its overall verdict.
type verifyResponse struct {
	OK     bool           `json:"ok"`
	Result *domain.Result `json:"result"`
}

func handleVerify(svc *application.VerifyService, cfg domain.ToolConfig) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		run := cfg
		if strict, _ := request.GetArguments()["strict"].(bool); strict {
			run.Policies = domain.StrictPolicies()
		}

		result, err := svc.Verify(ctx, run)
		if err != nil {
			return errorResult(fmt.Sprintf("verify failed: %v", err)), nil
		}
		return jsonResult(verifyResponse{OK: result.OK(), Result: result})
	}
}

func handleListModules(svc *application.VerifyService, cfg domain.ToolConfig) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		set, err := svc.LoadPatchSet(cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("loading patch set failed: %v", err)), nil
		}

		modules := make([]moduleSummary, 0, set.Len())
		for _, def := range set.Definitions() {
			modules = append(modules, summarize(def))
		}
		return jsonResult(modules)
	}
}

func summarize(def *domain.PatchDefinition) moduleSummary {
	return moduleSummary{
		Key:          def.Key,
		Category:     def.Category,
		Source:       def.Source,
		File:         def.File,
		Replacements: def.ReplacementCount(),
	}
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
