package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/i18nverify/i18nverify/internal/application"
	"github.com/i18nverify/i18nverify/internal/domain"
)

// NewVerifyMCPServer creates an MCP server exposing the verification tools
// and the config and module resources.
// cfg is the resolved tool config every call starts from.
func NewVerifyMCPServer(svc *application.VerifyService, cfg domain.ToolConfig) *server.MCPServer {
	s := server.NewMCPServer(
		"i18nverify",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc, cfg)
	registerResources(s, svc, cfg)

	return s
}
