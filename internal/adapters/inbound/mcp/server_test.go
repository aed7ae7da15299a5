package mcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/i18nverify/i18nverify/internal/adapters/inbound/mcp"
	"github.com/i18nverify/i18nverify/internal/adapters/outbound/patchset"
	"github.com/i18nverify/i18nverify/internal/adapters/outbound/targetfs"
	"github.com/i18nverify/i18nverify/internal/application"
	"github.com/i18nverify/i18nverify/internal/domain"
)

func newService() *application.VerifyService {
	return application.NewVerifyService(
		patchset.New(nil),
		nil,
		func(dir string) domain.TargetReader { return targetfs.New(dir) },
		nil,
	)
}

func TestNewVerifyMCPServer(t *testing.T) {
	s := mcpadapter.NewVerifyMCPServer(newService(), domain.DefaultConfig())
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewVerifyMCPServer(newService(), domain.DefaultConfig())
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"i18nverify_verify",
		"i18nverify_list_modules",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
