package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/i18nverify/i18nverify/internal/adapters/inbound/mcp"
)

func newMCPCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the i18nverify MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *globalOptions) *cobra.Command {
	vf := &verifyFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start i18nverify MCP server (stdio)",
		Long:  "Start the i18nverify MCP server using stdio transport. Tools run verification and list the modules of the patch set.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(opts, vf)
			if err != nil {
				return err
			}
			s := mcpadapter.NewVerifyMCPServer(newVerifyService(opts), cfg)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&vf.i18nDir, "i18n-dir", "", "Directory holding the root config and module files")
	cmd.Flags().StringVar(&vf.packageDir, "package-dir", "", "Directory the target files are relative to")
	cmd.Flags().StringVar(&vf.rootConfig, "root-config", "", "Root config file, relative to --i18n-dir (default config.json)")
	cmd.Flags().BoolVar(&vf.strict, "strict", false, "Use fail for every policy")

	return cmd
}
