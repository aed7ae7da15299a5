package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/i18nverify/i18nverify/internal/domain"
)

const configFileName = ".i18nverify.yaml"

func newInitCmd() *cobra.Command {
	var (
		i18nDir    string
		packageDir string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a .i18nverify.yaml configuration file",
		Long:  "Create a .i18nverify.yaml holding the default policies and display limits.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			cfg := domain.DefaultConfig()
			if i18nDir != "" {
				cfg.I18nDir = i18nDir
			}
			if packageDir != "" {
				cfg.PackageDir = packageDir
			}

			content, err := generateConfig(cfg)
			if err != nil {
				return err
			}

			if err := os.WriteFile(dest, content, 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&i18nDir, "i18n-dir", "", "Directory holding the root config and module files")
	cmd.Flags().StringVar(&packageDir, "package-dir", "", "Directory the target files are relative to")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .i18nverify.yaml")

	return cmd
}

const configHeader = `# i18nverify configuration
#
# policies: skip | warn | fail
#   missing_module    module file listed in the root config does not exist
#   malformed_module  module file cannot be decoded
#   missing_target    target file named by a module does not exist
#   key_collision     two module paths derive the same key

`

func generateConfig(cfg domain.ToolConfig) ([]byte, error) {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return append([]byte(configHeader), body...), nil
}
