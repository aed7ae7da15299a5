package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/i18nverify/i18nverify/internal/adapters/outbound/config"
	"github.com/i18nverify/i18nverify/internal/adapters/outbound/gitinfo"
	"github.com/i18nverify/i18nverify/internal/adapters/outbound/history"
	"github.com/i18nverify/i18nverify/internal/adapters/outbound/messages"
	"github.com/i18nverify/i18nverify/internal/adapters/outbound/patchset"
	"github.com/i18nverify/i18nverify/internal/adapters/outbound/targetfs"
	"github.com/i18nverify/i18nverify/internal/adapters/outbound/tui"
	"github.com/i18nverify/i18nverify/internal/application"
	"github.com/i18nverify/i18nverify/internal/domain"
)

type verifyFlags struct {
	i18nDir    string
	packageDir string
	rootConfig string
	lang       string
	strict     bool
	jsonOutput bool
	detailed   bool
	record     bool
}

func (f *verifyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.i18nDir, "i18n-dir", "", "Directory holding the root config and module files")
	cmd.Flags().StringVar(&f.packageDir, "package-dir", "", "Directory the target files are relative to")
	cmd.Flags().StringVar(&f.rootConfig, "root-config", "", "Root config file, relative to --i18n-dir (default config.json)")
	cmd.Flags().StringVar(&f.lang, "lang", "", "Report language (zh-CN, en)")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Fail on missing modules, malformed modules, missing targets and key collisions")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&f.detailed, "detailed", "d", false, "Show category statistics and placeholder checks")
	cmd.Flags().BoolVar(&f.record, "record", false, "Append the run to .i18nverify/history.json in the project dir")
}

func newVerifyCmd(opts *globalOptions) *cobra.Command {
	vf := &verifyFlags{}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify that translated strings are present in their target files",
		Long: "Load every module listed in the root config and check that each expected translation " +
			"is a substring of its target file. Exits with status 1 if any module failed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, opts, vf)
		},
	}
	vf.register(cmd)
	return cmd
}

func runVerify(cmd *cobra.Command, opts *globalOptions, vf *verifyFlags) error {
	cfg, err := resolveConfig(opts, vf)
	if err != nil {
		return err
	}

	result, err := newVerifyService(opts).Verify(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("verify failed: %w", err)
	}

	if vf.record {
		entry := domain.NewRunEntry(result, time.Now().UTC().Format(time.RFC3339))
		if err := history.New().Save(opts.projectDir, entry); err != nil {
			return fmt.Errorf("recording run: %w", err)
		}
	}

	if vf.jsonOutput {
		if err := renderVerifyJSON(cmd, result); err != nil {
			return err
		}
	} else {
		catalog, err := messages.New(cfg.Lang)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderVerifyReport(result, catalog, tui.RenderOptions{
			MaxTextLen:  cfg.Display.MaxTextLen,
			MaxFailures: cfg.Display.MaxFailures,
			Detailed:    vf.detailed,
		}))
	}

	if failed := result.Failed(); len(failed) > 0 {
		return fmt.Errorf("verification failed: %d module(s) failed (%d/%d passed)", len(failed), result.Passed, result.Total)
	}
	return nil
}

// resolveConfig layers the tool config: defaults, then the config file,
// then .env and the environment, then flags.
func resolveConfig(opts *globalOptions, vf *verifyFlags) (domain.ToolConfig, error) {
	if err := config.LoadDotEnv(opts.projectDir); err != nil {
		return domain.ToolConfig{}, err
	}

	loader := config.New()
	var (
		cfg domain.ToolConfig
		err error
	)
	if opts.configPath != "" {
		cfg, err = loader.LoadFile(opts.configPath)
	} else {
		cfg, err = loader.Load(opts.projectDir)
	}
	if err != nil {
		return domain.ToolConfig{}, fmt.Errorf("loading config: %w", err)
	}

	cfg = config.ApplyEnv(cfg, os.LookupEnv)

	if vf.i18nDir != "" {
		cfg.I18nDir = vf.i18nDir
	}
	if vf.packageDir != "" {
		cfg.PackageDir = vf.packageDir
	}
	if vf.rootConfig != "" {
		cfg.RootConfig = vf.rootConfig
	}
	if vf.lang != "" {
		cfg.Lang = vf.lang
	}
	if vf.strict {
		cfg.Policies = domain.StrictPolicies()
	}

	return cfg, nil
}

func newVerifyService(opts *globalOptions) *application.VerifyService {
	return application.NewVerifyService(
		patchset.New(opts.logger),
		gitinfo.New(),
		func(dir string) domain.TargetReader { return targetfs.New(dir) },
		opts.logger,
	)
}

func renderVerifyJSON(cmd *cobra.Command, result *domain.Result) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
