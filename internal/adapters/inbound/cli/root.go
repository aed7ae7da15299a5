package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version = "dev"
	commit  = "none"
)

// globalOptions are shared by every subcommand through persistent flags.
type globalOptions struct {
	verbose    bool
	configPath string
	projectDir string
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{logger: zap.NewNop()}
	vf := &verifyFlags{}

	cmd := &cobra.Command{
		Use:   "i18nverify",
		Short: "Check that translation patches were applied",
		Long: "i18nverify loads a translation patch set and confirms every translated string " +
			"is present in its target source file. Run without a subcommand to verify.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, opts, vf)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug details to stderr")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to the tool config (default ./.i18nverify.yaml)")
	cmd.PersistentFlags().StringVar(&opts.projectDir, "project", ".", "Directory holding .i18nverify.yaml and .env")
	vf.register(cmd)

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newVerifyCmd(opts))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newHistoryCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// newLogger builds a console logger on stderr. Only warnings are shown
// unless verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the root command and prints a returned error to stderr.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return err
}
