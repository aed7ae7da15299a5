package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/i18nverify/i18nverify/internal/adapters/outbound/history"
	"github.com/i18nverify/i18nverify/internal/adapters/outbound/messages"
	"github.com/i18nverify/i18nverify/internal/adapters/outbound/tui"
)

func newHistoryCmd(opts *globalOptions) *cobra.Command {
	var (
		jsonOutput bool
		lang       string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show runs recorded with verify --record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := history.New().Load(opts.projectDir)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			if lang == "" {
				cfg, err := resolveConfig(opts, &verifyFlags{})
				if err != nil {
					return err
				}
				lang = cfg.Lang
			}
			catalog, err := messages.New(lang)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries, catalog))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&lang, "lang", "", "Report language (zh-CN, en)")

	return cmd
}
