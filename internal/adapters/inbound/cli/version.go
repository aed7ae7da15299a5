package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show i18nverify version",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, c := buildVersion()
			fmt.Fprintf(cmd.OutOrStdout(), "i18nverify %s (%s)\n", v, c)
			return nil
		},
	}
}

// buildVersion returns the ldflags-injected version and commit. Values left
// at their defaults are filled from the module build info when the binary
// was built with go install or from a VCS checkout.
func buildVersion() (string, string) {
	v, c := version, commit
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v, c
	}
	return resolveVersion(v, c, info)
}

func resolveVersion(v, c string, info *debug.BuildInfo) (string, string) {
	if v == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		v = info.Main.Version
	}
	if c == "none" {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				c = s.Value
				if len(c) > 12 {
					c = c[:12]
				}
			}
		}
	}
	return v, c
}
