package cli

import "github.com/spf13/cobra"

// version is injected at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		sh := shellFor(cmd)
		return sh.Print("cross " + version)
	},
}
