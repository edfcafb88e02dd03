// Package cli wires the cross command surface. Flag parsing resolves into
// a shell.Shell carried on the command context; all user-facing output goes
// through it.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/slint-ui/cross/internal/config"
	"github.com/slint-ui/cross/internal/logging"
	"github.com/slint-ui/cross/internal/shell"
)

// exitUsage is the status for usage-level failures at startup.
const exitUsage = 101

var (
	verbose   bool
	quiet     bool
	colorFlag string
)

// activeShell is the shell resolved from flags and config. It starts as a
// default shell so output before flag parsing (and after an Execute error)
// still has somewhere to go.
var activeShell = shell.Default()

var rootCmd = &cobra.Command{
	Use:           "cross",
	Short:         "Container-based cross compilation",
	Long:          "cross compiles projects inside containers so the host toolchain never needs target-specific setup.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupContext(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all but required output")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "Coloring: auto, always, never")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(doctorCmd)
}

// Shell returns the shell resolved during flag parsing. The outermost entry
// point uses it to report the final error.
func Shell() *shell.Shell {
	return activeShell
}

func shellFor(cmd *cobra.Command) *shell.Shell {
	return shell.FromContext(cmd.Context())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context. Commands
// access it via cmd.Context().
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// setupContext resolves config file and flags into the shell and the
// operational logger and stores both on the command context. The
// verbose+quiet contradiction and a valueless --color never return.
func setupContext(cmd *cobra.Command) {
	cfg, cfgErr := config.Load()

	v, q := verbose, quiet
	if !cmd.Flags().Changed("verbose") {
		v = cfg.Output.Verbose
	}
	if !cmd.Flags().Changed("quiet") {
		q = cfg.Output.Quiet
	}

	var color *string
	switch {
	case cmd.Flags().Changed("color"):
		if colorFlag == "" {
			activeShell.FatalUsage("--color", exitUsage)
		}
		color = &colorFlag
	case cfg.Output.Color != "":
		c := cfg.Output.Color
		color = &c
	}

	sh, err := shell.FromFlags(v, q, color)
	if err != nil {
		activeShell.Fatal(err.Error(), exitUsage)
		return
	}
	activeShell = sh

	l := logging.NewLogger(os.Stderr)
	logging.Configure(l, sh.Verbosity(), sh.ColorMode())

	ctx := shell.WithContext(cmd.Context(), sh)
	ctx = logging.WithLogger(ctx, l)
	cmd.SetContext(ctx)

	if cfgErr != nil {
		l.Warn("config file is malformed, using defaults", "err", cfgErr)
	}
}
