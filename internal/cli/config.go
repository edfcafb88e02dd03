package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slint-ui/cross/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		sh := shellFor(cmd)
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if err := sh.Debug("config dir: " + config.Dir()); err != nil {
			return err
		}
		if err := sh.Info("config file: " + config.File()); err != nil {
			return err
		}
		if err := sh.Info("color mode: " + sh.ColorMode().String()); err != nil {
			return err
		}
		if err := sh.Info("verbosity: " + sh.Verbosity().String()); err != nil {
			return err
		}

		engineName := cfg.Engine.Name
		if engineName == "" {
			engineName = "(autodetect)"
		}
		if err := sh.Info("engine: " + engineName); err != nil {
			return err
		}
		if cfg.Engine.MinimumVersion != "" {
			if err := sh.Info(fmt.Sprintf("engine minimum version: %s", cfg.Engine.MinimumVersion)); err != nil {
				return err
			}
		}
		return nil
	},
}
