package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/slint-ui/cross/internal/config"
	"github.com/slint-ui/cross/internal/engine"
	"github.com/slint-ui/cross/internal/logging"
	"github.com/slint-ui/cross/internal/progress"
	"github.com/slint-ui/cross/internal/shell"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that a usable container engine is available",
	RunE:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	sh := shellFor(cmd)
	logger := logging.FromContext(ctx)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	line := progress.New(sh)
	if err := line.Update("checking for a container engine..."); err != nil {
		return err
	}

	eng, err := engine.Detect(ctx, cfg.Engine.Name)
	if err != nil {
		return fmt.Errorf("%w; install docker or podman and make sure it is on PATH", err)
	}
	logger.Debug("engine detected", "name", eng.Name, "path", eng.Path, "version", eng.Version)

	if err := line.Done(fmt.Sprintf("found %s %s", eng.Name, eng.Version)); err != nil {
		return err
	}

	mark, dim := doctorStyles(sh)
	if err := sh.Info(fmt.Sprintf("%s engine: %s %s %s", mark.Render("✓"), eng.Name, eng.Version, dim.Render(eng.Path))); err != nil {
		return err
	}

	if min := cfg.Engine.MinimumVersion; !eng.MeetsMinimum(min) {
		if err := sh.Warn(fmt.Sprintf("%s %s is older than the configured minimum %s", eng.Name, eng.Version, min)); err != nil {
			return err
		}
		return fmt.Errorf("%s is below the configured minimum version %s", eng.Name, min)
	}

	return sh.Note("all checks passed")
}

// doctorStyles builds the summary styles on a renderer that follows the
// shell's color policy instead of lipgloss's own stdout detection.
func doctorStyles(sh *shell.Shell) (mark, dim lipgloss.Style) {
	r := lipgloss.NewRenderer(os.Stdout)
	switch sh.ColorMode() {
	case shell.ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case shell.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	mark = r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	dim = r.NewStyle().Foreground(lipgloss.Color("240"))
	return mark, dim
}
