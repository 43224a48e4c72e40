package cli

import (
	"github.com/alexanderramin/tomate/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Settings service.SettingsService
	Tasks    service.TaskService
	Sessions service.SessionService
	Pauses   service.PauseService
	Daily    service.DailyStateService
	Export   service.ExportService

	// IsInteractive reports whether stdin is attached to a terminal. The
	// timer and the settings form refuse to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tomate" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tomate",
		Short: "Focus session tracker with pause cards",
	}

	root.AddCommand(
		newTaskCmd(app),
		newSessionCmd(app),
		newPauseCmd(app),
		newSettingsCmd(app),
		newDailyCmd(app),
		newExportCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
