package cli

import (
	"github.com/lszabadkai/quarterback/internal/config"
	"github.com/lszabadkai/quarterback/internal/export"
	"github.com/lszabadkai/quarterback/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Team     service.TeamService
	Settings service.SettingsService
	Snapshot *export.Snapshotter
	Config   *config.Config

	// IsInteractive reports whether stdin is a terminal; the board
	// refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "quarterback" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "quarterback",
		Short: "Quarter planning board for small teams",
	}

	root.AddCommand(
		newBoardCmd(app),
		newProjectCmd(app),
		newTeamCmd(app),
		newCapacityCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}
