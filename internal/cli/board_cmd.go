package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	var period, view string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive quarter board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the board needs an interactive terminal")
			}

			if period == "" {
				period = app.Config.DefaultPeriod
			}
			if view == "" {
				view = app.Config.DefaultView
			}

			m := newBoardModel(app, period, view)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&period, "period", "", "Quarter to open, e.g. Q3-2025 (default: current)")
	cmd.Flags().StringVar(&view, "view", "", "View mode: quarter, month, 6weeks, 2weeks")
	return cmd
}
