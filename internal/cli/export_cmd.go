package cli

import (
	"fmt"
	"os"

	"github.com/lszabadkai/quarterback/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the board as CSV or a JSON snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			switch format {
			case "csv":
				projects, err := app.Projects.List(cmd.Context())
				if err != nil {
					return err
				}
				people, err := app.Team.ListPeople(cmd.Context())
				if err != nil {
					return err
				}
				return export.WriteProjectsCSV(w, projects, people)
			case "json":
				return app.Snapshot.Export(cmd.Context(), w)
			default:
				return fmt.Errorf("unknown format %q (want csv or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "Output format: csv or json")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default stdout)")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <snapshot.json>",
		Short: "Import a JSON snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			snap, err := app.Snapshot.Import(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d projects, %d people, %d settings\n",
				len(snap.Projects), len(snap.People), len(snap.Settings))
			return nil
		},
	}
}
