package cli

import (
	"fmt"

	"github.com/lszabadkai/quarterback/internal/capacity"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newCapacityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Quarter capacity budget and per-member breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			settings, err := app.Settings.Capacity(ctx)
			if err != nil {
				return err
			}
			budget := capacity.ComputeBudget(settings)

			fmt.Printf("Quarter budget (%d engineers)\n", settings.Engineers)
			fmt.Printf("  Theoretical  %7.1f days\n", budget.Theoretical)
			fmt.Printf("  Time off     %7.1f days\n", budget.TimeOff)
			fmt.Printf("  Reserves     %7.1f days  (ad-hoc %.0f%% + bugs %.0f%%)\n",
				budget.Reserves, settings.AdhocReservePct, settings.BugReservePct)
			fmt.Printf("  Net          %7.1f days\n", budget.Net)

			people, err := app.Team.ListPeople(ctx)
			if err != nil {
				return err
			}
			if len(people) == 0 {
				return nil
			}
			regions, err := app.Team.ListRegions(ctx)
			if err != nil {
				return err
			}
			roles, err := app.Team.ListRoles(ctx)
			if err != nil {
				return err
			}
			projects, err := app.Projects.ListScheduled(ctx)
			if err != nil {
				return err
			}

			fmt.Println()
			fmt.Printf("%-20s  %9s  %8s  %9s  %9s  %5s\n",
				"Member", "Gross", "Off", "Available", "Committed", "Util")
			for _, m := range capacity.MemberBreakdowns(people, regions, roles, projects) {
				fmt.Printf("%-20s  %8.1fd  %7.1fd  %8.1fd  %8.1fd  %4.0f%%\n",
					m.Name, m.Gross, m.TimeOff, m.Available, m.Committed, m.Utilization())
			}
			fmt.Printf("\nCommitted total: %.1f days of %.1f net\n",
				capacity.TotalCommitted(projects), budget.Net)
			return nil
		},
	}

	cmd.AddCommand(newCapacitySetCmd(app))
	return cmd
}

func newCapacitySetCmd(app *App) *cobra.Command {
	var engineers, pto, holidays int
	var adhoc, bugs float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update the capacity knobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			settings, err := app.Settings.Capacity(ctx)
			if err != nil {
				return err
			}

			// Only flags the user actually passed overwrite stored values.
			apply := map[string]func(){
				"engineers": func() { settings.Engineers = engineers },
				"pto":       func() { settings.PTODays = pto },
				"holidays":  func() { settings.HolidayDays = holidays },
				"adhoc-pct": func() { settings.AdhocReservePct = adhoc },
				"bug-pct":   func() { settings.BugReservePct = bugs },
			}
			cmd.Flags().Visit(func(f *pflag.Flag) {
				if set, ok := apply[f.Name]; ok {
					set()
				}
			})
			return app.Settings.SetCapacity(ctx, settings)
		},
	}

	cmd.Flags().IntVar(&engineers, "engineers", 0, "Engineer count")
	cmd.Flags().IntVar(&pto, "pto", 0, "PTO days per engineer per quarter")
	cmd.Flags().IntVar(&holidays, "holidays", 0, "Holiday days per engineer per quarter")
	cmd.Flags().Float64Var(&adhoc, "adhoc-pct", 0, "Ad-hoc reserve percent")
	cmd.Flags().Float64Var(&bugs, "bug-pct", 0, "Bug reserve percent")
	return cmd
}
