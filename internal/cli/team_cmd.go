package cli

import (
	"fmt"

	"github.com/lszabadkai/quarterback/internal/domain"
	"github.com/spf13/cobra"
)

func newTeamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage people, regions and roles",
	}

	cmd.AddCommand(
		newTeamAddCmd(app),
		newTeamListCmd(app),
		newTeamRemoveCmd(app),
		newRegionAddCmd(app),
		newRoleAddCmd(app),
	)

	return cmd
}

func newTeamAddCmd(app *App) *cobra.Command {
	var name, color, region, role string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a person",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Person{Name: name, Color: color, RegionID: region, RoleID: role}
			if err := app.Team.AddPerson(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Printf("Added %s [%s] (%s)\n", p.Name, p.Avatar, p.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&color, "color", "", "Lane color (hex)")
	cmd.Flags().StringVar(&region, "region", "", "Region ID")
	cmd.Flags().StringVar(&role, "role", "", "Role ID")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newTeamListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List people",
		RunE: func(cmd *cobra.Command, args []string) error {
			people, err := app.Team.ListPeople(cmd.Context())
			if err != nil {
				return err
			}
			if len(people) == 0 {
				fmt.Println("No people yet. Add one with: quarterback team add --name <name>")
				return nil
			}
			for _, p := range people {
				fmt.Printf("%-8s  %-4s  %s\n", p.ID[:8], p.Avatar, p.Name)
			}
			return nil
		},
	}
}

func newTeamRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <person-id>",
		Short: "Remove a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Team.RemovePerson(cmd.Context(), args[0])
		},
	}
}

func newRegionAddCmd(app *App) *cobra.Command {
	var name string
	var pto, holidays int

	cmd := &cobra.Command{
		Use:   "add-region",
		Short: "Add a region (PTO and holiday allowance)",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &domain.Region{Name: name, PTODays: pto, Holidays: holidays}
			if err := app.Team.AddRegion(cmd.Context(), r); err != nil {
				return err
			}
			fmt.Printf("Added region %s (%s)\n", r.Name, r.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Region name")
	cmd.Flags().IntVar(&pto, "pto", 0, "PTO days per quarter")
	cmd.Flags().IntVar(&holidays, "holidays", 0, "Public holidays per quarter")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newRoleAddCmd(app *App) *cobra.Command {
	var name string
	var focus int

	cmd := &cobra.Command{
		Use:   "add-role",
		Short: "Add a role (focus percentage)",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &domain.Role{Name: name, FocusPct: focus}
			if err := app.Team.AddRole(cmd.Context(), r); err != nil {
				return err
			}
			fmt.Printf("Added role %s at %d%% focus (%s)\n", r.Name, r.FocusPct, r.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Role name")
	cmd.Flags().IntVar(&focus, "focus", 100, "Percent of time available for project work")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
