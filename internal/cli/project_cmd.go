package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lszabadkai/quarterback/internal/domain"
	"github.com/spf13/cobra"
)

const flagDateLayout = "2006-01-02"

// resolveProjectID accepts a UUID, a UUID prefix, or an exact
// (case-insensitive) project name.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if p.ID == input || strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectScheduleCmd(app),
		newProjectUnscheduleCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, desc, typ, status, confidence, start, end string
	var estimate, impact, iceConf, effort float64
	var assignees []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Project{
				Name:          name,
				Description:   desc,
				Type:          typ,
				Status:        domain.ProjectStatus(status),
				Confidence:    domain.Confidence(confidence),
				Assignees:     assignees,
				EstimateDays:  estimate,
				IceImpact:     impact,
				IceConfidence: iceConf,
				IceEffort:     effort,
			}

			if start != "" {
				d, err := time.Parse(flagDateLayout, start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				p.StartDate = d
			}
			if end != "" {
				d, err := time.Parse(flagDateLayout, end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
				p.EndDate = d
			}

			if err := app.Projects.Create(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Printf("Created project %s (%s)\n", p.Name, p.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&desc, "description", "", "Project description")
	cmd.Flags().StringVar(&typ, "type", "feature", "Project type (feature, ktlo, debt, ...)")
	cmd.Flags().StringVar(&status, "status", "planned", "Status (planned, in_progress, done, at_risk)")
	cmd.Flags().StringVar(&confidence, "confidence", "medium", "Confidence (low, medium, high)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD); omit to keep in backlog")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&assignees, "assignee", nil, "Assignee person ID (repeatable)")
	cmd.Flags().Float64Var(&estimate, "estimate", 0, "Estimate in engineer-days")
	cmd.Flags().Float64Var(&impact, "ice-impact", 0, "ICE impact (1-10)")
	cmd.Flags().Float64Var(&iceConf, "ice-confidence", 0, "ICE confidence (1-10)")
	cmd.Flags().Float64Var(&effort, "ice-effort", 0, "ICE effort (1-10)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var backlogOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			var projects []*domain.Project
			var err error
			if backlogOnly {
				projects, err = app.Projects.ListBacklog(cmd.Context())
			} else {
				projects, err = app.Projects.List(cmd.Context())
			}
			if err != nil {
				return err
			}

			if len(projects) == 0 {
				fmt.Println("No projects.")
				return nil
			}
			for _, p := range projects {
				dates := "backlog"
				if p.Scheduled() {
					dates = fmt.Sprintf("%s .. %s",
						p.StartDate.Format(flagDateLayout), p.EndDate.Format(flagDateLayout))
				}
				score := "-"
				if v, ok := p.IceScore(); ok {
					score = fmt.Sprintf("%.1f", v)
				}
				fmt.Printf("%-8s  %-28s  %-22s  %-12s  ICE %s\n",
					p.ID[:8], p.Name, dates, p.Status, score)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&backlogOnly, "backlog", false, "Only unscheduled projects, by ICE score")
	return cmd
}

func newProjectScheduleCmd(app *App) *cobra.Command {
	var start, lane string

	cmd := &cobra.Command{
		Use:   "schedule <project>",
		Short: "Place a backlog project on the timeline (one-week default)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveProjectID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			d, err := time.Parse(flagDateLayout, start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			return app.Projects.PlaceFromBacklog(cmd.Context(), id, d, lane)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&lane, "lane", "", "Person ID to assign")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func newProjectUnscheduleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unschedule <project>",
		Short: "Send a project back to the backlog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveProjectID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			return app.Projects.Unschedule(cmd.Context(), id)
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <project>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveProjectID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			return app.Projects.Delete(cmd.Context(), id)
		},
	}
}
