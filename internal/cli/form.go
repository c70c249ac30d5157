package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/lszabadkai/quarterback/internal/domain"
	"github.com/lszabadkai/quarterback/internal/timeline"
)

// projectFormValues backs the huh form; everything is edited as strings
// and parsed on submit.
type projectFormValues struct {
	name       string
	typ        string
	status     string
	confidence string
	start      string
	end        string
	estimate   string
	impact     string
	iceConf    string
	effort     string
	assignees  []string
}

// openProjectForm switches the board into form mode. existing == nil
// means create; defaults carry a create gesture's provisional range.
func (m boardModel) openProjectForm(existing *domain.Project, defaults timeline.CreateDefaults) (tea.Model, tea.Cmd) {
	vals := &projectFormValues{
		typ:        "feature",
		status:     string(domain.StatusPlanned),
		confidence: string(domain.ConfidenceMedium),
	}

	if existing != nil {
		vals.name = existing.Name
		vals.typ = existing.Type
		vals.status = string(existing.Status)
		vals.confidence = string(existing.Confidence)
		vals.assignees = append([]string(nil), existing.Assignees...)
		vals.start = formFormatDate(existing.StartDate)
		vals.end = formFormatDate(existing.EndDate)
		vals.estimate = formFormatFloat(existing.EstimateDays)
		vals.impact = formFormatFloat(existing.IceImpact)
		vals.iceConf = formFormatFloat(existing.IceConfidence)
		vals.effort = formFormatFloat(existing.IceEffort)
	} else {
		vals.start = formFormatDate(defaults.Start)
		vals.end = formFormatDate(defaults.End)
		if defaults.Lane != "" {
			vals.assignees = []string{defaults.Lane}
		}
	}

	personOpts := make([]huh.Option[string], len(m.people))
	for i, p := range m.people {
		personOpts[i] = huh.NewOption(p.Name, p.ID)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&vals.name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().Title("Type").Value(&vals.typ),
			huh.NewSelect[string]().Title("Status").
				Options(
					huh.NewOption("Planned", string(domain.StatusPlanned)),
					huh.NewOption("In progress", string(domain.StatusInProgress)),
					huh.NewOption("Done", string(domain.StatusDone)),
					huh.NewOption("At risk", string(domain.StatusAtRisk)),
				).Value(&vals.status),
			huh.NewSelect[string]().Title("Confidence").
				Options(
					huh.NewOption("Low", string(domain.ConfidenceLow)),
					huh.NewOption("Medium", string(domain.ConfidenceMedium)),
					huh.NewOption("High", string(domain.ConfidenceHigh)),
				).Value(&vals.confidence),
			huh.NewMultiSelect[string]().Title("Assignees").
				Options(personOpts...).Value(&vals.assignees),
		),
		huh.NewGroup(
			huh.NewInput().Title("Start (YYYY-MM-DD, blank for backlog)").
				Value(&vals.start).Validate(validateOptionalDate),
			huh.NewInput().Title("End (YYYY-MM-DD)").
				Value(&vals.end).Validate(validateOptionalDate),
			huh.NewInput().Title("Estimate (engineer-days)").
				Value(&vals.estimate).Validate(validateOptionalFloat),
			huh.NewInput().Title("ICE impact (1-10)").
				Value(&vals.impact).Validate(validateOptionalFloat),
			huh.NewInput().Title("ICE confidence (1-10)").
				Value(&vals.iceConf).Validate(validateOptionalFloat),
			huh.NewInput().Title("ICE effort (1-10)").
				Value(&vals.effort).Validate(validateOptionalFloat),
		),
	).WithShowHelp(false)

	app := m.app
	var editID string
	if existing != nil {
		editID = existing.ID
	}
	m.mode = modeForm
	m.form = form
	m.formDone = func() tea.Cmd {
		return func() tea.Msg {
			return commitDoneMsg{err: submitProjectForm(app, editID, vals)}
		}
	}
	return m, form.Init()
}

func (m boardModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.mode = modeBoard
		m.form = nil
		m.formDone = nil
		return m, nil
	}

	updated, cmd := m.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		done := m.formDone
		m.mode = modeBoard
		m.form = nil
		m.formDone = nil
		return m, done()
	}
	if m.form.State == huh.StateAborted {
		m.mode = modeBoard
		m.form = nil
		m.formDone = nil
		return m, nil
	}
	return m, cmd
}

func submitProjectForm(app *App, editID string, vals *projectFormValues) error {
	ctx := context.Background()

	var p *domain.Project
	if editID != "" {
		existing, err := app.Projects.GetByID(ctx, editID)
		if err != nil {
			return err
		}
		p = existing
	} else {
		p = &domain.Project{}
	}

	p.Name = vals.name
	p.Type = vals.typ
	p.Status = domain.ProjectStatus(vals.status)
	p.Confidence = domain.Confidence(vals.confidence)
	p.Assignees = vals.assignees
	p.StartDate = formParseDate(vals.start)
	p.EndDate = formParseDate(vals.end)
	p.EstimateDays = formParseFloat(vals.estimate)
	p.IceImpact = formParseFloat(vals.impact)
	p.IceConfidence = formParseFloat(vals.iceConf)
	p.IceEffort = formParseFloat(vals.effort)

	if editID != "" {
		return app.Projects.Update(ctx, p)
	}
	return app.Projects.Create(ctx, p)
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(flagDateLayout, s); err != nil {
		return fmt.Errorf("want YYYY-MM-DD")
	}
	return nil
}

func validateOptionalFloat(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("want a number")
	}
	return nil
}

func formFormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(flagDateLayout)
}

func formParseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(flagDateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formFormatFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formParseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
