package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/lszabadkai/quarterback/internal/domain"
	"github.com/lszabadkai/quarterback/internal/timeline"
)

// Terminal cells are coarse, so the board maps one column to several
// virtual pixels before talking to the engine. One column of drag then
// reliably clears the engine's dead zone.
const pxPerCell = 8.0

// Fixed rows above the lane grid: title, week header, heat row.
const (
	gutterWidth  = 18
	headerRows   = 3
	rowsPerLane  = 2
	backlogRows  = 4 // separator + up to three backlog lines
	minGridWidth = 26
)

type boardMode int

const (
	modeBoard boardMode = iota
	modeForm
)

// hostBridge receives engine commits during a single Update pass and
// hands them back to the model as pending work. The engine calls are
// synchronous, so no locking is needed.
type hostBridge struct {
	updates    []timelineCommit
	unschedule []string
	creates    []timeline.CreateDefaults
	selected   string
	edits      []string
}

type timelineCommit struct {
	projectID  string
	start, end *time.Time
	reassign   *timeline.Reassignment
}

func (h *hostBridge) TimelineUpdated(projectID string, start, end *time.Time, reassign *timeline.Reassignment) {
	h.updates = append(h.updates, timelineCommit{projectID, start, end, reassign})
}
func (h *hostBridge) CreateRequested(d timeline.CreateDefaults) { h.creates = append(h.creates, d) }

func (h *hostBridge) UnscheduleRequested(id string) { h.unschedule = append(h.unschedule, id) }

func (h *hostBridge) ProjectSelected(id string) { h.selected = id }

func (h *hostBridge) ProjectEditRequested(id string) { h.edits = append(h.edits, id) }

type dataLoadedMsg struct {
	projects []*domain.Project
	people   []*domain.Person
	heatOn   bool
	err      error
}

type commitDoneMsg struct{ err error }

type boardModel struct {
	app    *App
	bridge *hostBridge
	engine *timeline.Engine

	period string
	view   domain.ViewMode

	projects []*domain.Project
	people   []*domain.Person

	width, height int
	mode          boardMode
	form          *huh.Form
	formDone      func() tea.Cmd
	keys          boardKeyMap
	helpView      help.Model

	selectedID string
	pendingID  string // backlog project awaiting a cell click for placement
	pressedBar string
	statusLine string
	err        error
	quitting   bool
}

func newBoardModel(app *App, period, view string) boardModel {
	bridge := &hostBridge{}
	m := boardModel{
		app:      app,
		bridge:   bridge,
		engine:   timeline.New(bridge),
		period:   period,
		view:     domain.ParseViewMode(view),
		keys:     defaultBoardKeyMap(),
		helpView: help.New(),
	}
	// Resolve the period and week grid before the first data load so
	// navigation works immediately.
	m.syncEngine()
	return m
}

func (m boardModel) Init() tea.Cmd {
	return m.loadData()
}

func (m boardModel) loadData() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		projects, err := app.Projects.List(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		people, err := app.Team.ListPeople(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		return dataLoadedMsg{projects: projects, people: people}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == modeForm {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpView.Width = msg.Width
		m.syncEngine()
		return m, nil

	case dataLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.projects = msg.projects
		m.people = msg.people
		m.err = nil
		m.syncEngine()
		return m, nil

	case commitDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, m.loadData()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.engine.CancelGesture()
		m.pendingID = ""
		m.statusLine = ""
		return m, nil
	case key.Matches(msg, m.keys.CycleView):
		m.view = nextViewMode(m.view)
		m.syncEngine()
		return m, nil
	case key.Matches(msg, m.keys.PrevPeriod):
		m.period = m.engine.Period().Prev().Label()
		m.syncEngine()
		return m, nil
	case key.Matches(msg, m.keys.NextPeriod):
		m.period = m.engine.Period().Next().Label()
		m.syncEngine()
		return m, nil
	case key.Matches(msg, m.keys.NewProject):
		return m.openProjectForm(nil, timeline.CreateDefaults{})
	case key.Matches(msg, m.keys.Reload):
		return m, m.loadData()
	}
	return m, nil
}

func (m boardModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := float64(msg.X)*pxPerCell, float64(msg.Y)*pxPerCell

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.press(msg.X, msg.Y, x, y)

	case tea.MouseActionMotion:
		m.engine.PointerMove(x, y, m.hoverAt(msg.X, msg.Y))
		return m, nil

	case tea.MouseActionRelease:
		return m.release(msg.X, msg.Y)
	}
	return m, nil
}

func (m boardModel) press(col, row int, x, y float64) (tea.Model, tea.Cmd) {
	m.err = nil

	if id, ok := m.backlogProjectAt(col, row); ok {
		m.pendingID = id
		m.selectedID = id
		m.statusLine = "Click a week cell to place " + m.projectName(id)
		return m, nil
	}

	lane, laneOK := m.laneAt(row)
	if !laneOK || col < gutterWidth {
		return m, nil
	}
	week := m.weekAt(col)

	// A pending backlog pick turns the next cell click into a placement.
	if m.pendingID != "" {
		id := m.pendingID
		m.pendingID = ""
		m.statusLine = ""
		weeks := m.engine.Weeks()
		if week < 0 || week >= len(weeks) {
			return m, nil
		}
		start := weeks[week].Start
		app := m.app
		return m, func() tea.Msg {
			return commitDoneMsg{err: app.Projects.PlaceFromBacklog(context.Background(), id, start, lane)}
		}
	}

	if barID, edge, onBar := m.barAt(col, row); onBar {
		m.pressedBar = barID
		laneW := float64(m.gridWidth()) * pxPerCell
		if edge == nil {
			m.engine.PressBar(barID, lane, x, y, laneW)
			m.selectedID = m.bridge.selected
		} else {
			m.engine.PressHandle(barID, lane, *edge, x, y, laneW)
		}
		return m, nil
	}

	m.engine.PressCell(lane, week)
	return m, nil
}

func (m boardModel) release(col, row int) (tea.Model, tea.Cmd) {
	wasDragging := m.engine.Dragging()
	m.engine.PointerRelease()

	// A press and release on the same bar without a drag is a click.
	if !wasDragging && m.pressedBar != "" {
		if barID, _, ok := m.barAt(col, row); ok && barID == m.pressedBar {
			m.engine.ClickBar(barID)
		}
	}
	m.pressedBar = ""
	return m.drainBridge()
}

// drainBridge converts engine commits gathered during this Update pass
// into service calls and modal forms.
func (m boardModel) drainBridge() (tea.Model, tea.Cmd) {
	b := m.bridge
	if b.selected != "" {
		m.selectedID = b.selected
		b.selected = ""
	}

	var cmds []tea.Cmd
	app := m.app
	for _, u := range b.updates {
		u := u
		cmds = append(cmds, func() tea.Msg {
			return commitDoneMsg{err: app.Projects.ApplyTimeline(
				context.Background(), u.projectID, u.start, u.end, u.reassign)}
		})
	}
	b.updates = nil

	for _, id := range b.unschedule {
		id := id
		cmds = append(cmds, func() tea.Msg {
			return commitDoneMsg{err: app.Projects.Unschedule(context.Background(), id)}
		})
	}
	b.unschedule = nil

	if len(b.creates) > 0 {
		defaults := b.creates[len(b.creates)-1]
		b.creates = nil
		return m.openProjectForm(nil, defaults)
	}

	if len(b.edits) > 0 {
		id := b.edits[len(b.edits)-1]
		b.edits = nil
		for _, p := range m.projects {
			if p.ID == id {
				return m.openProjectForm(p, timeline.CreateDefaults{})
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// syncEngine pushes the current data and view into the layout engine.
func (m *boardModel) syncEngine() {
	projects := make([]domain.Project, len(m.projects))
	for i, p := range m.projects {
		projects[i] = *p
	}
	lanes := make([]string, len(m.people))
	for i, p := range m.people {
		lanes[i] = p.ID
	}
	m.engine.Update(projects, lanes, timeline.View{Period: m.period, Mode: m.view})
	m.period = m.engine.Period().Label()
}

func nextViewMode(v domain.ViewMode) domain.ViewMode {
	switch v {
	case domain.ViewQuarter:
		return domain.ViewMonth
	case domain.ViewMonth:
		return domain.ViewSixWeeks
	case domain.ViewSixWeeks:
		return domain.ViewTwoWeeks
	default:
		return domain.ViewQuarter
	}
}

// ── layout mapping ──────────────────────────────────────────────────────

func (m boardModel) gridWidth() int {
	w := m.width - gutterWidth - 1
	if w < minGridWidth {
		w = minGridWidth
	}
	return w
}

func (m boardModel) laneTop() int { return headerRows }

func (m boardModel) backlogTop() int {
	return m.laneTop() + len(m.people)*rowsPerLane
}

// laneAt maps a terminal row to the person lane drawn there.
func (m boardModel) laneAt(row int) (string, bool) {
	idx := (row - m.laneTop()) / rowsPerLane
	if row < m.laneTop() || idx < 0 || idx >= len(m.people) {
		return "", false
	}
	return m.people[idx].ID, true
}

// weekAt maps a terminal column to a week bucket index, -1 outside.
func (m boardModel) weekAt(col int) int {
	weeks := m.engine.Weeks()
	offset := col - gutterWidth
	if offset < 0 || len(weeks) == 0 {
		return -1
	}
	idx := offset * len(weeks) / m.gridWidth()
	if idx >= len(weeks) {
		return -1
	}
	return idx
}

func (m boardModel) hoverAt(col, row int) timeline.Hover {
	if row >= m.backlogTop() {
		return timeline.Hover{Backlog: true, Week: -1}
	}
	lane, _ := m.laneAt(row)
	return timeline.Hover{Lane: lane, Week: m.weekAt(col)}
}

// barAt finds the bar under a cell, and which part of it: a nil edge
// means the body, otherwise the start or end handle.
func (m boardModel) barAt(col, row int) (string, *timeline.Edge, bool) {
	lane, ok := m.laneAt(row)
	if !ok || (row-m.laneTop())%rowsPerLane != 0 {
		return "", nil, false
	}
	for _, bar := range m.engine.Bars() {
		if bar.Lane != lane {
			continue
		}
		left, right := m.barCols(bar.Pos)
		if col < left || col > right {
			continue
		}
		var edge *timeline.Edge
		if col == left {
			e := timeline.EdgeStart
			edge = &e
		} else if col == right {
			e := timeline.EdgeEnd
			edge = &e
		}
		return bar.ProjectID, edge, true
	}
	return "", nil, false
}

// barCols converts a percent position into inclusive terminal columns.
func (m boardModel) barCols(pos timeline.BarPosition) (int, int) {
	gw := float64(m.gridWidth())
	left := gutterWidth + int(pos.Left/100*gw)
	width := int(pos.Width / 100 * gw)
	if width < 1 {
		width = 1
	}
	return left, left + width - 1
}

// backlogProjectAt maps a click in the dock to a backlog project.
func (m boardModel) backlogProjectAt(col, row int) (string, bool) {
	line := row - m.backlogTop() - 1 // first dock row is the separator
	if line < 0 || line >= backlogRows-1 {
		return "", false
	}
	backlog := m.backlogProjects()
	if line >= len(backlog) {
		return "", false
	}
	return backlog[line].ID, true
}

func (m boardModel) backlogProjects() []*domain.Project {
	var out []*domain.Project
	for _, p := range m.projects {
		if !p.Scheduled() {
			out = append(out, p)
		}
	}
	return out
}

func (m boardModel) projectName(id string) string {
	for _, p := range m.projects {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}

func (m boardModel) personName(id string) string {
	for _, p := range m.people {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}
