package timeline

import (
	"time"

	"github.com/lszabadkai/quarterback/internal/domain"
)

// View selects what slice of the calendar the board shows.
type View struct {
	Period string // Q{1-4}-{year} label; malformed falls back to today's quarter
	Mode   domain.ViewMode
}

// Bar is one renderable project placement: a project appears once per
// assignee lane.
type Bar struct {
	ProjectID string
	Lane      string
	Pos       BarPosition
}

// PreviewBar is the live geometry of an in-flight gesture.
type PreviewBar struct {
	ProjectID   string
	Lane        string
	Start       time.Time
	End         time.Time
	Pos         BarPosition
	OverBacklog bool
	Creating    bool
}

// Edge names which handle a resize gesture grips.
type Edge int

const (
	EdgeStart Edge = iota
	EdgeEnd
)

// Engine owns the board's layout state and the lifecycle of at most one
// pointer gesture at a time. All methods run on the caller's event loop;
// nothing here blocks or spawns goroutines. Rendering is the host's job:
// the engine only hands out normalised geometry.
type Engine struct {
	host Host
	now  func() time.Time

	projects []domain.Project
	lanes    []string
	laneSet  map[string]bool

	period Period
	mode   domain.ViewMode
	weeks  []WeekBucket
	span   Span

	gesture         *Gesture
	suppressClickID string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock injects the engine's notion of "today" for headless tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an engine reporting commits to host. host may be nil, in
// which case commits are dropped.
func New(host Host, opts ...Option) *Engine {
	e := &Engine{host: host, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Update is the sole data entry point: it re-resolves the period,
// regenerates week buckets and keeps the current project/lane snapshot.
// Idempotent; the host calls it after every data mutation. An in-flight
// gesture survives an Update untouched (its resolver and span were
// captured at press time).
func (e *Engine) Update(projects []domain.Project, lanes []string, view View) {
	e.projects = projects
	e.lanes = lanes
	e.laneSet = make(map[string]bool, len(lanes))
	for _, id := range lanes {
		e.laneSet[id] = true
	}

	e.period = PeriodOrCurrent(view.Period, e.now())
	e.mode = domain.ParseViewMode(string(view.Mode))
	e.weeks, e.span = GenerateWeeks(e.period, e.mode, e.now())
}

// Weeks returns the current week buckets in chronological order.
func (e *Engine) Weeks() []WeekBucket { return e.weeks }

// Span returns the date range the buckets cover.
func (e *Engine) Span() Span { return e.span }

// Period returns the resolved period.
func (e *Engine) Period() Period { return e.period }

// Mode returns the active view mode.
func (e *Engine) Mode() domain.ViewMode { return e.mode }

// Bars lays out every scheduled project once per assignee lane. Projects
// with unusable dates or ranges outside the span are skipped silently.
func (e *Engine) Bars() []Bar {
	var bars []Bar
	for i := range e.projects {
		p := &e.projects[i]
		pos, ok := Position(p.StartDate, p.EndDate, e.span)
		if !ok {
			continue
		}
		for _, lane := range p.Assignees {
			if !e.laneSet[lane] {
				continue
			}
			bars = append(bars, Bar{ProjectID: p.ID, Lane: lane, Pos: pos})
		}
	}
	return bars
}

// Heat computes the per-week capacity classification for the current data.
func (e *Engine) Heat() []WeekHeat {
	return Heatmap(e.weeks, e.projects, len(e.lanes))
}

// PressBar arms a move gesture on a bar's body and reports the selection.
// laneWidth is the lane's rendered width in pixels, fixing the
// pixel-to-time scale for the whole gesture.
func (e *Engine) PressBar(projectID, lane string, x, y, laneWidth float64) {
	e.emitSelected(projectID)
	e.arm(GestureMove, projectID, lane, x, y, laneWidth)
}

// PressHandle arms a resize gesture on one of a bar's edge handles.
func (e *Engine) PressHandle(projectID, lane string, edge Edge, x, y, laneWidth float64) {
	kind := GestureResizeStart
	if edge == EdgeEnd {
		kind = GestureResizeEnd
	}
	e.arm(kind, projectID, lane, x, y, laneWidth)
}

// PressCell arms a create gesture on an empty grid cell, provisionally
// covering that cell's week.
func (e *Engine) PressCell(lane string, week int) {
	if e.gesture != nil || !e.laneSet[lane] || week < 0 || week >= len(e.weeks) {
		return
	}
	e.gesture = newCreateGesture(lane, week, e.weeks, e.span)
}

func (e *Engine) arm(kind GestureKind, projectID, lane string, x, y, laneWidth float64) {
	if e.gesture != nil || laneWidth <= 0 {
		return
	}
	p := e.findProject(projectID)
	if p == nil || !p.Scheduled() {
		// Malformed dates abort the gesture silently; the press still
		// counted as a selection.
		return
	}
	e.gesture = newDragGesture(kind, projectID, lane, x, y, laneWidth,
		p.StartDate, p.EndDate, e.span, NewResolver(e.span, e.projects))
}

// PointerMove advances the active gesture. hov tells the engine what the
// surface found under the pointer; it costs nothing when no gesture is
// active.
func (e *Engine) PointerMove(x, y float64, hov Hover) {
	if e.gesture == nil {
		return
	}
	e.gesture.Move(x, y, hov)
}

// PointerRelease resolves the active gesture into at most one host
// commit. A committed move/resize suppresses the bar's next click so the
// release does not double as an edit-open.
func (e *Engine) PointerRelease() {
	g := e.gesture
	if g == nil {
		return
	}
	e.gesture = nil

	in, ok := g.release()
	if !ok {
		return
	}
	switch {
	case in.unscheduleID != "":
		e.suppressClickID = g.projectID
		if e.host != nil {
			e.host.UnscheduleRequested(in.unscheduleID)
		}
	case in.create != nil:
		if e.host != nil {
			e.host.CreateRequested(*in.create)
		}
	case in.update != nil:
		e.suppressClickID = g.projectID
		if e.host != nil {
			e.host.TimelineUpdated(in.update.projectID, in.update.start, in.update.end, in.update.reassign)
		}
	}
}

// PointerLeave cancels the active gesture: the pointer left the
// interactive surface without releasing.
func (e *Engine) PointerLeave() {
	if e.gesture == nil {
		return
	}
	e.gesture.cancel()
	e.gesture = nil
}

// CancelGesture aborts like PointerLeave; exposed for Escape handling.
func (e *Engine) CancelGesture() { e.PointerLeave() }

// ClickBar resolves a non-drag click into an edit request, unless the
// click trails a just-committed drag on the same bar.
func (e *Engine) ClickBar(projectID string) {
	if e.suppressClickID == projectID {
		e.suppressClickID = ""
		return
	}
	if e.host != nil {
		e.host.ProjectEditRequested(projectID)
	}
}

// Dragging reports whether a gesture is past the dead zone (or is an
// armed create, whose preview shows immediately).
func (e *Engine) Dragging() bool {
	if e.gesture == nil {
		return false
	}
	if e.gesture.kind == GestureCreate {
		return true
	}
	return e.gesture.phase == PhaseDragging
}

// Preview returns the live geometry of the active gesture for the
// renderer, false when there is nothing to draw.
func (e *Engine) Preview() (PreviewBar, bool) {
	if !e.Dragging() {
		return PreviewBar{}, false
	}
	g := e.gesture
	pos, ok := Position(g.curStart, g.curEnd, e.span)
	if !ok {
		return PreviewBar{}, false
	}
	return PreviewBar{
		ProjectID:   g.projectID,
		Lane:        g.previewLane(),
		Start:       g.curStart,
		End:         g.curEnd,
		Pos:         pos,
		OverBacklog: g.overBacklog,
		Creating:    g.kind == GestureCreate,
	}, true
}

func (e *Engine) emitSelected(projectID string) {
	if e.host != nil {
		e.host.ProjectSelected(projectID)
	}
}

func (e *Engine) findProject(id string) *domain.Project {
	for i := range e.projects {
		if e.projects[i].ID == id {
			return &e.projects[i]
		}
	}
	return nil
}
