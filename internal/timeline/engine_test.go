package timeline

import (
	"testing"
	"time"

	"github.com/lszabadkai/quarterback/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedUpdate struct {
	projectID  string
	start, end *time.Time
	reassign   *Reassignment
}

// hostRecorder captures every commit the engine dispatches.
type hostRecorder struct {
	updates     []recordedUpdate
	creates     []CreateDefaults
	unscheduled []string
	selected    []string
	edited      []string
}

func (h *hostRecorder) TimelineUpdated(projectID string, start, end *time.Time, reassign *Reassignment) {
	h.updates = append(h.updates, recordedUpdate{projectID, start, end, reassign})
}
func (h *hostRecorder) CreateRequested(d CreateDefaults) { h.creates = append(h.creates, d) }

func (h *hostRecorder) UnscheduleRequested(id string) { h.unscheduled = append(h.unscheduled, id) }

func (h *hostRecorder) ProjectSelected(id string) { h.selected = append(h.selected, id) }

func (h *hostRecorder) ProjectEditRequested(id string) { h.edited = append(h.edited, id) }

const laneWidth = 900.0 // 90-day quarter span: 10px per day

func newBoard(t *testing.T, projects []domain.Project, lanes []string) (*Engine, *hostRecorder) {
	t.Helper()
	host := &hostRecorder{}
	e := New(host, WithClock(func() time.Time { return noon }))
	e.Update(projects, lanes, View{Period: "Q1-2024", Mode: domain.ViewQuarter})
	return e, host
}

func scheduledProject(id, lane string) domain.Project {
	return domain.Project{
		ID:        id,
		Name:      "Search revamp",
		Assignees: []string{lane},
		StartDate: day(2, 10),
		EndDate:   day(2, 20),
	}
}

func TestEngine_BarsOncePerAssigneeLane(t *testing.T) {
	p := scheduledProject("p1", "dev")
	p.Assignees = []string{"dev", "qa", "ghost"}
	unscheduled := domain.Project{ID: "p2", Assignees: []string{"dev"}}
	e, _ := newBoard(t, []domain.Project{p, unscheduled}, []string{"dev", "qa"})

	bars := e.Bars()
	require.Len(t, bars, 2)
	assert.Equal(t, "dev", bars[0].Lane)
	assert.Equal(t, "qa", bars[1].Lane)
	assert.Equal(t, bars[0].Pos, bars[1].Pos)
}

func TestEngine_DragMoveCommitsShiftedDates(t *testing.T) {
	e, host := newBoard(t, []domain.Project{scheduledProject("p1", "dev")}, []string{"dev"})

	e.PressBar("p1", "dev", 100, 10, laneWidth)
	assert.Equal(t, []string{"p1"}, host.selected)

	// 30px right at 10px/day: three days.
	e.PointerMove(130, 12, Hover{Lane: "dev", Week: -1})
	assert.True(t, e.Dragging())

	pv, ok := e.Preview()
	require.True(t, ok)
	assert.Equal(t, day(2, 13), pv.Start)
	assert.Equal(t, day(2, 23), pv.End)
	assert.Equal(t, "dev", pv.Lane)

	e.PointerRelease()
	require.Len(t, host.updates, 1)
	u := host.updates[0]
	assert.Equal(t, "p1", u.projectID)
	require.NotNil(t, u.start)
	assert.Equal(t, day(2, 13), *u.start)
	assert.Equal(t, day(2, 23), *u.end)
	assert.Nil(t, u.reassign)

	// The release suppresses exactly one trailing click on the same bar.
	e.ClickBar("p1")
	assert.Empty(t, host.edited)
	e.ClickBar("p1")
	assert.Equal(t, []string{"p1"}, host.edited)
}

func TestEngine_ClickWithinDeadZoneIsNotADrag(t *testing.T) {
	e, host := newBoard(t, []domain.Project{scheduledProject("p1", "dev")}, []string{"dev"})

	e.PressBar("p1", "dev", 100, 10, laneWidth)
	e.PointerMove(103, 12, Hover{Lane: "dev", Week: -1})
	assert.False(t, e.Dragging())
	e.PointerRelease()

	assert.Empty(t, host.updates)
	e.ClickBar("p1")
	assert.Equal(t, []string{"p1"}, host.edited)
}

func TestEngine_DropOnBacklogUnschedules(t *testing.T) {
	e, host := newBoard(t, []domain.Project{scheduledProject("p1", "dev")}, []string{"dev"})

	e.PressBar("p1", "dev", 100, 10, laneWidth)
	e.PointerMove(140, 300, Hover{Backlog: true, Week: -1})

	pv, ok := e.Preview()
	require.True(t, ok)
	assert.True(t, pv.OverBacklog)
	assert.Equal(t, "dev", pv.Lane)

	e.PointerRelease()
	assert.Equal(t, []string{"p1"}, host.unscheduled)
	assert.Empty(t, host.updates)
}

func TestEngine_CrossLaneDragReassignsWithoutDates(t *testing.T) {
	e, host := newBoard(t, []domain.Project{scheduledProject("p1", "dev")}, []string{"dev", "qa"})

	e.PressBar("p1", "dev", 100, 10, laneWidth)
	// Vertical motion only: past the dead zone, dates unchanged.
	e.PointerMove(100, 60, Hover{Lane: "qa", Week: -1})

	pv, ok := e.Preview()
	require.True(t, ok)
	assert.Equal(t, "qa", pv.Lane)

	e.PointerRelease()
	require.Len(t, host.updates, 1)
	u := host.updates[0]
	assert.Nil(t, u.start)
	assert.Nil(t, u.end)
	require.NotNil(t, u.reassign)
	assert.Equal(t, Reassignment{From: "dev", To: "qa"}, *u.reassign)
}

func TestEngine_ResizeStartClampsToSingleDay(t *testing.T) {
	e, host := newBoard(t, []domain.Project{scheduledProject("p1", "dev")}, []string{"dev"})

	e.PressHandle("p1", "dev", EdgeStart, 100, 10, laneWidth)
	// 200px right would push the start past the end; it stops one day shy.
	e.PointerMove(300, 10, Hover{Lane: "dev", Week: -1})
	e.PointerRelease()

	require.Len(t, host.updates, 1)
	u := host.updates[0]
	require.NotNil(t, u.start)
	assert.Equal(t, day(2, 19), *u.start)
	assert.Equal(t, day(2, 20), *u.end)
}

func TestEngine_ResizeEndNeverLeavesSpan(t *testing.T) {
	e, host := newBoard(t, []domain.Project{scheduledProject("p1", "dev")}, []string{"dev"})

	e.PressHandle("p1", "dev", EdgeEnd, 100, 10, laneWidth)
	e.PointerMove(5000, 10, Hover{Lane: "dev", Week: -1})
	e.PointerRelease()

	require.Len(t, host.updates, 1)
	u := host.updates[0]
	assert.Equal(t, day(2, 10), *u.start)
	assert.Equal(t, e.Span().End, *u.end)
}

func TestEngine_CreateClickYieldsSingleWeekDefault(t *testing.T) {
	e, host := newBoard(t, nil, []string{"dev"})

	e.PressCell("dev", 5)
	assert.True(t, e.Dragging())
	e.PointerRelease()

	require.Len(t, host.creates, 1)
	c := host.creates[0]
	assert.Equal(t, "dev", c.Lane)
	assert.Equal(t, day(2, 5), c.Start)
	assert.Equal(t, day(2, 11), c.End)
}

func TestEngine_CreateDragExtendsAcrossWeeks(t *testing.T) {
	e, host := newBoard(t, nil, []string{"dev"})

	e.PressCell("dev", 5)
	e.PointerMove(0, 0, Hover{Lane: "dev", Week: 7})
	// Hovering another lane or leaving the grid keeps the last good range.
	e.PointerMove(0, 0, Hover{Lane: "qa", Week: 9})
	e.PointerRelease()

	require.Len(t, host.creates, 1)
	c := host.creates[0]
	assert.Equal(t, day(2, 5), c.Start)
	assert.Equal(t, day(2, 25), c.End)

	// Dragging left of the origin mirrors dragging right.
	e.PressCell("dev", 5)
	e.PointerMove(0, 0, Hover{Lane: "dev", Week: 3})
	e.PointerRelease()
	require.Len(t, host.creates, 2)
	assert.Equal(t, day(1, 22), host.creates[1].Start)
	assert.Equal(t, day(2, 11), host.creates[1].End)
}

func TestEngine_PressCellRejectsBadTargets(t *testing.T) {
	e, host := newBoard(t, nil, []string{"dev"})

	e.PressCell("ghost", 5)
	e.PressCell("dev", -1)
	e.PressCell("dev", 13)
	assert.False(t, e.Dragging())
	e.PointerRelease()
	assert.Empty(t, host.creates)
}

func TestEngine_PointerLeaveCancelsGesture(t *testing.T) {
	e, host := newBoard(t, []domain.Project{scheduledProject("p1", "dev")}, []string{"dev"})

	e.PressBar("p1", "dev", 100, 10, laneWidth)
	e.PointerMove(150, 10, Hover{Lane: "dev", Week: -1})
	e.PointerLeave()
	e.PointerRelease()

	assert.Empty(t, host.updates)
	assert.False(t, e.Dragging())
}

func TestEngine_ArmRejectsUnscheduledProject(t *testing.T) {
	p := domain.Project{ID: "p1", Assignees: []string{"dev"}}
	e, host := newBoard(t, []domain.Project{p}, []string{"dev"})

	e.PressBar("p1", "dev", 100, 10, laneWidth)
	assert.Equal(t, []string{"p1"}, host.selected)
	e.PointerMove(200, 10, Hover{Lane: "dev", Week: -1})
	assert.False(t, e.Dragging())
}

func TestEngine_UpdateIsIdempotent(t *testing.T) {
	e, _ := newBoard(t, []domain.Project{scheduledProject("p1", "dev")}, []string{"dev"})

	weeks, span := e.Weeks(), e.Span()
	e.Update([]domain.Project{scheduledProject("p1", "dev")}, []string{"dev"},
		View{Period: "Q1-2024", Mode: domain.ViewQuarter})
	assert.Equal(t, weeks, e.Weeks())
	assert.Equal(t, span, e.Span())
	assert.Equal(t, "Q1-2024", e.Period().Label())
}

func TestEngine_MalformedViewFallsBack(t *testing.T) {
	host := &hostRecorder{}
	e := New(host, WithClock(func() time.Time { return noon }))
	e.Update(nil, nil, View{Period: "nonsense", Mode: "sideways"})

	assert.Equal(t, "Q1-2024", e.Period().Label())
	assert.Equal(t, domain.ViewQuarter, e.Mode())
}
