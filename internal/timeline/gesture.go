package timeline

import "time"

// dragThresholdPx is the dead zone a pointer must leave before an armed
// move or resize becomes a drag; an ordinary click never crosses it.
const dragThresholdPx = 5.0

type GestureKind int

const (
	GestureMove GestureKind = iota
	GestureResizeStart
	GestureResizeEnd
	GestureCreate
)

type GesturePhase int

const (
	PhaseArmed GesturePhase = iota
	PhaseDragging
	PhaseCommitted
	PhaseCancelled
)

// Hover describes what sits under the pointer, as resolved by the
// rendering surface on each move. Week is -1 outside any week cell.
type Hover struct {
	Lane    string
	Backlog bool
	Week    int
}

// Gesture holds the transient state of one pointer interaction, from
// press to release or cancellation. It is discarded afterwards; a bad
// gesture can never leak state into the next one.
type Gesture struct {
	kind  GestureKind
	phase GesturePhase

	projectID  string
	originLane string
	targetLane string

	startX, startY float64
	laneWidth      float64
	span           Span
	resolver       *Resolver
	weeks          []WeekBucket

	origStart, origEnd time.Time
	curStart, curEnd   time.Time

	moved       bool
	changed     bool
	overBacklog bool

	originWeek, hoverWeek int
}

func newDragGesture(kind GestureKind, projectID, lane string, x, y, laneWidth float64,
	start, end time.Time, span Span, resolver *Resolver) *Gesture {
	return &Gesture{
		kind:       kind,
		phase:      PhaseArmed,
		projectID:  projectID,
		originLane: lane,
		targetLane: lane,
		startX:     x,
		startY:     y,
		laneWidth:  laneWidth,
		span:       span,
		resolver:   resolver,
		origStart:  start,
		origEnd:    end,
		curStart:   start,
		curEnd:     end,
	}
}

func newCreateGesture(lane string, week int, weeks []WeekBucket, span Span) *Gesture {
	return &Gesture{
		kind:       GestureCreate,
		phase:      PhaseArmed,
		originLane: lane,
		targetLane: lane,
		span:       span,
		weeks:      weeks,
		originWeek: week,
		hoverWeek:  week,
		curStart:   weeks[week].Start,
		curEnd:     weeks[week].End,
	}
}

// Move advances the gesture for one pointer-move event.
func (g *Gesture) Move(x, y float64, hov Hover) {
	if g.phase != PhaseArmed && g.phase != PhaseDragging {
		return
	}
	if g.kind == GestureCreate {
		g.moveCreate(hov)
		return
	}
	if g.phase == PhaseArmed {
		if absFloat(x-g.startX) < dragThresholdPx && absFloat(y-g.startY) < dragThresholdPx {
			return
		}
		g.phase = PhaseDragging
	}
	g.moved = true

	delta := deltaDuration(x-g.startX, g.laneWidth, g.span)
	switch g.kind {
	case GestureMove:
		g.moveDrag(delta, hov)
	case GestureResizeStart, GestureResizeEnd:
		g.moveResize(delta)
	}
	g.changed = !g.curStart.Equal(g.origStart) || !g.curEnd.Equal(g.origEnd)
}

func (g *Gesture) moveDrag(delta time.Duration, hov Hover) {
	start := g.origStart.Add(delta)
	end := g.origEnd.Add(delta)
	start, end = clampMove(start, end, g.span)

	// Snap against the hovered lane's projects; the backlog dock snaps
	// against everything (no lane filter).
	laneFilter := ""
	if !hov.Backlog {
		laneFilter = hov.Lane
		if laneFilter == "" {
			laneFilter = g.targetLane
		}
	}
	start, end = g.resolver.Snap(start, end, SnapMove, g.projectID, laneFilter)
	start, end = clampMove(start, end, g.span)
	g.curStart, g.curEnd = start, end

	if hov.Backlog {
		// While over the dock the preview is forced back onto the
		// origin lane and any pending reassignment is dropped.
		g.overBacklog = true
		g.targetLane = g.originLane
		return
	}
	g.overBacklog = false
	if hov.Lane != "" {
		g.targetLane = hov.Lane
	} else {
		g.targetLane = g.originLane
	}
}

func (g *Gesture) moveResize(delta time.Duration) {
	start, end := g.origStart, g.origEnd
	mode := SnapResizeStart
	if g.kind == GestureResizeStart {
		start = clampResizeStart(g.origStart.Add(delta), end, g.span)
	} else {
		mode = SnapResizeEnd
		end = clampResizeEnd(start, g.origEnd.Add(delta), g.span)
	}
	start, end = g.resolver.Snap(start, end, mode, g.projectID, g.originLane)
	if g.kind == GestureResizeStart {
		start = clampResizeStart(start, end, g.span)
	} else {
		end = clampResizeEnd(start, end, g.span)
	}
	g.curStart, g.curEnd = start, end
}

func (g *Gesture) moveCreate(hov Hover) {
	if hov.Lane != g.originLane || hov.Week < 0 || hov.Week >= len(g.weeks) {
		return
	}
	g.phase = PhaseDragging
	g.moved = true
	g.hoverWeek = hov.Week

	// Order-independent: dragging left of the origin cell mirrors
	// dragging right.
	lo, hi := g.originWeek, g.hoverWeek
	if hi < lo {
		lo, hi = hi, lo
	}
	g.curStart = g.weeks[lo].Start
	g.curEnd = g.weeks[hi].End
}

// release resolves the gesture on pointer-up. The bool reports whether an
// intent should reach the host; a pure click (dead zone never exceeded)
// yields none and the press is handled as a selection/click instead.
func (g *Gesture) release() (intent, bool) {
	if g.phase == PhaseCommitted || g.phase == PhaseCancelled {
		return intent{}, false
	}

	if g.kind == GestureCreate {
		// A plain click on an empty cell still creates: the provisional
		// single-week range is a useful default.
		g.phase = PhaseCommitted
		return intent{create: &CreateDefaults{
			Start: g.curStart,
			End:   g.curEnd,
			Lane:  g.originLane,
		}}, true
	}

	if !g.moved {
		g.phase = PhaseCancelled
		return intent{}, false
	}
	g.phase = PhaseCommitted

	if g.kind == GestureMove && g.overBacklog {
		return intent{unscheduleID: g.projectID}, true
	}

	var reassign *Reassignment
	if g.kind == GestureMove && g.targetLane != "" && g.originLane != "" && g.targetLane != g.originLane {
		reassign = &Reassignment{From: g.originLane, To: g.targetLane}
	}
	if !g.changed && reassign == nil {
		return intent{}, false
	}

	upd := &timelineUpdate{projectID: g.projectID, reassign: reassign}
	if g.changed {
		s, e := g.curStart, g.curEnd
		upd.start, upd.end = &s, &e
	}
	return intent{update: upd}, true
}

// cancel aborts the gesture; the pre-gesture geometry stands.
func (g *Gesture) cancel() {
	if g.phase == PhaseArmed || g.phase == PhaseDragging {
		g.phase = PhaseCancelled
	}
}

func (g *Gesture) previewLane() string {
	if g.kind == GestureMove && !g.overBacklog {
		return g.targetLane
	}
	return g.originLane
}

// clampMove shifts the whole range rigidly back inside the span,
// preserving duration; the duration itself is bounded to [one day, span].
func clampMove(start, end time.Time, span Span) (time.Time, time.Time) {
	dur := end.Sub(start)
	if dur < MinDuration {
		dur = MinDuration
	}
	if spanDur := span.Duration(); dur > spanDur {
		dur = spanDur
	}
	if start.Before(span.Start) {
		start = span.Start
		end = start.Add(dur)
	}
	if end.After(span.End) {
		end = span.End
		start = end.Add(-dur)
	}
	if end.Sub(start) < MinDuration {
		end = start.Add(MinDuration)
	}
	return start, end
}

// clampResizeStart bounds the moving start: never before the span start,
// never closer than one day to the fixed end or the span end.
func clampResizeStart(candidate, fixedEnd time.Time, span Span) time.Time {
	min := minDurationFor(fixedEnd.Sub(span.Start))
	lo := span.Start
	hi := span.End.Add(-min)
	if byEnd := fixedEnd.Add(-min); byEnd.Before(hi) {
		hi = byEnd
	}
	if candidate.Before(lo) {
		return lo
	}
	if candidate.After(hi) {
		return hi
	}
	return candidate
}

// clampResizeEnd bounds the moving end symmetrically.
func clampResizeEnd(fixedStart, candidate time.Time, span Span) time.Time {
	effStart := fixedStart
	if effStart.Before(span.Start) {
		effStart = span.Start
	}
	min := minDurationFor(span.End.Sub(effStart))
	lo := effStart.Add(min)
	hi := span.End
	if candidate.Before(lo) {
		return lo
	}
	if candidate.After(hi) {
		return hi
	}
	return candidate
}

// minDurationFor shrinks the one-day floor when the available window is
// itself smaller than a day.
func minDurationFor(window time.Duration) time.Duration {
	if window <= 0 {
		return MinDuration
	}
	if window < MinDuration {
		return window
	}
	return MinDuration
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
