package timeline

import (
	"time"

	"github.com/lszabadkai/quarterback/internal/domain"
)

// SnapTolerance is the half-day window within which an endpoint pulls
// toward an anchor.
const SnapTolerance = 12 * time.Hour

// MinDuration is the shortest range any gesture may produce.
const MinDuration = Day

// SnapMode selects the endpoint policy for one gesture kind.
type SnapMode int

const (
	SnapMove SnapMode = iota
	SnapResizeStart
	SnapResizeEnd
)

// Resolver finds the nearest interesting anchor for a candidate date.
// Built fresh per gesture: the project list may have changed since the
// last one.
type Resolver struct {
	span     Span
	projects []domain.Project
}

// NewResolver captures the current span and project list as the anchor
// universe for one gesture.
func NewResolver(span Span, projects []domain.Project) *Resolver {
	return &Resolver{span: span, projects: projects}
}

// Snap adjusts a candidate range toward nearby anchors. excludeID removes
// the dragged project's own edges from the anchor set; laneID, when
// non-empty, keeps only projects assigned to that lane (span boundaries
// always apply).
func (r *Resolver) Snap(start, end time.Time, mode SnapMode, excludeID, laneID string) (time.Time, time.Time) {
	if start.IsZero() || end.IsZero() {
		return start, end
	}

	anchors := r.anchors(excludeID, laneID)
	duration := end.Sub(start)
	if duration < MinDuration {
		duration = MinDuration
	}

	switch mode {
	case SnapMove:
		deltaStart, okStart := nearestDelta(start, anchors)
		deltaEnd, okEnd := nearestDelta(end, anchors)
		var shift time.Duration
		switch {
		case okStart && okEnd:
			shift = deltaStart
			if absDuration(deltaEnd) < absDuration(deltaStart) {
				shift = deltaEnd
			}
		case okStart:
			shift = deltaStart
		case okEnd:
			shift = deltaEnd
		}
		start = start.Add(shift)

		// Re-quantize the start and rebuild the end from whole-day
		// duration so repeated fractional snaps cannot drift the bar.
		start = QuantizeDay(start)
		days := int(float64(duration)/float64(Day) + 0.5)
		if days < 1 {
			days = 1
		}
		end = start.Add(time.Duration(days) * Day)

	case SnapResizeStart:
		if delta, ok := nearestDelta(start, anchors); ok {
			start = start.Add(delta)
		}
		start = QuantizeDay(start)
		end = QuantizeDay(end)
		if !end.After(start) {
			end = start.Add(Day)
		}

	case SnapResizeEnd:
		if delta, ok := nearestDelta(end, anchors); ok {
			end = end.Add(delta)
		}
		start = QuantizeDay(start)
		end = QuantizeDay(end)
		if !end.After(start) {
			end = start.Add(Day)
		}
	}

	return start, end
}

// anchors collects the span boundaries plus every other project's start
// and end dates, lane-filtered when laneID is set.
func (r *Resolver) anchors(excludeID, laneID string) []time.Time {
	targets := []time.Time{
		QuantizeDay(r.span.Start),
		QuantizeDay(r.span.End),
	}
	for i := range r.projects {
		p := &r.projects[i]
		if p.ID == excludeID || !p.Scheduled() {
			continue
		}
		if laneID != "" && !p.HasAssignee(laneID) {
			continue
		}
		targets = append(targets, p.StartDate, p.EndDate)
	}
	return targets
}

// nearestDelta returns the smallest-magnitude adjustment that lands t on
// an anchor within tolerance.
func nearestDelta(t time.Time, anchors []time.Time) (time.Duration, bool) {
	var best time.Duration
	found := false
	for _, a := range anchors {
		delta := a.Sub(t)
		if absDuration(delta) > SnapTolerance {
			continue
		}
		if !found || absDuration(delta) < absDuration(best) {
			best = delta
			found = true
		}
	}
	return best, found
}

// QuantizeDay rounds to midnight of the same day when the time-of-day
// offset is under twelve hours, otherwise rolls to the next midnight.
func QuantizeDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	midnight := DateOnly(t)
	if t.Sub(midnight) >= Day/2 {
		midnight = midnight.AddDate(0, 0, 1)
	}
	return midnight
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
