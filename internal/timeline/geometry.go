package timeline

import "time"

// minBarWidthPct keeps very short projects visible on the board.
const minBarWidthPct = 2.0

// BarPosition is a bar's normalised horizontal placement within a lane,
// both values in percent of the lane width.
type BarPosition struct {
	Left  float64
	Width float64
}

// Position maps a date range onto the span. Returns false for zero dates
// or ranges with no overlap at all; partially overlapping ranges are
// clamped to the span first.
func Position(start, end time.Time, span Span) (BarPosition, bool) {
	if start.IsZero() || end.IsZero() {
		return BarPosition{}, false
	}
	if end.Before(span.Start) || start.After(span.End) {
		return BarPosition{}, false
	}

	if start.Before(span.Start) {
		start = span.Start
	}
	if end.After(span.End) {
		end = span.End
	}

	total := float64(span.Duration())
	left := float64(start.Sub(span.Start)) / total * 100
	width := float64(end.Sub(start)) / total * 100
	if width < minBarWidthPct {
		width = minBarWidthPct
	}

	return BarPosition{
		Left:  clampPct(left),
		Width: clampPct(width),
	}, true
}

// DateAt is the inverse mapping: a horizontal pixel offset within a lane
// of laneWidth pixels back to a date on the span. Offsets outside the lane
// clamp to the span edges.
func DateAt(offset, laneWidth float64, span Span) time.Time {
	if laneWidth <= 0 {
		return span.Start
	}
	ratio := offset / laneWidth
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return span.Start.Add(time.Duration(ratio * float64(span.Duration())))
}

// deltaDuration converts a horizontal pixel delta into time at the span's
// current scale.
func deltaDuration(deltaPx, laneWidth float64, span Span) time.Duration {
	if laneWidth <= 0 {
		return 0
	}
	return time.Duration(deltaPx / laneWidth * float64(span.Duration()))
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
