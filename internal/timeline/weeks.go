package timeline

import (
	"time"

	"github.com/lszabadkai/quarterback/internal/domain"
)

// Day is the timeline's base unit; all dates are midnight UTC.
const Day = 24 * time.Hour

const maxQuarterWeeks = 13

// WeekBucket is one column of the board. End is inclusive; the final
// bucket of a span may cover fewer than seven days.
type WeekBucket struct {
	Index     int
	Start     time.Time
	End       time.Time
	IsCurrent bool
}

// Span is the full date range covered by the generated week buckets.
type Span struct {
	Start time.Time
	End   time.Time
}

// Duration never reports less than one day, keeping later divisions safe.
func (s Span) Duration() time.Duration {
	d := s.End.Sub(s.Start)
	if d < Day {
		return Day
	}
	return d
}

// GenerateWeeks turns a period and view mode into the ordered week buckets
// covering the narrowed date range, plus the resulting span. today drives
// both the month-view anchor and the IsCurrent flags.
func GenerateWeeks(p Period, mode domain.ViewMode, today time.Time) ([]WeekBucket, Span) {
	quarterStart := p.Start()
	quarterEnd := p.End()
	today = DateOnly(today)

	rangeStart := quarterStart
	rangeEnd := quarterEnd
	weekLimit := maxQuarterWeeks

	switch mode {
	case domain.ViewTwoWeeks, domain.ViewSixWeeks:
		weekLimit = 2
		if mode == domain.ViewSixWeeks {
			weekLimit = 6
		}
		rangeEnd = rangeStart.AddDate(0, 0, weekLimit*7-1)
		if rangeEnd.After(quarterEnd) {
			rangeEnd = quarterEnd
		}
	case domain.ViewMonth:
		weekLimit = 6 // enough to cover any month span
		anchor := quarterStart
		if !today.Before(quarterStart) && !today.After(quarterEnd) {
			anchor = today
		}
		rangeStart = time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
		rangeEnd = time.Date(anchor.Year(), anchor.Month()+1, 0, 0, 0, 0, 0, time.UTC)
		if rangeStart.Before(quarterStart) {
			rangeStart = quarterStart
		}
		if rangeEnd.After(quarterEnd) {
			rangeEnd = quarterEnd
		}
	}

	var weeks []WeekBucket
	cursor := rangeStart
	for i := 0; !cursor.After(rangeEnd) && i < weekLimit; i++ {
		end := cursor.AddDate(0, 0, 6)
		if end.After(rangeEnd) {
			end = rangeEnd
		}
		weeks = append(weeks, WeekBucket{
			Index:     i,
			Start:     cursor,
			End:       end,
			IsCurrent: containsDay(cursor, end, today),
		})
		cursor = cursor.AddDate(0, 0, 7)
	}

	// Degenerate narrowed range: emit a single bucket spanning it.
	if len(weeks) == 0 {
		weeks = append(weeks, WeekBucket{
			Index:     0,
			Start:     rangeStart,
			End:       rangeEnd,
			IsCurrent: containsDay(rangeStart, rangeEnd, today),
		})
	}

	span := Span{Start: weeks[0].Start, End: weeks[len(weeks)-1].End}
	return weeks, span
}

// DateOnly truncates t to midnight UTC.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func containsDay(start, end, day time.Time) bool {
	return !day.Before(start) && !day.After(end)
}
