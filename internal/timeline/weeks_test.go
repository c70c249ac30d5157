package timeline

import (
	"testing"
	"time"

	"github.com/lszabadkai/quarterback/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noon = time.Date(2024, 2, 14, 12, 0, 0, 0, time.UTC)

func TestGenerateWeeks_FullQuarter(t *testing.T) {
	p := Period{Quarter: 1, Year: 2024}
	weeks, span := GenerateWeeks(p, domain.ViewQuarter, noon)

	require.Len(t, weeks, 13)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), weeks[0].Start)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), weeks[12].End)
	assert.Equal(t, weeks[0].Start, span.Start)
	assert.Equal(t, weeks[12].End, span.End)

	// Chronological, contiguous 7-day strides.
	for i, w := range weeks {
		assert.Equal(t, i, w.Index)
		if i > 0 {
			assert.Equal(t, weeks[i-1].Start.AddDate(0, 0, 7), w.Start)
			assert.True(t, w.Start.After(weeks[i-1].End))
		}
	}
}

func TestGenerateWeeks_IsCurrentMarksExactlyTodayBucket(t *testing.T) {
	weeks, _ := GenerateWeeks(Period{Quarter: 1, Year: 2024}, domain.ViewQuarter, noon)
	current := 0
	for _, w := range weeks {
		if w.IsCurrent {
			current++
			assert.True(t, !noon.Before(w.Start) && !DateOnly(noon).After(w.End))
		}
	}
	assert.Equal(t, 1, current)

	// Today outside the quarter: nothing is current.
	weeks, _ = GenerateWeeks(Period{Quarter: 1, Year: 2024}, domain.ViewQuarter,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	for _, w := range weeks {
		assert.False(t, w.IsCurrent)
	}
}

func TestGenerateWeeks_TwoWeeks(t *testing.T) {
	weeks, span := GenerateWeeks(Period{Quarter: 1, Year: 2024}, domain.ViewTwoWeeks, noon)
	require.Len(t, weeks, 2)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), span.Start)
	assert.Equal(t, time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), span.End)
}

func TestGenerateWeeks_SixWeeks(t *testing.T) {
	weeks, span := GenerateWeeks(Period{Quarter: 1, Year: 2024}, domain.ViewSixWeeks, noon)
	require.Len(t, weeks, 6)
	assert.Equal(t, time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC), span.End)
}

func TestGenerateWeeks_MonthAnchorsOnToday(t *testing.T) {
	// Today falls inside the quarter, so the sub-range is February.
	weeks, span := GenerateWeeks(Period{Quarter: 1, Year: 2024}, domain.ViewMonth, noon)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), span.Start)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), span.End)
	// 29 days -> 5 buckets, last one short.
	require.Len(t, weeks, 5)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), weeks[4].End)
	assert.True(t, weeks[4].End.Sub(weeks[4].Start) < 6*Day)
}

func TestGenerateWeeks_MonthAnchorsOnQuarterStartWhenTodayOutside(t *testing.T) {
	today := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	_, span := GenerateWeeks(Period{Quarter: 1, Year: 2024}, domain.ViewMonth, today)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), span.Start)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), span.End)
}

func TestGenerateWeeks_LastBucketClamped(t *testing.T) {
	// Q4-2024 spans Oct 1 - Dec 31: 92 days, one more than 13 full weeks.
	// The walk stops at the week limit and the span ends with the last bucket.
	weeks, span := GenerateWeeks(Period{Quarter: 4, Year: 2024}, domain.ViewQuarter, noon)
	require.Len(t, weeks, 13)
	assert.Equal(t, time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC), weeks[12].End)
	assert.Equal(t, weeks[12].End, span.End)
}

func TestSpanDuration_FloorsAtOneDay(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := Span{Start: d, End: d}
	assert.Equal(t, Day, s.Duration())
}
