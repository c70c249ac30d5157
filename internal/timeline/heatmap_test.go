package timeline

import (
	"testing"

	"github.com/lszabadkai/quarterback/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekLoad_SpreadsEstimateOverDuration(t *testing.T) {
	weeks, _ := GenerateWeeks(Period{Quarter: 1, Year: 2024}, domain.ViewQuarter, noon)

	p := scheduledProject("p1", "dev") // Feb 10 - Feb 20, 11 days
	p.EstimateDays = 10

	// weeks[6] covers Feb 12 - Feb 18, fully inside the project.
	load := WeekLoad(weeks[6], []domain.Project{p})
	assert.InDelta(t, 10.0/11*7, load, 0.05)

	// weeks[5] covers Feb 5 - Feb 11: two overlapping days.
	load = WeekLoad(weeks[5], []domain.Project{p})
	assert.InDelta(t, 10.0/11*2, load, 0.05)

	// No overlap at all.
	assert.Equal(t, 0.0, WeekLoad(weeks[0], []domain.Project{p}))
}

func TestWeekLoad_IgnoresUnestimatedAndUnassigned(t *testing.T) {
	weeks, _ := GenerateWeeks(Period{Quarter: 1, Year: 2024}, domain.ViewQuarter, noon)

	noEstimate := scheduledProject("p1", "dev")
	noAssignees := scheduledProject("p2", "dev")
	noAssignees.Assignees = nil
	noAssignees.EstimateDays = 5
	unscheduled := domain.Project{ID: "p3", Assignees: []string{"dev"}, EstimateDays: 5}

	load := WeekLoad(weeks[6], []domain.Project{noEstimate, noAssignees, unscheduled})
	assert.Equal(t, 0.0, load)
}

func TestHeatmap_ClassifiesUtilization(t *testing.T) {
	weeks, _ := GenerateWeeks(Period{Quarter: 1, Year: 2024}, domain.ViewQuarter, noon)

	// 60 man-days compressed into one five-day week of a one-lane team.
	p := domain.Project{
		ID:           "p1",
		Assignees:    []string{"dev"},
		StartDate:    day(2, 5),
		EndDate:      day(2, 9),
		EstimateDays: 60,
	}
	heat := Heatmap(weeks, []domain.Project{p}, 1)
	require.Len(t, heat, len(weeks))

	assert.Equal(t, 60.0, heat[5].Load)
	assert.InDelta(t, 1200.0, heat[5].Utilization, 0.1)
	assert.Equal(t, HeatOver, heat[5].Level)
	assert.Equal(t, HeatLow, heat[0].Level)
}

func TestHeatmap_ZeroLanesIsAllLow(t *testing.T) {
	weeks, _ := GenerateWeeks(Period{Quarter: 1, Year: 2024}, domain.ViewQuarter, noon)
	p := scheduledProject("p1", "dev")
	p.EstimateDays = 40

	for _, h := range Heatmap(weeks, []domain.Project{p}, 0) {
		assert.Equal(t, 0.0, h.Utilization)
		assert.Equal(t, HeatLow, h.Level)
	}
}

func TestHeatLevel_Thresholds(t *testing.T) {
	assert.Equal(t, HeatLow, heatLevel(60))
	assert.Equal(t, HeatMedium, heatLevel(61))
	assert.Equal(t, HeatMedium, heatLevel(85))
	assert.Equal(t, HeatHigh, heatLevel(86))
	assert.Equal(t, HeatHigh, heatLevel(100))
	assert.Equal(t, HeatOver, heatLevel(101))
}
