package timeline

import (
	"math"
	"time"

	"github.com/lszabadkai/quarterback/internal/domain"
)

// FullTimeDaysPerWeek is the working-day capacity one lane contributes to
// a week bucket.
const FullTimeDaysPerWeek = 5

type HeatLevel string

const (
	HeatLow    HeatLevel = "low"
	HeatMedium HeatLevel = "medium"
	HeatHigh   HeatLevel = "high"
	HeatOver   HeatLevel = "over"
)

// WeekHeat is the capacity classification of one week bucket.
type WeekHeat struct {
	Load        float64 // summed man-days landing in the bucket
	Utilization float64 // percent of the team's weekly capacity
	Level       HeatLevel
}

// Heatmap aggregates the fractional workload of all in-progress projects
// into a per-bucket utilization ratio.
func Heatmap(weeks []WeekBucket, projects []domain.Project, laneCount int) []WeekHeat {
	capacity := float64(laneCount * FullTimeDaysPerWeek)
	heat := make([]WeekHeat, len(weeks))
	for i, w := range weeks {
		load := WeekLoad(w, projects)
		util := 0.0
		if capacity > 0 {
			util = load / capacity * 100
		}
		heat[i] = WeekHeat{Load: load, Utilization: util, Level: heatLevel(util)}
	}
	return heat
}

// WeekLoad sums each project's estimate spread evenly over its own
// duration, counted for the days overlapping the bucket (inclusive).
// Projects without an estimate or without assignees contribute nothing.
func WeekLoad(week WeekBucket, projects []domain.Project) float64 {
	var total float64
	for i := range projects {
		p := &projects[i]
		if !p.Scheduled() || len(p.Assignees) == 0 || p.EstimateDays <= 0 {
			continue
		}
		if p.EndDate.Before(week.Start) || p.StartDate.After(week.End) {
			continue
		}

		overlapStart := maxTime(p.StartDate, week.Start)
		overlapEnd := minTime(p.EndDate, week.End)
		overlapDays := ceilDays(overlapEnd.Sub(overlapStart)) + 1
		durationDays := ceilDays(p.EndDate.Sub(p.StartDate)) + 1
		if durationDays <= 0 {
			continue
		}
		total += p.EstimateDays / float64(durationDays) * float64(overlapDays)
	}
	return math.Round(total*10) / 10
}

func heatLevel(utilPct float64) HeatLevel {
	switch {
	case utilPct > 100:
		return HeatOver
	case utilPct > 85:
		return HeatHigh
	case utilPct > 60:
		return HeatMedium
	default:
		return HeatLow
	}
}

func ceilDays(d time.Duration) int {
	return int(math.Ceil(float64(d) / float64(Day)))
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
