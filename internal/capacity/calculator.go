// Package capacity turns team settings and the roster into quarter
// budget numbers: how many engineer-days exist, how many are already
// spoken for, and how many remain for planned work.
package capacity

import (
	"math"

	"github.com/lszabadkai/quarterback/internal/domain"
)

// WorkDaysPerQuarter is the gross working-day budget of one full-time
// person over a quarter.
const WorkDaysPerQuarter = 90

// Settings are the team-level capacity knobs.
type Settings struct {
	Engineers       int
	PTODays         int
	HolidayDays     int
	AdhocReservePct float64
	BugReservePct   float64
}

// DefaultSettings mirrors a five-person team with standard leave and a
// 30% operational reserve.
func DefaultSettings() Settings {
	return Settings{
		Engineers:       5,
		PTODays:         13,
		HolidayDays:     5,
		AdhocReservePct: 10,
		BugReservePct:   20,
	}
}

// Budget is the quarter rollup derived from Settings.
type Budget struct {
	Theoretical float64 // engineers x 90 days
	TimeOff     float64 // (PTO + holidays) x engineers
	Reserves    float64 // (adhoc% + bug%) of theoretical
	Net         float64 // what is left to plan against
}

// ComputeBudget rolls Settings up into a quarter Budget.
func ComputeBudget(s Settings) Budget {
	theoretical := float64(s.Engineers) * WorkDaysPerQuarter
	timeOff := float64(s.PTODays+s.HolidayDays) * float64(s.Engineers)
	reserves := (s.AdhocReservePct + s.BugReservePct) / 100 * theoretical
	return Budget{
		Theoretical: theoretical,
		TimeOff:     timeOff,
		Reserves:    reserves,
		Net:         theoretical - timeOff - reserves,
	}
}

// MemberBreakdown is one person's share of the quarter.
type MemberBreakdown struct {
	PersonID  string
	Name      string
	Gross     float64 // 90 days scaled by role focus
	TimeOff   float64 // region PTO + holidays
	Available float64
	Committed float64 // summed estimates of assigned projects
}

// Utilization is Committed over Available as a percentage; an idle or
// fully booked-off member reads as zero.
func (m MemberBreakdown) Utilization() float64 {
	if m.Available <= 0 {
		return 0
	}
	return math.Round(m.Committed/m.Available*1000) / 10
}

// MemberBreakdowns computes each person's quarter numbers. Regions and
// roles are optional; a person without them gets the full 90 gross days
// and no time off. Committed days split a project's estimate evenly
// across its assignees.
func MemberBreakdowns(people []*domain.Person, regions []*domain.Region,
	roles []*domain.Role, projects []*domain.Project) []MemberBreakdown {

	regionByID := make(map[string]*domain.Region, len(regions))
	for _, r := range regions {
		regionByID[r.ID] = r
	}
	roleByID := make(map[string]*domain.Role, len(roles))
	for _, r := range roles {
		roleByID[r.ID] = r
	}

	committed := make(map[string]float64)
	for _, p := range projects {
		if p.EstimateDays <= 0 || len(p.Assignees) == 0 {
			continue
		}
		share := p.EstimateDays / float64(len(p.Assignees))
		for _, id := range p.Assignees {
			committed[id] += share
		}
	}

	out := make([]MemberBreakdown, 0, len(people))
	for _, person := range people {
		gross := float64(WorkDaysPerQuarter)
		if role, ok := roleByID[person.RoleID]; ok {
			gross = gross * float64(role.FocusPct) / 100
		}
		var timeOff float64
		if region, ok := regionByID[person.RegionID]; ok {
			timeOff = float64(region.PTODays + region.Holidays)
		}
		available := gross - timeOff
		if available < 0 {
			available = 0
		}
		out = append(out, MemberBreakdown{
			PersonID:  person.ID,
			Name:      person.Name,
			Gross:     gross,
			TimeOff:   timeOff,
			Available: available,
			Committed: math.Round(committed[person.ID]*10) / 10,
		})
	}
	return out
}

// TotalCommitted sums every scheduled project's estimate.
func TotalCommitted(projects []*domain.Project) float64 {
	var total float64
	for _, p := range projects {
		if p.Scheduled() && p.EstimateDays > 0 {
			total += p.EstimateDays
		}
	}
	return total
}
