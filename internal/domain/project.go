package domain

import (
	"regexp"
	"strings"
	"time"
)

// Project is one time-bounded piece of work on the board. StartDate and
// EndDate are calendar dates at midnight UTC; both zero means the project
// sits in the backlog without a placement.
type Project struct {
	ID            string
	Name          string
	StartDate     time.Time
	EndDate       time.Time
	Assignees     []string
	Status        ProjectStatus
	Confidence    Confidence
	Type          string
	Description   string
	EstimateDays  float64 // man-day estimate; 0 = no estimate
	IceImpact     float64
	IceConfidence float64
	IceEffort     float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Scheduled reports whether the project has a usable placement on the
// timeline. Unparseable dates load as zero times and fail this check, which
// keeps bad rows off the board without surfacing an error.
func (p *Project) Scheduled() bool {
	return !p.StartDate.IsZero() && !p.EndDate.IsZero()
}

// HasAssignee reports whether personID is among the project's assignees.
func (p *Project) HasAssignee(personID string) bool {
	for _, id := range p.Assignees {
		if id == personID {
			return true
		}
	}
	return false
}

// DurationDays counts the project's calendar days, inclusive of both ends.
func (p *Project) DurationDays() int {
	if !p.Scheduled() || p.EndDate.Before(p.StartDate) {
		return 0
	}
	return int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
}

// IceScore derives impact x confidence / effort. Returns false when any
// component is unset or effort is zero.
func (p *Project) IceScore() (float64, bool) {
	if p.IceImpact <= 0 || p.IceConfidence <= 0 || p.IceEffort <= 0 {
		return 0, false
	}
	return p.IceImpact * p.IceConfidence / p.IceEffort, true
}

// ClampIce bounds an ICE component to the 1-10 scale.
func ClampIce(v float64) float64 {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// ThemeSlug normalises the project type into a display theme key,
// defaulting to "feature".
func (p *Project) ThemeSlug() string {
	raw := strings.ToLower(strings.TrimSpace(p.Type))
	slug := strings.Trim(nonSlugChars.ReplaceAllString(raw, "-"), "-")
	if slug == "" {
		return "feature"
	}
	return slug
}
