package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/lszabadkai/quarterback/internal/domain"
)

// Project options
type ProjectOption func(*domain.Project)

func WithDates(start, end time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.StartDate = start
		p.EndDate = end
	}
}

func WithAssignees(ids ...string) ProjectOption {
	return func(p *domain.Project) {
		p.Assignees = ids
	}
}

func WithEstimate(days float64) ProjectOption {
	return func(p *domain.Project) {
		p.EstimateDays = days
	}
}

func WithICE(impact, confidence, effort float64) ProjectOption {
	return func(p *domain.Project) {
		p.IceImpact = impact
		p.IceConfidence = confidence
		p.IceEffort = effort
	}
}

func WithStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

// NewTestProject returns an unscheduled planned project; options schedule
// and shape it.
func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:         uuid.New().String(),
		Name:       name,
		Status:     domain.StatusPlanned,
		Confidence: domain.ConfidenceMedium,
		Type:       "feature",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestPerson returns a person with no region or role.
func NewTestPerson(name string) *domain.Person {
	return &domain.Person{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}
