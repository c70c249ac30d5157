package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lszabadkai/quarterback/internal/domain"
	"github.com/lszabadkai/quarterback/internal/repository"
	"github.com/lszabadkai/quarterback/internal/timeline"
)

type projectService struct {
	projects repository.ProjectRepo
	now      func() time.Time
}

func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects, now: time.Now}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := s.now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.StatusPlanned
	}
	if p.Confidence == "" {
		p.Confidence = domain.ConfidenceMedium
	}
	if !domain.ValidProjectStatuses[string(p.Status)] {
		return fmt.Errorf("invalid status %q", p.Status)
	}
	if !domain.ValidConfidences[string(p.Confidence)] {
		return fmt.Errorf("invalid confidence %q", p.Confidence)
	}
	clampIce(p)
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) ListScheduled(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.ListScheduled(ctx)
}

func (s *projectService) ListBacklog(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.ListBacklog(ctx)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if !domain.ValidProjectStatuses[string(p.Status)] {
		return fmt.Errorf("invalid status %q", p.Status)
	}
	clampIce(p)
	p.UpdatedAt = s.now().UTC()
	return s.projects.Update(ctx, p)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}

// ApplyTimeline commits a board gesture: either or both of the dates and
// an optional lane reassignment. Nil dates leave the stored ones alone.
func (s *projectService) ApplyTimeline(ctx context.Context, id string, start, end *time.Time, reassign *timeline.Reassignment) error {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if start != nil {
		p.StartDate = timeline.DateOnly(*start)
	}
	if end != nil {
		p.EndDate = timeline.DateOnly(*end)
	}
	if p.Scheduled() && p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("end date %s before start date %s",
			p.EndDate.Format("2006-01-02"), p.StartDate.Format("2006-01-02"))
	}

	if reassign != nil {
		swapped := false
		for i, lane := range p.Assignees {
			if lane == reassign.From {
				p.Assignees[i] = reassign.To
				swapped = true
				break
			}
		}
		if !swapped {
			p.Assignees = append(p.Assignees, reassign.To)
		}
		p.Assignees = dedupe(p.Assignees)
	}

	p.UpdatedAt = s.now().UTC()
	return s.projects.Update(ctx, p)
}

// Unschedule clears both dates, sending the project back to the backlog.
// Assignees are kept: the team association outlives the placement.
func (s *projectService) Unschedule(ctx context.Context, id string) error {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.StartDate = time.Time{}
	p.EndDate = time.Time{}
	p.UpdatedAt = s.now().UTC()
	return s.projects.Update(ctx, p)
}

// PlaceFromBacklog schedules a backlog project onto a lane with a
// one-week default duration starting at start.
func (s *projectService) PlaceFromBacklog(ctx context.Context, id string, start time.Time, lane string) error {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.Scheduled() {
		return fmt.Errorf("project %s is already scheduled", p.Name)
	}
	p.StartDate = timeline.DateOnly(start)
	p.EndDate = p.StartDate.AddDate(0, 0, 6)
	if lane != "" && !p.HasAssignee(lane) {
		p.Assignees = append(p.Assignees, lane)
	}
	p.UpdatedAt = s.now().UTC()
	return s.projects.Update(ctx, p)
}

// clampIce bounds set ICE components; unset (zero) components stay unset.
func clampIce(p *domain.Project) {
	if p.IceImpact != 0 {
		p.IceImpact = domain.ClampIce(p.IceImpact)
	}
	if p.IceConfidence != 0 {
		p.IceConfidence = domain.ClampIce(p.IceConfidence)
	}
	if p.IceEffort != 0 {
		p.IceEffort = domain.ClampIce(p.IceEffort)
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
