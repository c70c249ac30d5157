package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lszabadkai/quarterback/internal/domain"
	"github.com/lszabadkai/quarterback/internal/repository"
)

type teamService struct {
	people repository.PersonRepo
}

func NewTeamService(people repository.PersonRepo) TeamService {
	return &teamService{people: people}
}

func (s *teamService) AddPerson(ctx context.Context, p *domain.Person) error {
	if p.Name == "" {
		return fmt.Errorf("person name is required")
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Avatar == "" {
		p.Avatar = domain.Initials(p.Name)
	}
	p.CreatedAt = time.Now().UTC()
	return s.people.Create(ctx, p)
}

func (s *teamService) GetPerson(ctx context.Context, id string) (*domain.Person, error) {
	return s.people.GetByID(ctx, id)
}

func (s *teamService) ListPeople(ctx context.Context) ([]*domain.Person, error) {
	return s.people.List(ctx)
}

func (s *teamService) UpdatePerson(ctx context.Context, p *domain.Person) error {
	if p.Name == "" {
		return fmt.Errorf("person name is required")
	}
	return s.people.Update(ctx, p)
}

func (s *teamService) RemovePerson(ctx context.Context, id string) error {
	return s.people.Delete(ctx, id)
}

func (s *teamService) AddRegion(ctx context.Context, r *domain.Region) error {
	if r.Name == "" {
		return fmt.Errorf("region name is required")
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return s.people.CreateRegion(ctx, r)
}

func (s *teamService) ListRegions(ctx context.Context) ([]*domain.Region, error) {
	return s.people.ListRegions(ctx)
}

func (s *teamService) AddRole(ctx context.Context, r *domain.Role) error {
	if r.Name == "" {
		return fmt.Errorf("role name is required")
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.FocusPct <= 0 || r.FocusPct > 100 {
		return fmt.Errorf("focus percentage must be in (0, 100], got %d", r.FocusPct)
	}
	return s.people.CreateRole(ctx, r)
}

func (s *teamService) ListRoles(ctx context.Context) ([]*domain.Role, error) {
	return s.people.ListRoles(ctx)
}
