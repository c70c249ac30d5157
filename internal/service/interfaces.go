package service

import (
	"context"
	"time"

	"github.com/lszabadkai/quarterback/internal/capacity"
	"github.com/lszabadkai/quarterback/internal/domain"
	"github.com/lszabadkai/quarterback/internal/timeline"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	ListScheduled(ctx context.Context) ([]*domain.Project, error)
	ListBacklog(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error

	// Board commits.
	ApplyTimeline(ctx context.Context, id string, start, end *time.Time, reassign *timeline.Reassignment) error
	Unschedule(ctx context.Context, id string) error
	PlaceFromBacklog(ctx context.Context, id string, start time.Time, lane string) error
}

type TeamService interface {
	AddPerson(ctx context.Context, p *domain.Person) error
	GetPerson(ctx context.Context, id string) (*domain.Person, error)
	ListPeople(ctx context.Context) ([]*domain.Person, error)
	UpdatePerson(ctx context.Context, p *domain.Person) error
	RemovePerson(ctx context.Context, id string) error

	AddRegion(ctx context.Context, r *domain.Region) error
	ListRegions(ctx context.Context) ([]*domain.Region, error)
	AddRole(ctx context.Context, r *domain.Role) error
	ListRoles(ctx context.Context) ([]*domain.Role, error)
}

type SettingsService interface {
	Capacity(ctx context.Context) (capacity.Settings, error)
	SetCapacity(ctx context.Context, s capacity.Settings) error
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
