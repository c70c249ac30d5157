package repository

import (
	"context"

	"github.com/lszabadkai/quarterback/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	ListScheduled(ctx context.Context) ([]*domain.Project, error)
	ListBacklog(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type PersonRepo interface {
	Create(ctx context.Context, p *domain.Person) error
	GetByID(ctx context.Context, id string) (*domain.Person, error)
	List(ctx context.Context) ([]*domain.Person, error)
	Update(ctx context.Context, p *domain.Person) error
	Delete(ctx context.Context, id string) error

	CreateRegion(ctx context.Context, r *domain.Region) error
	ListRegions(ctx context.Context) ([]*domain.Region, error)
	CreateRole(ctx context.Context, r *domain.Role) error
	ListRoles(ctx context.Context) ([]*domain.Role, error)
}

type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	All(ctx context.Context) (map[string]string, error)
}
