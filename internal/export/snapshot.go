package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/lszabadkai/quarterback/internal/domain"
	"github.com/lszabadkai/quarterback/internal/repository"
)

// SnapshotVersion tags exported files so a future format change can
// still read old ones.
const SnapshotVersion = 1

// Snapshot is the full board state as one JSON document.
type Snapshot struct {
	Version    int               `json:"version"`
	ExportedAt time.Time         `json:"exported_at"`
	Projects   []*domain.Project `json:"projects"`
	People     []*domain.Person  `json:"people"`
	Regions    []*domain.Region  `json:"regions"`
	Roles      []*domain.Role    `json:"roles"`
	Settings   map[string]string `json:"settings"`
}

// Snapshotter reads and writes whole-board snapshots through the
// repository layer.
type Snapshotter struct {
	projects repository.ProjectRepo
	people   repository.PersonRepo
	settings repository.SettingsRepo
}

func NewSnapshotter(projects repository.ProjectRepo, people repository.PersonRepo,
	settings repository.SettingsRepo) *Snapshotter {
	return &Snapshotter{projects: projects, people: people, settings: settings}
}

// Export collects the whole database into w as indented JSON.
func (s *Snapshotter) Export(ctx context.Context, w io.Writer) error {
	snap := Snapshot{Version: SnapshotVersion, ExportedAt: time.Now().UTC()}

	var err error
	if snap.Projects, err = s.projects.List(ctx); err != nil {
		return fmt.Errorf("collecting projects: %w", err)
	}
	if snap.People, err = s.people.List(ctx); err != nil {
		return fmt.Errorf("collecting people: %w", err)
	}
	if snap.Regions, err = s.people.ListRegions(ctx); err != nil {
		return fmt.Errorf("collecting regions: %w", err)
	}
	if snap.Roles, err = s.people.ListRoles(ctx); err != nil {
		return fmt.Errorf("collecting roles: %w", err)
	}
	if snap.Settings, err = s.settings.All(ctx); err != nil {
		return fmt.Errorf("collecting settings: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// Import loads a snapshot into the database. Rows are inserted in
// dependency order (regions and roles before people, people before
// project assignees); an existing row with the same ID fails the import.
func (s *Snapshotter) Import(ctx context.Context, r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}

	for _, region := range snap.Regions {
		if err := s.people.CreateRegion(ctx, region); err != nil {
			return nil, fmt.Errorf("importing region %s: %w", region.Name, err)
		}
	}
	for _, role := range snap.Roles {
		if err := s.people.CreateRole(ctx, role); err != nil {
			return nil, fmt.Errorf("importing role %s: %w", role.Name, err)
		}
	}
	for _, person := range snap.People {
		if err := s.people.Create(ctx, person); err != nil {
			return nil, fmt.Errorf("importing person %s: %w", person.Name, err)
		}
	}
	for _, project := range snap.Projects {
		if err := s.projects.Create(ctx, project); err != nil {
			return nil, fmt.Errorf("importing project %s: %w", project.Name, err)
		}
	}
	for key, value := range snap.Settings {
		if err := s.settings.Set(ctx, key, value); err != nil {
			return nil, fmt.Errorf("importing setting %s: %w", key, err)
		}
	}
	return &snap, nil
}
