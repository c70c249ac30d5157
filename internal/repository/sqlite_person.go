package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lszabadkai/quarterback/internal/domain"
)

// SQLitePersonRepo implements PersonRepo using a SQLite database. Regions
// and roles live here too: they only exist to describe people.
type SQLitePersonRepo struct {
	db *sql.DB
}

// NewSQLitePersonRepo creates a new SQLitePersonRepo.
func NewSQLitePersonRepo(db *sql.DB) *SQLitePersonRepo {
	return &SQLitePersonRepo{db: db}
}

func (r *SQLitePersonRepo) Create(ctx context.Context, p *domain.Person) error {
	query := `INSERT INTO people (id, name, avatar, color, region_id, role_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Avatar, p.Color,
		nullableString(p.RegionID), nullableString(p.RoleID),
		p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting person: %w", err)
	}
	return nil
}

func (r *SQLitePersonRepo) GetByID(ctx context.Context, id string) (*domain.Person, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, avatar, color, region_id, role_id, created_at FROM people WHERE id = ?`, id)
	p, err := scanPerson(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("person not found")
	}
	return p, err
}

func (r *SQLitePersonRepo) List(ctx context.Context) ([]*domain.Person, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, avatar, color, region_id, role_id, created_at FROM people ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}
	defer rows.Close()

	var people []*domain.Person
	for rows.Next() {
		p, err := scanPerson(rows.Scan)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating people: %w", err)
	}
	return people, nil
}

func (r *SQLitePersonRepo) Update(ctx context.Context, p *domain.Person) error {
	query := `UPDATE people SET name = ?, avatar = ?, color = ?, region_id = ?, role_id = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.Avatar, p.Color,
		nullableString(p.RegionID), nullableString(p.RoleID),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating person: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("person not found")
	}
	return nil
}

func (r *SQLitePersonRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM people WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting person: %w", err)
	}
	return nil
}

func (r *SQLitePersonRepo) CreateRegion(ctx context.Context, reg *domain.Region) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO regions (id, name, pto_days, holidays) VALUES (?, ?, ?, ?)`,
		reg.ID, reg.Name, reg.PTODays, reg.Holidays)
	if err != nil {
		return fmt.Errorf("inserting region: %w", err)
	}
	return nil
}

func (r *SQLitePersonRepo) ListRegions(ctx context.Context) ([]*domain.Region, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, pto_days, holidays FROM regions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing regions: %w", err)
	}
	defer rows.Close()

	var regions []*domain.Region
	for rows.Next() {
		var reg domain.Region
		if err := rows.Scan(&reg.ID, &reg.Name, &reg.PTODays, &reg.Holidays); err != nil {
			return nil, fmt.Errorf("scanning region: %w", err)
		}
		regions = append(regions, &reg)
	}
	return regions, rows.Err()
}

func (r *SQLitePersonRepo) CreateRole(ctx context.Context, role *domain.Role) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO roles (id, name, focus_pct) VALUES (?, ?, ?)`,
		role.ID, role.Name, role.FocusPct)
	if err != nil {
		return fmt.Errorf("inserting role: %w", err)
	}
	return nil
}

func (r *SQLitePersonRepo) ListRoles(ctx context.Context) ([]*domain.Role, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, focus_pct FROM roles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}
	defer rows.Close()

	var roles []*domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.FocusPct); err != nil {
			return nil, fmt.Errorf("scanning role: %w", err)
		}
		roles = append(roles, &role)
	}
	return roles, rows.Err()
}

func scanPerson(scan func(...interface{}) error) (*domain.Person, error) {
	var p domain.Person
	var regionID, roleID sql.NullString
	var createdAtStr string

	err := scan(&p.ID, &p.Name, &p.Avatar, &p.Color, &regionID, &roleID, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning person: %w", err)
	}

	p.RegionID = regionID.String
	p.RoleID = roleID.String

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return &p, nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
