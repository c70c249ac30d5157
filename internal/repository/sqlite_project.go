package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lszabadkai/quarterback/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db *sql.DB
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(db *sql.DB) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

const projectColumns = `id, name, description, start_date, end_date, status, confidence, type,
	estimate_days, ice_impact, ice_confidence, ice_effort, created_at, updated_at`

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		dateToValue(p.StartDate),
		dateToValue(p.EndDate),
		string(p.Status),
		string(p.Confidence),
		p.Type,
		p.EstimateDays,
		p.IceImpact,
		p.IceConfidence,
		p.IceEffort,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}

	if err := replaceAssignees(ctx, tx, p.ID, p.Assignees); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing project insert: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanProject(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project not found")
		}
		return nil, err
	}
	if err := r.loadAssignees(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at`)
}

// ListScheduled returns projects with both dates set, ordered by start.
func (r *SQLiteProjectRepo) ListScheduled(ctx context.Context) ([]*domain.Project, error) {
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects
		WHERE start_date IS NOT NULL AND end_date IS NOT NULL
		ORDER BY start_date, created_at`)
}

// ListBacklog returns projects with no dates, ordered by ICE score
// (impact * confidence / effort) descending.
func (r *SQLiteProjectRepo) ListBacklog(ctx context.Context) ([]*domain.Project, error) {
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects
		WHERE start_date IS NULL OR end_date IS NULL
		ORDER BY CASE WHEN ice_effort > 0
			THEN ice_impact * ice_confidence / ice_effort
			ELSE 0 END DESC, created_at`)
}

func (r *SQLiteProjectRepo) list(ctx context.Context, query string) ([]*domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	for _, p := range projects {
		if err := r.loadAssignees(ctx, p); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE projects SET name = ?, description = ?, start_date = ?, end_date = ?,
		status = ?, confidence = ?, type = ?, estimate_days = ?,
		ice_impact = ?, ice_confidence = ?, ice_effort = ?, updated_at = ?
		WHERE id = ?`
	res, err := tx.ExecContext(ctx, query,
		p.Name,
		p.Description,
		dateToValue(p.StartDate),
		dateToValue(p.EndDate),
		string(p.Status),
		string(p.Confidence),
		p.Type,
		p.EstimateDays,
		p.IceImpact,
		p.IceConfidence,
		p.IceEffort,
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("project not found")
	}

	if err := replaceAssignees(ctx, tx, p.ID, p.Assignees); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing project update: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) loadAssignees(ctx context.Context, p *domain.Project) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT person_id FROM project_assignees WHERE project_id = ? ORDER BY order_index`, p.ID)
	if err != nil {
		return fmt.Errorf("loading assignees: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scanning assignee: %w", err)
		}
		p.Assignees = append(p.Assignees, id)
	}
	return rows.Err()
}

func replaceAssignees(ctx context.Context, tx *sql.Tx, projectID string, assignees []string) error {
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM project_assignees WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("clearing assignees: %w", err)
	}
	for i, personID := range assignees {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO project_assignees (project_id, person_id, order_index) VALUES (?, ?, ?)`,
			projectID, personID, i); err != nil {
			return fmt.Errorf("inserting assignee: %w", err)
		}
	}
	return nil
}

// scanProject scans one project row; scan abstracts over *sql.Row and *sql.Rows.
func scanProject(scan func(...interface{}) error) (*domain.Project, error) {
	var p domain.Project
	var startDateStr, endDateStr sql.NullString
	var statusStr, confidenceStr, createdAtStr, updatedAtStr string

	err := scan(
		&p.ID, &p.Name, &p.Description,
		&startDateStr, &endDateStr,
		&statusStr, &confidenceStr, &p.Type,
		&p.EstimateDays, &p.IceImpact, &p.IceConfidence, &p.IceEffort,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.Status = domain.ProjectStatus(statusStr)
	p.Confidence = domain.Confidence(confidenceStr)
	p.StartDate = parseNullableDate(startDateStr)
	p.EndDate = parseNullableDate(endDateStr)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &p, nil
}
