package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/renoplan/renoplan/pkg/project"
)

// ProjectRepository stores renovation projects.
type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) Create(ctx context.Context, p project.Project) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO projects (id, owner_id, name, description, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`, p.ID, p.OwnerID, p.Name, p.Description, string(p.Status), p.CreatedAt)
	return err
}

func (r *ProjectRepository) GetByID(ctx context.Context, ownerID int64, id uuid.UUID) (project.Project, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, name, description, status, created_at
FROM projects WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	return scanProject(row)
}

func (r *ProjectRepository) List(ctx context.Context, ownerID int64, limit, offset int) ([]project.Project, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, name, description, status, created_at
FROM projects WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, ownerID int64, id uuid.UUID, u project.Update) (project.Project, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE projects SET
	name = COALESCE($3, name),
	description = COALESCE($4, description),
	status = COALESCE($5, status)
WHERE id = $1 AND owner_id = $2
RETURNING id, owner_id, name, description, status, created_at
`, id, ownerID, u.Name, u.Description, statusArg(u.Status))
	return scanProject(row)
}

// Delete removes a project and all dependent rows in dependency order inside
// one transaction: subtasks before their parents, tasks and budget items
// before the project row. Pinned boards are kept but unpinned.
func (r *ProjectRepository) Delete(ctx context.Context, ownerID int64, id uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Ensure ownership
	var one int
	if err := tx.QueryRow(ctx, `SELECT 1 FROM projects WHERE id = $1 AND owner_id = $2`, id, ownerID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.ErrNotFound
		}
		return err
	}
	steps := []string{
		`DELETE FROM tasks WHERE project_id = $1 AND parent_id IS NOT NULL`,
		`DELETE FROM tasks WHERE project_id = $1`,
		`DELETE FROM budget_items WHERE project_id = $1`,
		`UPDATE inspiration_boards SET project_id = NULL WHERE project_id = $1`,
		`DELETE FROM projects WHERE id = $1`,
	}
	for _, q := range steps {
		if _, err := tx.Exec(ctx, q, id); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	var status string
	var created time.Time
	if err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &status, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrNotFound
		}
		return project.Project{}, err
	}
	p.Status = project.Status(status)
	p.CreatedAt = created.UTC()
	return p, nil
}

func statusArg(s *project.Status) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}
