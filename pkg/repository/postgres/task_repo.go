package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/renoplan/renoplan/pkg/task"
)

// TaskRepository stores tasks and subtasks. Ownership is always checked
// through the enclosing project.
type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, ownerID int64, t task.Task) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var one int
	if err := tx.QueryRow(ctx, `SELECT 1 FROM projects WHERE id = $1 AND owner_id = $2`, t.ProjectID, ownerID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.ErrProjectNotFound
		}
		return err
	}
	if t.ParentID != nil {
		var parentProject uuid.UUID
		var grandparent *uuid.UUID
		err := tx.QueryRow(ctx, `SELECT project_id, parent_id FROM tasks WHERE id = $1`, *t.ParentID).Scan(&parentProject, &grandparent)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return task.ErrParentNotFound
			}
			return err
		}
		if parentProject != t.ProjectID {
			return task.ErrParentNotFound
		}
		if grandparent != nil {
			return task.ErrNestedSubtask
		}
	}
	_, err = tx.Exec(ctx, `
INSERT INTO tasks (id, project_id, parent_id, title, room, status, priority, due_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, t.ID, t.ProjectID, t.ParentID, t.Title, t.Room, string(t.Status), t.Priority, t.DueDate, t.CreatedAt)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *TaskRepository) GetByID(ctx context.Context, ownerID int64, id uuid.UUID) (task.Task, error) {
	row := r.pool.QueryRow(ctx, `
SELECT t.id, t.project_id, t.parent_id, t.title, t.room, t.status, t.priority, t.due_date, t.created_at
FROM tasks t
JOIN projects p ON p.id = t.project_id
WHERE t.id = $1 AND p.owner_id = $2
`, id, ownerID)
	return scanTask(row)
}

func (r *TaskRepository) ListByProject(ctx context.Context, ownerID int64, projectID uuid.UUID) ([]task.Task, error) {
	var one int
	if err := r.pool.QueryRow(ctx, `SELECT 1 FROM projects WHERE id = $1 AND owner_id = $2`, projectID, ownerID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, task.ErrProjectNotFound
		}
		return nil, err
	}
	// Flat list, top-level tasks first (priority desc, oldest first),
	// then subtasks in creation order; clients nest by parent id.
	rows, err := r.pool.Query(ctx, `
SELECT id, project_id, parent_id, title, room, status, priority, due_date, created_at
FROM tasks
WHERE project_id = $1
ORDER BY (parent_id IS NOT NULL), priority DESC, created_at
`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

func (r *TaskRepository) Update(ctx context.Context, ownerID int64, id uuid.UUID, u task.Update) (task.Task, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE tasks t SET
	title = COALESCE($3, t.title),
	room = COALESCE($4, t.room),
	status = COALESCE($5, t.status),
	priority = COALESCE($6, t.priority),
	due_date = CASE WHEN $7 THEN NULL ELSE COALESCE($8, t.due_date) END
FROM projects p
WHERE t.id = $1 AND t.project_id = p.id AND p.owner_id = $2
RETURNING t.id, t.project_id, t.parent_id, t.title, t.room, t.status, t.priority, t.due_date, t.created_at
`, id, ownerID, u.Title, u.Room, taskStatusArg(u.Status), u.Priority, u.ClearDueDate, u.DueDate)
	return scanTask(row)
}

// Delete removes a task together with its subtasks in one transaction.
func (r *TaskRepository) Delete(ctx context.Context, ownerID int64, id uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var one int
	err = tx.QueryRow(ctx, `
SELECT 1 FROM tasks t JOIN projects p ON p.id = t.project_id
WHERE t.id = $1 AND p.owner_id = $2
`, id, ownerID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.ErrNotFound
		}
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM tasks WHERE parent_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	var status string
	var due *time.Time
	var created time.Time
	if err := row.Scan(&t.ID, &t.ProjectID, &t.ParentID, &t.Title, &t.Room, &status, &t.Priority, &due, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrNotFound
		}
		return task.Task{}, err
	}
	t.Status = task.Status(status)
	if due != nil {
		utc := due.UTC()
		t.DueDate = &utc
	}
	t.CreatedAt = created.UTC()
	return t, nil
}

func taskStatusArg(s *task.Status) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}
