package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/renoplan/renoplan/pkg/budget"
)

// BudgetRepository stores budget lines per project.
type BudgetRepository struct {
	pool *pgxpool.Pool
}

func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

func (r *BudgetRepository) Create(ctx context.Context, ownerID int64, it budget.Item) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var one int
	if err := tx.QueryRow(ctx, `SELECT 1 FROM projects WHERE id = $1 AND owner_id = $2`, it.ProjectID, ownerID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return budget.ErrProjectNotFound
		}
		return err
	}
	if it.ContractorID != nil {
		if err := tx.QueryRow(ctx, `SELECT 1 FROM contractors WHERE id = $1 AND owner_id = $2`, *it.ContractorID, ownerID).Scan(&one); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return budget.ErrContractorNotFound
			}
			return err
		}
	}
	_, err = tx.Exec(ctx, `
INSERT INTO budget_items (id, project_id, category, description, planned_cents, actual_cents, contractor_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, it.ID, it.ProjectID, it.Category, it.Description, it.PlannedCents, it.ActualCents, it.ContractorID, it.CreatedAt)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *BudgetRepository) ListByProject(ctx context.Context, ownerID int64, projectID uuid.UUID) ([]budget.Item, error) {
	var one int
	if err := r.pool.QueryRow(ctx, `SELECT 1 FROM projects WHERE id = $1 AND owner_id = $2`, projectID, ownerID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, budget.ErrProjectNotFound
		}
		return nil, err
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, project_id, category, description, planned_cents, actual_cents, contractor_id, created_at
FROM budget_items
WHERE project_id = $1
ORDER BY category, created_at
`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []budget.Item
	for rows.Next() {
		it, err := scanBudgetItem(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, it)
	}
	return res, rows.Err()
}

func (r *BudgetRepository) Update(ctx context.Context, ownerID int64, id uuid.UUID, u budget.Update) (budget.Item, error) {
	if u.ContractorID != nil {
		var one int
		if err := r.pool.QueryRow(ctx, `SELECT 1 FROM contractors WHERE id = $1 AND owner_id = $2`, *u.ContractorID, ownerID).Scan(&one); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return budget.Item{}, budget.ErrContractorNotFound
			}
			return budget.Item{}, err
		}
	}
	row := r.pool.QueryRow(ctx, `
UPDATE budget_items b SET
	category = COALESCE($3, b.category),
	description = COALESCE($4, b.description),
	planned_cents = COALESCE($5, b.planned_cents),
	actual_cents = COALESCE($6, b.actual_cents),
	contractor_id = CASE WHEN $7 THEN NULL ELSE COALESCE($8, b.contractor_id) END
FROM projects p
WHERE b.id = $1 AND b.project_id = p.id AND p.owner_id = $2
RETURNING b.id, b.project_id, b.category, b.description, b.planned_cents, b.actual_cents, b.contractor_id, b.created_at
`, id, ownerID, u.Category, u.Description, u.PlannedCents, u.ActualCents, u.ClearContractor, u.ContractorID)
	return scanBudgetItem(row)
}

func (r *BudgetRepository) Delete(ctx context.Context, ownerID int64, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM budget_items b
USING projects p
WHERE b.id = $1 AND b.project_id = p.id AND p.owner_id = $2
`, id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return budget.ErrNotFound
	}
	return nil
}

func (r *BudgetRepository) Summary(ctx context.Context, ownerID int64, projectID uuid.UUID) ([]budget.CategoryTotal, error) {
	var one int
	if err := r.pool.QueryRow(ctx, `SELECT 1 FROM projects WHERE id = $1 AND owner_id = $2`, projectID, ownerID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, budget.ErrProjectNotFound
		}
		return nil, err
	}
	rows, err := r.pool.Query(ctx, `
SELECT category, SUM(planned_cents), SUM(actual_cents)
FROM budget_items
WHERE project_id = $1
GROUP BY category
ORDER BY category
`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []budget.CategoryTotal
	for rows.Next() {
		var ct budget.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.PlannedCents, &ct.ActualCents); err != nil {
			return nil, err
		}
		res = append(res, ct)
	}
	return res, rows.Err()
}

func scanBudgetItem(row pgx.Row) (budget.Item, error) {
	var it budget.Item
	var created time.Time
	if err := row.Scan(&it.ID, &it.ProjectID, &it.Category, &it.Description, &it.PlannedCents, &it.ActualCents, &it.ContractorID, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return budget.Item{}, budget.ErrNotFound
		}
		return budget.Item{}, err
	}
	it.CreatedAt = created.UTC()
	return it, nil
}
