package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/renoplan/renoplan/pkg/contractor"
)

// ContractorRepository stores the per-user contractor address book.
type ContractorRepository struct {
	pool *pgxpool.Pool
}

func NewContractorRepository(pool *pgxpool.Pool) *ContractorRepository {
	return &ContractorRepository{pool: pool}
}

func (r *ContractorRepository) Create(ctx context.Context, c contractor.Contractor) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO contractors (id, owner_id, name, trade, phone, email, notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, c.ID, c.OwnerID, c.Name, c.Trade, c.Phone, c.Email, c.Notes, c.CreatedAt)
	return err
}

func (r *ContractorRepository) GetByID(ctx context.Context, ownerID int64, id uuid.UUID) (contractor.Contractor, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, name, trade, phone, email, notes, created_at
FROM contractors WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	return scanContractor(row)
}

func (r *ContractorRepository) List(ctx context.Context, ownerID int64, limit, offset int) ([]contractor.Contractor, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, name, trade, phone, email, notes, created_at
FROM contractors WHERE owner_id = $1
ORDER BY name
LIMIT $2 OFFSET $3
`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []contractor.Contractor
	for rows.Next() {
		c, err := scanContractor(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func (r *ContractorRepository) Update(ctx context.Context, ownerID int64, id uuid.UUID, u contractor.Update) (contractor.Contractor, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE contractors SET
	name = COALESCE($3, name),
	trade = COALESCE($4, trade),
	phone = COALESCE($5, phone),
	email = COALESCE($6, email),
	notes = COALESCE($7, notes)
WHERE id = $1 AND owner_id = $2
RETURNING id, owner_id, name, trade, phone, email, notes, created_at
`, id, ownerID, u.Name, u.Trade, u.Phone, u.Email, u.Notes)
	return scanContractor(row)
}

// Delete removes the contractor; budget_items.contractor_id falls back to
// NULL via the FK.
func (r *ContractorRepository) Delete(ctx context.Context, ownerID int64, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM contractors WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return contractor.ErrNotFound
	}
	return nil
}

func scanContractor(row pgx.Row) (contractor.Contractor, error) {
	var c contractor.Contractor
	var created time.Time
	if err := row.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Trade, &c.Phone, &c.Email, &c.Notes, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contractor.Contractor{}, contractor.ErrNotFound
		}
		return contractor.Contractor{}, err
	}
	c.CreatedAt = created.UTC()
	return c, nil
}
