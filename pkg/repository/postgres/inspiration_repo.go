package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/renoplan/renoplan/pkg/inspiration"
)

// InspirationRepository stores boards and their saved references.
type InspirationRepository struct {
	pool *pgxpool.Pool
}

func NewInspirationRepository(pool *pgxpool.Pool) *InspirationRepository {
	return &InspirationRepository{pool: pool}
}

func (r *InspirationRepository) CreateBoard(ctx context.Context, b inspiration.Board) error {
	if b.ProjectID != nil {
		var one int
		if err := r.pool.QueryRow(ctx, `SELECT 1 FROM projects WHERE id = $1 AND owner_id = $2`, *b.ProjectID, b.OwnerID).Scan(&one); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return inspiration.ErrProjectNotFound
			}
			return err
		}
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO inspiration_boards (id, owner_id, project_id, title, created_at)
VALUES ($1, $2, $3, $4, $5)
`, b.ID, b.OwnerID, b.ProjectID, b.Title, b.CreatedAt)
	return err
}

func (r *InspirationRepository) ListBoards(ctx context.Context, ownerID int64, limit, offset int) ([]inspiration.Board, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, project_id, title, created_at
FROM inspiration_boards WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []inspiration.Board
	for rows.Next() {
		var b inspiration.Board
		var created time.Time
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.ProjectID, &b.Title, &created); err != nil {
			return nil, err
		}
		b.CreatedAt = created.UTC()
		res = append(res, b)
	}
	return res, rows.Err()
}

// DeleteBoard removes the board; items cascade via FK.
func (r *InspirationRepository) DeleteBoard(ctx context.Context, ownerID int64, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM inspiration_boards WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return inspiration.ErrBoardNotFound
	}
	return nil
}

func (r *InspirationRepository) AddItem(ctx context.Context, ownerID int64, it inspiration.Item) error {
	var one int
	if err := r.pool.QueryRow(ctx, `SELECT 1 FROM inspiration_boards WHERE id = $1 AND owner_id = $2`, it.BoardID, ownerID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return inspiration.ErrBoardNotFound
		}
		return err
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO inspiration_items (id, board_id, image_url, note, created_at)
VALUES ($1, $2, $3, $4, $5)
`, it.ID, it.BoardID, it.ImageURL, it.Note, it.CreatedAt)
	return err
}

func (r *InspirationRepository) ListItems(ctx context.Context, ownerID int64, boardID uuid.UUID) ([]inspiration.Item, error) {
	var one int
	if err := r.pool.QueryRow(ctx, `SELECT 1 FROM inspiration_boards WHERE id = $1 AND owner_id = $2`, boardID, ownerID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, inspiration.ErrBoardNotFound
		}
		return nil, err
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, board_id, image_url, note, created_at
FROM inspiration_items WHERE board_id = $1
ORDER BY created_at DESC
`, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []inspiration.Item
	for rows.Next() {
		var it inspiration.Item
		var created time.Time
		if err := rows.Scan(&it.ID, &it.BoardID, &it.ImageURL, &it.Note, &created); err != nil {
			return nil, err
		}
		it.CreatedAt = created.UTC()
		res = append(res, it)
	}
	return res, rows.Err()
}

func (r *InspirationRepository) DeleteItem(ctx context.Context, ownerID int64, boardID, itemID uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM inspiration_items i
USING inspiration_boards b
WHERE i.id = $1 AND i.board_id = $2 AND i.board_id = b.id AND b.owner_id = $3
`, itemID, boardID, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return inspiration.ErrItemNotFound
	}
	return nil
}
