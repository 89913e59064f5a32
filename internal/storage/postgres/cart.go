package postgres

import (
	"context"

	"github.com/restomart/restomart/internal/domain/model"
)

type cartRepository struct {
	q querier
}

func (r *cartRepository) Add(ctx context.Context, line *model.CartLine) error {
	const query = `INSERT INTO cart_lines (account_id, item_id, name, flavor, quantity, unit_price)
                   VALUES ($1, $2, $3, $4, $5, $6)
                   ON CONFLICT (account_id, item_id, flavor) DO UPDATE
                   SET quantity = cart_lines.quantity + EXCLUDED.quantity
                   RETURNING id, quantity, created_at`
	return r.q.QueryRow(ctx, query,
		line.AccountID, line.ItemID, line.Name, line.Flavor, line.Quantity, line.UnitPrice,
	).Scan(&line.ID, &line.Quantity, &line.CreatedAt)
}

func (r *cartRepository) ListByAccount(ctx context.Context, accountID int64) ([]model.CartLine, error) {
	const query = `SELECT id, account_id, item_id, name, flavor, quantity, unit_price, created_at
                   FROM cart_lines WHERE account_id=$1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CartLine
	for rows.Next() {
		var l model.CartLine
		if err := rows.Scan(&l.ID, &l.AccountID, &l.ItemID, &l.Name, &l.Flavor, &l.Quantity, &l.UnitPrice, &l.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *cartRepository) Clear(ctx context.Context, accountID int64) error {
	const query = `DELETE FROM cart_lines WHERE account_id=$1`
	_, err := r.q.Exec(ctx, query, accountID)
	return err
}
