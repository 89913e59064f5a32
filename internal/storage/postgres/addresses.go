package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/restomart/restomart/internal/domain/errors"
	"github.com/restomart/restomart/internal/domain/model"
)

type addressRepository struct {
	q querier
}

func (r *addressRepository) Create(ctx context.Context, addr *model.Address) error {
	const query = `INSERT INTO addresses (account_id, consignee, phone, detail, is_default)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	return r.q.QueryRow(ctx, query, addr.AccountID, addr.Consignee, addr.Phone, addr.Detail, addr.IsDefault).
		Scan(&addr.ID, &addr.CreatedAt)
}

func (r *addressRepository) GetByID(ctx context.Context, id int64) (*model.Address, error) {
	const query = `SELECT id, account_id, consignee, phone, detail, is_default, created_at
                   FROM addresses WHERE id=$1`
	var addr model.Address
	err := r.q.QueryRow(ctx, query, id).
		Scan(&addr.ID, &addr.AccountID, &addr.Consignee, &addr.Phone, &addr.Detail, &addr.IsDefault, &addr.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &addr, nil
}

func (r *addressRepository) ListByAccount(ctx context.Context, accountID int64) ([]model.Address, error) {
	const query = `SELECT id, account_id, consignee, phone, detail, is_default, created_at
                   FROM addresses WHERE account_id=$1 ORDER BY is_default DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Address
	for rows.Next() {
		var a model.Address
		if err := rows.Scan(&a.ID, &a.AccountID, &a.Consignee, &a.Phone, &a.Detail, &a.IsDefault, &a.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
