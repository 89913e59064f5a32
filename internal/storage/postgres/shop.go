package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/restomart/restomart/internal/domain/errors"
	"github.com/restomart/restomart/internal/domain/model"
)

type shopRepository struct {
	q querier
}

func (r *shopRepository) Status(ctx context.Context) (model.ShopStatus, error) {
	const query = `SELECT status FROM shop_state WHERE id=1`
	var status model.ShopStatus
	if err := r.q.QueryRow(ctx, query).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domainErrors.ErrNotFound
		}
		return "", err
	}
	return status, nil
}

func (r *shopRepository) SetStatus(ctx context.Context, status model.ShopStatus) error {
	const query = `UPDATE shop_state SET status=$1 WHERE id=1`
	_, err := r.q.Exec(ctx, query, status)
	return err
}
