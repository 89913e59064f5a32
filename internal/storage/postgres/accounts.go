package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/restomart/restomart/internal/domain/errors"
	"github.com/restomart/restomart/internal/domain/model"
)

type accountRepository struct {
	q querier
}

// nullTime maps the zero time to NULL so unstamped records fall back to the
// column default.
func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

func (r *accountRepository) Create(ctx context.Context, acc *model.Account) error {
	const query = `INSERT INTO accounts (login, name, password_hash, role, created_at, created_by, updated_at, updated_by)
                   VALUES ($1, $2, $3, $4, COALESCE($5, NOW()), $6, COALESCE($7, NOW()), $8)
                   RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		acc.Login, acc.Name, acc.PasswordHash, acc.Role,
		nullTime(acc.CreatedAt), acc.CreatedBy, nullTime(acc.UpdatedAt), acc.UpdatedBy,
	).Scan(&acc.ID, &acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *accountRepository) Update(ctx context.Context, acc *model.Account) error {
	const query = `UPDATE accounts SET name=$1, password_hash=$2, updated_at=$3, updated_by=$4 WHERE id=$5`
	tag, err := r.q.Exec(ctx, query, acc.Name, acc.PasswordHash, acc.UpdatedAt, acc.UpdatedBy, acc.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *accountRepository) GetByLogin(ctx context.Context, login string) (*model.Account, error) {
	const query = `SELECT id, login, name, password_hash, role, created_at, created_by, updated_at, updated_by
                   FROM accounts WHERE login=$1`
	return r.scanOne(r.q.QueryRow(ctx, query, login))
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	const query = `SELECT id, login, name, password_hash, role, created_at, created_by, updated_at, updated_by
                   FROM accounts WHERE id=$1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

func (r *accountRepository) scanOne(row pgx.Row) (*model.Account, error) {
	var acc model.Account
	err := row.Scan(&acc.ID, &acc.Login, &acc.Name, &acc.PasswordHash, &acc.Role,
		&acc.CreatedAt, &acc.CreatedBy, &acc.UpdatedAt, &acc.UpdatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &acc, nil
}
