package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/restomart/restomart/internal/domain/errors"
	"github.com/restomart/restomart/internal/domain/model"
)

type orderRepository struct {
	q querier
}

const orderColumns = `id, number, account_id, address_id, status, pay_status, amount, consignee, phone, remark, order_time`

func (r *orderRepository) Insert(ctx context.Context, order *model.Order) error {
	const query = `INSERT INTO orders (number, account_id, address_id, status, pay_status, amount, consignee, phone, remark, order_time)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	err := r.q.QueryRow(ctx, query,
		order.Number, order.AccountID, order.AddressID, order.Status, order.PayStatus,
		order.Amount, order.Consignee, order.Phone, order.Remark, order.OrderTime,
	).Scan(&order.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *orderRepository) InsertLines(ctx context.Context, lines []model.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO order_lines (order_id, item_id, name, flavor, quantity, unit_price) VALUES `)
	args := make([]any, 0, len(lines)*6)
	for i, l := range lines {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d)", i*6+1, i*6+2, i*6+3, i*6+4, i*6+5, i*6+6)
		args = append(args, l.OrderID, l.ItemID, l.Name, l.Flavor, l.Quantity, l.UnitPrice)
	}

	_, err := r.q.Exec(ctx, sb.String(), args...)
	return err
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	var o model.Order
	err := r.q.QueryRow(ctx, query, id).Scan(&o.ID, &o.Number, &o.AccountID, &o.AddressID,
		&o.Status, &o.PayStatus, &o.Amount, &o.Consignee, &o.Phone, &o.Remark, &o.OrderTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) ListByAccount(ctx context.Context, accountID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE account_id=$1 ORDER BY order_time DESC`
	return r.list(ctx, query, accountID)
}

func (r *orderRepository) ListPendingPayment(ctx context.Context, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status='PENDING_PAYMENT' ORDER BY order_time LIMIT $1`
	return r.list(ctx, query, limit)
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.Number, &o.AccountID, &o.AddressID,
			&o.Status, &o.PayStatus, &o.Amount, &o.Consignee, &o.Phone, &o.Remark, &o.OrderTime); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ListLines(ctx context.Context, orderID int64) ([]model.OrderLine, error) {
	const query = `SELECT id, order_id, item_id, name, flavor, quantity, unit_price
                   FROM order_lines WHERE order_id=$1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderLine
	for rows.Next() {
		var l model.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ItemID, &l.Name, &l.Flavor, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// MarkPaid flips an unpaid order to paid; already-terminal orders are left alone.
func (r *orderRepository) MarkPaid(ctx context.Context, orderID int64) error {
	const query = `UPDATE orders SET status='TO_BE_CONFIRMED', pay_status='PAID'
                   WHERE id=$1 AND status='PENDING_PAYMENT'`
	_, err := r.q.Exec(ctx, query, orderID)
	return err
}

func (r *orderRepository) Cancel(ctx context.Context, orderID int64) error {
	const query = `UPDATE orders SET status='CANCELLED' WHERE id=$1 AND status='PENDING_PAYMENT'`
	_, err := r.q.Exec(ctx, query, orderID)
	return err
}
