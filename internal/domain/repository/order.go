package repository

import (
	"context"

	"github.com/restomart/restomart/internal/domain/model"
)

// OrderRepository describes persistence operations with orders and their lines.
type OrderRepository interface {
	// Insert persists the order and assigns its id.
	Insert(ctx context.Context, order *model.Order) error
	// InsertLines persists all lines of one order in a single batched write.
	InsertLines(ctx context.Context, lines []model.OrderLine) error
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByAccount(ctx context.Context, accountID int64) ([]model.Order, error)
	ListLines(ctx context.Context, orderID int64) ([]model.OrderLine, error)

	ListPendingPayment(ctx context.Context, limit int) ([]model.Order, error)
	MarkPaid(ctx context.Context, orderID int64) error
	Cancel(ctx context.Context, orderID int64) error
}
