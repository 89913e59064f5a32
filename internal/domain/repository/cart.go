package repository

import (
	"context"

	"github.com/restomart/restomart/internal/domain/model"
)

// CartRepository manages shopping cart lines.
type CartRepository interface {
	// Add inserts the line, or increments quantity when the account already
	// has the same item with the same flavor in the cart.
	Add(ctx context.Context, line *model.CartLine) error
	ListByAccount(ctx context.Context, accountID int64) ([]model.CartLine, error)
	Clear(ctx context.Context, accountID int64) error
}
