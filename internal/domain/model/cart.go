package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one item selection in a customer's shopping cart. Adding the
// same item with the same flavor increments quantity instead of creating a
// second line.
type CartLine struct {
	ID        int64
	AccountID int64
	ItemID    int64
	Name      string
	Flavor    string
	Quantity  int32
	UnitPrice decimal.Decimal
	CreatedAt time.Time
}

// Subtotal returns price times quantity for the line.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt32(l.Quantity))
}
