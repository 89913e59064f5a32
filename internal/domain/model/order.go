package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes order lifecycle after checkout.
type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "PENDING_PAYMENT"
	OrderStatusToBeConfirmed  OrderStatus = "TO_BE_CONFIRMED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

// PayStatus describes payment state of an order.
type PayStatus string

const (
	PayStatusUnpaid PayStatus = "UNPAID"
	PayStatusPaid   PayStatus = "PAID"
)

// Order is a materialized checkout of a customer's cart.
type Order struct {
	ID        int64
	Number    string
	AccountID int64
	AddressID int64
	Status    OrderStatus
	PayStatus PayStatus
	Amount    decimal.Decimal
	Consignee string
	Phone     string
	Remark    string
	OrderTime time.Time
}

// OrderLine is one cart line frozen into an order. It has no lifecycle of its
// own: it exists only together with its parent order.
type OrderLine struct {
	ID        int64
	OrderID   int64
	ItemID    int64
	Name      string
	Flavor    string
	Quantity  int32
	UnitPrice decimal.Decimal
}

// OrderSummary is returned to the customer after a successful checkout.
type OrderSummary struct {
	OrderID   int64
	Number    string
	OrderTime time.Time
	Amount    decimal.Decimal
}
