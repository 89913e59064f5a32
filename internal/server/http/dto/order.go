package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderSubmitRequest describes a checkout payload.
type OrderSubmitRequest struct {
	AddressID int64  `json:"address_id"`
	Remark    string `json:"remark,omitempty"`
}

// OrderSubmitResponse is returned after a successful checkout.
type OrderSubmitResponse struct {
	ID        int64           `json:"id"`
	Number    string          `json:"number"`
	OrderTime time.Time       `json:"order_time"`
	Amount    decimal.Decimal `json:"amount"`
}

// OrderResponse describes an order in history listings.
type OrderResponse struct {
	ID        int64           `json:"id"`
	Number    string          `json:"number"`
	Status    string          `json:"status"`
	PayStatus string          `json:"pay_status"`
	Amount    decimal.Decimal `json:"amount"`
	Consignee string          `json:"consignee"`
	Phone     string          `json:"phone"`
	OrderTime time.Time       `json:"order_time"`
}
