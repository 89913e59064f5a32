package dto

import "github.com/shopspring/decimal"

// CartAddRequest describes an add-to-cart payload.
type CartAddRequest struct {
	ItemID int64  `json:"item_id"`
	Flavor string `json:"flavor,omitempty"`
}

// CartLineResponse describes one cart line.
type CartLineResponse struct {
	ItemID    int64           `json:"item_id"`
	Name      string          `json:"name"`
	Flavor    string          `json:"flavor,omitempty"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}
