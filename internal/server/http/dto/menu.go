package dto

import "github.com/shopspring/decimal"

// FlavorPayload is one customization option of a dish.
type FlavorPayload struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// DishRequest describes a dish create/update payload.
type DishRequest struct {
	ID          int64           `json:"id,omitempty"`
	Name        string          `json:"name"`
	CategoryID  int64           `json:"category_id"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Status      string          `json:"status,omitempty"`
	Flavors     []FlavorPayload `json:"flavors,omitempty"`
}

// DishResponse describes a dish returned to clients.
type DishResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	CategoryID  int64           `json:"category_id"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	Flavors     []FlavorPayload `json:"flavors,omitempty"`
}
