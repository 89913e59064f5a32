package model

// ShopStatus is the global open/closed flag of the shop.
type ShopStatus string

const (
	ShopOpen   ShopStatus = "OPEN"
	ShopClosed ShopStatus = "CLOSED"
)

// PaymentStatus mirrors the state reported by the external payment service.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// Payment describes the payment state of a single order number.
type Payment struct {
	Order  string
	Status PaymentStatus
}
