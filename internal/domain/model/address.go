package model

import "time"

// Address is a delivery address owned by a customer.
type Address struct {
	ID        int64
	AccountID int64
	Consignee string
	Phone     string
	Detail    string
	IsDefault bool
	CreatedAt time.Time
}
