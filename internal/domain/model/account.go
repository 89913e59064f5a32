package model

import "github.com/restomart/restomart/internal/audit"

// Role separates back-office staff from customers.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

// Account represents an authenticated identity: a staff member managed by
// admins or a self-registered customer. Staff accounts are created on behalf
// of an admin and therefore carry audit stamps.
type Account struct {
	ID           int64
	Login        string
	Name         string
	PasswordHash string
	Role         Role

	audit.Fields
}
