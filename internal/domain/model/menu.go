package model

import (
	"github.com/shopspring/decimal"

	"github.com/restomart/restomart/internal/audit"
)

// ItemStatus describes whether a menu item is visible to customers.
type ItemStatus string

const (
	ItemStatusEnabled  ItemStatus = "ENABLED"
	ItemStatusDisabled ItemStatus = "DISABLED"
)

// MenuItem is a single dish on the menu.
type MenuItem struct {
	ID          int64
	Name        string
	CategoryID  int64
	Price       decimal.Decimal
	Description string
	Status      ItemStatus

	audit.Fields

	// Flavors are loaded alongside the item, not persisted with it.
	Flavors []Flavor
}

// Flavor is a customization option attached to a menu item.
type Flavor struct {
	ID     int64
	ItemID int64
	Name   string
	Value  string
}

// ComboAssociation links a combo to one of its member menu items. An item
// referenced by any combo cannot be deleted.
type ComboAssociation struct {
	ComboID int64
	ItemID  int64
}
