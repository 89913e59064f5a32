package repository

import (
	"context"

	"github.com/restomart/restomart/internal/domain/model"
)

// MenuRepository describes persistence operations for menu items, their
// flavors and combo membership.
type MenuRepository interface {
	InsertItem(ctx context.Context, item *model.MenuItem) error
	UpdateItem(ctx context.Context, item *model.MenuItem) error
	GetItem(ctx context.Context, id int64) (*model.MenuItem, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]model.MenuItem, error)

	// GetStatuses returns the status of every requested item and locks the
	// rows for the rest of the transaction, so a concurrent enable cannot
	// slip in between an eligibility check and a delete.
	GetStatuses(ctx context.Context, ids []int64) (map[int64]model.ItemStatus, error)
	ListComboAssociations(ctx context.Context, ids []int64) ([]model.ComboAssociation, error)
	DeleteItems(ctx context.Context, ids []int64) error

	InsertFlavors(ctx context.Context, flavors []model.Flavor) error
	ListFlavors(ctx context.Context, itemID int64) ([]model.Flavor, error)
	DeleteFlavors(ctx context.Context, itemIDs []int64) error
}
