package repository

import (
	"context"

	"github.com/restomart/restomart/internal/domain/model"
)

// AddressRepository provides access to customer delivery addresses.
type AddressRepository interface {
	Create(ctx context.Context, addr *model.Address) error
	GetByID(ctx context.Context, id int64) (*model.Address, error)
	ListByAccount(ctx context.Context, accountID int64) ([]model.Address, error)
}
