package repository

import (
	"context"

	"github.com/restomart/restomart/internal/domain/model"
)

// ShopRepository persists the global shop open/closed flag.
type ShopRepository interface {
	Status(ctx context.Context) (model.ShopStatus, error)
	SetStatus(ctx context.Context, status model.ShopStatus) error
}
