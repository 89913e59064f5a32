package repository

import (
	"context"

	"github.com/restomart/restomart/internal/domain/model"
)

// AccountRepository describes persistence operations for accounts. Mutating
// operations take the entity so already-stamped audit fields reach storage.
type AccountRepository interface {
	Create(ctx context.Context, acc *model.Account) error
	Update(ctx context.Context, acc *model.Account) error
	GetByLogin(ctx context.Context, login string) (*model.Account, error)
	GetByID(ctx context.Context, id int64) (*model.Account, error)
}
