package usecase

import (
	"context"

	"github.com/restomart/restomart/internal/audit"
	domainErrors "github.com/restomart/restomart/internal/domain/errors"
	"github.com/restomart/restomart/internal/domain/model"
	"github.com/restomart/restomart/internal/domain/repository"
)

// CartUseCase manages the actor's shopping cart.
type CartUseCase struct {
	repos repository.Factory
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(repos repository.Factory) *CartUseCase {
	return &CartUseCase{repos: repos}
}

// Add puts one unit of a menu item into the actor's cart. Price and name are
// snapshotted from the menu at add time.
func (u *CartUseCase) Add(ctx context.Context, itemID int64, flavor string) error {
	actor, ok := audit.ActorFrom(ctx)
	if !ok {
		return domainErrors.ErrMissingActor
	}

	item, err := u.repos.Menu().GetItem(ctx, itemID)
	if err != nil {
		return err
	}

	line := &model.CartLine{
		AccountID: actor,
		ItemID:    item.ID,
		Name:      item.Name,
		Flavor:    flavor,
		Quantity:  1,
		UnitPrice: item.Price,
	}
	return u.repos.Carts().Add(ctx, line)
}

// List returns the actor's cart lines.
func (u *CartUseCase) List(ctx context.Context) ([]model.CartLine, error) {
	actor, ok := audit.ActorFrom(ctx)
	if !ok {
		return nil, domainErrors.ErrMissingActor
	}
	return u.repos.Carts().ListByAccount(ctx, actor)
}

// Clear empties the actor's cart.
func (u *CartUseCase) Clear(ctx context.Context) error {
	actor, ok := audit.ActorFrom(ctx)
	if !ok {
		return domainErrors.ErrMissingActor
	}
	return u.repos.Carts().Clear(ctx, actor)
}
