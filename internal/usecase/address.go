package usecase

import (
	"context"

	"github.com/restomart/restomart/internal/audit"
	domainErrors "github.com/restomart/restomart/internal/domain/errors"
	"github.com/restomart/restomart/internal/domain/model"
	"github.com/restomart/restomart/internal/domain/repository"
)

// AddressUseCase manages delivery addresses.
type AddressUseCase struct {
	repos repository.Factory
}

// NewAddressUseCase constructs AddressUseCase.
func NewAddressUseCase(repos repository.Factory) *AddressUseCase {
	return &AddressUseCase{repos: repos}
}

// Create stores a new delivery address owned by the actor.
func (u *AddressUseCase) Create(ctx context.Context, addr *model.Address) error {
	actor, ok := audit.ActorFrom(ctx)
	if !ok {
		return domainErrors.ErrMissingActor
	}
	addr.AccountID = actor
	return u.repos.Addresses().Create(ctx, addr)
}

// List returns the actor's addresses.
func (u *AddressUseCase) List(ctx context.Context) ([]model.Address, error) {
	actor, ok := audit.ActorFrom(ctx)
	if !ok {
		return nil, domainErrors.ErrMissingActor
	}
	return u.repos.Addresses().ListByAccount(ctx, actor)
}
