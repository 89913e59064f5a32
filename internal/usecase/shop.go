package usecase

import (
	"context"

	"github.com/restomart/restomart/internal/domain/model"
	"github.com/restomart/restomart/internal/domain/repository"
)

// ShopUseCase exposes the global open/closed flag.
type ShopUseCase struct {
	repos repository.Factory
}

// NewShopUseCase constructs ShopUseCase.
func NewShopUseCase(repos repository.Factory) *ShopUseCase {
	return &ShopUseCase{repos: repos}
}

// Status returns the current shop status.
func (u *ShopUseCase) Status(ctx context.Context) (model.ShopStatus, error) {
	return u.repos.Shop().Status(ctx)
}

// SetStatus flips the shop status.
func (u *ShopUseCase) SetStatus(ctx context.Context, status model.ShopStatus) error {
	return u.repos.Shop().SetStatus(ctx, status)
}
