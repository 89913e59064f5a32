package handlers

import (
	"context"

	"github.com/restomart/restomart/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password, name string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, model.Role, error)
}

// StaffFacade covers back-office account management.
type StaffFacade interface {
	CreateStaff(ctx context.Context, login, password, name string) (*model.Account, error)
	UpdateStaff(ctx context.Context, id int64, name string) (*model.Account, error)
}

// MenuFacade encapsulates menu management exposed via HTTP.
type MenuFacade interface {
	SaveDish(ctx context.Context, item *model.MenuItem) error
	UpdateDish(ctx context.Context, item *model.MenuItem) error
	DeleteDishes(ctx context.Context, ids []int64) error
	SetDishStatus(ctx context.Context, id int64, status model.ItemStatus) error
	Dish(ctx context.Context, id int64) (*model.MenuItem, error)
	DishesByCategory(ctx context.Context, categoryID int64) ([]model.MenuItem, error)
}

// CartFacade provides shopping cart operations.
type CartFacade interface {
	AddToCart(ctx context.Context, itemID int64, flavor string) error
	CartLines(ctx context.Context) ([]model.CartLine, error)
	ClearCart(ctx context.Context) error
}

// OrderFacade provides checkout and order history.
type OrderFacade interface {
	SubmitOrder(ctx context.Context, addressID int64, remark string) (*model.OrderSummary, error)
	Orders(ctx context.Context) ([]model.Order, error)
}

// AddressFacade provides delivery address operations.
type AddressFacade interface {
	CreateAddress(ctx context.Context, addr *model.Address) error
	Addresses(ctx context.Context) ([]model.Address, error)
}

// ShopFacade exposes the shop open/closed flag.
type ShopFacade interface {
	ShopStatus(ctx context.Context) (model.ShopStatus, error)
	SetShopStatus(ctx context.Context, status model.ShopStatus) error
}

// PlatformFacade aggregates the full set of operations used across handlers.
type PlatformFacade interface {
	AuthFacade
	StaffFacade
	MenuFacade
	CartFacade
	OrderFacade
	AddressFacade
	ShopFacade
}
