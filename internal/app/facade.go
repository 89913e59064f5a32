package app

import (
	"context"

	"github.com/restomart/restomart/internal/domain/model"
	"github.com/restomart/restomart/internal/usecase"
)

// PaymentProvider reports payment state for order numbers.
type PaymentProvider interface {
	Fetch(ctx context.Context, number string) (*model.Payment, error)
}

// PlatformFacade is the single entry point the HTTP layer and the worker use.
type PlatformFacade struct {
	auth      *usecase.AuthUseCase
	menu      *usecase.MenuUseCase
	carts     *usecase.CartUseCase
	addresses *usecase.AddressUseCase
	checkout  *usecase.CheckoutUseCase
	shop      *usecase.ShopUseCase
	payments  PaymentProvider
}

// NewPlatformFacade constructs PlatformFacade.
func NewPlatformFacade(
	auth *usecase.AuthUseCase,
	menu *usecase.MenuUseCase,
	carts *usecase.CartUseCase,
	addresses *usecase.AddressUseCase,
	checkout *usecase.CheckoutUseCase,
	shop *usecase.ShopUseCase,
	payments PaymentProvider,
) *PlatformFacade {
	return &PlatformFacade{
		auth:      auth,
		menu:      menu,
		carts:     carts,
		addresses: addresses,
		checkout:  checkout,
		shop:      shop,
		payments:  payments,
	}
}

func (f *PlatformFacade) Register(ctx context.Context, login, password, name string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password, name)
	return token, err
}

func (f *PlatformFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *PlatformFacade) ParseToken(token string) (int64, model.Role, error) {
	return f.auth.ParseToken(token)
}

func (f *PlatformFacade) CreateStaff(ctx context.Context, login, password, name string) (*model.Account, error) {
	return f.auth.CreateStaff(ctx, login, password, name)
}

func (f *PlatformFacade) UpdateStaff(ctx context.Context, id int64, name string) (*model.Account, error) {
	return f.auth.UpdateStaff(ctx, id, name)
}

func (f *PlatformFacade) SaveDish(ctx context.Context, item *model.MenuItem) error {
	return f.menu.Save(ctx, item)
}

func (f *PlatformFacade) UpdateDish(ctx context.Context, item *model.MenuItem) error {
	return f.menu.Update(ctx, item)
}

func (f *PlatformFacade) DeleteDishes(ctx context.Context, ids []int64) error {
	return f.menu.DeleteBatch(ctx, ids)
}

func (f *PlatformFacade) SetDishStatus(ctx context.Context, id int64, status model.ItemStatus) error {
	return f.menu.SetStatus(ctx, id, status)
}

func (f *PlatformFacade) Dish(ctx context.Context, id int64) (*model.MenuItem, error) {
	return f.menu.Get(ctx, id)
}

func (f *PlatformFacade) DishesByCategory(ctx context.Context, categoryID int64) ([]model.MenuItem, error) {
	return f.menu.ListByCategory(ctx, categoryID)
}

func (f *PlatformFacade) AddToCart(ctx context.Context, itemID int64, flavor string) error {
	return f.carts.Add(ctx, itemID, flavor)
}

func (f *PlatformFacade) CartLines(ctx context.Context) ([]model.CartLine, error) {
	return f.carts.List(ctx)
}

func (f *PlatformFacade) ClearCart(ctx context.Context) error {
	return f.carts.Clear(ctx)
}

func (f *PlatformFacade) CreateAddress(ctx context.Context, addr *model.Address) error {
	return f.addresses.Create(ctx, addr)
}

func (f *PlatformFacade) Addresses(ctx context.Context) ([]model.Address, error) {
	return f.addresses.List(ctx)
}

func (f *PlatformFacade) SubmitOrder(ctx context.Context, addressID int64, remark string) (*model.OrderSummary, error) {
	return f.checkout.Submit(ctx, addressID, remark)
}

func (f *PlatformFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.checkout.Orders(ctx)
}

func (f *PlatformFacade) PendingOrders(ctx context.Context, limit int) ([]model.Order, error) {
	return f.checkout.PendingOrders(ctx, limit)
}

func (f *PlatformFacade) MarkOrderPaid(ctx context.Context, orderID int64) error {
	return f.checkout.MarkPaid(ctx, orderID)
}

func (f *PlatformFacade) CancelOrder(ctx context.Context, orderID int64) error {
	return f.checkout.Cancel(ctx, orderID)
}

func (f *PlatformFacade) CheckPayment(ctx context.Context, number string) (*model.Payment, error) {
	return f.payments.Fetch(ctx, number)
}

func (f *PlatformFacade) ShopStatus(ctx context.Context) (model.ShopStatus, error) {
	return f.shop.Status(ctx)
}

func (f *PlatformFacade) SetShopStatus(ctx context.Context, status model.ShopStatus) error {
	return f.shop.SetStatus(ctx, status)
}
