package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/restomart/restomart/internal/domain/model"
)

// StaffFacadeStub simulates back-office account management.
type StaffFacadeStub struct {
	CreateFn func(context.Context, string, string, string) (*model.Account, error)
	UpdateFn func(context.Context, int64, string) (*model.Account, error)
}

// CreateStaff delegates to provided function or returns a default account.
func (s StaffFacadeStub) CreateStaff(ctx context.Context, login, password, name string) (*model.Account, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, login, password, name)
	}
	return &model.Account{ID: 1, Login: login, Name: name, Role: model.RoleAdmin}, nil
}

// UpdateStaff delegates to provided function or returns a default account.
func (s StaffFacadeStub) UpdateStaff(ctx context.Context, id int64, name string) (*model.Account, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, name)
	}
	return &model.Account{ID: id, Name: name, Role: model.RoleAdmin}, nil
}

// MenuFacadeStub provides controllable behaviour for dish endpoints.
type MenuFacadeStub struct {
	SaveFn      func(context.Context, *model.MenuItem) error
	UpdateFn    func(context.Context, *model.MenuItem) error
	DeleteFn    func(context.Context, []int64) error
	SetStatusFn func(context.Context, int64, model.ItemStatus) error
	DishFn      func(context.Context, int64) (*model.MenuItem, error)
	ListFn      func(context.Context, int64) ([]model.MenuItem, error)
}

// SaveDish executes configured handler or assigns a default id.
func (s MenuFacadeStub) SaveDish(ctx context.Context, item *model.MenuItem) error {
	if s.SaveFn != nil {
		return s.SaveFn(ctx, item)
	}
	item.ID = 1
	return nil
}

// UpdateDish executes configured handler.
func (s MenuFacadeStub) UpdateDish(ctx context.Context, item *model.MenuItem) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, item)
	}
	return nil
}

// DeleteDishes executes configured handler.
func (s MenuFacadeStub) DeleteDishes(ctx context.Context, ids []int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, ids)
	}
	return nil
}

// SetDishStatus executes configured handler.
func (s MenuFacadeStub) SetDishStatus(ctx context.Context, id int64, status model.ItemStatus) error {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, id, status)
	}
	return nil
}

// Dish returns configured dish or a default one.
func (s MenuFacadeStub) Dish(ctx context.Context, id int64) (*model.MenuItem, error) {
	if s.DishFn != nil {
		return s.DishFn(ctx, id)
	}
	return &model.MenuItem{ID: id, Name: "dish", Price: decimal.NewFromInt(10), Status: model.ItemStatusEnabled}, nil
}

// DishesByCategory returns configured category listing.
func (s MenuFacadeStub) DishesByCategory(ctx context.Context, categoryID int64) ([]model.MenuItem, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, categoryID)
	}
	return []model.MenuItem{{ID: 1, CategoryID: categoryID, Name: "dish"}}, nil
}

// CartFacadeStub simulates cart operations.
type CartFacadeStub struct {
	AddFn   func(context.Context, int64, string) error
	LinesFn func(context.Context) ([]model.CartLine, error)
	ClearFn func(context.Context) error
}

// AddToCart executes configured handler.
func (s CartFacadeStub) AddToCart(ctx context.Context, itemID int64, flavor string) error {
	if s.AddFn != nil {
		return s.AddFn(ctx, itemID, flavor)
	}
	return nil
}

// CartLines returns preconfigured cart lines.
func (s CartFacadeStub) CartLines(ctx context.Context) ([]model.CartLine, error) {
	if s.LinesFn != nil {
		return s.LinesFn(ctx)
	}
	return []model.CartLine{{ItemID: 1, Name: "dish", Quantity: 1, UnitPrice: decimal.NewFromInt(10)}}, nil
}

// ClearCart executes configured handler.
func (s CartFacadeStub) ClearCart(ctx context.Context) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	SubmitFn func(context.Context, int64, string) (*model.OrderSummary, error)
	OrdersFn func(context.Context) ([]model.Order, error)
}

// SubmitOrder delegates to provided function or returns a default summary.
func (s OrderFacadeStub) SubmitOrder(ctx context.Context, addressID int64, remark string) (*model.OrderSummary, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, addressID, remark)
	}
	return &model.OrderSummary{OrderID: 1, Number: "1", OrderTime: time.Unix(0, 0), Amount: decimal.NewFromInt(10)}, nil
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{ID: 1, Number: "1", Status: model.OrderStatusPendingPayment, PayStatus: model.PayStatusUnpaid}}, nil
}

// AddressFacadeStub simulates address book operations.
type AddressFacadeStub struct {
	CreateFn func(context.Context, *model.Address) error
	ListFn   func(context.Context) ([]model.Address, error)
}

// CreateAddress executes configured handler or assigns a default id.
func (s AddressFacadeStub) CreateAddress(ctx context.Context, addr *model.Address) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, addr)
	}
	addr.ID = 1
	return nil
}

// Addresses returns preconfigured addresses.
func (s AddressFacadeStub) Addresses(ctx context.Context) ([]model.Address, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Address{{ID: 1, Consignee: "c", Phone: "p", Detail: "d"}}, nil
}

// ShopFacadeStub simulates shop status operations.
type ShopFacadeStub struct {
	StatusFn func(context.Context) (model.ShopStatus, error)
	SetFn    func(context.Context, model.ShopStatus) error
}

// ShopStatus returns configured status or open.
func (s ShopFacadeStub) ShopStatus(ctx context.Context) (model.ShopStatus, error) {
	if s.StatusFn != nil {
		return s.StatusFn(ctx)
	}
	return model.ShopOpen, nil
}

// SetShopStatus executes configured handler.
func (s ShopFacadeStub) SetShopStatus(ctx context.Context, status model.ShopStatus) error {
	if s.SetFn != nil {
		return s.SetFn(ctx, status)
	}
	return nil
}

// PlatformFacadeStub aggregates facade dependencies for HTTP layer tests.
type PlatformFacadeStub struct {
	AuthFacadeStub
	StaffFacadeStub
	MenuFacadeStub
	CartFacadeStub
	OrderFacadeStub
	AddressFacadeStub
	ShopFacadeStub
}

// WorkerFacadeStub mimics worker interactions with the platform facade.
type WorkerFacadeStub struct {
	Orders          [][]model.Order
	OrdersFn        func(context.Context, int) ([]model.Order, error)
	CheckFn         func(context.Context, string) (*model.Payment, error)
	MarkPaidFn      func(context.Context, int64) error
	CancelFn        func(context.Context, int64) error
	Paid            []int64
	Cancelled       []int64
	mu              sync.Mutex
	ordersCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// PendingOrders returns batches from configured queue.
func (s *WorkerFacadeStub) PendingOrders(ctx context.Context, limit int) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.ordersCallCount, 1)
	if int(call) <= len(s.Orders) {
		return s.Orders[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// CheckPayment returns configured payment data.
func (s *WorkerFacadeStub) CheckPayment(ctx context.Context, number string) (*model.Payment, error) {
	if s.CheckFn != nil {
		return s.CheckFn(ctx, number)
	}
	return &model.Payment{Order: number, Status: model.PaymentStatusPaid}, nil
}

// MarkOrderPaid records paid order ids.
func (s *WorkerFacadeStub) MarkOrderPaid(ctx context.Context, orderID int64) error {
	if s.MarkPaidFn != nil {
		return s.MarkPaidFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Paid = append(s.Paid, orderID)
	return nil
}

// CancelOrder records cancelled order ids.
func (s *WorkerFacadeStub) CancelOrder(ctx context.Context, orderID int64) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Cancelled = append(s.Cancelled, orderID)
	return nil
}

// PaymentProviderStub fetches payment state for tests.
type PaymentProviderStub struct {
	FetchFn func(context.Context, string) (*model.Payment, error)
	Payment *model.Payment
	Err     error
}

// Fetch returns configured response or default paid status.
func (s PaymentProviderStub) Fetch(ctx context.Context, number string) (*model.Payment, error) {
	if s.FetchFn != nil {
		return s.FetchFn(ctx, number)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Payment != nil {
		return s.Payment, nil
	}
	return &model.Payment{Order: number, Status: model.PaymentStatusPaid}, nil
}
