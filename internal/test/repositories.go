package test

import (
	"context"
	"sync"

	domainErrors "github.com/restomart/restomart/internal/domain/errors"
	"github.com/restomart/restomart/internal/domain/model"
	"github.com/restomart/restomart/internal/domain/repository"
)

// AccountRepositoryStub stores accounts in-memory for tests.
type AccountRepositoryStub struct {
	ByLogin map[string]*model.Account
	ByID    map[int64]*model.Account
	Next    int64
	Err     error
}

// NewAccountRepositoryStub constructs stub repository with initialized maps.
func NewAccountRepositoryStub() *AccountRepositoryStub {
	return &AccountRepositoryStub{
		ByLogin: make(map[string]*model.Account),
		ByID:    make(map[int64]*model.Account),
		Next:    1,
	}
}

// Create registers account unless already exists or stub has explicit error.
func (s *AccountRepositoryStub) Create(ctx context.Context, acc *model.Account) error {
	if s.Err != nil {
		return s.Err
	}
	if s.ByLogin == nil {
		s.ByLogin = make(map[string]*model.Account)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.Account)
	}
	if _, exists := s.ByLogin[acc.Login]; exists {
		return domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	acc.ID = s.Next
	s.Next++
	s.ByLogin[acc.Login] = acc
	s.ByID[acc.ID] = acc
	return nil
}

// Update rewrites stored account or returns not found.
func (s *AccountRepositoryStub) Update(ctx context.Context, acc *model.Account) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.ByID[acc.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	s.ByID[acc.ID] = acc
	s.ByLogin[acc.Login] = acc
	return nil
}

// GetByLogin fetches account by login or returns not found.
func (s *AccountRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if acc, ok := s.ByLogin[login]; ok {
		return acc, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches account by identifier or returns not found.
func (s *AccountRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if acc, ok := s.ByID[id]; ok {
		return acc, nil
	}
	return nil, domainErrors.ErrNotFound
}

// AddressRepositoryStub lets tests control address data.
type AddressRepositoryStub struct {
	CreateFn func(context.Context, *model.Address) error
	GetFn    func(context.Context, int64) (*model.Address, error)
	ListFn   func(context.Context, int64) ([]model.Address, error)
	Items    []model.Address
}

// Create delegates to override or appends to stored slice.
func (s *AddressRepositoryStub) Create(ctx context.Context, addr *model.Address) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, addr)
	}
	addr.ID = int64(len(s.Items) + 1)
	s.Items = append(s.Items, *addr)
	return nil
}

// GetByID returns matched address either via override or stored slice.
func (s *AddressRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Address, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	for _, a := range s.Items {
		if a.ID == id {
			addr := a
			return &addr, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByAccount returns addresses from configured slice.
func (s *AddressRepositoryStub) ListByAccount(ctx context.Context, accountID int64) ([]model.Address, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, accountID)
	}
	var out []model.Address
	for _, a := range s.Items {
		if a.AccountID == accountID {
			out = append(out, a)
		}
	}
	return out, nil
}

// CartRepositoryStub stores cart lines in-memory and tracks clears.
type CartRepositoryStub struct {
	AddFn   func(context.Context, *model.CartLine) error
	ListFn  func(context.Context, int64) ([]model.CartLine, error)
	ClearFn func(context.Context, int64) error
	Lines   []model.CartLine
	Cleared []int64
}

// Add inserts the line or increments quantity for a matching item+flavor.
func (s *CartRepositoryStub) Add(ctx context.Context, line *model.CartLine) error {
	if s.AddFn != nil {
		return s.AddFn(ctx, line)
	}
	for i := range s.Lines {
		if s.Lines[i].AccountID == line.AccountID && s.Lines[i].ItemID == line.ItemID && s.Lines[i].Flavor == line.Flavor {
			s.Lines[i].Quantity += line.Quantity
			return nil
		}
	}
	line.ID = int64(len(s.Lines) + 1)
	s.Lines = append(s.Lines, *line)
	return nil
}

// ListByAccount returns the account's lines.
func (s *CartRepositoryStub) ListByAccount(ctx context.Context, accountID int64) ([]model.CartLine, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, accountID)
	}
	var out []model.CartLine
	for _, l := range s.Lines {
		if l.AccountID == accountID {
			out = append(out, l)
		}
	}
	return out, nil
}

// Clear drops the account's lines and records the call.
func (s *CartRepositoryStub) Clear(ctx context.Context, accountID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, accountID)
	}
	s.Cleared = append(s.Cleared, accountID)
	kept := s.Lines[:0]
	for _, l := range s.Lines {
		if l.AccountID != accountID {
			kept = append(kept, l)
		}
	}
	s.Lines = kept
	return nil
}

// MenuRepositoryStub allows tests to customize menu behaviour.
type MenuRepositoryStub struct {
	InsertItemFn   func(context.Context, *model.MenuItem) error
	UpdateItemFn   func(context.Context, *model.MenuItem) error
	GetItemFn      func(context.Context, int64) (*model.MenuItem, error)
	ListFn         func(context.Context, int64) ([]model.MenuItem, error)
	GetStatusesFn  func(context.Context, []int64) (map[int64]model.ItemStatus, error)
	ListCombosFn   func(context.Context, []int64) ([]model.ComboAssociation, error)
	DeleteItemsFn  func(context.Context, []int64) error
	InsertFlavorFn func(context.Context, []model.Flavor) error

	Items    map[int64]*model.MenuItem
	Statuses map[int64]model.ItemStatus
	Combos   []model.ComboAssociation
	Flavors  []model.Flavor

	Inserted       []*model.MenuItem
	Updated        []*model.MenuItem
	DeletedItems   [][]int64
	DeletedFlavors [][]int64
}

// InsertItem records the insert and assigns an id.
func (s *MenuRepositoryStub) InsertItem(ctx context.Context, item *model.MenuItem) error {
	if s.InsertItemFn != nil {
		return s.InsertItemFn(ctx, item)
	}
	if item.ID == 0 {
		item.ID = int64(len(s.Inserted) + 1)
	}
	s.Inserted = append(s.Inserted, item)
	return nil
}

// UpdateItem records the update.
func (s *MenuRepositoryStub) UpdateItem(ctx context.Context, item *model.MenuItem) error {
	if s.UpdateItemFn != nil {
		return s.UpdateItemFn(ctx, item)
	}
	s.Updated = append(s.Updated, item)
	return nil
}

// GetItem returns the configured item or not found.
func (s *MenuRepositoryStub) GetItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	if s.GetItemFn != nil {
		return s.GetItemFn(ctx, id)
	}
	if item, ok := s.Items[id]; ok {
		return item, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByCategory returns every configured item in the category.
func (s *MenuRepositoryStub) ListByCategory(ctx context.Context, categoryID int64) ([]model.MenuItem, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, categoryID)
	}
	var out []model.MenuItem
	for _, item := range s.Items {
		if item.CategoryID == categoryID {
			out = append(out, *item)
		}
	}
	return out, nil
}

// GetStatuses returns statuses from the configured map.
func (s *MenuRepositoryStub) GetStatuses(ctx context.Context, ids []int64) (map[int64]model.ItemStatus, error) {
	if s.GetStatusesFn != nil {
		return s.GetStatusesFn(ctx, ids)
	}
	out := make(map[int64]model.ItemStatus, len(ids))
	for _, id := range ids {
		if status, ok := s.Statuses[id]; ok {
			out[id] = status
		}
	}
	return out, nil
}

// ListComboAssociations returns configured combo memberships for the ids.
func (s *MenuRepositoryStub) ListComboAssociations(ctx context.Context, ids []int64) ([]model.ComboAssociation, error) {
	if s.ListCombosFn != nil {
		return s.ListCombosFn(ctx, ids)
	}
	var out []model.ComboAssociation
	for _, assoc := range s.Combos {
		for _, id := range ids {
			if assoc.ItemID == id {
				out = append(out, assoc)
			}
		}
	}
	return out, nil
}

// DeleteItems records deleted id batches.
func (s *MenuRepositoryStub) DeleteItems(ctx context.Context, ids []int64) error {
	if s.DeleteItemsFn != nil {
		return s.DeleteItemsFn(ctx, ids)
	}
	s.DeletedItems = append(s.DeletedItems, ids)
	return nil
}

// InsertFlavors records inserted flavor batches.
func (s *MenuRepositoryStub) InsertFlavors(ctx context.Context, flavors []model.Flavor) error {
	if s.InsertFlavorFn != nil {
		return s.InsertFlavorFn(ctx, flavors)
	}
	s.Flavors = append(s.Flavors, flavors...)
	return nil
}

// ListFlavors returns configured flavors for the item.
func (s *MenuRepositoryStub) ListFlavors(ctx context.Context, itemID int64) ([]model.Flavor, error) {
	var out []model.Flavor
	for _, f := range s.Flavors {
		if f.ItemID == itemID {
			out = append(out, f)
		}
	}
	return out, nil
}

// DeleteFlavors records deleted flavor batches.
func (s *MenuRepositoryStub) DeleteFlavors(ctx context.Context, itemIDs []int64) error {
	s.DeletedFlavors = append(s.DeletedFlavors, itemIDs)
	return nil
}

// OrderRepositoryStub allows tests to customize order behaviour.
type OrderRepositoryStub struct {
	InsertFn      func(context.Context, *model.Order) error
	InsertLinesFn func(context.Context, []model.OrderLine) error
	ListPendingFn func(context.Context, int) ([]model.Order, error)
	MarkPaidFn    func(context.Context, int64) error
	CancelFn      func(context.Context, int64) error

	mu        sync.Mutex
	Orders    []model.Order
	Lines     []model.OrderLine
	Paid      []int64
	Cancelled []int64
}

// Insert records the order and assigns an id.
func (s *OrderRepositoryStub) Insert(ctx context.Context, order *model.Order) error {
	if s.InsertFn != nil {
		return s.InsertFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order.ID = int64(len(s.Orders) + 1)
	s.Orders = append(s.Orders, *order)
	return nil
}

// InsertLines records the batched line insert.
func (s *OrderRepositoryStub) InsertLines(ctx context.Context, lines []model.OrderLine) error {
	if s.InsertLinesFn != nil {
		return s.InsertLinesFn(ctx, lines)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Lines = append(s.Lines, lines...)
	return nil
}

// GetByID returns the stored order or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByAccount returns the account's orders.
func (s *OrderRepositoryStub) ListByAccount(ctx context.Context, accountID int64) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Order
	for _, o := range s.Orders {
		if o.AccountID == accountID {
			out = append(out, o)
		}
	}
	return out, nil
}

// ListLines returns stored lines of one order.
func (s *OrderRepositoryStub) ListLines(ctx context.Context, orderID int64) ([]model.OrderLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.OrderLine
	for _, l := range s.Lines {
		if l.OrderID == orderID {
			out = append(out, l)
		}
	}
	return out, nil
}

// ListPendingPayment returns stored unpaid pending orders.
func (s *OrderRepositoryStub) ListPendingPayment(ctx context.Context, limit int) ([]model.Order, error) {
	if s.ListPendingFn != nil {
		return s.ListPendingFn(ctx, limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Order
	for _, o := range s.Orders {
		if o.Status == model.OrderStatusPendingPayment && len(out) < limit {
			out = append(out, o)
		}
	}
	return out, nil
}

// MarkPaid records the invocation.
func (s *OrderRepositoryStub) MarkPaid(ctx context.Context, orderID int64) error {
	if s.MarkPaidFn != nil {
		return s.MarkPaidFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Paid = append(s.Paid, orderID)
	return nil
}

// Cancel records the invocation.
func (s *OrderRepositoryStub) Cancel(ctx context.Context, orderID int64) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Cancelled = append(s.Cancelled, orderID)
	return nil
}

// ShopRepositoryStub keeps the shop flag in a field.
type ShopRepositoryStub struct {
	StatusVal model.ShopStatus
	Err       error
}

// Status returns the configured flag.
func (s *ShopRepositoryStub) Status(ctx context.Context) (model.ShopStatus, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if s.StatusVal == "" {
		return model.ShopClosed, nil
	}
	return s.StatusVal, nil
}

// SetStatus stores the flag.
func (s *ShopRepositoryStub) SetStatus(ctx context.Context, status model.ShopStatus) error {
	if s.Err != nil {
		return s.Err
	}
	s.StatusVal = status
	return nil
}

// FactoryStub bundles repository stubs behind the factory contract.
type FactoryStub struct {
	AccountsStub  *AccountRepositoryStub
	AddressesStub *AddressRepositoryStub
	CartsStub     *CartRepositoryStub
	MenuStub      *MenuRepositoryStub
	OrdersStub    *OrderRepositoryStub
	ShopStub      *ShopRepositoryStub
}

// NewFactoryStub constructs a factory with fresh stubs.
func NewFactoryStub() *FactoryStub {
	return &FactoryStub{
		AccountsStub:  NewAccountRepositoryStub(),
		AddressesStub: &AddressRepositoryStub{},
		CartsStub:     &CartRepositoryStub{},
		MenuStub:      &MenuRepositoryStub{},
		OrdersStub:    &OrderRepositoryStub{},
		ShopStub:      &ShopRepositoryStub{},
	}
}

// Accounts returns the account stub.
func (f *FactoryStub) Accounts() repository.AccountRepository { return f.AccountsStub }

// Addresses returns the address stub.
func (f *FactoryStub) Addresses() repository.AddressRepository { return f.AddressesStub }

// Carts returns the cart stub.
func (f *FactoryStub) Carts() repository.CartRepository { return f.CartsStub }

// Menu returns the menu stub.
func (f *FactoryStub) Menu() repository.MenuRepository { return f.MenuStub }

// Orders returns the order stub.
func (f *FactoryStub) Orders() repository.OrderRepository { return f.OrdersStub }

// Shop returns the shop stub.
func (f *FactoryStub) Shop() repository.ShopRepository { return f.ShopStub }

// AtomicStub executes callbacks against the wrapped factory without a real
// transaction, optionally failing before the callback runs.
type AtomicStub struct {
	Factory repository.Factory
	Err     error
	Calls   int
}

// RunAtomic invokes fn against the configured factory.
func (s *AtomicStub) RunAtomic(ctx context.Context, fn func(repository.Factory) error) error {
	s.Calls++
	if s.Err != nil {
		return s.Err
	}
	return fn(s.Factory)
}

var _ repository.Factory = (*FactoryStub)(nil)
var _ repository.Atomic = (*AtomicStub)(nil)
