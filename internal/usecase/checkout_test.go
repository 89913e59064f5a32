package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/restomart/restomart/internal/audit"
	domainErrors "github.com/restomart/restomart/internal/domain/errors"
	"github.com/restomart/restomart/internal/domain/model"
	testhelpers "github.com/restomart/restomart/internal/test"
)

func newCheckoutFixture() (*CheckoutUseCase, *testhelpers.FactoryStub) {
	factory := testhelpers.NewFactoryStub()
	uc := NewCheckoutUseCase(&testhelpers.AtomicStub{Factory: factory}, factory)
	uc.now = func() time.Time { return time.Unix(1700000000, 0) }
	return uc, factory
}

func seedCart(factory *testhelpers.FactoryStub, accountID int64) {
	factory.AddressesStub.Items = []model.Address{
		{ID: 10, AccountID: accountID, Consignee: "Alice", Phone: "123", Detail: "Main st 1"},
	}
	factory.CartsStub.Lines = []model.CartLine{
		{ID: 1, AccountID: accountID, ItemID: 100, Name: "soup", Quantity: 2, UnitPrice: decimal.NewFromInt(5)},
		{ID: 2, AccountID: accountID, ItemID: 101, Name: "tea", Flavor: "sweet", Quantity: 1, UnitPrice: decimal.NewFromInt(3)},
	}
}

func TestCheckoutSubmitSuccess(t *testing.T) {
	uc, factory := newCheckoutFixture()
	seedCart(factory, 7)
	ctx := audit.WithActor(context.Background(), 7)

	summary, err := uc.Submit(ctx, 10, "no onions")
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if summary.OrderID == 0 || summary.Number == "" {
		t.Fatalf("incomplete summary: %+v", summary)
	}
	if !summary.Amount.Equal(decimal.NewFromInt(13)) {
		t.Fatalf("expected amount 13, got %s", summary.Amount)
	}

	if len(factory.OrdersStub.Orders) != 1 {
		t.Fatalf("expected exactly one order, got %d", len(factory.OrdersStub.Orders))
	}
	order := factory.OrdersStub.Orders[0]
	if order.AccountID != 7 || order.AddressID != 10 {
		t.Fatalf("order misses ownership data: %+v", order)
	}
	if order.Status != model.OrderStatusPendingPayment || order.PayStatus != model.PayStatusUnpaid {
		t.Fatalf("fresh order must await payment, got %s/%s", order.Status, order.PayStatus)
	}
	if order.Consignee != "Alice" || order.Phone != "123" {
		t.Fatalf("address snapshot missing: %+v", order)
	}

	if len(factory.OrdersStub.Lines) != 2 {
		t.Fatalf("expected 2 order lines, got %d", len(factory.OrdersStub.Lines))
	}
	for _, line := range factory.OrdersStub.Lines {
		if line.OrderID != order.ID {
			t.Fatalf("line not attached to the order: %+v", line)
		}
	}

	if len(factory.CartsStub.Cleared) != 1 || factory.CartsStub.Cleared[0] != 7 {
		t.Fatalf("cart must be cleared for the actor, got %v", factory.CartsStub.Cleared)
	}
}

func TestCheckoutSubmitMissingActor(t *testing.T) {
	uc, factory := newCheckoutFixture()
	seedCart(factory, 7)

	if _, err := uc.Submit(context.Background(), 10, ""); err != domainErrors.ErrMissingActor {
		t.Fatalf("expected ErrMissingActor, got %v", err)
	}
	if len(factory.OrdersStub.Orders) != 0 {
		t.Fatal("no order may be written without an actor")
	}
}

func TestCheckoutSubmitUnknownAddress(t *testing.T) {
	uc, factory := newCheckoutFixture()
	seedCart(factory, 7)
	ctx := audit.WithActor(context.Background(), 7)

	if _, err := uc.Submit(ctx, 999, ""); !errors.Is(err, domainErrors.ErrAddressMissing) {
		t.Fatalf("expected ErrAddressMissing, got %v", err)
	}
	if len(factory.OrdersStub.Orders) != 0 || len(factory.CartsStub.Cleared) != 0 {
		t.Fatal("validation failure must abort before any write")
	}
}

func TestCheckoutSubmitEmptyCart(t *testing.T) {
	uc, factory := newCheckoutFixture()
	factory.AddressesStub.Items = []model.Address{{ID: 10, AccountID: 7}}
	ctx := audit.WithActor(context.Background(), 7)

	if _, err := uc.Submit(ctx, 10, ""); !errors.Is(err, domainErrors.ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
	if len(factory.OrdersStub.Orders) != 0 {
		t.Fatal("empty cart must not produce an order")
	}
}

func TestCheckoutSubmitFailurePropagates(t *testing.T) {
	boom := errors.New("insert failed")

	cases := []struct {
		name string
		prep func(*testhelpers.FactoryStub)
	}{
		{
			name: "order insert",
			prep: func(f *testhelpers.FactoryStub) {
				f.OrdersStub.InsertFn = func(context.Context, *model.Order) error { return boom }
			},
		},
		{
			name: "line insert",
			prep: func(f *testhelpers.FactoryStub) {
				f.OrdersStub.InsertLinesFn = func(context.Context, []model.OrderLine) error { return boom }
			},
		},
		{
			name: "cart clear",
			prep: func(f *testhelpers.FactoryStub) {
				f.CartsStub.ClearFn = func(context.Context, int64) error { return boom }
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, factory := newCheckoutFixture()
			seedCart(factory, 7)
			tc.prep(factory)
			ctx := audit.WithActor(context.Background(), 7)

			summary, err := uc.Submit(ctx, 10, "")
			if !errors.Is(err, boom) {
				t.Fatalf("expected write failure to surface, got %v", err)
			}
			if summary != nil {
				t.Fatal("failed submit must not return a summary")
			}
		})
	}
}

func TestCheckoutSubmitUniqueNumbers(t *testing.T) {
	uc, factory := newCheckoutFixture()
	ctx := audit.WithActor(context.Background(), 7)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		seedCart(factory, 7)
		summary, err := uc.Submit(ctx, 10, "")
		if err != nil {
			t.Fatalf("submit %d returned error: %v", i, err)
		}
		if seen[summary.Number] {
			t.Fatalf("duplicate order number %q", summary.Number)
		}
		seen[summary.Number] = true
	}
}

func TestCheckoutOrdersRequiresActor(t *testing.T) {
	uc, _ := newCheckoutFixture()
	if _, err := uc.Orders(context.Background()); err != domainErrors.ErrMissingActor {
		t.Fatalf("expected ErrMissingActor, got %v", err)
	}
}

func TestCheckoutOrdersListsOwnOrders(t *testing.T) {
	uc, factory := newCheckoutFixture()
	factory.OrdersStub.Orders = []model.Order{
		{ID: 1, AccountID: 7, Number: "a"},
		{ID: 2, AccountID: 8, Number: "b"},
	}

	orders, err := uc.Orders(audit.WithActor(context.Background(), 7))
	if err != nil {
		t.Fatalf("orders returned error: %v", err)
	}
	if len(orders) != 1 || orders[0].Number != "a" {
		t.Fatalf("expected only own orders, got %+v", orders)
	}
}

func TestCheckoutPaymentTransitions(t *testing.T) {
	uc, factory := newCheckoutFixture()
	ctx := context.Background()

	if err := uc.MarkPaid(ctx, 5); err != nil {
		t.Fatalf("mark paid returned error: %v", err)
	}
	if err := uc.Cancel(ctx, 6); err != nil {
		t.Fatalf("cancel returned error: %v", err)
	}
	if len(factory.OrdersStub.Paid) != 1 || factory.OrdersStub.Paid[0] != 5 {
		t.Fatalf("unexpected paid calls: %v", factory.OrdersStub.Paid)
	}
	if len(factory.OrdersStub.Cancelled) != 1 || factory.OrdersStub.Cancelled[0] != 6 {
		t.Fatalf("unexpected cancel calls: %v", factory.OrdersStub.Cancelled)
	}
}
