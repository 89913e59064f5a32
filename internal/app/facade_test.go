package app

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/restomart/restomart/internal/audit"
	domainErrors "github.com/restomart/restomart/internal/domain/errors"
	"github.com/restomart/restomart/internal/domain/model"
	testhelpers "github.com/restomart/restomart/internal/test"
	"github.com/restomart/restomart/internal/usecase"
)

func newFacade() (*PlatformFacade, *testhelpers.FactoryStub, *testhelpers.PaymentProviderStub) {
	repos := testhelpers.NewFactoryStub()
	atomic := &testhelpers.AtomicStub{Factory: repos}

	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, string, error) {
		return 99, string(model.RoleAdmin), nil
	}}
	authUC := usecase.NewAuthUseCase(repos.AccountsStub, testhelpers.HasherStub{}, strategy)
	menuUC := usecase.NewMenuUseCase(atomic, repos)
	cartUC := usecase.NewCartUseCase(repos)
	addressUC := usecase.NewAddressUseCase(repos)
	checkoutUC := usecase.NewCheckoutUseCase(atomic, repos)
	shopUC := usecase.NewShopUseCase(repos)

	payments := &testhelpers.PaymentProviderStub{}
	facade := NewPlatformFacade(authUC, menuUC, cartUC, addressUC, checkoutUC, shopUC, payments)
	return facade, repos, payments
}

func actorCtx(id int64) context.Context {
	return audit.WithActor(context.Background(), id)
}

func TestPlatformFacadeAuth(t *testing.T) {
	facade, repos, _ := newFacade()
	token, err := facade.Register(context.Background(), "user", "pass", "User")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	stored, err := repos.AccountsStub.GetByLogin(context.Background(), "user")
	if err != nil {
		t.Fatalf("account not stored: %v", err)
	}
	if stored.Role != model.RoleCustomer {
		t.Fatalf("expected customer role, got %s", stored.Role)
	}

	if _, err = facade.Authenticate(context.Background(), "user", "pass"); err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}

	id, role, err := facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 99 || role != model.RoleAdmin {
		t.Fatalf("unexpected parse result id=%d role=%s", id, role)
	}
}

func TestPlatformFacadeStaff(t *testing.T) {
	facade, _, _ := newFacade()

	if _, err := facade.CreateStaff(context.Background(), "staff", "pass", "Staff"); !errors.Is(err, domainErrors.ErrMissingActor) {
		t.Fatalf("expected missing actor error, got %v", err)
	}

	acc, err := facade.CreateStaff(actorCtx(9), "staff", "pass", "Staff")
	if err != nil {
		t.Fatalf("create staff returned error: %v", err)
	}
	if acc.Role != model.RoleAdmin || acc.CreatedBy != 9 {
		t.Fatalf("unexpected staff account %+v", acc)
	}

	renamed, err := facade.UpdateStaff(actorCtx(9), acc.ID, "Renamed")
	if err != nil {
		t.Fatalf("update staff returned error: %v", err)
	}
	if renamed.Name != "Renamed" {
		t.Fatalf("unexpected name %q", renamed.Name)
	}
}

func TestPlatformFacadeMenu(t *testing.T) {
	facade, repos, _ := newFacade()

	item := &model.MenuItem{Name: "soup", CategoryID: 2, Price: decimal.NewFromInt(5)}
	if err := facade.SaveDish(actorCtx(9), item); err != nil {
		t.Fatalf("save dish returned error: %v", err)
	}
	if len(repos.MenuStub.Inserted) != 1 {
		t.Fatalf("expected dish inserted")
	}

	repos.MenuStub.Items = map[int64]*model.MenuItem{item.ID: item}
	repos.MenuStub.Statuses = map[int64]model.ItemStatus{item.ID: model.ItemStatusDisabled}

	got, err := facade.Dish(context.Background(), item.ID)
	if err != nil || got.Name != "soup" {
		t.Fatalf("unexpected dish %+v err=%v", got, err)
	}

	if err := facade.SetDishStatus(actorCtx(9), item.ID, model.ItemStatusEnabled); err != nil {
		t.Fatalf("set status returned error: %v", err)
	}

	if err := facade.DeleteDishes(actorCtx(9), []int64{item.ID}); err != nil {
		t.Fatalf("delete dishes returned error: %v", err)
	}
	if len(repos.MenuStub.DeletedItems) != 1 {
		t.Fatalf("expected delete call")
	}
}

func TestPlatformFacadeCartAndCheckout(t *testing.T) {
	facade, repos, _ := newFacade()
	ctx := actorCtx(7)

	repos.MenuStub.Items = map[int64]*model.MenuItem{
		100: {ID: 100, Name: "soup", Price: decimal.NewFromInt(5), Status: model.ItemStatusEnabled},
	}
	repos.AddressesStub.Items = []model.Address{{ID: 10, AccountID: 7, Consignee: "Alice", Phone: "123", Detail: "Main st 1"}}

	if err := facade.AddToCart(ctx, 100, "hot"); err != nil {
		t.Fatalf("add to cart returned error: %v", err)
	}
	lines, err := facade.CartLines(ctx)
	if err != nil || len(lines) != 1 {
		t.Fatalf("unexpected cart %v err=%v", lines, err)
	}

	summary, err := facade.SubmitOrder(ctx, 10, "no onions")
	if err != nil {
		t.Fatalf("submit order returned error: %v", err)
	}
	if summary.OrderID == 0 || !summary.Amount.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("unexpected summary %+v", summary)
	}

	orders, err := facade.Orders(ctx)
	if err != nil || len(orders) != 1 {
		t.Fatalf("unexpected orders %v err=%v", orders, err)
	}

	pending, err := facade.PendingOrders(context.Background(), 10)
	if err != nil || len(pending) != 1 {
		t.Fatalf("unexpected pending %v err=%v", pending, err)
	}

	if err := facade.MarkOrderPaid(context.Background(), summary.OrderID); err != nil {
		t.Fatalf("mark paid returned error: %v", err)
	}
	if err := facade.CancelOrder(context.Background(), summary.OrderID); err != nil {
		t.Fatalf("cancel returned error: %v", err)
	}
}

func TestPlatformFacadeAddresses(t *testing.T) {
	facade, _, _ := newFacade()
	ctx := actorCtx(7)

	addr := &model.Address{Consignee: "Alice", Phone: "123", Detail: "Main st 1"}
	if err := facade.CreateAddress(ctx, addr); err != nil {
		t.Fatalf("create address returned error: %v", err)
	}
	if addr.AccountID != 7 {
		t.Fatalf("expected owner 7, got %d", addr.AccountID)
	}

	list, err := facade.Addresses(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("unexpected addresses %v err=%v", list, err)
	}
}

func TestPlatformFacadeShop(t *testing.T) {
	facade, _, _ := newFacade()

	status, err := facade.ShopStatus(context.Background())
	if err != nil || status != model.ShopClosed {
		t.Fatalf("unexpected status %s err=%v", status, err)
	}

	if err := facade.SetShopStatus(context.Background(), model.ShopOpen); err != nil {
		t.Fatalf("set status returned error: %v", err)
	}
	status, _ = facade.ShopStatus(context.Background())
	if status != model.ShopOpen {
		t.Fatalf("expected open shop, got %s", status)
	}
}

func TestPlatformFacadePayments(t *testing.T) {
	facade, _, payments := newFacade()
	payments.Payment = &model.Payment{Order: "1700-abc", Status: model.PaymentStatusPaid}

	result, err := facade.CheckPayment(context.Background(), "1700-abc")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if result.Order != "1700-abc" {
		t.Fatalf("unexpected payment %v", result)
	}
}
