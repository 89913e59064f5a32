package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/restomart/restomart/internal/audit"
	domainErrors "github.com/restomart/restomart/internal/domain/errors"
	"github.com/restomart/restomart/internal/domain/model"
	testhelpers "github.com/restomart/restomart/internal/test"
)

func newCartFixture() (*CartUseCase, *testhelpers.FactoryStub) {
	factory := testhelpers.NewFactoryStub()
	factory.MenuStub.Items = map[int64]*model.MenuItem{
		100: {ID: 100, Name: "soup", Price: decimal.NewFromInt(5), Status: model.ItemStatusEnabled},
	}
	return NewCartUseCase(factory), factory
}

func TestCartAddSnapshotsMenuItem(t *testing.T) {
	uc, factory := newCartFixture()
	ctx := audit.WithActor(context.Background(), 7)

	if err := uc.Add(ctx, 100, "extra hot"); err != nil {
		t.Fatalf("add returned error: %v", err)
	}

	if len(factory.CartsStub.Lines) != 1 {
		t.Fatalf("expected one line, got %d", len(factory.CartsStub.Lines))
	}
	line := factory.CartsStub.Lines[0]
	if line.AccountID != 7 || line.ItemID != 100 || line.Quantity != 1 {
		t.Fatalf("unexpected line: %+v", line)
	}
	if line.Name != "soup" || !line.UnitPrice.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("menu snapshot missing: %+v", line)
	}
}

func TestCartAddSameSelectionIncrementsQuantity(t *testing.T) {
	uc, factory := newCartFixture()
	ctx := audit.WithActor(context.Background(), 7)

	for i := 0; i < 3; i++ {
		if err := uc.Add(ctx, 100, "extra hot"); err != nil {
			t.Fatalf("add %d returned error: %v", i, err)
		}
	}

	if len(factory.CartsStub.Lines) != 1 {
		t.Fatalf("same item+flavor must stay one line, got %d", len(factory.CartsStub.Lines))
	}
	if factory.CartsStub.Lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", factory.CartsStub.Lines[0].Quantity)
	}
}

func TestCartAddDifferentFlavorsSplitLines(t *testing.T) {
	uc, factory := newCartFixture()
	ctx := audit.WithActor(context.Background(), 7)

	if err := uc.Add(ctx, 100, "mild"); err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if err := uc.Add(ctx, 100, "hot"); err != nil {
		t.Fatalf("add returned error: %v", err)
	}

	if len(factory.CartsStub.Lines) != 2 {
		t.Fatalf("different flavors must create separate lines, got %d", len(factory.CartsStub.Lines))
	}
}

func TestCartAddUnknownItem(t *testing.T) {
	uc, _ := newCartFixture()
	ctx := audit.WithActor(context.Background(), 7)

	if err := uc.Add(ctx, 404, ""); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCartOperationsRequireActor(t *testing.T) {
	uc, _ := newCartFixture()
	ctx := context.Background()

	if err := uc.Add(ctx, 100, ""); err != domainErrors.ErrMissingActor {
		t.Fatalf("expected ErrMissingActor from add, got %v", err)
	}
	if _, err := uc.List(ctx); err != domainErrors.ErrMissingActor {
		t.Fatalf("expected ErrMissingActor from list, got %v", err)
	}
	if err := uc.Clear(ctx); err != domainErrors.ErrMissingActor {
		t.Fatalf("expected ErrMissingActor from clear, got %v", err)
	}
}

func TestCartListAndClearScopedToActor(t *testing.T) {
	uc, factory := newCartFixture()
	factory.CartsStub.Lines = []model.CartLine{
		{ID: 1, AccountID: 7, ItemID: 100, Quantity: 1},
		{ID: 2, AccountID: 8, ItemID: 100, Quantity: 2},
	}

	lines, err := uc.List(audit.WithActor(context.Background(), 7))
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(lines) != 1 || lines[0].AccountID != 7 {
		t.Fatalf("expected only own lines, got %+v", lines)
	}

	if err := uc.Clear(audit.WithActor(context.Background(), 7)); err != nil {
		t.Fatalf("clear returned error: %v", err)
	}
	if len(factory.CartsStub.Lines) != 1 || factory.CartsStub.Lines[0].AccountID != 8 {
		t.Fatalf("clear must not touch other carts, got %+v", factory.CartsStub.Lines)
	}
}
