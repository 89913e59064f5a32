package usecase

import (
	"context"
	"testing"

	"github.com/restomart/restomart/internal/domain/model"
	testhelpers "github.com/restomart/restomart/internal/test"
)

func TestShopStatusRoundTrip(t *testing.T) {
	factory := testhelpers.NewFactoryStub()
	uc := NewShopUseCase(factory)
	ctx := context.Background()

	status, err := uc.Status(ctx)
	if err != nil {
		t.Fatalf("status returned error: %v", err)
	}
	if status != model.ShopClosed {
		t.Fatalf("shop must start closed, got %s", status)
	}

	if err := uc.SetStatus(ctx, model.ShopOpen); err != nil {
		t.Fatalf("set status returned error: %v", err)
	}
	status, err = uc.Status(ctx)
	if err != nil {
		t.Fatalf("status returned error: %v", err)
	}
	if status != model.ShopOpen {
		t.Fatalf("expected open shop, got %s", status)
	}
}
