package usecase

import (
	"context"
	"testing"

	"github.com/restomart/restomart/internal/audit"
	domainErrors "github.com/restomart/restomart/internal/domain/errors"
	"github.com/restomart/restomart/internal/domain/model"
	testhelpers "github.com/restomart/restomart/internal/test"
)

func TestAddressCreateAssignsOwner(t *testing.T) {
	factory := testhelpers.NewFactoryStub()
	uc := NewAddressUseCase(factory)

	addr := &model.Address{Consignee: "Alice", Phone: "123", Detail: "Main st 1"}
	if err := uc.Create(audit.WithActor(context.Background(), 7), addr); err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if addr.AccountID != 7 {
		t.Fatalf("address must belong to the actor, got %d", addr.AccountID)
	}
	if addr.ID == 0 {
		t.Fatal("expected id assigned")
	}
}

func TestAddressOperationsRequireActor(t *testing.T) {
	uc := NewAddressUseCase(testhelpers.NewFactoryStub())

	if err := uc.Create(context.Background(), &model.Address{}); err != domainErrors.ErrMissingActor {
		t.Fatalf("expected ErrMissingActor from create, got %v", err)
	}
	if _, err := uc.List(context.Background()); err != domainErrors.ErrMissingActor {
		t.Fatalf("expected ErrMissingActor from list, got %v", err)
	}
}

func TestAddressListScopedToActor(t *testing.T) {
	factory := testhelpers.NewFactoryStub()
	factory.AddressesStub.Items = []model.Address{
		{ID: 1, AccountID: 7},
		{ID: 2, AccountID: 8},
	}
	uc := NewAddressUseCase(factory)

	addrs, err := uc.List(audit.WithActor(context.Background(), 7))
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(addrs) != 1 || addrs[0].ID != 1 {
		t.Fatalf("expected only own addresses, got %+v", addrs)
	}
}
