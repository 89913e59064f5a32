package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/restomart/restomart/internal/adapter/payment"
	"github.com/restomart/restomart/internal/app"
	"github.com/restomart/restomart/internal/config"
	"github.com/restomart/restomart/internal/domain/repository"
	"github.com/restomart/restomart/internal/storage/postgres"
	"github.com/restomart/restomart/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:           ":0",
		DatabaseURI:          "postgres://stub",
		PaymentSystemAddress: "http://localhost",
		AuthSecret:           "secret",
		PaymentPollInterval:  time.Millisecond,
		PaymentTimeout:       time.Minute,
		WorkerPoolSize:       1,
		ShutdownTimeout:      time.Millisecond,
		MaxOrdersBatch:       1,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	repos := test.NewFactoryStub()
	atomic := &test.AtomicStub{Factory: repos}
	paymentStub := &test.PaymentProviderStub{}

	var facade *app.PlatformFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.Factory(repos)),
			fx.Replace(repository.Atomic(atomic)),
			fx.Replace(repository.AccountRepository(repos.AccountsStub)),
			fx.Replace(payment.Client(paymentStub)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected platform facade instance")
	}
}
