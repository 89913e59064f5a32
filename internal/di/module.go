package di

import (
	"go.uber.org/fx"

	"github.com/restomart/restomart/internal/adapter/payment"
	"github.com/restomart/restomart/internal/app"
	"github.com/restomart/restomart/internal/config"
	"github.com/restomart/restomart/internal/logger"
	"github.com/restomart/restomart/internal/pkg/auth"
	"github.com/restomart/restomart/internal/server/http/handlers"
	"github.com/restomart/restomart/internal/server/http/router"
	"github.com/restomart/restomart/internal/storage/postgres"
	"github.com/restomart/restomart/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		payment.Module,
		usecase.Module,
		fx.Provide(func(client payment.Client) app.PaymentProvider { return client }),
		fx.Provide(func(facade *app.PlatformFacade) handlers.PlatformFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
