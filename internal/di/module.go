package di

import (
	"go.uber.org/fx"

	"github.com/shopperhq/shopper/internal/app"
	"github.com/shopperhq/shopper/internal/config"
	"github.com/shopperhq/shopper/internal/logger"
	"github.com/shopperhq/shopper/internal/pkg/auth"
	"github.com/shopperhq/shopper/internal/server/http/handlers"
	"github.com/shopperhq/shopper/internal/server/http/router"
	"github.com/shopperhq/shopper/internal/storage/postgres"
	"github.com/shopperhq/shopper/internal/usecase"
)

// Module assembles the full dependency graph of the service.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.StorefrontFacade) handlers.StorefrontFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
