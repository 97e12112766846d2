package di

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/finpoint/finpoint/internal/adapter/adnet"
	"github.com/finpoint/finpoint/internal/app"
	"github.com/finpoint/finpoint/internal/config"
	"github.com/finpoint/finpoint/internal/logger"
	"github.com/finpoint/finpoint/internal/pkg/auth"
	"github.com/finpoint/finpoint/internal/server/http/handlers"
	"github.com/finpoint/finpoint/internal/server/http/router"
	"github.com/finpoint/finpoint/internal/storage/postgres"
	"github.com/finpoint/finpoint/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		adnet.Module,
		usecase.Module,
		fx.Provide(
			prometheus.NewRegistry,
			func(client adnet.Client) usecase.AdTaskVerifier { return client },
			func(f *app.FinanceFacade) handlers.FinanceFacade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
