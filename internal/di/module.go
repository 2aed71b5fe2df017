package di

import (
	"go.uber.org/fx"

	"github.com/projectkrs/krs/internal/adapter/geo"
	"github.com/projectkrs/krs/internal/app"
	"github.com/projectkrs/krs/internal/config"
	"github.com/projectkrs/krs/internal/logger"
	"github.com/projectkrs/krs/internal/server/http/handlers"
	"github.com/projectkrs/krs/internal/server/http/router"
	"github.com/projectkrs/krs/internal/storage/sqldb"
	"github.com/projectkrs/krs/internal/storage/uploads"
	"github.com/projectkrs/krs/internal/usecase"
)

// Module assembles the application graph; opts are appended last so tests can replace providers.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		sqldb.Module,
		uploads.Module,
		geo.Module,
		usecase.Module,
		fx.Provide(
			func(s *sqldb.Storage) app.HealthChecker { return s },
			func(d *app.OrderDesk) handlers.OrderDeskFacade { return d },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
