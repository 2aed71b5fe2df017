package sqldb

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/projectkrs/krs/internal/config"
	"github.com/projectkrs/krs/internal/domain/repository"
)

// Module wires SQL storage and the order repository.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(func(s *Storage) repository.OrderRepository { return s.Orders() }),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return storage.Close()
		},
	})
}
