package geo

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/projectkrs/krs/internal/config"
)

// Module exposes the geolocation resolver to the fx graph.
var Module = fx.Provide(newResolver)

type resolverParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newResolver(p resolverParams) (Resolver, error) {
	return NewHTTPResolver(p.Config.GeoBaseURL, p.Config.GeoTimeout, p.Logger)
}
