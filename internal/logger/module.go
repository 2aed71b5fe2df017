package logger

import "go.uber.org/fx"

// Module wires slog logger for dependency injection and hands it to fx itself.
var Module = fx.Options(
	fx.Provide(New),
	fx.WithLogger(FxLogger),
)
