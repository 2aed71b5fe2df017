package usecase

import (
	"go.uber.org/fx"

	"github.com/projectkrs/krs/internal/adapter/geo"
	"github.com/projectkrs/krs/internal/storage/uploads"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	func(s *uploads.Store) SelfieWriter { return s },
	func(s *uploads.Store) SelfieReader { return s },
	func(r geo.Resolver) LocationResolver { return r },
	NewOrderUseCase,
	NewSelfieUseCase,
)
