package app

import (
	"context"

	"github.com/projectkrs/krs/internal/domain/model"
	"github.com/projectkrs/krs/internal/usecase"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// OrderDesk is the single entry point the HTTP layer talks to.
type OrderDesk struct {
	orders  *usecase.OrderUseCase
	selfies *usecase.SelfieUseCase
	health  HealthChecker
}

// NewOrderDesk wires the use cases behind a single facade.
func NewOrderDesk(orders *usecase.OrderUseCase, selfies *usecase.SelfieUseCase, health HealthChecker) *OrderDesk {
	return &OrderDesk{orders: orders, selfies: selfies, health: health}
}

// SubmitOrder stores a new order together with its optional selfie.
func (f *OrderDesk) SubmitOrder(ctx context.Context, draft model.OrderDraft, selfie *model.Upload, clientIP string) (*model.OrderReceipt, error) {
	return f.orders.Submit(ctx, draft, selfie, clientIP)
}

// AttachSelfie stores an upload and links it to the order with the given code.
func (f *OrderDesk) AttachSelfie(ctx context.Context, code string, upload model.Upload) (string, error) {
	return f.orders.AttachSelfie(ctx, code, upload)
}

// Orders returns every order, newest first. The result is never nil.
func (f *OrderDesk) Orders(ctx context.Context) ([]model.Order, error) {
	orders, err := f.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

// Order looks up one order by code or numeric id.
func (f *OrderDesk) Order(ctx context.Context, identifier string) (*model.Order, error) {
	return f.orders.Get(ctx, identifier)
}

// Selfies lists stored upload names.
func (f *OrderDesk) Selfies() ([]string, error) {
	return f.selfies.Filenames()
}

// SelfiePath resolves a stored upload name to its file.
func (f *OrderDesk) SelfiePath(name string) (string, error) {
	return f.selfies.Path(name)
}

// Ping checks the database.
func (f *OrderDesk) Ping(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
