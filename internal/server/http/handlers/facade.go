package handlers

import (
	"context"

	"github.com/projectkrs/krs/internal/domain/model"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	SubmitOrder(ctx context.Context, draft model.OrderDraft, selfie *model.Upload, clientIP string) (*model.OrderReceipt, error)
	AttachSelfie(ctx context.Context, code string, upload model.Upload) (string, error)
	Orders(ctx context.Context) ([]model.Order, error)
	Order(ctx context.Context, identifier string) (*model.Order, error)
}

// SelfieFacade provides read access to stored uploads.
type SelfieFacade interface {
	Selfies() ([]string, error)
	SelfiePath(name string) (string, error)
}

// HealthFacade reports whether backing services are reachable.
type HealthFacade interface {
	Ping(ctx context.Context) error
}

// OrderDeskFacade aggregates the full set of operations used across handlers.
type OrderDeskFacade interface {
	OrderFacade
	SelfieFacade
	HealthFacade
}
