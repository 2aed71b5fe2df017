package repository

import (
	"context"

	"github.com/projectkrs/krs/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create inserts the order and returns the identifier assigned by the store.
	Create(ctx context.Context, order *model.Order) (int64, error)
	// UpdateSelfie sets selfie_filename on orders matching code. No match is not an error.
	UpdateSelfie(ctx context.Context, code, filename string) error
	// List returns all orders, newest id first.
	List(ctx context.Context) ([]model.Order, error)
	// Find matches identifier against order_code first and then against id.
	Find(ctx context.Context, identifier string) (*model.Order, error)
}
