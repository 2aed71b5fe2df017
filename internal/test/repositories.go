package test

import (
	"context"
	"sort"
	"strconv"
	"sync"

	domainErrors "github.com/projectkrs/krs/internal/domain/errors"
	"github.com/projectkrs/krs/internal/domain/model"
)

// OrderRepositoryStub keeps orders in memory and lets tests override each call.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, *model.Order) (int64, error)
	UpdateSelfieFn func(context.Context, string, string) error
	ListFn         func(context.Context) ([]model.Order, error)
	FindFn         func(context.Context, string) (*model.Order, error)

	mu     sync.Mutex
	nextID int64
	Orders []model.Order
}

// Create stores a copy of the order with the next sequential id.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (int64, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	order.ID = s.nextID
	s.Orders = append(s.Orders, *order)
	return order.ID, nil
}

// UpdateSelfie sets the selfie on every order carrying code.
func (s *OrderRepositoryStub) UpdateSelfie(ctx context.Context, code, filename string) error {
	if s.UpdateSelfieFn != nil {
		return s.UpdateSelfieFn(ctx, code, filename)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Orders {
		if s.Orders[i].Code == code {
			name := filename
			s.Orders[i].SelfieFilename = &name
		}
	}
	return nil
}

// List returns stored orders by descending id.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]model.Order{}, s.Orders...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// Find matches code first and numeric id second.
func (s *OrderRepositoryStub) Find(ctx context.Context, identifier string) (*model.Order, error) {
	if s.FindFn != nil {
		return s.FindFn(ctx, identifier)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.Orders {
		if o.Code == identifier {
			order := o
			return &order, nil
		}
	}
	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		for _, o := range s.Orders {
			if o.ID == id {
				order := o
				return &order, nil
			}
		}
	}
	return nil, domainErrors.ErrNotFound
}
