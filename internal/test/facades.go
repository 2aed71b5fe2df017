package test

import (
	"context"
	"io"
	"sync"

	domainErrors "github.com/projectkrs/krs/internal/domain/errors"
	"github.com/projectkrs/krs/internal/domain/model"
)

// SubmitCall stores the arguments of a SubmitOrder invocation.
type SubmitCall struct {
	Draft    model.OrderDraft
	Selfie   []byte
	Filename string
	ClientIP string
}

// AttachCall stores the arguments of an AttachSelfie invocation.
type AttachCall struct {
	Code     string
	Filename string
	Content  []byte
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	SubmitFn func(context.Context, model.OrderDraft, *model.Upload, string) (*model.OrderReceipt, error)
	AttachFn func(context.Context, string, model.Upload) (string, error)
	OrdersFn func(context.Context) ([]model.Order, error)
	OrderFn  func(context.Context, string) (*model.Order, error)

	mu        sync.Mutex
	Submitted []SubmitCall
	Attached  []AttachCall
}

// SubmitOrder records the call and delegates to SubmitFn or returns a fixed receipt.
func (s *OrderFacadeStub) SubmitOrder(ctx context.Context, draft model.OrderDraft, selfie *model.Upload, clientIP string) (*model.OrderReceipt, error) {
	call := SubmitCall{Draft: draft, ClientIP: clientIP}
	if selfie != nil {
		data, err := io.ReadAll(selfie.Content)
		if err != nil {
			return nil, err
		}
		call.Selfie = data
		call.Filename = selfie.Filename
	}
	s.mu.Lock()
	s.Submitted = append(s.Submitted, call)
	s.mu.Unlock()

	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, draft, selfie, clientIP)
	}
	return &model.OrderReceipt{ID: 1, Code: "ABCDE", Timestamp: "2024-01-02 03:04:05"}, nil
}

// AttachSelfie records the call and delegates to AttachFn or returns "1_{filename}".
func (s *OrderFacadeStub) AttachSelfie(ctx context.Context, code string, upload model.Upload) (string, error) {
	data, err := io.ReadAll(upload.Content)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.Attached = append(s.Attached, AttachCall{Code: code, Filename: upload.Filename, Content: data})
	s.mu.Unlock()

	if s.AttachFn != nil {
		return s.AttachFn(ctx, code, upload)
	}
	return "1_" + upload.Filename, nil
}

// Orders returns predefined orders.
func (s *OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{}, nil
}

// Order returns the configured order or ErrNotFound.
func (s *OrderFacadeStub) Order(ctx context.Context, identifier string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, identifier)
	}
	return nil, domainErrors.ErrNotFound
}

// SelfieFacadeStub serves a fixed name to path mapping.
type SelfieFacadeStub struct {
	Names   []string
	Paths   map[string]string
	ListErr error
	PathErr error
}

// Selfies returns Names or ListErr.
func (s *SelfieFacadeStub) Selfies() ([]string, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	if s.Names == nil {
		return []string{}, nil
	}
	return s.Names, nil
}

// SelfiePath resolves name through Paths.
func (s *SelfieFacadeStub) SelfiePath(name string) (string, error) {
	if s.PathErr != nil {
		return "", s.PathErr
	}
	path, ok := s.Paths[name]
	if !ok {
		return "", domainErrors.ErrNotFound
	}
	return path, nil
}

// HealthFacadeStub reports Err from Ping.
type HealthFacadeStub struct {
	Err error
}

// Ping returns the configured error.
func (s HealthFacadeStub) Ping(context.Context) error {
	return s.Err
}

// OrderDeskFacadeStub aggregates facade dependencies for HTTP layer tests.
type OrderDeskFacadeStub struct {
	*OrderFacadeStub
	*SelfieFacadeStub
	HealthFacadeStub
}

// NewOrderDeskFacadeStub returns a stub with empty order and selfie state.
func NewOrderDeskFacadeStub() OrderDeskFacadeStub {
	return OrderDeskFacadeStub{
		OrderFacadeStub:  &OrderFacadeStub{},
		SelfieFacadeStub: &SelfieFacadeStub{},
	}
}
