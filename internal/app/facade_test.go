package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	domainErrors "github.com/projectkrs/krs/internal/domain/errors"
	"github.com/projectkrs/krs/internal/domain/model"
	testhelpers "github.com/projectkrs/krs/internal/test"
	"github.com/projectkrs/krs/internal/usecase"
)

type healthStub struct{ err error }

func (h healthStub) HealthCheck(context.Context) error { return h.err }

func newFacade(health HealthChecker) (*OrderDesk, *testhelpers.OrderRepositoryStub, *testhelpers.SelfieStoreStub) {
	orders := &testhelpers.OrderRepositoryStub{}
	selfies := &testhelpers.SelfieStoreStub{Stamp: 42}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	orderUC := usecase.NewOrderUseCase(orders, selfies, &testhelpers.LocationResolverStub{}, logger)
	selfieUC := usecase.NewSelfieUseCase(selfies)
	return NewOrderDesk(orderUC, selfieUC, health), orders, selfies
}

func TestOrderDeskOrders(t *testing.T) {
	facade, _, _ := newFacade(healthStub{})

	orders, err := facade.Orders(context.Background())
	if err != nil {
		t.Fatalf("orders: %v", err)
	}
	if orders == nil || len(orders) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", orders)
	}

	receipt, err := facade.SubmitOrder(context.Background(), model.OrderDraft{Customer: model.Customer{Name: "A"}}, nil, "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	got, err := facade.Order(context.Background(), receipt.Code)
	if err != nil || got.Customer.Name != "A" {
		t.Fatalf("unexpected order %+v, %v", got, err)
	}

	if _, err := facade.Order(context.Background(), "nope"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderDeskOrdersError(t *testing.T) {
	facade, repo, _ := newFacade(healthStub{})
	repo.ListFn = func(context.Context) ([]model.Order, error) { return nil, errors.New("locked") }
	if _, err := facade.Orders(context.Background()); err == nil {
		t.Fatal("expected list error")
	}
}

func TestOrderDeskSelfies(t *testing.T) {
	facade, _, store := newFacade(healthStub{})

	name, err := facade.AttachSelfie(context.Background(), "", model.Upload{Filename: "a.jpg", Content: bytes.NewReader([]byte("x"))})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	names, err := facade.Selfies()
	if err != nil || len(names) != 1 || names[0] != name {
		t.Fatalf("unexpected listing %v, %v", names, err)
	}
	if _, err := facade.SelfiePath(name); err != nil {
		t.Fatalf("path: %v", err)
	}
	if _, ok := store.Content(name); !ok {
		t.Fatal("expected upload in store")
	}
}

func TestOrderDeskPing(t *testing.T) {
	facade, _, _ := newFacade(healthStub{})
	if err := facade.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected ping error: %v", err)
	}

	down, _, _ := newFacade(healthStub{err: errors.New("closed")})
	if err := down.Ping(context.Background()); err == nil {
		t.Fatal("expected ping error")
	}
}
