package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/projectkrs/krs/internal/domain/model"
	"github.com/projectkrs/krs/internal/domain/repository"
	"github.com/projectkrs/krs/internal/metrics"
)

// SelfieWriter persists an uploaded stream and returns the stored file name.
type SelfieWriter interface {
	Save(r io.Reader, originalName string) (string, error)
}

// LocationResolver produces a best-effort location for a client address.
type LocationResolver interface {
	Resolve(ctx context.Context, ip string) model.Location
}

// OrderUseCase encapsulates order intake and lookup.
type OrderUseCase struct {
	orders  repository.OrderRepository
	selfies SelfieWriter
	geo     LocationResolver
	logger  *slog.Logger
	now     func() time.Time
	newCode func() (string, error)
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, selfies SelfieWriter, geo LocationResolver, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{
		orders:  orders,
		selfies: selfies,
		geo:     geo,
		logger:  logger,
		now:     time.Now,
		newCode: NewOrderCode,
	}
}

// Submit stores a new order. The selfie, when present, is written before the row;
// a failed database write leaves the file behind.
func (u *OrderUseCase) Submit(ctx context.Context, draft model.OrderDraft, selfie *model.Upload, clientIP string) (*model.OrderReceipt, error) {
	timestamp := u.now().Format(model.TimestampLayout)
	code, err := u.newCode()
	if err != nil {
		return nil, err
	}

	order := model.Order{
		Code:      code,
		Items:     draft.Items,
		Total:     draft.Total,
		Customer:  draft.Customer,
		Timestamp: timestamp,
	}

	if selfie != nil {
		name, err := u.selfies.Save(selfie.Content, selfie.Filename)
		if err != nil {
			return nil, fmt.Errorf("store selfie: %w", err)
		}
		metrics.SelfieStored()
		order.SelfieFilename = &name
	}

	if clientIP != "" {
		order.IPAddress = &clientIP
	}
	order.Location = u.geo.Resolve(ctx, clientIP)

	id, err := u.orders.Create(ctx, &order)
	if err != nil {
		return nil, err
	}
	metrics.OrderCreated()
	u.logger.Info("order stored",
		slog.Int64("id", id),
		slog.String("order_code", code),
		slog.Bool("located", order.Location.Known()),
	)

	return &model.OrderReceipt{ID: id, Code: code, Timestamp: timestamp}, nil
}

// AttachSelfie stores the upload and, when code is non-empty, links it to the matching order.
// An unknown code is not an error; the file simply stays unreferenced.
func (u *OrderUseCase) AttachSelfie(ctx context.Context, code string, upload model.Upload) (string, error) {
	name, err := u.selfies.Save(upload.Content, upload.Filename)
	if err != nil {
		return "", fmt.Errorf("store selfie: %w", err)
	}
	metrics.SelfieStored()

	if code == "" {
		return name, nil
	}
	if err := u.orders.UpdateSelfie(ctx, code, name); err != nil {
		return "", err
	}
	return name, nil
}

// List returns all orders, newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// Get finds an order by code or numeric id.
func (u *OrderUseCase) Get(ctx context.Context, identifier string) (*model.Order, error) {
	return u.orders.Find(ctx, identifier)
}
