package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"retail/internal/domain"
	apperrors "retail/internal/errors"
)

type OrderRepository interface {
	Insert(ctx context.Context, o domain.Order) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	Find(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, patch domain.OrderStatusPatch) error
}

type PlaceOrderInput struct {
	Items         []domain.OrderItem
	Customer      domain.Customer
	PaymentMethod string
}

type OrderUseCase struct {
	repo   OrderRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewOrderUseCase(repo OrderRepository, logger *zap.Logger) *OrderUseCase {
	return &OrderUseCase{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Place records a cash-on-delivery order. Line prices are taken as submitted
// and the total is fixed at this point.
func (uc *OrderUseCase) Place(ctx context.Context, in PlaceOrderInput) (*domain.Order, error) {
	if in.PaymentMethod != domain.PaymentMethodCOD {
		return nil, apperrors.NewValidationError("Only COD is supported", apperrors.ValidationDetail{
			Field:   "payment_method",
			Message: "payment_method must be COD",
		})
	}

	if len(in.Items) == 0 {
		return nil, apperrors.NewValidationError("Cart is empty", apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	placedAt := uc.now()
	order := domain.Order{
		Items:         in.Items,
		Customer:      in.Customer,
		PaymentMethod: domain.PaymentMethodCOD,
		Status:        domain.OrderStatusNew,
		Total:         domain.CalculateTotal(in.Items),
		Currency:      domain.DefaultCurrency,
		PlacedAt:      &placedAt,
	}

	id, err := uc.repo.Insert(ctx, order)
	if err != nil {
		return nil, err
	}

	placed, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order placed",
		zap.String("orderId", id),
		zap.Int("itemCount", len(placed.Items)),
		zap.Float64("total", placed.Total),
	)
	return placed, nil
}

func (uc *OrderUseCase) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	return uc.repo.Find(ctx, filter)
}

func (uc *OrderUseCase) Get(ctx context.Context, id string) (*domain.Order, error) {
	return uc.repo.FindByID(ctx, id)
}

// UpdateStatus applies patch and returns the updated order. Statuses outside
// the documented lifecycle are stored as given.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id string, patch domain.OrderStatusPatch) (*domain.Order, error) {
	if patch.IsEmpty() {
		return nil, apperrors.NewValidationError("status or tracking_note is required", apperrors.ValidationDetail{
			Field:   "status",
			Message: "at least one of status, tracking_note must be supplied",
		})
	}

	if patch.Status != nil && !domain.IsKnownOrderStatus(*patch.Status) {
		uc.logger.Warn("order status outside known lifecycle", zap.String("orderId", id), zap.String("status", *patch.Status))
	}

	if err := uc.repo.UpdateStatus(ctx, id, patch); err != nil {
		return nil, err
	}

	updated, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order status updated", zap.String("orderId", id), zap.String("status", updated.Status))
	return updated, nil
}
