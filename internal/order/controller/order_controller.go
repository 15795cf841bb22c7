package controller

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"retail/internal/auth"
	"retail/internal/domain"
	"retail/internal/dto"
	"retail/internal/httpx"
	"retail/internal/order/usecase"
	"retail/internal/validation"
)

type OrderUseCase interface {
	Place(ctx context.Context, in usecase.PlaceOrderInput) (*domain.Order, error)
	List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, patch domain.OrderStatusPatch) (*domain.Order, error)
}

type Authorizer interface {
	Authorize(supplied string) error
}

type OrderController struct {
	useCase   OrderUseCase
	gate      Authorizer
	validator *validation.Validator
	logger    *zap.Logger
}

func NewOrderController(useCase OrderUseCase, gate Authorizer, validator *validation.Validator, logger *zap.Logger) *OrderController {
	return &OrderController{
		useCase:   useCase,
		gate:      gate,
		validator: validator,
		logger:    logger,
	}
}

// Routes mounts the order endpoints. Placing an order is public; everything
// else needs the admin key.
func (c *OrderController) Routes(r chi.Router) {
	r.Post("/", c.Place)
	r.Get("/", c.List)
	r.Get("/{id}", c.Get)
	r.Patch("/{id}", c.UpdateStatus)
}

func (c *OrderController) Place(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger(r)

	var req dto.PlaceOrderRequest
	if err := validation.DecodeJSON(r.Body, &req); err != nil {
		logger.Warn("invalid place order request", zap.Error(err))
		httpx.WriteError(w, r, err, logger)
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		logger.Warn("invalid place order request", zap.Error(err))
		httpx.WriteError(w, r, err, logger)
		return
	}

	order, err := c.useCase.Place(r.Context(), usecase.PlaceOrderInput{
		Items:         req.ToItems(),
		Customer:      req.ToCustomer(),
		PaymentMethod: req.PaymentMethodOrDefault(),
	})
	if err != nil {
		httpx.WriteError(w, r, err, logger)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dto.NewOrderResponse(*order), c.logger)
}

func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger(r)

	if err := c.gate.Authorize(r.Header.Get(auth.AdminKeyHeader)); err != nil {
		logger.Warn("admin key rejected", zap.String("operation", "list_orders"))
		httpx.WriteError(w, r, err, logger)
		return
	}

	orders, err := c.useCase.List(r.Context(), domain.OrderFilter{Status: r.URL.Query().Get("status")})
	if err != nil {
		httpx.WriteError(w, r, err, logger)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dto.NewOrderListResponse(orders), c.logger)
}

func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger(r)

	if err := c.gate.Authorize(r.Header.Get(auth.AdminKeyHeader)); err != nil {
		logger.Warn("admin key rejected", zap.String("operation", "get_order"))
		httpx.WriteError(w, r, err, logger)
		return
	}

	order, err := c.useCase.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, r, err, logger)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dto.NewOrderResponse(*order), c.logger)
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger(r)

	var req dto.UpdateOrderStatusRequest
	if err := validation.DecodeJSON(r.Body, &req); err != nil {
		logger.Warn("invalid order status request", zap.Error(err))
		httpx.WriteError(w, r, err, logger)
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		logger.Warn("invalid order status request", zap.Error(err))
		httpx.WriteError(w, r, err, logger)
		return
	}

	if err := c.gate.Authorize(r.Header.Get(auth.AdminKeyHeader)); err != nil {
		logger.Warn("admin key rejected", zap.String("operation", "update_order_status"))
		httpx.WriteError(w, r, err, logger)
		return
	}

	order, err := c.useCase.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.ToPatch())
	if err != nil {
		httpx.WriteError(w, r, err, logger)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dto.NewOrderResponse(*order), c.logger)
}

func (c *OrderController) requestLogger(r *http.Request) *zap.Logger {
	return c.logger.With(zap.String("traceId", httpx.TraceID(r.Context())))
}
