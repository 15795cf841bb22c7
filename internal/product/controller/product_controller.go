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
	"retail/internal/validation"
)

type ProductUseCase interface {
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, bool, error)
	Delete(ctx context.Context, id string) error
}

type Authorizer interface {
	Authorize(supplied string) error
}

type ProductController struct {
	useCase   ProductUseCase
	gate      Authorizer
	validator *validation.Validator
	logger    *zap.Logger
}

func NewProductController(useCase ProductUseCase, gate Authorizer, validator *validation.Validator, logger *zap.Logger) *ProductController {
	return &ProductController{
		useCase:   useCase,
		gate:      gate,
		validator: validator,
		logger:    logger,
	}
}

// Routes mounts the product endpoints; reads are public, writes need the
// admin key.
func (c *ProductController) Routes(r chi.Router) {
	r.Get("/", c.List)
	r.Post("/", c.Create)
	r.Get("/{id}", c.Get)
	r.Patch("/{id}", c.Update)
	r.Delete("/{id}", c.Delete)
}

func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.ProductFilter{
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
	}

	products, err := c.useCase.List(r.Context(), filter)
	if err != nil {
		httpx.WriteError(w, r, err, c.requestLogger(r))
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dto.NewProductListResponse(products), c.logger)
}

func (c *ProductController) Get(w http.ResponseWriter, r *http.Request) {
	product, err := c.useCase.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, r, err, c.requestLogger(r))
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dto.NewProductResponse(*product), c.logger)
}

func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger(r)

	var req dto.CreateProductRequest
	if err := c.decodeAndValidate(r, &req); err != nil {
		logger.Warn("invalid create product request", zap.Error(err))
		httpx.WriteError(w, r, err, logger)
		return
	}

	if err := c.gate.Authorize(r.Header.Get(auth.AdminKeyHeader)); err != nil {
		logger.Warn("admin key rejected", zap.String("operation", "create_product"))
		httpx.WriteError(w, r, err, logger)
		return
	}

	created, err := c.useCase.Create(r.Context(), req.ToDomain())
	if err != nil {
		httpx.WriteError(w, r, err, logger)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dto.NewProductResponse(*created), c.logger)
}

func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger(r)

	var req dto.UpdateProductRequest
	if err := c.decodeAndValidate(r, &req); err != nil {
		logger.Warn("invalid update product request", zap.Error(err))
		httpx.WriteError(w, r, err, logger)
		return
	}

	if err := c.gate.Authorize(r.Header.Get(auth.AdminKeyHeader)); err != nil {
		logger.Warn("admin key rejected", zap.String("operation", "update_product"))
		httpx.WriteError(w, r, err, logger)
		return
	}

	product, updated, err := c.useCase.Update(r.Context(), chi.URLParam(r, "id"), req.ToPatch())
	if err != nil {
		httpx.WriteError(w, r, err, logger)
		return
	}

	if !updated {
		httpx.WriteJSON(w, http.StatusOK, dto.UpdatedResponse{Updated: false}, c.logger)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dto.NewProductResponse(*product), c.logger)
}

func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger(r)

	if err := c.gate.Authorize(r.Header.Get(auth.AdminKeyHeader)); err != nil {
		logger.Warn("admin key rejected", zap.String("operation", "delete_product"))
		httpx.WriteError(w, r, err, logger)
		return
	}

	if err := c.useCase.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.WriteError(w, r, err, logger)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, dto.DeletedResponse{Deleted: true}, c.logger)
}

func (c *ProductController) decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := validation.DecodeJSON(r.Body, dst); err != nil {
		return err
	}
	return c.validator.Struct(dst)
}

func (c *ProductController) requestLogger(r *http.Request) *zap.Logger {
	return c.logger.With(zap.String("traceId", httpx.TraceID(r.Context())))
}
