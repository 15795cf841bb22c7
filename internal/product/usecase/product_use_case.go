package usecase

import (
	"context"

	"go.uber.org/zap"

	"retail/internal/domain"
)

type ProductRepository interface {
	Insert(ctx context.Context, p domain.Product) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Find(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch) error
	Delete(ctx context.Context, id string) error
}

type ProductUseCase struct {
	repo   ProductRepository
	logger *zap.Logger
}

func NewProductUseCase(repo ProductRepository, logger *zap.Logger) *ProductUseCase {
	return &ProductUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *ProductUseCase) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return uc.repo.Find(ctx, filter)
}

func (uc *ProductUseCase) Get(ctx context.Context, id string) (*domain.Product, error) {
	return uc.repo.FindByID(ctx, id)
}

// Create stores p and returns the stored document so that the generated id
// and store timestamps are visible to the caller.
func (uc *ProductUseCase) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	id, err := uc.repo.Insert(ctx, p)
	if err != nil {
		return nil, err
	}

	created, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("product created", zap.String("productId", id), zap.String("category", created.Category))
	return created, nil
}

// Update applies patch and returns the updated product. updated is false,
// and the store untouched, when the patch carries no fields.
func (uc *ProductUseCase) Update(ctx context.Context, id string, patch domain.ProductPatch) (product *domain.Product, updated bool, err error) {
	if patch.IsEmpty() {
		return nil, false, nil
	}

	if err := uc.repo.Update(ctx, id, patch); err != nil {
		return nil, false, err
	}

	product, err = uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	uc.logger.Info("product updated", zap.String("productId", id))
	return product, true, nil
}

func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.logger.Info("product deleted", zap.String("productId", id))
	return nil
}
