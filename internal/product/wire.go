package product

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"retail/internal/auth"
	"retail/internal/product/controller"
	"retail/internal/product/repository"
	"retail/internal/product/usecase"
	"retail/internal/validation"
)

func NewModule(ctx context.Context, db *mongo.Database, gate *auth.AdminGate, validator *validation.Validator, logger *zap.Logger) (*controller.ProductController, error) {
	repo := repository.NewMongoRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		return nil, err
	}

	uc := usecase.NewProductUseCase(repo, logger)
	return controller.NewProductController(uc, gate, validator, logger), nil
}
