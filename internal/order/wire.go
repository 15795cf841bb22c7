package order

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"retail/internal/auth"
	"retail/internal/order/controller"
	"retail/internal/order/repository"
	"retail/internal/order/usecase"
	"retail/internal/validation"
)

func NewModule(ctx context.Context, db *mongo.Database, gate *auth.AdminGate, validator *validation.Validator, logger *zap.Logger) (*controller.OrderController, error) {
	repo := repository.NewMongoOrderRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		return nil, err
	}

	uc := usecase.NewOrderUseCase(repo, logger)
	return controller.NewOrderController(uc, gate, validator, logger), nil
}
