package report

import (
	"database/sql"

	"go.uber.org/zap"

	orderrepo "backoffice/internal/order/repository"
	productrepo "backoffice/internal/product/repository"
	"backoffice/internal/report/controller"
	"backoffice/internal/report/usecase"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.Controller {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	productRepo := productrepo.NewMySQLRepository(db)
	uc := usecase.NewSalesByProductUseCase(orderRepo, productRepo)
	return controller.NewController(uc, logger)
}
