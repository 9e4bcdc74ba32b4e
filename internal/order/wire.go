package order

import (
	"database/sql"

	"go.uber.org/zap"

	"backoffice/internal/config"
	customerrepo "backoffice/internal/customer/repository"
	"backoffice/internal/infrastructure/mysql"
	"backoffice/internal/order/controller"
	orderrepo "backoffice/internal/order/repository"
	"backoffice/internal/order/service"
	"backoffice/internal/order/usecase"
	productrepo "backoffice/internal/product/repository"
)

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *controller.Controller {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	productRepo := productrepo.NewMySQLRepository(db)
	customerRepo := customerrepo.NewMySQLRepository(db)

	placementSvc := service.NewPlacementService(
		mysql.NewTxRunner(db),
		productRepo,
		orderRepo,
		logger,
		cfg.Order.PlacementTxTimeout,
	)

	createUC := usecase.NewCreateOrderUseCase(customerRepo, placementSvc, logger)
	listUC := usecase.NewListOrdersUseCase(orderRepo, customerRepo)
	detailUC := usecase.NewOrderDetailUseCase(orderRepo, customerRepo, productRepo)

	return controller.NewController(createUC, listUC, detailUC, logger)
}
