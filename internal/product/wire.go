package product

import (
	"database/sql"

	"go.uber.org/zap"

	"backoffice/internal/product/controller"
	"backoffice/internal/product/repository"
	"backoffice/internal/product/service"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.Controller {
	repo := repository.NewMySQLRepository(db)
	svc := service.NewService(repo)
	return controller.NewController(svc, logger)
}
