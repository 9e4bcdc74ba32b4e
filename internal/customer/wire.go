package customer

import (
	"database/sql"

	"go.uber.org/zap"

	"backoffice/internal/customer/controller"
	"backoffice/internal/customer/repository"
	"backoffice/internal/customer/service"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.Controller {
	repo := repository.NewMySQLRepository(db)
	svc := service.NewService(repo)
	return controller.NewController(svc, logger)
}
