package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"backoffice/internal/dto"
)

type SalesByProductUseCase interface {
	SalesByProduct(ctx context.Context) ([]dto.SalesByProductRow, error)
}

type Controller struct {
	useCase SalesByProductUseCase
	logger  *zap.Logger
}

func NewController(useCase SalesByProductUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *Controller) HandleSalesByProduct(w http.ResponseWriter, r *http.Request) {
	rows, err := c.useCase.SalesByProduct(r.Context())
	if err != nil {
		c.logger.Error("sales report failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, rows)
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
