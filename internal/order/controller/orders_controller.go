package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"backoffice/internal/domain"
	"backoffice/internal/dto"
	apperrors "backoffice/internal/errors"
)

type CreateOrderUseCase interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderSummaryResponse, error)
}

type ListOrdersUseCase interface {
	ListOrders(ctx context.Context, req dto.ListOrdersRequest) ([]dto.OrderSummaryResponse, error)
}

type OrderDetailUseCase interface {
	GetOrderDetail(ctx context.Context, rawID string) (*dto.OrderDetailResponse, error)
}

type Controller struct {
	createUC CreateOrderUseCase
	listUC   ListOrdersUseCase
	detailUC OrderDetailUseCase
	logger   *zap.Logger
}

func NewController(createUC CreateOrderUseCase, listUC ListOrdersUseCase, detailUC OrderDetailUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		createUC: createUC,
		listUC:   listUC,
		detailUC: detailUC,
		logger:   logger,
	}
}

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateCreateOrderRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	resp, err := c.createUC.CreateOrder(r.Context(), req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, resp)
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	req := dto.ListOrdersRequest{
		Status:       r.URL.Query().Get("status"),
		CustomerID:   r.URL.Query().Get("customer_id"),
		CustomerName: r.URL.Query().Get("customer_name"),
	}

	resp, err := c.listUC.ListOrders(r.Context(), req)
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) HandleDetail(w http.ResponseWriter, r *http.Request) {
	resp, err := c.detailUC.GetOrderDetail(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func validateCreateOrderRequest(req dto.CreateOrderRequest) error {
	var details []apperrors.ValidationDetail

	if req.CustomerID == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerId",
			Message: "customerId is required",
		})
	}

	if req.Status != "" && !domain.IsValidOrderStatus(req.Status) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of NEW, PAID, SHIPPED",
		})
	}

	if len(req.Items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	productIDSeen := make(map[string]bool)

	for idx, item := range req.Items {
		if item.ProductID == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].productId",
				Message: "productId is required",
			})
		}

		if productIDSeen[item.ProductID] {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].productId",
				Message: "productId must not be duplicated",
			})
		}
		productIDSeen[item.ProductID] = true

		if item.Quantity < 1 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].quantity",
				Message: "quantity must be a positive integer",
			})
		}

		if item.UnitPrice < 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items[" + strconv.Itoa(idx) + "].unitPrice",
				Message: "unitPrice must be non-negative",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func (c *Controller) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ire, ok := apperrors.IsInvalidReferenceError(err); ok {
		c.writeValidationError(w, ire.Error(), apperrors.ValidationDetail{
			Field:   ire.Field,
			Message: "must be a well-formed identifier",
		})
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": nfe.Message,
		})
		return
	}

	if ise, ok := apperrors.IsInsufficientStockError(err); ok {
		c.writeJSON(w, http.StatusConflict, map[string]interface{}{
			"error":     "INSUFFICIENT_STOCK",
			"message":   ise.Error(),
			"productId": ise.ProductID,
			"requested": ise.Requested,
			"available": ise.Available,
		})
		return
	}

	if die, ok := apperrors.IsDataIntegrityError(err); ok {
		logger.Error("data integrity violation", zap.Error(die))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "DATA_INTEGRITY_ERROR",
			"message": die.Message,
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
