package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"backoffice/internal/domain"
	"backoffice/internal/dto"
	apperrors "backoffice/internal/errors"
)

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	CreateCustomer(ctx context.Context, fullName, email string) (*domain.Customer, error)
}

type Controller struct {
	service CustomerService
	logger  *zap.Logger
}

func NewController(service CustomerService, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	customers, err := c.service.ListCustomers(r.Context())
	if err != nil {
		c.logger.Error("listing customers failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, cust := range customers {
		out = append(out, toCustomerResponse(cust))
	}

	c.writeJSON(w, http.StatusOK, out)
}

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateCreateCustomer(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	customer, err := c.service.CreateCustomer(r.Context(), req.FullName, req.Email)
	if err != nil {
		if ce, ok := apperrors.IsConflictError(err); ok {
			c.writeJSON(w, http.StatusConflict, map[string]string{
				"error":   "CONFLICT",
				"message": ce.Message,
			})
			return
		}
		c.logger.Error("creating customer failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusCreated, toCustomerResponse(*customer))
}

func validateCreateCustomer(req dto.CreateCustomerRequest) error {
	var details []apperrors.ValidationDetail

	if req.FullName == "" {
		details = append(details, apperrors.ValidationDetail{Field: "fullName", Message: "fullName is required"})
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		details = append(details, apperrors.ValidationDetail{Field: "email", Message: "a valid email is required"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func toCustomerResponse(c domain.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:       c.ID.String(),
		FullName: c.FullName,
		Email:    c.Email,
	}
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
