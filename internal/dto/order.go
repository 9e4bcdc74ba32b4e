package dto

import "time"

type CreateOrderRequest struct {
	CustomerID string             `json:"customerId"`
	Status     string             `json:"status,omitempty"`
	Date       *time.Time         `json:"date,omitempty"`
	Items      []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type OrderSummaryResponse struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
	CustomerID string    `json:"customerId"`
}

type ListOrdersRequest struct {
	Status       string
	CustomerID   string
	CustomerName string
}

type OrderDetailResponse struct {
	ID       string            `json:"id"`
	Date     time.Time         `json:"date"`
	Status   string            `json:"status"`
	Customer CustomerResponse  `json:"customer"`
	Items    []OrderItemDetail `json:"items"`
}

type OrderItemDetail struct {
	SKU         string  `json:"sku"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
}
