package domain

import "time"

type Order struct {
	ID         ID
	CustomerID ID
	Status     string
	Date       time.Time
	Items      []OrderItem
}

// OrderItem carries the unit price frozen at order creation. It is never
// recomputed from the current catalog price.
type OrderItem struct {
	ProductID ID
	Quantity  int
	UnitPrice float64
}

const (
	OrderStatusNew     = "NEW"
	OrderStatusPaid    = "PAID"
	OrderStatusShipped = "SHIPPED"
)

func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusNew, OrderStatusPaid, OrderStatusShipped:
		return true
	}
	return false
}

// Display values substituted when an order references a product that no
// longer exists in the catalog.
const (
	PlaceholderSKU      = "—"
	DeletedProductLabel = "[deleted product]"
)

// ProductSales is one group of the sales-by-product aggregation: total
// quantity sold for a single product across all orders.
type ProductSales struct {
	ProductID     ID
	TotalQuantity int
}
