package domain

import "time"

type Product struct {
	ID        ID
	SKU       string
	Name      string
	Price     float64
	Stock     int
	CreatedAt time.Time
}
