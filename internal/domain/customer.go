package domain

import "time"

type Customer struct {
	ID        ID
	FullName  string
	Email     string
	CreatedAt time.Time
}
