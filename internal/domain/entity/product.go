package entity

import "time"

// Product representa un producto del catálogo.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
