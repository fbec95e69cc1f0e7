package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item with a non-negative stock count.
type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Stock       int
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Catalog validation limits for product attributes.
const (
	MaxProductNameLen        = 255
	MaxProductDescriptionLen = 1000
)
