package domain

import "time"

// Order is a recorded purchase of a single product. Insert-only: rows are
// never updated or deleted once written.
type Order struct {
	ID        int64
	ProductID int64
	Quantity  int
	OrderedAt time.Time
}
