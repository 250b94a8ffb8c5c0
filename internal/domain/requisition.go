package domain

import "time"

// Requisition is a single material request line raised on site.
type Requisition struct {
	ID         string
	ExternalID string
	Material   string
	Unit       string
	Quantity   float64
	NeedDate   *time.Time
	Supplier   string
	CreatedAt  time.Time
}
