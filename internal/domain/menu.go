package domain

import "time"

// MenuItem represents a dish in the menu catalog
type MenuItem struct {
	ID       int64
	Name     string
	Category string
	Price    float64
	// Image is loaded only when requested explicitly
	Image []byte

	CreatedAt time.Time
}
