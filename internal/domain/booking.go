package domain

import (
	"time"

	"github.com/m04kA/SMC-POSService/pkg/types"
)

// Booking represents a table reservation for a half-open interval [StartTime, EndTime)
type Booking struct {
	ID           int64
	TableNumber  int
	CustomerName string
	PhoneNumber  string
	StartTime    time.Time
	EndTime      time.Time
	Note         *string
	People       *int

	// Derived from StartTime (UTC)
	BookingDate time.Time
	BookingTime types.TimeString

	CreatedAt time.Time
}

// DeriveDateTime fills BookingDate and BookingTime from the UTC start time
func (b *Booking) DeriveDateTime() {
	start := b.StartTime.UTC()
	b.BookingDate = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	b.BookingTime = types.NewTimeString(start)
}

// Overlaps reports whether the booking intersects [start, end)
func (b *Booking) Overlaps(start, end time.Time) bool {
	return IntervalsOverlap(b.StartTime, b.EndTime, start, end)
}

// IntervalsOverlap reports whether [s1, e1) and [s2, e2) intersect.
// Touching intervals (e1 == s2) do not overlap.
func IntervalsOverlap(s1, e1, s2, e2 time.Time) bool {
	return !(!e1.After(s2) || !s1.Before(e2))
}

// BookingsFilter filter for listing bookings
type BookingsFilter struct {
	TableNumber *int // nil - all tables
}
