package domain

import "time"

// DayState represents the availability state of one calendar day
type DayState string

const (
	DayFree   DayState = "free"
	DayBooked DayState = "booked"
	DayPast   DayState = "past"
)

// AvailabilityDay is one cell of the apartment calendar grid.
// Derived, never persisted: always recomputed from the live booking set.
type AvailabilityDay struct {
	Date           time.Time
	ApartmentID    int64
	State          DayState
	InCurrentMonth bool // false for the adjacent-month padding cells
}

// IsSelectable returns true if the day can be clicked in the date range
// selector. Past days are never selectable even if nominally free.
func (d AvailabilityDay) IsSelectable() bool {
	return d.State == DayFree
}

// DayStateFor computes the state of one calendar day for an apartment from
// its active bookings. A day is booked if it falls within the half-open
// [CheckIn, CheckOut) of any active booking: the checkout day itself is free
// and can serve as the next guest's check-in. Days strictly before today are
// past regardless of booking state.
func DayStateFor(day time.Time, today time.Time, bookings []*BookingRecord) DayState {
	d := DateOnly(day)

	if d.Before(DateOnly(today)) {
		return DayPast
	}

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.CoversDay(d) {
			return DayBooked
		}
	}

	return DayFree
}
