package domain

import "time"

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the guest payment state of a booking
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// ExpenseBreakdown itemizes operating expenses of one stay.
// The sum of the items must not exceed BookingRecord.OperatingExpenses.
type ExpenseBreakdown struct {
	Cleaning   int64
	Laundry    int64
	Hygiene    int64
	Transport  int64
	Compliment int64
	Other      int64
}

// Sum returns the total of all breakdown items
func (e ExpenseBreakdown) Sum() int64 {
	return e.Cleaning + e.Laundry + e.Hygiene + e.Transport + e.Compliment + e.Other
}

// BookingRecord represents one reservation with its raw financial inputs.
// Settlement fields are never stored: they are recomputed from the raw inputs
// and the commission rate snapshot on every read.
type BookingRecord struct {
	ID          string
	ApartmentID int64

	// Stay interval, half-open [CheckIn, CheckOut): the checkout day is free
	// for the next guest's check-in.
	CheckIn  time.Time
	CheckOut time.Time

	// Raw monetary inputs, whole currency units
	AccommodationAmount         int64
	TotalAmount                 int64 // >= AccommodationAmount; difference covers add-ons
	EarlyCheckIn                int64
	LateCheckOut                int64
	Parking                     int64
	AggregatorCommissionPercent float64 // 0-100
	TaxBankCommissionAmount     int64
	OperatingExpenses           int64
	Expenses                    ExpenseBreakdown

	// Commission rate snapshot taken from the registry at creation time.
	// Registry changes are not retroactive; nil for legacy rows.
	CommissionRatePercent *float64

	// Visibility and payment flags
	ShowToGuest        bool
	PaymentStatus      PaymentStatus
	PaymentCompletedAt *time.Time
	IsPrepaid          bool
	PrepaymentAmount   int64

	Status             BookingStatus
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking blocks calendar days.
// Cancellation is a status, not row removal: cancelled bookings stay in the
// ledger but release their dates.
func (b *BookingRecord) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *BookingRecord) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *BookingRecord) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// CanBeUpdated returns true if the raw inputs of the booking can be edited
func (b *BookingRecord) CanBeUpdated() bool {
	return b.Status != StatusCancelled
}

// Nights returns the number of nights of the stay
func (b *BookingRecord) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// AddOnsAmount returns the non-accommodation part of the total
func (b *BookingRecord) AddOnsAmount() int64 {
	return b.TotalAmount - b.AccommodationAmount
}

// CoversDay reports whether the given calendar day falls inside the stay.
// The interval is half-open: the checkout day is not covered.
func (b *BookingRecord) CoversDay(day time.Time) bool {
	d := DateOnly(day)
	return !d.Before(DateOnly(b.CheckIn)) && d.Before(DateOnly(b.CheckOut))
}

// OverlapsInterval reports whether the stay overlaps [from, to).
// Touching intervals (checkout == next check-in) do not overlap.
func (b *BookingRecord) OverlapsInterval(from, to time.Time) bool {
	return DateOnly(b.CheckIn).Before(DateOnly(to)) && DateOnly(b.CheckOut).After(DateOnly(from))
}

// DateOnly truncates a timestamp to its calendar date (midnight UTC)
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ApartmentBookingsFilter фильтр для получения бронирований апартамента
type ApartmentBookingsFilter struct {
	ApartmentID     int64          // Обязательный параметр
	OverlapsFrom    *time.Time     // Начало интервала пересечения (опционально)
	OverlapsTo      *time.Time     // Конец интервала пересечения, исключительно (опционально)
	CheckInFrom     *time.Time     // Заезд не раньше (опционально)
	CheckInTo       *time.Time     // Заезд не позже (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные бронирования
}

// SettlementPeriodFilter фильтр для выборки бронирований в отчёт за период
type SettlementPeriodFilter struct {
	ApartmentID     *int64    // nil - все апартаменты
	From            time.Time // Заезд с (включительно)
	To              time.Time // Заезд по (включительно)
	IncludeInactive bool      // Включать ли отмененные бронирования
}
