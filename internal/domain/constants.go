package domain

// Default configuration values
const (
	DefaultCommissionRatePercent = 20.0
)

// Business validation constants
const (
	MinCommissionRatePercent = 0.0
	MaxCommissionRatePercent = 100.0

	MaxCancellationReasonLength = 500
)

// Calendar grid dimensions: the month view is always 6 rows of 7 columns,
// padded with adjacent-month days, so the layout never jumps between months
const (
	GridWeeks       = 6
	GridDaysPerWeek = 7
	GridCells       = GridWeeks * GridDaysPerWeek
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не блокирующих календарь
// Используется для фильтрации при расчёте доступности
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCompleted,
}
