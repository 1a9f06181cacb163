package get_month_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenda-soft/ARS-SettlementService/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func booking(id string, checkIn, checkOut time.Time) *domain.BookingRecord {
	return &domain.BookingRecord{
		ID:          id,
		ApartmentID: 1,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Status:      domain.StatusConfirmed,
	}
}

func cellByDate(t *testing.T, cells []domain.AvailabilityDay, day time.Time) domain.AvailabilityDay {
	t.Helper()
	for _, c := range cells {
		if c.Date.Equal(day) {
			return c
		}
	}
	t.Fatalf("day %s not found in grid", day.Format(domain.DateFormat))
	return domain.AvailabilityDay{}
}

func TestComputeMonthGrid_Always42Cells(t *testing.T) {
	today := date(2026, time.January, 1)

	for month := time.January; month <= time.December; month++ {
		cells, err := computeMonthGrid(1, 2026, month, today, nil)
		require.NoError(t, err)
		assert.Len(t, cells, domain.GridCells, "month %s", month)
	}
}

func TestComputeMonthGrid_StartsOnMonday(t *testing.T) {
	today := date(2026, time.January, 1)

	for _, tc := range []struct {
		year  int
		month time.Month
	}{
		{2026, time.September}, // 1-е вторник
		{2026, time.June},      // 1-е понедельник
		{2026, time.November},  // 1-е воскресенье
		{2024, time.February},  // високосный год
	} {
		cells, err := computeMonthGrid(1, tc.year, tc.month, today, nil)
		require.NoError(t, err)
		assert.Equal(t, time.Monday, cells[0].Date.Weekday(), "%d-%s", tc.year, tc.month)

		// Ячейки идут подряд без пропусков
		for i := 1; i < len(cells); i++ {
			assert.Equal(t, cells[i-1].Date.AddDate(0, 0, 1), cells[i].Date)
		}
	}
}

func TestComputeMonthGrid_AdjacentMonthPadding(t *testing.T) {
	today := date(2026, time.January, 1)

	// Сентябрь 2026: 1-е вторник, одна ячейка августа в начале
	cells, err := computeMonthGrid(1, 2026, time.September, today, nil)
	require.NoError(t, err)

	assert.Equal(t, date(2026, time.August, 31), cells[0].Date)
	assert.False(t, cells[0].InCurrentMonth)
	assert.True(t, cellByDate(t, cells, date(2026, time.September, 1)).InCurrentMonth)
	assert.True(t, cellByDate(t, cells, date(2026, time.September, 30)).InCurrentMonth)
	assert.False(t, cellByDate(t, cells, date(2026, time.October, 1)).InCurrentMonth)
}

func TestComputeMonthGrid_HalfOpenBookingInterval(t *testing.T) {
	today := date(2026, time.October, 1)
	bookings := []*domain.BookingRecord{
		booking("b-1", date(2026, time.October, 10), date(2026, time.October, 13)),
	}

	cells, err := computeMonthGrid(1, 2026, time.October, today, bookings)
	require.NoError(t, err)

	assert.Equal(t, domain.DayBooked, cellByDate(t, cells, date(2026, time.October, 10)).State)
	assert.Equal(t, domain.DayBooked, cellByDate(t, cells, date(2026, time.October, 11)).State)
	assert.Equal(t, domain.DayBooked, cellByDate(t, cells, date(2026, time.October, 12)).State)
	// День выезда свободен: может быть заездом следующего гостя
	assert.Equal(t, domain.DayFree, cellByDate(t, cells, date(2026, time.October, 13)).State)
}

func TestComputeMonthGrid_PastOverridesBooked(t *testing.T) {
	today := date(2026, time.October, 15)
	bookings := []*domain.BookingRecord{
		booking("b-1", date(2026, time.October, 10), date(2026, time.October, 20)),
	}

	cells, err := computeMonthGrid(1, 2026, time.October, today, bookings)
	require.NoError(t, err)

	assert.Equal(t, domain.DayPast, cellByDate(t, cells, date(2026, time.October, 12)).State)
	assert.Equal(t, domain.DayBooked, cellByDate(t, cells, date(2026, time.October, 15)).State)
	assert.Equal(t, domain.DayBooked, cellByDate(t, cells, date(2026, time.October, 19)).State)
	assert.Equal(t, domain.DayPast, cellByDate(t, cells, date(2026, time.October, 1)).State)
}

func TestComputeMonthGrid_CancelledBookingDoesNotBlock(t *testing.T) {
	today := date(2026, time.October, 1)
	cancelled := booking("b-1", date(2026, time.October, 10), date(2026, time.October, 13))
	cancelled.Status = domain.StatusCancelled

	cells, err := computeMonthGrid(1, 2026, time.October, today, []*domain.BookingRecord{cancelled})
	require.NoError(t, err)

	assert.Equal(t, domain.DayFree, cellByDate(t, cells, date(2026, time.October, 11)).State)
}

func TestComputeMonthGrid_InvalidBookingInterval(t *testing.T) {
	today := date(2026, time.October, 1)
	bad := booking("b-bad", date(2026, time.October, 13), date(2026, time.October, 10))

	_, err := computeMonthGrid(1, 2026, time.October, today, []*domain.BookingRecord{bad})
	assert.ErrorIs(t, err, ErrInvalidBookingInterval)
}

func TestToWeeks(t *testing.T) {
	today := date(2026, time.September, 1)
	cells, err := computeMonthGrid(1, 2026, time.September, today, nil)
	require.NoError(t, err)

	weeks := toWeeks(cells)
	require.Len(t, weeks, domain.GridWeeks)
	for _, w := range weeks {
		assert.Len(t, w.Days, domain.GridDaysPerWeek)
	}

	assert.Equal(t, "2026-08-31", weeks[0].Days[0].Date)
	assert.Equal(t, string(domain.DayPast), weeks[0].Days[0].State)
	assert.False(t, weeks[0].Days[0].Selectable)
}
