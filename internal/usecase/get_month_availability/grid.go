package get_month_availability

import (
	"fmt"
	"time"

	"github.com/arenda-soft/ARS-SettlementService/internal/domain"
)

// computeMonthGrid строит календарную сетку месяца: всегда 6 недель по 7 дней,
// первая колонка — понедельник. Ячейки до первого числа и после последнего
// заполняются днями соседних месяцев, чтобы раскладка не прыгала между
// месяцами разной длины.
func computeMonthGrid(
	apartmentID int64,
	year int,
	month time.Month,
	today time.Time,
	bookings []*domain.BookingRecord,
) ([]domain.AvailabilityDay, error) {
	for _, b := range bookings {
		if !domain.DateOnly(b.CheckOut).After(domain.DateOnly(b.CheckIn)) {
			return nil, fmt.Errorf("%w: booking %s", ErrInvalidBookingInterval, b.ID)
		}
	}

	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	// Отступ до понедельника: Weekday() считает воскресенье нулём
	leading := (int(firstOfMonth.Weekday()) + 6) % 7
	gridStart := firstOfMonth.AddDate(0, 0, -leading)

	cells := make([]domain.AvailabilityDay, 0, domain.GridCells)
	for i := 0; i < domain.GridCells; i++ {
		day := gridStart.AddDate(0, 0, i)

		cells = append(cells, domain.AvailabilityDay{
			Date:           day,
			ApartmentID:    apartmentID,
			State:          domain.DayStateFor(day, today, bookings),
			InCurrentMonth: day.Month() == month && day.Year() == year,
		})
	}

	return cells, nil
}

// gridBounds возвращает границы выборки бронирований для сетки месяца.
// Верхняя граница исключительная: день после последней ячейки.
func gridBounds(year int, month time.Month) (time.Time, time.Time) {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	leading := (int(firstOfMonth.Weekday()) + 6) % 7
	gridStart := firstOfMonth.AddDate(0, 0, -leading)
	return gridStart, gridStart.AddDate(0, 0, domain.GridCells)
}

// toWeeks раскладывает 42 ячейки в 6 строк по 7 дней
func toWeeks(cells []domain.AvailabilityDay) []Week {
	weeks := make([]Week, 0, domain.GridWeeks)
	for w := 0; w < domain.GridWeeks; w++ {
		week := Week{Days: make([]DayCell, 0, domain.GridDaysPerWeek)}
		for d := 0; d < domain.GridDaysPerWeek; d++ {
			cell := cells[w*domain.GridDaysPerWeek+d]
			week.Days = append(week.Days, DayCell{
				Date:           cell.Date.Format(domain.DateFormat),
				State:          string(cell.State),
				InCurrentMonth: cell.InCurrentMonth,
				Selectable:     cell.IsSelectable(),
			})
		}
		weeks = append(weeks, week)
	}
	return weeks
}
