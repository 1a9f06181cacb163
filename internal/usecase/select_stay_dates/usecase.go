package select_stay_dates

import (
	"context"
	"fmt"
	"time"

	"github.com/arenda-soft/ARS-SettlementService/internal/domain"
)

// maxClicksPerRequest ограничивает длину проигрываемой истории кликов
const maxClicksPerRequest = 200

// UseCase use case выбора дат проживания кликами по календарю
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проигрывает клики через машину выбора и возвращает итог.
// Клики по занятым и прошедшим дням игнорируются; попытка диапазона через
// занятый день молча превращает клик в новый якорь. Ошибкой ни один клик
// не является.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SelectStayDates: apartment=%d, clicks=%d", req.ApartmentID, len(req.Clicks))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SelectStayDates: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	lookup, err := uc.buildLookup(ctx, req)
	if err != nil {
		return nil, err
	}

	today := domain.DateOnly(now)
	sel := domain.NewSelection()
	for _, click := range req.Clicks {
		sel = sel.ClickDay(click, func(day time.Time) domain.DayState {
			return lookupState(day, today, lookup)
		})
	}

	resp := &Response{
		ApartmentID: req.ApartmentID,
		Phase:       string(sel.Phase()),
		IsComplete:  sel.IsComplete(),
	}
	if sel.CheckIn != nil {
		v := sel.CheckIn.Format(domain.DateFormat)
		resp.CheckIn = &v
	}
	if sel.CheckOut != nil {
		v := sel.CheckOut.Format(domain.DateFormat)
		resp.CheckOut = &v
		resp.Nights = int(sel.CheckOut.Sub(*sel.CheckIn).Hours() / 24)
	}

	uc.logger.Info("SelectStayDates: apartment=%d finished in phase %s", req.ApartmentID, resp.Phase)
	return resp, nil
}

// buildLookup выбирает активные бронирования, покрывающие все кликнутые дни,
// и строит по ним набор занятых дат
func (uc *UseCase) buildLookup(ctx context.Context, req *Request) (map[time.Time]struct{}, error) {
	from, to := clickBounds(req.Clicks)

	filter := domain.ApartmentBookingsFilter{
		ApartmentID:     req.ApartmentID,
		OverlapsFrom:    &from,
		OverlapsTo:      &to,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByApartmentWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("SelectStayDates: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	booked := make(map[time.Time]struct{})
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		for d := domain.DateOnly(b.CheckIn); d.Before(domain.DateOnly(b.CheckOut)); d = d.AddDate(0, 0, 1) {
			booked[d] = struct{}{}
		}
	}

	return booked, nil
}

// clickBounds возвращает интервал выборки, покрывающий все клики.
// Верхняя граница исключительная: день после самого позднего клика.
func clickBounds(clicks []time.Time) (time.Time, time.Time) {
	from := domain.DateOnly(clicks[0])
	to := from
	for _, c := range clicks[1:] {
		d := domain.DateOnly(c)
		if d.Before(from) {
			from = d
		}
		if d.After(to) {
			to = d
		}
	}
	return from, to.AddDate(0, 0, 1)
}

func lookupState(day, today time.Time, booked map[time.Time]struct{}) domain.DayState {
	d := domain.DateOnly(day)
	if d.Before(today) {
		return domain.DayPast
	}
	if _, ok := booked[d]; ok {
		return domain.DayBooked
	}
	return domain.DayFree
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ApartmentID <= 0 {
		return fmt.Errorf("%w: apartmentID must be positive", ErrInvalidInput)
	}
	if len(req.Clicks) == 0 {
		return fmt.Errorf("%w: at least one click is required", ErrInvalidInput)
	}
	if len(req.Clicks) > maxClicksPerRequest {
		return fmt.Errorf("%w: too many clicks, max %d", ErrInvalidInput, maxClicksPerRequest)
	}
	for _, c := range req.Clicks {
		if c.IsZero() {
			return fmt.Errorf("%w: click date is required", ErrInvalidInput)
		}
	}
	return nil
}
