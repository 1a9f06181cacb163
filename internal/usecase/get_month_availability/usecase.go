package get_month_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/arenda-soft/ARS-SettlementService/internal/domain"
)

// UseCase use case для получения сетки доступности апартамента за месяц
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

// Execute выполняет use case получения сетки доступности.
// Сетка производная: каждое обращение пересчитывает состояния дней заново
// по актуальному набору активных бронирований.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthAvailability: apartment=%d, year=%d, month=%d",
		req.ApartmentID, req.Year, req.Month)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthAvailability: validation failed: %v", err)
		return nil, err
	}

	month := time.Month(req.Month)
	now := uc.timeProvider.Now()

	// 2. Выбираем активные бронирования, пересекающие все 42 ячейки сетки,
	// включая дни соседних месяцев
	from, to := gridBounds(req.Year, month)
	filter := domain.ApartmentBookingsFilter{
		ApartmentID:     req.ApartmentID,
		OverlapsFrom:    &from,
		OverlapsTo:      &to,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByApartmentWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetMonthAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Строим сетку
	cells, err := computeMonthGrid(req.ApartmentID, req.Year, month, now, bookings)
	if err != nil {
		uc.logger.Error("GetMonthAvailability: grid computation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetMonthAvailability: built grid for apartment=%d, %d bookings considered",
		req.ApartmentID, len(bookings))

	return &Response{
		ApartmentID: req.ApartmentID,
		Year:        req.Year,
		Month:       req.Month,
		Weeks:       toWeeks(cells),
	}, nil
}
