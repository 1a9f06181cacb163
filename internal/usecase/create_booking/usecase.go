package create_booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arenda-soft/ARS-SettlementService/internal/domain"
	bookingmodels "github.com/arenda-soft/ARS-SettlementService/internal/service/bookings/models"
	"github.com/arenda-soft/ARS-SettlementService/internal/service/settlement"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	rates        CommissionRates
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	rates CommissionRates,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		rates:        rates,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// конкурирующие запросы на пересекающиеся даты не создадут двойное бронирование.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: apartment=%d, checkIn=%s, checkOut=%s, total=%d",
		req.ApartmentID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.TotalAmount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата заезда не может быть в прошлом
	now := uc.timeProvider.Now()
	if isDateInPast(req.CheckIn, now) {
		uc.logger.Warn("CreateBooking: check-in %s is in the past", req.CheckIn.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	checkIn := domain.DateOnly(req.CheckIn)
	checkOut := domain.DateOnly(req.CheckOut)

	var result *domain.BookingRecord

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем активные бронирования, пересекающие интервал, с блокировкой (FOR UPDATE).
		// Пересечение полуоткрытое: выезд в день заезда следующего гостя не конфликтует.
		filter := domain.ApartmentBookingsFilter{
			ApartmentID:     req.ApartmentID,
			OverlapsFrom:    &checkIn,
			OverlapsTo:      &checkOut,
			IncludeInactive: false,
		}

		overlapping, err := uc.bookingRepo.GetByApartmentWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("CreateBooking: apartment=%d has %d overlapping bookings for [%s, %s)",
				req.ApartmentID, len(overlapping),
				checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))
			return ErrDatesNotAvailable
		}

		// 3.2. Снимаем снапшот действующей ставки комиссии.
		// Последующие смены ставки в реестре это бронирование не затронут.
		rate, err := uc.rates.GetRate(txCtx, req.ApartmentID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get commission rate for apartment=%d: %v",
				req.ApartmentID, err)
			return fmt.Errorf("%w: failed to get commission rate: %v", ErrInternal, err)
		}

		booking := &domain.BookingRecord{
			ID:          uuid.NewString(),
			ApartmentID: req.ApartmentID,
			CheckIn:     checkIn,
			CheckOut:    checkOut,

			AccommodationAmount:         req.AccommodationAmount,
			TotalAmount:                 req.TotalAmount,
			EarlyCheckIn:                req.EarlyCheckIn,
			LateCheckOut:                req.LateCheckOut,
			Parking:                     req.Parking,
			AggregatorCommissionPercent: req.AggregatorCommissionPercent,
			TaxBankCommissionAmount:     req.TaxBankCommissionAmount,
			OperatingExpenses:           req.OperatingExpenses,
			Expenses:                    req.Expenses.ToDomain(),

			CommissionRatePercent: &rate,

			ShowToGuest:      req.ShowToGuest,
			PaymentStatus:    domain.PaymentUnpaid,
			IsPrepaid:        req.IsPrepaid,
			PrepaymentAmount: req.PrepaymentAmount,

			Status: domain.StatusConfirmed,
		}

		// 3.3. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	// 4. Рассчитываем водопад вычетов для ответа (расчёт не хранится)
	settled, err := settlement.Settle(result, *result.CommissionRatePercent)
	if err != nil {
		uc.logger.Error("CreateBooking: settlement failed for booking id=%s: %v", result.ID, err)
		return nil, fmt.Errorf("%w: settlement failed: %v", ErrInternal, err)
	}

	return bookingmodels.FromDomainBooking(result, settled), nil
}
