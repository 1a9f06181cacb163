package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arenda-soft/ARS-SettlementService/internal/domain"
	bookingRepo "github.com/arenda-soft/ARS-SettlementService/internal/infra/storage/booking"
	"github.com/arenda-soft/ARS-SettlementService/internal/service/bookings/models"
	"github.com/arenda-soft/ARS-SettlementService/internal/service/settlement"
)

// Service сервис работы с бронированиями.
// Финансовый расчёт не хранится: каждое чтение пересчитывает водопад вычетов
// заново по исходным данным и снапшоту ставки комиссии.
type Service struct {
	repo      BookingRepository
	rates     CommissionRates
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(repo BookingRepository, rates CommissionRates, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		rates:     rates,
		txManager: txManager,
		logger:    logger,
	}
}

// GetByID возвращает бронирование с рассчитанным водопадом вычетов
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrBookingNotFound, id)
		}
		s.logger.Error("GetByID: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return s.toResponse(ctx, b)
}

// GetApartmentBookings возвращает бронирования апартамента по фильтру.
// Каждая строка ответа содержит свой расчёт.
func (s *Service) GetApartmentBookings(ctx context.Context, req *models.GetApartmentBookingsRequest) (*models.BookingListResponse, error) {
	if req.ApartmentID <= 0 {
		return nil, fmt.Errorf("%w: apartmentID must be positive", ErrInvalidInput)
	}

	filter := domain.ApartmentBookingsFilter{
		ApartmentID:     req.ApartmentID,
		OverlapsFrom:    req.OverlapsFrom,
		OverlapsTo:      req.OverlapsTo,
		CheckInFrom:     req.CheckInFrom,
		CheckInTo:       req.CheckInTo,
		IncludeInactive: req.IncludeInactive,
	}
	if req.Status != nil {
		status := domain.BookingStatus(*req.Status)
		if !validStatus(status) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *req.Status)
		}
		filter.Status = &status
	}

	records, err := s.repo.GetByApartmentWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetApartmentBookings: repository error for apartment=%d: %v", req.ApartmentID, err)
		return nil, fmt.Errorf("%w: GetApartmentBookings - repository error: %v", ErrInternal, err)
	}

	resp := &models.BookingListResponse{
		Bookings: make([]models.BookingResponse, 0, len(records)),
		Total:    len(records),
	}
	for _, b := range records {
		r, err := s.toResponse(ctx, b)
		if err != nil {
			return nil, err
		}
		resp.Bookings = append(resp.Bookings, *r)
	}

	return resp, nil
}

// Update изменяет исходные данные бронирования.
// Снапшот ставки комиссии не пересчитывается: смена ставки в реестре
// действует только на новые бронирования. Новые даты проверяются на
// пересечения под сериализуемой транзакцией, как при создании.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%s", id)

	if err := validateRawInputs(req); err != nil {
		s.logger.Warn("Update: invalid input for id=%s: %v", id, err)
		return nil, err
	}

	checkIn := domain.DateOnly(req.CheckIn)
	checkOut := domain.DateOnly(req.CheckOut)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return fmt.Errorf("%w: id=%s", ErrBookingNotFound, id)
			}
			s.logger.Error("Update: repository error for id=%s: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		if !current.CanBeUpdated() {
			s.logger.Warn("Update: booking id=%s has status %s and cannot be updated", id, current.Status)
			return fmt.Errorf("%w: status is %s", ErrCannotUpdate, current.Status)
		}

		// Активные бронирования, пересекающие новый интервал, с блокировкой
		// (FOR UPDATE). Само изменяемое бронирование пересечением не считается.
		filter := domain.ApartmentBookingsFilter{
			ApartmentID:     current.ApartmentID,
			OverlapsFrom:    &checkIn,
			OverlapsTo:      &checkOut,
			IncludeInactive: false,
		}

		overlapping, err := s.repo.GetByApartmentWithFilter(txCtx, filter)
		if err != nil {
			s.logger.Error("Update: failed to get overlapping bookings for id=%s: %v", id, err)
			return fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
		}

		for _, b := range overlapping {
			if b.ID == id {
				continue
			}
			s.logger.Warn("Update: booking id=%s conflicts with id=%s on [%s, %s)",
				id, b.ID, checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))
			return fmt.Errorf("%w: [%s, %s)", ErrDatesNotAvailable,
				checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))
		}

		updated := *current
		updated.CheckIn = checkIn
		updated.CheckOut = checkOut
		updated.AccommodationAmount = req.AccommodationAmount
		updated.TotalAmount = req.TotalAmount
		updated.EarlyCheckIn = req.EarlyCheckIn
		updated.LateCheckOut = req.LateCheckOut
		updated.Parking = req.Parking
		updated.AggregatorCommissionPercent = req.AggregatorCommissionPercent
		updated.TaxBankCommissionAmount = req.TaxBankCommissionAmount
		updated.OperatingExpenses = req.OperatingExpenses
		updated.Expenses = req.Expenses.ToDomain()
		updated.ShowToGuest = req.ShowToGuest
		updated.PaymentStatus = domain.PaymentStatus(req.PaymentStatus)
		updated.IsPrepaid = req.IsPrepaid
		updated.PrepaymentAmount = req.PrepaymentAmount

		// Переход unpaid -> paid фиксирует время оплаты; возврат в unpaid сбрасывает
		switch {
		case updated.PaymentStatus == domain.PaymentPaid && current.PaymentStatus != domain.PaymentPaid:
			now := time.Now()
			updated.PaymentCompletedAt = &now
		case updated.PaymentStatus == domain.PaymentUnpaid:
			updated.PaymentCompletedAt = nil
		}

		if err := s.repo.UpdateRawInputs(txCtx, id, &updated); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return fmt.Errorf("%w: id=%s", ErrBookingNotFound, id)
			}
			s.logger.Error("Update: repository error for id=%s: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: booking id=%s updated", id)
	return s.GetByID(ctx, id)
}

// Cancel отменяет бронирование с указанием причины.
// Отмена — смена статуса, строка остаётся в журнале, даты освобождаются.
func (s *Service) Cancel(ctx context.Context, id string, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return fmt.Errorf("%w: id=%s", ErrBookingNotFound, id)
		}
		s.logger.Error("Cancel: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !current.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s has status %s and cannot be cancelled", id, current.Status)
		return fmt.Errorf("%w: status is %s", ErrCannotCancel, current.Status)
	}

	if err := s.repo.Cancel(ctx, id, req.Reason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return fmt.Errorf("%w: id=%s", ErrBookingNotFound, id)
		}
		s.logger.Error("Cancel: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%s cancelled", id)
	return nil
}

// UpdateStatus переводит бронирование в новый статус.
// Для отмены используется Cancel: там фиксируется причина и время отмены.
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) error {
	newStatus := domain.BookingStatus(status)
	if !validStatus(newStatus) || newStatus == domain.StatusCancelled {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return fmt.Errorf("%w: id=%s", ErrBookingNotFound, id)
		}
		s.logger.Error("UpdateStatus: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if current.IsCancelled() {
		return fmt.Errorf("%w: status is %s", ErrCannotUpdate, current.Status)
	}

	if err := s.repo.UpdateStatus(ctx, id, newStatus); err != nil {
		s.logger.Error("UpdateStatus: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%s moved to status %s", id, newStatus)
	return nil
}

// toResponse рассчитывает бронирование и собирает DTO.
// Ставка: снапшот бронирования, иначе действующая ставка из реестра.
func (s *Service) toResponse(ctx context.Context, b *domain.BookingRecord) (*models.BookingResponse, error) {
	rate, err := s.effectiveRate(ctx, b)
	if err != nil {
		return nil, err
	}

	settled, err := settlement.Settle(b, rate)
	if err != nil {
		s.logger.Error("toResponse: settlement failed for booking id=%s: %v", b.ID, err)
		return nil, fmt.Errorf("%w: settlement failed: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(b, settled), nil
}

func (s *Service) effectiveRate(ctx context.Context, b *domain.BookingRecord) (float64, error) {
	if b.CommissionRatePercent != nil {
		return *b.CommissionRatePercent, nil
	}

	rate, err := s.rates.GetRate(ctx, b.ApartmentID)
	if err != nil {
		s.logger.Error("effectiveRate: rate lookup failed for apartment=%d: %v", b.ApartmentID, err)
		return 0, fmt.Errorf("%w: rate lookup failed: %v", ErrInternal, err)
	}
	return rate, nil
}

// validateRawInputs проверяет исходные данные на изменении бронирования
func validateRawInputs(req *models.UpdateBookingRequest) error {
	if !req.CheckOut.After(req.CheckIn) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidInput)
	}
	if req.AccommodationAmount < 0 || req.TotalAmount < 0 || req.EarlyCheckIn < 0 ||
		req.LateCheckOut < 0 || req.Parking < 0 || req.TaxBankCommissionAmount < 0 ||
		req.OperatingExpenses < 0 || req.PrepaymentAmount < 0 {
		return fmt.Errorf("%w: monetary amounts must be non-negative", ErrInvalidInput)
	}
	if req.TotalAmount < req.AccommodationAmount {
		return fmt.Errorf("%w: totalAmount must not be less than accommodationAmount", ErrInvalidInput)
	}
	if !domain.CommissionRateValid(req.AggregatorCommissionPercent) {
		return fmt.Errorf("%w: aggregatorCommissionPercent must be within 0-100", ErrInvalidInput)
	}
	breakdown := req.Expenses.ToDomain()
	if breakdown.Cleaning < 0 || breakdown.Laundry < 0 || breakdown.Hygiene < 0 ||
		breakdown.Transport < 0 || breakdown.Compliment < 0 || breakdown.Other < 0 {
		return fmt.Errorf("%w: expense breakdown items must be non-negative", ErrInvalidInput)
	}
	if breakdown.Sum() > req.OperatingExpenses {
		return fmt.Errorf("%w: expense breakdown exceeds operatingExpenses", ErrInvalidInput)
	}
	ps := domain.PaymentStatus(req.PaymentStatus)
	if ps != domain.PaymentUnpaid && ps != domain.PaymentPaid {
		return fmt.Errorf("%w: unknown payment status %q", ErrInvalidInput, req.PaymentStatus)
	}
	return nil
}

func validStatus(status domain.BookingStatus) bool {
	switch status {
	case domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled:
		return true
	}
	return false
}
