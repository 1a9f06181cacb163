package create_booking

import (
	"fmt"
	"time"

	"github.com/arenda-soft/ARS-SettlementService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ApartmentID <= 0 {
		return fmt.Errorf("%w: apartmentID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if !domain.DateOnly(req.CheckOut).After(domain.DateOnly(req.CheckIn)) {
		return ErrInvalidInterval
	}

	if err := validateAmounts(req); err != nil {
		return err
	}

	return nil
}

// validateAmounts проверяет финансовые поля запроса
func validateAmounts(req *Request) error {
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

	if req.IsPrepaid && req.PrepaymentAmount == 0 {
		return fmt.Errorf("%w: prepaymentAmount is required for prepaid bookings", ErrInvalidInput)
	}

	return nil
}

// isDateInPast проверяет, что дата заезда раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	return domain.DateOnly(date).Before(domain.DateOnly(now))
}
