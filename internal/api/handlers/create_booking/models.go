package create_booking

import (
	bookingmodels "github.com/arenda-soft/ARS-SettlementService/internal/service/bookings/models"
	createBooking "github.com/arenda-soft/ARS-SettlementService/internal/usecase/create_booking"
	"github.com/arenda-soft/ARS-SettlementService/pkg/types"
)

// ExpenseBreakdownRequest детализация операционных расходов в HTTP запросе
type ExpenseBreakdownRequest struct {
	Cleaning   int64 `json:"cleaning"`
	Laundry    int64 `json:"laundry"`
	Hygiene    int64 `json:"hygiene"`
	Transport  int64 `json:"transport"`
	Compliment int64 `json:"compliment"`
	Other      int64 `json:"other"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ApartmentID int64  `json:"apartmentId"`
	CheckIn     string `json:"checkIn"`  // "2026-09-10"
	CheckOut    string `json:"checkOut"` // "2026-09-14"

	AccommodationAmount         int64                   `json:"accommodationAmount"`
	TotalAmount                 int64                   `json:"totalAmount"`
	EarlyCheckIn                int64                   `json:"earlyCheckIn"`
	LateCheckOut                int64                   `json:"lateCheckOut"`
	Parking                     int64                   `json:"parking"`
	AggregatorCommissionPercent float64                 `json:"aggregatorCommissionPercent"`
	TaxBankCommissionAmount     int64                   `json:"taxBankCommissionAmount"`
	OperatingExpenses           int64                   `json:"operatingExpenses"`
	Expenses                    ExpenseBreakdownRequest `json:"expenses"`

	ShowToGuest      bool  `json:"showToGuest"`
	IsPrepaid        bool  `json:"isPrepaid"`
	PrepaymentAmount int64 `json:"prepaymentAmount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	checkIn, err := types.DateString(r.CheckIn).Time()
	if err != nil {
		return nil, err
	}

	checkOut, err := types.DateString(r.CheckOut).Time()
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ApartmentID: r.ApartmentID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,

		AccommodationAmount:         r.AccommodationAmount,
		TotalAmount:                 r.TotalAmount,
		EarlyCheckIn:                r.EarlyCheckIn,
		LateCheckOut:                r.LateCheckOut,
		Parking:                     r.Parking,
		AggregatorCommissionPercent: r.AggregatorCommissionPercent,
		TaxBankCommissionAmount:     r.TaxBankCommissionAmount,
		OperatingExpenses:           r.OperatingExpenses,
		Expenses: bookingmodels.ExpenseBreakdownDTO{
			Cleaning:   r.Expenses.Cleaning,
			Laundry:    r.Expenses.Laundry,
			Hygiene:    r.Expenses.Hygiene,
			Transport:  r.Expenses.Transport,
			Compliment: r.Expenses.Compliment,
			Other:      r.Expenses.Other,
		},

		ShowToGuest:      r.ShowToGuest,
		IsPrepaid:        r.IsPrepaid,
		PrepaymentAmount: r.PrepaymentAmount,
	}, nil
}
