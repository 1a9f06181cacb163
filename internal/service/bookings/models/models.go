package models

import (
	"time"

	"github.com/arenda-soft/ARS-SettlementService/internal/domain"
)

// ExpenseBreakdownDTO детализация операционных расходов бронирования
type ExpenseBreakdownDTO struct {
	Cleaning   int64 `json:"cleaning"`
	Laundry    int64 `json:"laundry"`
	Hygiene    int64 `json:"hygiene"`
	Transport  int64 `json:"transport"`
	Compliment int64 `json:"compliment"`
	Other      int64 `json:"other"`
}

// ToDomain конвертирует DTO в domain модель
func (e ExpenseBreakdownDTO) ToDomain() domain.ExpenseBreakdown {
	return domain.ExpenseBreakdown{
		Cleaning:   e.Cleaning,
		Laundry:    e.Laundry,
		Hygiene:    e.Hygiene,
		Transport:  e.Transport,
		Compliment: e.Compliment,
		Other:      e.Other,
	}
}

// SettlementDTO расчёт бронирования по водопаду вычетов.
// Все поля производные: вычисляются при каждом чтении и нигде не хранятся.
type SettlementDTO struct {
	TotalAmount                 int64   `json:"totalAmount"`
	AggregatorCommissionPercent float64 `json:"aggregatorCommissionPercent"`
	AggregatorCommissionAmount  int64   `json:"aggregatorCommissionAmount"`
	TaxBankCommissionAmount     int64   `json:"taxBankCommissionAmount"`
	RemainderBeforeManagement   int64   `json:"remainderBeforeManagement"`
	CommissionRatePercent       float64 `json:"commissionRatePercent"`
	ManagementCommission        int64   `json:"managementCommission"`
	RemainderBeforeExpenses     int64   `json:"remainderBeforeExpenses"`
	OperatingExpenses           int64   `json:"operatingExpenses"`
	OwnerFunds                  int64   `json:"ownerFunds"`
}

// UpdateBookingRequest запрос на изменение исходных данных бронирования.
// Снапшот ставки комиссии при изменении не трогается.
type UpdateBookingRequest struct {
	CheckIn                     time.Time
	CheckOut                    time.Time
	AccommodationAmount         int64
	TotalAmount                 int64
	EarlyCheckIn                int64
	LateCheckOut                int64
	Parking                     int64
	AggregatorCommissionPercent float64
	TaxBankCommissionAmount     int64
	OperatingExpenses           int64
	Expenses                    ExpenseBreakdownDTO
	ShowToGuest                 bool
	PaymentStatus               string
	IsPrepaid                   bool
	PrepaymentAmount            int64
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// GetApartmentBookingsRequest параметры выборки бронирований апартамента
type GetApartmentBookingsRequest struct {
	ApartmentID     int64
	OverlapsFrom    *time.Time
	OverlapsTo      *time.Time
	CheckInFrom     *time.Time
	CheckInTo       *time.Time
	Status          *string
	IncludeInactive bool
}

// BookingResponse бронирование с рассчитанным водопадом вычетов
type BookingResponse struct {
	ID          string `json:"id"`
	ApartmentID int64  `json:"apartmentId"`

	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Nights   int    `json:"nights"`

	AccommodationAmount int64               `json:"accommodationAmount"`
	AddOnsAmount        int64               `json:"addOnsAmount"`
	EarlyCheckIn        int64               `json:"earlyCheckIn"`
	LateCheckOut        int64               `json:"lateCheckOut"`
	Parking             int64               `json:"parking"`
	Expenses            ExpenseBreakdownDTO `json:"expenses"`

	Settlement SettlementDTO `json:"settlement"`

	ShowToGuest        bool    `json:"showToGuest"`
	PaymentStatus      string  `json:"paymentStatus"`
	PaymentCompletedAt *string `json:"paymentCompletedAt,omitempty"`
	IsPrepaid          bool    `json:"isPrepaid"`
	PrepaymentAmount   int64   `json:"prepaymentAmount"`

	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// BookingListResponse список бронирований апартамента
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain модель и её расчёт в DTO
func FromDomainBooking(b *domain.BookingRecord, s *domain.Settlement) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:          b.ID,
		ApartmentID: b.ApartmentID,

		CheckIn:  b.CheckIn.Format(domain.DateFormat),
		CheckOut: b.CheckOut.Format(domain.DateFormat),
		Nights:   b.Nights(),

		AccommodationAmount: b.AccommodationAmount,
		AddOnsAmount:        b.AddOnsAmount(),
		EarlyCheckIn:        b.EarlyCheckIn,
		LateCheckOut:        b.LateCheckOut,
		Parking:             b.Parking,
		Expenses: ExpenseBreakdownDTO{
			Cleaning:   b.Expenses.Cleaning,
			Laundry:    b.Expenses.Laundry,
			Hygiene:    b.Expenses.Hygiene,
			Transport:  b.Expenses.Transport,
			Compliment: b.Expenses.Compliment,
			Other:      b.Expenses.Other,
		},

		ShowToGuest:        b.ShowToGuest,
		PaymentStatus:      string(b.PaymentStatus),
		IsPrepaid:          b.IsPrepaid,
		PrepaymentAmount:   b.PrepaymentAmount,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,

		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}

	if b.PaymentCompletedAt != nil {
		v := b.PaymentCompletedAt.Format(time.RFC3339)
		resp.PaymentCompletedAt = &v
	}
	if b.CancelledAt != nil {
		v := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &v
	}

	if s != nil {
		resp.Settlement = SettlementDTO{
			TotalAmount:                 s.TotalAmount,
			AggregatorCommissionPercent: s.AggregatorCommissionPercent,
			AggregatorCommissionAmount:  s.AggregatorCommissionAmount,
			TaxBankCommissionAmount:     s.TaxBankCommissionAmount,
			RemainderBeforeManagement:   s.RemainderBeforeManagement,
			CommissionRatePercent:       s.CommissionRatePercent,
			ManagementCommission:        s.ManagementCommission,
			RemainderBeforeExpenses:     s.RemainderBeforeExpenses,
			OperatingExpenses:           s.OperatingExpenses,
			OwnerFunds:                  s.OwnerFunds,
		}
	}

	return resp
}
