package create_booking

import (
	"time"

	bookingmodels "github.com/arenda-soft/ARS-SettlementService/internal/service/bookings/models"
)

// Request запрос на создание бронирования
type Request struct {
	ApartmentID int64

	// Интервал проживания, полуоткрытый [CheckIn, CheckOut)
	CheckIn  time.Time
	CheckOut time.Time

	// Исходные финансовые данные, целые единицы валюты
	AccommodationAmount         int64
	TotalAmount                 int64
	EarlyCheckIn                int64
	LateCheckOut                int64
	Parking                     int64
	AggregatorCommissionPercent float64
	TaxBankCommissionAmount     int64
	OperatingExpenses           int64
	Expenses                    bookingmodels.ExpenseBreakdownDTO

	ShowToGuest      bool
	IsPrepaid        bool
	PrepaymentAmount int64
}

// Response ответ с созданным бронированием и его расчётом
type Response = bookingmodels.BookingResponse
