package settle_period

import "time"

// Request запрос на расчёт отчёта за период.
// Период по дате заезда, обе границы включительно.
type Request struct {
	ApartmentID     *int64 // nil - все апартаменты
	From            time.Time
	To              time.Time
	IncludeInactive bool // включать ли отменённые бронирования
}

// Row одна строка отчёта: бронирование, прогнанное через водопад вычетов
type Row struct {
	BookingID   string `json:"bookingId"`
	ApartmentID int64  `json:"apartmentId"`
	OwnerName   string `json:"ownerName,omitempty"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
	Status      string `json:"status"`

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

// Totals итоги периода: суммы каждой статьи по рассчитанным строкам
type Totals struct {
	TotalAmount                int64 `json:"totalAmount"`
	AggregatorCommissionAmount int64 `json:"aggregatorCommissionAmount"`
	TaxBankCommissionAmount    int64 `json:"taxBankCommissionAmount"`
	RemainderBeforeManagement  int64 `json:"remainderBeforeManagement"`
	ManagementCommission       int64 `json:"managementCommission"`
	RemainderBeforeExpenses    int64 `json:"remainderBeforeExpenses"`
	OperatingExpenses          int64 `json:"operatingExpenses"`
	OwnerFunds                 int64 `json:"ownerFunds"`
}

// Response отчёт за период
type Response struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Rows   []Row  `json:"rows"`
	Totals Totals `json:"totals"`
}
