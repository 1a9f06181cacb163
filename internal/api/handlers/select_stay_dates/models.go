package select_stay_dates

import (
	"time"

	selectStayDates "github.com/arenda-soft/ARS-SettlementService/internal/usecase/select_stay_dates"
	"github.com/arenda-soft/ARS-SettlementService/pkg/types"
)

// SelectStayDatesRequest HTTP request model: история кликов по календарю
type SelectStayDatesRequest struct {
	Clicks []string `json:"clicks"` // даты в формате YYYY-MM-DD, в порядке кликов
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectStayDatesRequest) ToUseCaseRequest(apartmentID int64) (*selectStayDates.Request, error) {
	clicks := make([]time.Time, 0, len(r.Clicks))
	for _, raw := range r.Clicks {
		parsed, err := types.DateString(raw).Time()
		if err != nil {
			return nil, err
		}
		clicks = append(clicks, parsed)
	}

	return &selectStayDates.Request{
		ApartmentID: apartmentID,
		Clicks:      clicks,
	}, nil
}
