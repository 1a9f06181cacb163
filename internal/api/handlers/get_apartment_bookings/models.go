package get_apartment_bookings

import (
	"net/url"
	"time"

	"github.com/arenda-soft/ARS-SettlementService/internal/service/bookings/models"
	"github.com/arenda-soft/ARS-SettlementService/pkg/types"
)

// ParseQuery разбирает query-параметры выборки бронирований.
// Поддерживаются: overlapsFrom, overlapsTo, checkInFrom, checkInTo (YYYY-MM-DD),
// status, includeInactive.
func ParseQuery(apartmentID int64, query url.Values) (*models.GetApartmentBookingsRequest, error) {
	req := &models.GetApartmentBookingsRequest{
		ApartmentID:     apartmentID,
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	for param, dst := range map[string]**time.Time{
		"overlapsFrom": &req.OverlapsFrom,
		"overlapsTo":   &req.OverlapsTo,
		"checkInFrom":  &req.CheckInFrom,
		"checkInTo":    &req.CheckInTo,
	} {
		raw := query.Get(param)
		if raw == "" {
			continue
		}
		parsed, err := types.DateString(raw).Time()
		if err != nil {
			return nil, err
		}
		*dst = &parsed
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	return req, nil
}
