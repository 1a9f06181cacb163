package get_settlement_report

import (
	"net/url"
	"strconv"

	settlePeriod "github.com/arenda-soft/ARS-SettlementService/internal/usecase/settle_period"
	"github.com/arenda-soft/ARS-SettlementService/pkg/types"
)

// ParseQuery разбирает query-параметры отчёта за период.
// Обязательные: from, to (YYYY-MM-DD). Опциональные: apartmentId, includeInactive.
func ParseQuery(query url.Values) (*settlePeriod.Request, error) {
	from, err := types.DateString(query.Get("from")).Time()
	if err != nil {
		return nil, err
	}

	to, err := types.DateString(query.Get("to")).Time()
	if err != nil {
		return nil, err
	}

	req := &settlePeriod.Request{
		From:            from,
		To:              to,
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if raw := query.Get("apartmentId"); raw != "" {
		apartmentID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ApartmentID = &apartmentID
	}

	return req, nil
}
