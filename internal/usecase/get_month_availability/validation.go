package get_month_availability

import "fmt"

const (
	minYear = 2000
	maxYear = 2100
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ApartmentID <= 0 {
		return fmt.Errorf("%w: apartmentID must be positive", ErrInvalidInput)
	}

	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month %d is outside 1-12", ErrInvalidMonth, req.Month)
	}

	if req.Year < minYear || req.Year > maxYear {
		return fmt.Errorf("%w: year %d is outside %d-%d", ErrInvalidYear, req.Year, minYear, maxYear)
	}

	return nil
}
