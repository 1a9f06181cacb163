package create_booking

import "errors"

var (
	// ErrDatesNotAvailable возвращается, когда хотя бы один день интервала занят
	ErrDatesNotAvailable = errors.New("create_booking: dates are not available")

	// ErrDateInPast возвращается при попытке создать бронирование с заездом в прошлом
	ErrDateInPast = errors.New("create_booking: check-in date is in the past")

	// ErrInvalidInterval возвращается, когда дата выезда не позже даты заезда
	ErrInvalidInterval = errors.New("create_booking: check-out must be after check-in")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
