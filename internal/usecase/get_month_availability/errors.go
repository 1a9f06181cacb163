package get_month_availability

import "errors"

var (
	// ErrInvalidMonth возвращается при месяце вне диапазона 1-12
	ErrInvalidMonth = errors.New("get_month_availability: invalid month")

	// ErrInvalidYear возвращается при годе вне допустимого диапазона
	ErrInvalidYear = errors.New("get_month_availability: invalid year")

	// ErrInvalidBookingInterval возвращается, когда в выборке встретилось
	// бронирование с выездом не позже заезда
	ErrInvalidBookingInterval = errors.New("get_month_availability: booking has invalid interval")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_month_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_month_availability: internal error")
)
