package settlement

import "errors"

var (
	// ErrInvalidCommissionRate возвращается при ставке комиссии вне диапазона 0-100
	ErrInvalidCommissionRate = errors.New("settlement: invalid commission rate")

	// ErrInvalidInterval возвращается, когда дата выезда не позже даты заезда
	ErrInvalidInterval = errors.New("settlement: check-out must be after check-in")

	// ErrInvalidAmount возвращается при отрицательных денежных входных данных
	ErrInvalidAmount = errors.New("settlement: invalid amount")
)
