package commission

import "errors"

var (
	// ErrInvalidCommissionRate возвращается при ставке комиссии вне диапазона 0-100
	ErrInvalidCommissionRate = errors.New("invalid commission rate")

	// ErrConfigNotFound возвращается при удалении несуществующей конфигурации
	ErrConfigNotFound = errors.New("commission config not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
