package ownerservice

import "errors"

var (
	// ErrOwnerNotFound возвращается, когда владелец не найден
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("ownerservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("ownerservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что OwnerService недоступен и следует использовать данные
	// владельца из конфигурации комиссии
	ErrServiceDegraded = errors.New("ownerservice unavailable: graceful degradation applied")
)
