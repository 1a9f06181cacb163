package commission

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация комиссии не найдена
	ErrConfigNotFound = errors.New("commission.repository: config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("commission.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("commission.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("commission.repository: failed to scan row")
)
