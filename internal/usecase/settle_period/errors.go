package settle_period

import "errors"

var (
	// ErrInvalidPeriod возвращается, когда конец периода раньше начала
	ErrInvalidPeriod = errors.New("settle_period: invalid period")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("settle_period: invalid input data")

	// ErrSettlementFailed возвращается, когда расчёт хотя бы одной строки не удался
	ErrSettlementFailed = errors.New("settle_period: settlement failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("settle_period: internal error")
)
