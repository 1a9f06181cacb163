package get_settlement_report

import (
	"context"

	settlePeriod "github.com/arenda-soft/ARS-SettlementService/internal/usecase/settle_period"
)

type SettlePeriodUseCase interface {
	Execute(ctx context.Context, req *settlePeriod.Request) (*settlePeriod.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
