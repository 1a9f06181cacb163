package select_stay_dates

import (
	"context"

	selectStayDates "github.com/arenda-soft/ARS-SettlementService/internal/usecase/select_stay_dates"
)

type SelectStayDatesUseCase interface {
	Execute(ctx context.Context, req *selectStayDates.Request) (*selectStayDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
