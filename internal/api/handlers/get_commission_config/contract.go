package get_commission_config

import (
	"context"

	"github.com/arenda-soft/ARS-SettlementService/internal/service/commission/models"
)

type CommissionService interface {
	Get(ctx context.Context, apartmentID int64) (*models.CommissionResponse, error)
	List(ctx context.Context) (*models.CommissionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
