package update_commission_config

import (
	"context"

	"github.com/arenda-soft/ARS-SettlementService/internal/service/commission/models"
)

type CommissionService interface {
	Set(ctx context.Context, req *models.SetCommissionRequest) (*models.CommissionResponse, error)
	Delete(ctx context.Context, apartmentID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
