package commission

import (
	"context"

	"github.com/arenda-soft/ARS-SettlementService/internal/domain"
)

// CommissionRepository интерфейс репозитория конфигурации комиссий
type CommissionRepository interface {
	GetByApartment(ctx context.Context, apartmentID int64) (*domain.CommissionConfig, error)
	GetAll(ctx context.Context) ([]*domain.CommissionConfig, error)
	Upsert(ctx context.Context, cfg *domain.CommissionConfig) (*domain.CommissionConfig, error)
	Delete(ctx context.Context, apartmentID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
