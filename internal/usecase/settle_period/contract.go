package settle_period

import (
	"context"

	"github.com/arenda-soft/ARS-SettlementService/internal/domain"
	"github.com/arenda-soft/ARS-SettlementService/internal/integrations/ownerservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByPeriod(ctx context.Context, filter domain.SettlementPeriodFilter) ([]*domain.BookingRecord, error)
}

// CommissionRegistry интерфейс реестра ставок комиссии
type CommissionRegistry interface {
	RatesByApartment(ctx context.Context) (map[int64]float64, error)
	ConfigsByApartment(ctx context.Context) (map[int64]*domain.CommissionConfig, error)
}

// OwnerServiceClient интерфейс клиента для OwnerService
type OwnerServiceClient interface {
	GetOwnerWithGracefulDegradation(ctx context.Context, ownerID int64) (*ownerservice.Owner, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
