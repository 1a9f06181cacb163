package create_booking

import (
	"context"
	"time"

	"github.com/arenda-soft/ARS-SettlementService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.BookingRecord) (*domain.BookingRecord, error)
	GetByApartmentWithFilter(ctx context.Context, filter domain.ApartmentBookingsFilter) ([]*domain.BookingRecord, error)
}

// CommissionRates интерфейс реестра ставок комиссии
type CommissionRates interface {
	GetRate(ctx context.Context, apartmentID int64) (float64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
