package bookings

import (
	"context"

	"github.com/arenda-soft/ARS-SettlementService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.BookingRecord, error)
	GetByApartmentWithFilter(ctx context.Context, filter domain.ApartmentBookingsFilter) ([]*domain.BookingRecord, error)
	UpdateRawInputs(ctx context.Context, id string, b *domain.BookingRecord) error
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	Cancel(ctx context.Context, id string, reason string) error
}

// TransactionManager интерфейс для управления транзакциями.
// Изменение дат проверяет пересечения под сериализуемой транзакцией.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// CommissionRates интерфейс реестра ставок комиссии.
// Нужен для расчёта бронирований без снапшота ставки (legacy строки).
type CommissionRates interface {
	GetRate(ctx context.Context, apartmentID int64) (float64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
