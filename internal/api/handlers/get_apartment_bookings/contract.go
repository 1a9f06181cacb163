package get_apartment_bookings

import (
	"context"

	"github.com/arenda-soft/ARS-SettlementService/internal/service/bookings/models"
)

type BookingService interface {
	GetApartmentBookings(ctx context.Context, req *models.GetApartmentBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
