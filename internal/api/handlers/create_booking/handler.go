package create_booking

import (
	"errors"
	"net/http"

	"github.com/arenda-soft/ARS-SettlementService/internal/api/handlers"
	createBooking "github.com/arenda-soft/ARS-SettlementService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDatesNotAvailable  = "выбранные даты заняты"
	msgDateInPast         = "дата заезда в прошлом"
	msgInvalidInterval    = "дата выезда должна быть позже даты заезда"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrDatesNotAvailable):
			h.logger.Warn("POST /bookings - Dates not available: apartment_id=%d, check_in=%s",
				req.ApartmentID, req.CheckIn)
			handlers.RespondError(w, http.StatusConflict, msgDatesNotAvailable)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Check-in in the past: apartment_id=%d, check_in=%s",
				req.ApartmentID, req.CheckIn)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrInvalidInterval):
			h.logger.Warn("POST /bookings - Invalid interval: apartment_id=%d", req.ApartmentID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: apartment_id=%d, error=%v", req.ApartmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: apartment_id=%d, error=%v",
				req.ApartmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, apartment_id=%d",
		result.ID, req.ApartmentID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
