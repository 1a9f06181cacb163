package get_apartment_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/arenda-soft/ARS-SettlementService/internal/api/handlers"
	"github.com/arenda-soft/ARS-SettlementService/internal/service/bookings"
)

const (
	msgInvalidApartmentID = "некорректный ID апартамента"
	msgInvalidQuery       = "некорректные параметры фильтра"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/apartments/{apartmentId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	apartmentID, err := strconv.ParseInt(vars["apartmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /apartments/{id}/bookings - Invalid apartment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	req, err := ParseQuery(apartmentID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /apartments/{id}/bookings - Invalid query: apartment_id=%d, error=%v", apartmentID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.GetApartmentBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput), errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("GET /apartments/{id}/bookings - Invalid input: apartment_id=%d, error=%v",
				apartmentID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /apartments/{id}/bookings - Failed to get bookings: apartment_id=%d, error=%v",
				apartmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /apartments/{id}/bookings - Retrieved %d bookings: apartment_id=%d",
		result.Total, apartmentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
