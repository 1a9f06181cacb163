package get_month_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/arenda-soft/ARS-SettlementService/internal/api/handlers"
	getMonthAvailability "github.com/arenda-soft/ARS-SettlementService/internal/usecase/get_month_availability"
)

const (
	msgInvalidApartmentID = "некорректный ID апартамента"
	msgInvalidYear        = "некорректный год"
	msgInvalidMonth       = "некорректный месяц, ожидается 1-12"
)

type Handler struct {
	useCase GetMonthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/apartments/{apartmentId}/availability?year=2026&month=9
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	apartmentID, err := strconv.ParseInt(vars["apartmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /apartments/{id}/availability - Invalid apartment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /apartments/{id}/availability - Invalid year: apartment_id=%d, error=%v",
			apartmentID, err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /apartments/{id}/availability - Invalid month: apartment_id=%d, error=%v",
			apartmentID, err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getMonthAvailability.Request{
		ApartmentID: apartmentID,
		Year:        year,
		Month:       month,
	})
	if err != nil {
		switch {
		case errors.Is(err, getMonthAvailability.ErrInvalidMonth):
			h.logger.Warn("GET /apartments/{id}/availability - Invalid month: apartment_id=%d, month=%d",
				apartmentID, month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, getMonthAvailability.ErrInvalidYear):
			h.logger.Warn("GET /apartments/{id}/availability - Invalid year: apartment_id=%d, year=%d",
				apartmentID, year)
			handlers.RespondBadRequest(w, msgInvalidYear)

		case errors.Is(err, getMonthAvailability.ErrInvalidInput):
			h.logger.Warn("GET /apartments/{id}/availability - Invalid input: apartment_id=%d, error=%v",
				apartmentID, err)
			handlers.RespondBadRequest(w, msgInvalidApartmentID)

		default:
			h.logger.Error("GET /apartments/{id}/availability - Failed to build grid: apartment_id=%d, error=%v",
				apartmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /apartments/{id}/availability - Grid built: apartment_id=%d, year=%d, month=%d",
		apartmentID, year, month)
	handlers.RespondJSON(w, http.StatusOK, result)
}
