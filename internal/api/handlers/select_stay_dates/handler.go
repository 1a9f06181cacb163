package select_stay_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/arenda-soft/ARS-SettlementService/internal/api/handlers"
	selectStayDates "github.com/arenda-soft/ARS-SettlementService/internal/usecase/select_stay_dates"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidApartmentID = "некорректный ID апартамента"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidClicks      = "некорректная последовательность кликов"
)

type Handler struct {
	useCase SelectStayDatesUseCase
	logger  Logger
}

func NewHandler(useCase SelectStayDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/apartments/{apartmentId}/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	apartmentID, err := strconv.ParseInt(vars["apartmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /apartments/{id}/selection - Invalid apartment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	var req SelectStayDatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /apartments/{id}/selection - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(apartmentID)
	if err != nil {
		h.logger.Warn("POST /apartments/{id}/selection - Failed to parse clicks: apartment_id=%d, error=%v",
			apartmentID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, selectStayDates.ErrInvalidInput):
			h.logger.Warn("POST /apartments/{id}/selection - Invalid input: apartment_id=%d, error=%v",
				apartmentID, err)
			handlers.RespondBadRequest(w, msgInvalidClicks)

		default:
			h.logger.Error("POST /apartments/{id}/selection - Failed to replay selection: apartment_id=%d, error=%v",
				apartmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /apartments/{id}/selection - Selection replayed: apartment_id=%d, phase=%s",
		apartmentID, result.Phase)
	handlers.RespondJSON(w, http.StatusOK, result)
}
