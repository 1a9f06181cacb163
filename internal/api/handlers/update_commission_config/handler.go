package update_commission_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/arenda-soft/ARS-SettlementService/internal/api/handlers"
	"github.com/arenda-soft/ARS-SettlementService/internal/service/commission"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidApartmentID = "некорректный ID апартамента"
	msgInvalidRate        = "ставка комиссии должна быть в диапазоне 0-100"
	msgConfigNotFound     = "конфигурация комиссии не найдена"
)

type Handler struct {
	service CommissionService
	logger  Logger
}

func NewHandler(service CommissionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/apartments/{apartmentId}/commission
// Смена ставки не ретроактивна: снапшоты существующих бронирований не меняются.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	apartmentID, err := strconv.ParseInt(vars["apartmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /apartments/{id}/commission - Invalid apartment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	var req UpdateCommissionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /apartments/{id}/commission - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	config, err := h.service.Set(r.Context(), req.ToServiceRequest(apartmentID))
	if err != nil {
		switch {
		case errors.Is(err, commission.ErrInvalidCommissionRate):
			h.logger.Warn("PUT /apartments/{id}/commission - Invalid rate: apartment_id=%d, rate=%g",
				apartmentID, req.CommissionRatePercent)
			handlers.RespondBadRequest(w, msgInvalidRate)

		case errors.Is(err, commission.ErrInvalidInput):
			h.logger.Warn("PUT /apartments/{id}/commission - Invalid input: apartment_id=%d, error=%v",
				apartmentID, err)
			handlers.RespondBadRequest(w, msgInvalidApartmentID)

		default:
			h.logger.Error("PUT /apartments/{id}/commission - Failed to save config: apartment_id=%d, error=%v",
				apartmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /apartments/{id}/commission - Config saved: apartment_id=%d, rate=%g",
		apartmentID, config.CommissionRatePercent)
	handlers.RespondJSON(w, http.StatusOK, config)
}

// HandleDelete DELETE /api/v1/apartments/{apartmentId}/commission
// Удаляет ставку апартамента: дальше действует дефолтная.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	apartmentID, err := strconv.ParseInt(vars["apartmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /apartments/{id}/commission - Invalid apartment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	if err := h.service.Delete(r.Context(), apartmentID); err != nil {
		switch {
		case errors.Is(err, commission.ErrConfigNotFound):
			h.logger.Warn("DELETE /apartments/{id}/commission - Config not found: apartment_id=%d", apartmentID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, commission.ErrInvalidInput):
			h.logger.Warn("DELETE /apartments/{id}/commission - Invalid input: apartment_id=%d, error=%v",
				apartmentID, err)
			handlers.RespondBadRequest(w, msgInvalidApartmentID)

		default:
			h.logger.Error("DELETE /apartments/{id}/commission - Failed to delete config: apartment_id=%d, error=%v",
				apartmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /apartments/{id}/commission - Config deleted: apartment_id=%d", apartmentID)
	w.WriteHeader(http.StatusNoContent)
}
