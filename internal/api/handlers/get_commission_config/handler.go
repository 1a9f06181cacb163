package get_commission_config

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/arenda-soft/ARS-SettlementService/internal/api/handlers"
)

const (
	msgInvalidApartmentID = "некорректный ID апартамента"
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

// Handle GET /api/v1/apartments/{apartmentId}/commission
// Для апартамента без записи возвращается дефолтная ставка с isDefault=true.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	apartmentID, err := strconv.ParseInt(vars["apartmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /apartments/{id}/commission - Invalid apartment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	config, err := h.service.Get(r.Context(), apartmentID)
	if err != nil {
		h.logger.Error("GET /apartments/{id}/commission - Failed to get config: apartment_id=%d, error=%v",
			apartmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /apartments/{id}/commission - Config retrieved: apartment_id=%d, rate=%g, default=%t",
		apartmentID, config.CommissionRatePercent, config.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, config)
}

// HandleList GET /api/v1/commissions
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	configs, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /commissions - Failed to list configs: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /commissions - Retrieved %d configs", len(configs.Configs))
	handlers.RespondJSON(w, http.StatusOK, configs)
}
