package get_settlement_report

import (
	"errors"
	"net/http"

	"github.com/arenda-soft/ARS-SettlementService/internal/api/handlers"
	settlePeriod "github.com/arenda-soft/ARS-SettlementService/internal/usecase/settle_period"
)

const (
	msgInvalidQuery     = "некорректные параметры отчёта, ожидаются from и to в формате YYYY-MM-DD"
	msgInvalidPeriod    = "конец периода раньше начала"
	msgSettlementFailed = "не удалось рассчитать отчёт"
)

type Handler struct {
	useCase SettlePeriodUseCase
	logger  Logger
}

func NewHandler(useCase SettlePeriodUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/settlement?from=2026-08-01&to=2026-08-31
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reports/settlement - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, settlePeriod.ErrInvalidPeriod):
			h.logger.Warn("GET /reports/settlement - Invalid period: from=%s, to=%s",
				r.URL.Query().Get("from"), r.URL.Query().Get("to"))
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, settlePeriod.ErrInvalidInput):
			h.logger.Warn("GET /reports/settlement - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, settlePeriod.ErrSettlementFailed):
			h.logger.Error("GET /reports/settlement - Settlement failed: %v", err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgSettlementFailed)

		default:
			h.logger.Error("GET /reports/settlement - Failed to build report: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports/settlement - Report built: rows=%d, from=%s, to=%s",
		len(result.Rows), result.From, result.To)
	handlers.RespondJSON(w, http.StatusOK, result)
}
