package export_settlement_report

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/arenda-soft/ARS-SettlementService/internal/api/handlers"
	getReport "github.com/arenda-soft/ARS-SettlementService/internal/api/handlers/get_settlement_report"
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

// Handle GET /api/v1/reports/settlement/export?from=2026-08-01&to=2026-08-31
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := getReport.ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reports/settlement/export - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	report, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, settlePeriod.ErrInvalidPeriod):
			h.logger.Warn("GET /reports/settlement/export - Invalid period: from=%s, to=%s",
				r.URL.Query().Get("from"), r.URL.Query().Get("to"))
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, settlePeriod.ErrInvalidInput):
			h.logger.Warn("GET /reports/settlement/export - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, settlePeriod.ErrSettlementFailed):
			h.logger.Error("GET /reports/settlement/export - Settlement failed: %v", err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgSettlementFailed)

		default:
			h.logger.Error("GET /reports/settlement/export - Failed to build report: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	workbook, err := buildWorkbook(report)
	if err != nil {
		h.logger.Error("GET /reports/settlement/export - Failed to build workbook: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName(report)))
	w.WriteHeader(http.StatusOK)

	if err := workbook.Write(w); err != nil {
		h.logger.Error("GET /reports/settlement/export - Failed to write workbook: %v", err)
		return
	}

	h.logger.Info("GET /reports/settlement/export - Exported %d rows: from=%s, to=%s",
		len(report.Rows), report.From, report.To)
}
