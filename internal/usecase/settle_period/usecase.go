package settle_period

import (
	"context"
	"errors"
	"fmt"

	"github.com/arenda-soft/ARS-SettlementService/internal/domain"
	ownerClient "github.com/arenda-soft/ARS-SettlementService/internal/integrations/ownerservice"
	"github.com/arenda-soft/ARS-SettlementService/internal/service/settlement"
)

// UseCase use case расчёта отчёта за период
type UseCase struct {
	bookingRepo BookingRepository
	registry    CommissionRegistry
	ownerClient OwnerServiceClient
	defaultRate float64
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	registry CommissionRegistry,
	ownerClient OwnerServiceClient,
	defaultRate float64,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		registry:    registry,
		ownerClient: ownerClient,
		defaultRate: defaultRate,
		logger:      logger,
	}
}

// Execute рассчитывает отчёт за период.
// Каждая строка считается со своей ставкой (снапшот бронирования, затем
// ставка апартамента, затем дефолтная); итоги складываются из рассчитанных
// строк. Ошибка расчёта любой строки отменяет весь отчёт: частичный отчёт
// не возвращается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SettlePeriod: from=%s, to=%s",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SettlePeriod: validation failed: %v", err)
		return nil, err
	}

	// 2. Выбираем бронирования периода
	filter := domain.SettlementPeriodFilter{
		ApartmentID:     req.ApartmentID,
		From:            domain.DateOnly(req.From),
		To:              domain.DateOnly(req.To),
		IncludeInactive: req.IncludeInactive,
	}

	bookings, err := uc.bookingRepo.GetByPeriod(ctx, filter)
	if err != nil {
		uc.logger.Error("SettlePeriod: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Действующие ставки апартаментов для строк без снапшота
	rates, err := uc.registry.RatesByApartment(ctx)
	if err != nil {
		uc.logger.Error("SettlePeriod: failed to get commission rates: %v", err)
		return nil, fmt.Errorf("%w: failed to get commission rates: %v", ErrInternal, err)
	}

	// 4. Прогоняем все бронирования через водопад вычетов
	report, err := settlement.SettleAll(bookings, rates, uc.defaultRate)
	if err != nil {
		uc.logger.Error("SettlePeriod: settlement failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSettlementFailed, err)
	}

	// 5. Обогащаем строки именами владельцев
	ownerNames := uc.resolveOwnerNames(ctx, report.Rows)

	byID := make(map[string]*domain.BookingRecord, len(bookings))
	for _, b := range bookings {
		byID[b.ID] = b
	}

	resp := &Response{
		From: req.From.Format(domain.DateFormat),
		To:   req.To.Format(domain.DateFormat),
		Rows: make([]Row, 0, len(report.Rows)),
		Totals: Totals{
			TotalAmount:                report.Totals.TotalAmount,
			AggregatorCommissionAmount: report.Totals.AggregatorCommissionAmount,
			TaxBankCommissionAmount:    report.Totals.TaxBankCommissionAmount,
			RemainderBeforeManagement:  report.Totals.RemainderBeforeManagement,
			ManagementCommission:       report.Totals.ManagementCommission,
			RemainderBeforeExpenses:    report.Totals.RemainderBeforeExpenses,
			OperatingExpenses:          report.Totals.OperatingExpenses,
			OwnerFunds:                 report.Totals.OwnerFunds,
		},
	}

	for _, s := range report.Rows {
		b := byID[s.BookingID]
		resp.Rows = append(resp.Rows, Row{
			BookingID:   s.BookingID,
			ApartmentID: s.ApartmentID,
			OwnerName:   ownerNames[s.ApartmentID],
			CheckIn:     b.CheckIn.Format(domain.DateFormat),
			CheckOut:    b.CheckOut.Format(domain.DateFormat),
			Status:      string(b.Status),

			TotalAmount:                 s.TotalAmount,
			AggregatorCommissionPercent: s.AggregatorCommissionPercent,
			AggregatorCommissionAmount:  s.AggregatorCommissionAmount,
			TaxBankCommissionAmount:     s.TaxBankCommissionAmount,
			RemainderBeforeManagement:   s.RemainderBeforeManagement,
			CommissionRatePercent:       s.CommissionRatePercent,
			ManagementCommission:        s.ManagementCommission,
			RemainderBeforeExpenses:     s.RemainderBeforeExpenses,
			OperatingExpenses:           s.OperatingExpenses,
			OwnerFunds:                  s.OwnerFunds,
		})
	}

	uc.logger.Info("SettlePeriod: report built, %d rows, ownerFunds total=%d",
		len(resp.Rows), resp.Totals.OwnerFunds)

	return resp, nil
}

// resolveOwnerNames собирает имена владельцев по апартаментам отчёта.
// Основной источник — OwnerService; при его недоступности используется имя,
// сохранённое в конфигурации комиссии (graceful degradation).
func (uc *UseCase) resolveOwnerNames(ctx context.Context, rows []*domain.Settlement) map[int64]string {
	configs, err := uc.registry.ConfigsByApartment(ctx)
	if err != nil {
		uc.logger.Error("SettlePeriod: failed to get commission configs, owner names skipped: %v", err)
		return map[int64]string{}
	}

	names := make(map[int64]string)
	for _, s := range rows {
		if _, done := names[s.ApartmentID]; done {
			continue
		}

		cfg, ok := configs[s.ApartmentID]
		if !ok {
			continue
		}

		names[s.ApartmentID] = cfg.OwnerName

		if cfg.OwnerID == nil {
			continue
		}

		owner, err := uc.ownerClient.GetOwnerWithGracefulDegradation(ctx, *cfg.OwnerID)
		if err != nil {
			if errors.Is(err, ownerClient.ErrServiceDegraded) {
				uc.logger.Warn("SettlePeriod: OwnerService degraded, using stored name for apartment=%d", s.ApartmentID)
			}
			continue
		}

		names[s.ApartmentID] = owner.Name
	}

	return names
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}
	if domain.DateOnly(req.To).Before(domain.DateOnly(req.From)) {
		return fmt.Errorf("%w: to is before from", ErrInvalidPeriod)
	}
	if req.ApartmentID != nil && *req.ApartmentID <= 0 {
		return fmt.Errorf("%w: apartmentID must be positive", ErrInvalidInput)
	}
	return nil
}
