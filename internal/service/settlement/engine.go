// Package settlement реализует расчётный каскад выплаты владельцу.
//
// Каскад фиксированный, порядок шагов — бизнес-правило и не подлежит изменению:
//
//  1. остаток до управляющей комиссии = сумма − комиссия агрегатора − налоги/банк
//  2. управляющая комиссия = процент от остатка шага 1
//  3. остаток до расходов = шаг 1 − шаг 2
//  4. средства владельца = шаг 3 − операционные расходы
//
// Вычет агрегатора/налогов намеренно отвязан от управляющей комиссии: смена
// ставки меняет только шаги 2-4, остаток шага 1 неизменен.
package settlement

import (
	"errors"
	"fmt"

	"github.com/arenda-soft/ARS-SettlementService/internal/domain"
	"github.com/arenda-soft/ARS-SettlementService/pkg/money"
)

// Settle выполняет расчётный каскад для одного бронирования с указанной
// ставкой управляющей комиссии.
//
// Функция чистая и идемпотентная: не мутирует bookings, одинаковые входы дают
// одинаковый результат. Отрицательные OwnerFunds — валидный результат
// (владелец должен денег), ошибкой не является. Частично посчитанный
// Settlement никогда не возвращается.
func Settle(b *domain.BookingRecord, ratePercent float64) (*domain.Settlement, error) {
	if !domain.CommissionRateValid(ratePercent) {
		return nil, fmt.Errorf("%w: %g is outside 0-100", ErrInvalidCommissionRate, ratePercent)
	}
	if !b.CheckOut.After(b.CheckIn) {
		return nil, fmt.Errorf("%w: booking %s", ErrInvalidInterval, b.ID)
	}
	if !domain.CommissionRateValid(b.AggregatorCommissionPercent) {
		return nil, fmt.Errorf("%w: aggregator commission percent %g is outside 0-100",
			ErrInvalidAmount, b.AggregatorCommissionPercent)
	}

	// Шаг 1: вычитаем комиссию агрегатора и налоги/банк
	aggregatorAmount, err := money.ApplyPercent(b.TotalAmount, b.AggregatorCommissionPercent)
	if err != nil {
		return nil, wrapMoneyErr(err)
	}

	remainderBeforeManagement, err := money.SubtractAll(b.TotalAmount, aggregatorAmount, b.TaxBankCommissionAmount)
	if err != nil {
		return nil, wrapMoneyErr(err)
	}

	// Шаг 2: управляющая комиссия от остатка
	// Остаток шага 1 может уйти в минус при больших вычетах; комиссия с
	// отрицательного остатка не берётся
	managementBase := remainderBeforeManagement
	if managementBase < 0 {
		managementBase = 0
	}
	managementCommission, err := money.ApplyPercent(managementBase, ratePercent)
	if err != nil {
		return nil, wrapMoneyErr(err)
	}

	// Шаги 3-4: остаток до расходов и средства владельца
	remainderBeforeExpenses := remainderBeforeManagement - managementCommission

	if b.OperatingExpenses < 0 {
		return nil, fmt.Errorf("%w: operating expenses must be non-negative, got %d",
			ErrInvalidAmount, b.OperatingExpenses)
	}
	ownerFunds := remainderBeforeExpenses - b.OperatingExpenses

	return &domain.Settlement{
		BookingID:                   b.ID,
		ApartmentID:                 b.ApartmentID,
		TotalAmount:                 b.TotalAmount,
		AggregatorCommissionPercent: b.AggregatorCommissionPercent,
		AggregatorCommissionAmount:  aggregatorAmount,
		TaxBankCommissionAmount:     b.TaxBankCommissionAmount,
		RemainderBeforeManagement:   remainderBeforeManagement,
		CommissionRatePercent:       ratePercent,
		ManagementCommission:        managementCommission,
		RemainderBeforeExpenses:     remainderBeforeExpenses,
		OperatingExpenses:           b.OperatingExpenses,
		OwnerFunds:                  ownerFunds,
	}, nil
}

// Report результат расчёта за период: построчные расчёты и итоги
type Report struct {
	Rows   []*domain.Settlement
	Totals domain.SettlementTotals
}

// SettleAll рассчитывает каждое бронирование и суммирует все поля для итогов
// периода. Ставка каждого бронирования разрешается индивидуально:
// снапшот ставки из самого бронирования, затем ставка апартамента из
// ratesByApartment, затем defaultRate. Итоги складываются из рассчитанных
// строк, а не из валовых сумм с единой ставкой.
func SettleAll(bookings []*domain.BookingRecord, ratesByApartment map[int64]float64, defaultRate float64) (*Report, error) {
	report := &Report{
		Rows: make([]*domain.Settlement, 0, len(bookings)),
	}

	for _, b := range bookings {
		rate := resolveRate(b, ratesByApartment, defaultRate)

		s, err := Settle(b, rate)
		if err != nil {
			return nil, fmt.Errorf("booking %s: %w", b.ID, err)
		}

		report.Rows = append(report.Rows, s)
		report.Totals.Add(s)
	}

	return report, nil
}

// resolveRate определяет действующую ставку для бронирования
func resolveRate(b *domain.BookingRecord, ratesByApartment map[int64]float64, defaultRate float64) float64 {
	if b.CommissionRatePercent != nil {
		return *b.CommissionRatePercent
	}
	if rate, ok := ratesByApartment[b.ApartmentID]; ok {
		return rate
	}
	return defaultRate
}

func wrapMoneyErr(err error) error {
	if errors.Is(err, money.ErrInvalidAmount) {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	return err
}
