package domain

// Settlement is the fully itemized output of the settlement waterfall for one
// booking. Every field is derived; nothing here is ever written back to storage.
type Settlement struct {
	BookingID   string
	ApartmentID int64

	TotalAmount                 int64
	AggregatorCommissionPercent float64
	AggregatorCommissionAmount  int64
	TaxBankCommissionAmount     int64

	// Остаток после вычета комиссии агрегатора и налогов/банка.
	// Не зависит от ставки управляющей комиссии.
	RemainderBeforeManagement int64

	CommissionRatePercent float64
	ManagementCommission  int64

	RemainderBeforeExpenses int64
	OperatingExpenses       int64

	// OwnerFunds may be negative: the owner owes money for the period.
	OwnerFunds int64
}

// SettlementTotals holds per-period sums of every itemized settlement field.
// Totals are taken over settled values, never over raw totals with a
// globally applied rate: each booking settles with its own rate.
type SettlementTotals struct {
	TotalAmount                int64
	AggregatorCommissionAmount int64
	TaxBankCommissionAmount    int64
	RemainderBeforeManagement  int64
	ManagementCommission       int64
	RemainderBeforeExpenses    int64
	OperatingExpenses          int64
	OwnerFunds                 int64
}

// Add accumulates one settlement into the totals
func (t *SettlementTotals) Add(s *Settlement) {
	t.TotalAmount += s.TotalAmount
	t.AggregatorCommissionAmount += s.AggregatorCommissionAmount
	t.TaxBankCommissionAmount += s.TaxBankCommissionAmount
	t.RemainderBeforeManagement += s.RemainderBeforeManagement
	t.ManagementCommission += s.ManagementCommission
	t.RemainderBeforeExpenses += s.RemainderBeforeExpenses
	t.OperatingExpenses += s.OperatingExpenses
	t.OwnerFunds += s.OwnerFunds
}
