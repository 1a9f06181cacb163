package settlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenda-soft/ARS-SettlementService/internal/domain"
	"github.com/arenda-soft/ARS-SettlementService/pkg/ptr"
)

func testBooking() *domain.BookingRecord {
	return &domain.BookingRecord{
		ID:          "b-1",
		ApartmentID: 42,
		CheckIn:     time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC),

		AccommodationAmount:         9000,
		TotalAmount:                 10000,
		AggregatorCommissionPercent: 15,
		TaxBankCommissionAmount:     300,
		OperatingExpenses:           1000,
		Status:                      domain.StatusConfirmed,
	}
}

func TestSettle_Waterfall(t *testing.T) {
	s, err := Settle(testBooking(), 20)
	require.NoError(t, err)

	// 10000 - 1500 (15%) - 300 = 8200; 20% от 8200 = 1640; 8200 - 1640 = 6560;
	// 6560 - 1000 = 5560
	assert.Equal(t, int64(10000), s.TotalAmount)
	assert.Equal(t, int64(1500), s.AggregatorCommissionAmount)
	assert.Equal(t, int64(300), s.TaxBankCommissionAmount)
	assert.Equal(t, int64(8200), s.RemainderBeforeManagement)
	assert.Equal(t, float64(20), s.CommissionRatePercent)
	assert.Equal(t, int64(1640), s.ManagementCommission)
	assert.Equal(t, int64(6560), s.RemainderBeforeExpenses)
	assert.Equal(t, int64(1000), s.OperatingExpenses)
	assert.Equal(t, int64(5560), s.OwnerFunds)
}

func TestSettle_Idempotent(t *testing.T) {
	b := testBooking()

	first, err := Settle(b, 20)
	require.NoError(t, err)
	second, err := Settle(b, 20)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSettle_RateDoesNotAffectRemainderBeforeManagement(t *testing.T) {
	b := testBooking()

	for _, rate := range []float64{0, 10, 20, 55.5, 100} {
		s, err := Settle(b, rate)
		require.NoError(t, err)
		assert.Equal(t, int64(8200), s.RemainderBeforeManagement,
			"remainder before management must not depend on rate %g", rate)
	}
}

func TestSettle_Conservation(t *testing.T) {
	s, err := Settle(testBooking(), 20)
	require.NoError(t, err)

	// Сумма всех вычетов и остатка равна исходной сумме
	total := s.AggregatorCommissionAmount + s.TaxBankCommissionAmount +
		s.ManagementCommission + s.OperatingExpenses + s.OwnerFunds
	assert.Equal(t, s.TotalAmount, total)
}

func TestSettle_NegativeOwnerFunds(t *testing.T) {
	b := testBooking()
	b.TotalAmount = 500
	b.AccommodationAmount = 500
	b.AggregatorCommissionPercent = 0
	b.TaxBankCommissionAmount = 0
	b.OperatingExpenses = 900

	s, err := Settle(b, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(-400), s.OwnerFunds)
}

func TestSettle_NegativeRemainderSkipsManagementCommission(t *testing.T) {
	b := testBooking()
	b.TotalAmount = 1000
	b.AccommodationAmount = 1000
	b.AggregatorCommissionPercent = 0
	b.TaxBankCommissionAmount = 1500
	b.OperatingExpenses = 0

	s, err := Settle(b, 20)
	require.NoError(t, err)

	// Комиссия с отрицательного остатка не берётся
	assert.Equal(t, int64(-500), s.RemainderBeforeManagement)
	assert.Equal(t, int64(0), s.ManagementCommission)
	assert.Equal(t, int64(-500), s.OwnerFunds)
}

func TestSettle_InvalidInputs(t *testing.T) {
	t.Run("rate above 100", func(t *testing.T) {
		_, err := Settle(testBooking(), 100.5)
		assert.ErrorIs(t, err, ErrInvalidCommissionRate)
	})

	t.Run("negative rate", func(t *testing.T) {
		_, err := Settle(testBooking(), -1)
		assert.ErrorIs(t, err, ErrInvalidCommissionRate)
	})

	t.Run("check-out not after check-in", func(t *testing.T) {
		b := testBooking()
		b.CheckOut = b.CheckIn
		_, err := Settle(b, 20)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("aggregator percent above 100", func(t *testing.T) {
		b := testBooking()
		b.AggregatorCommissionPercent = 120
		_, err := Settle(b, 20)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("negative operating expenses", func(t *testing.T) {
		b := testBooking()
		b.OperatingExpenses = -1
		_, err := Settle(b, 20)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestSettleAll_RateResolution(t *testing.T) {
	withSnapshot := testBooking()
	withSnapshot.ID = "b-snapshot"
	withSnapshot.CommissionRatePercent = ptr.Ptr(10.0)

	withRegistryRate := testBooking()
	withRegistryRate.ID = "b-registry"
	withRegistryRate.ApartmentID = 7

	legacy := testBooking()
	legacy.ID = "b-legacy"
	legacy.ApartmentID = 99

	rates := map[int64]float64{7: 30}

	report, err := SettleAll(
		[]*domain.BookingRecord{withSnapshot, withRegistryRate, legacy},
		rates,
		20,
	)
	require.NoError(t, err)
	require.Len(t, report.Rows, 3)

	// Снапшот бронирования важнее ставки реестра
	assert.Equal(t, float64(10), report.Rows[0].CommissionRatePercent)
	// Ставка апартамента из реестра
	assert.Equal(t, float64(30), report.Rows[1].CommissionRatePercent)
	// Дефолтная ставка для ненастроенного апартамента
	assert.Equal(t, float64(20), report.Rows[2].CommissionRatePercent)
}

func TestSettleAll_TotalsAreSumsOfRows(t *testing.T) {
	b1 := testBooking()
	b1.ID = "b-1"
	b2 := testBooking()
	b2.ID = "b-2"
	b2.TotalAmount = 20000
	b2.AccommodationAmount = 20000

	report, err := SettleAll([]*domain.BookingRecord{b1, b2}, nil, 20)
	require.NoError(t, err)

	var wantOwnerFunds, wantManagement int64
	for _, row := range report.Rows {
		wantOwnerFunds += row.OwnerFunds
		wantManagement += row.ManagementCommission
	}
	assert.Equal(t, wantOwnerFunds, report.Totals.OwnerFunds)
	assert.Equal(t, wantManagement, report.Totals.ManagementCommission)
	assert.Equal(t, int64(30000), report.Totals.TotalAmount)
}

func TestSettleAll_FailsWholeReportOnBadRow(t *testing.T) {
	good := testBooking()
	bad := testBooking()
	bad.ID = "b-bad"
	bad.CheckOut = bad.CheckIn

	_, err := SettleAll([]*domain.BookingRecord{good, bad}, nil, 20)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestSettleAll_Empty(t *testing.T) {
	report, err := SettleAll(nil, nil, 20)
	require.NoError(t, err)
	assert.Empty(t, report.Rows)
	assert.Equal(t, domain.SettlementTotals{}, report.Totals)
}
