package settle_period

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenda-soft/ARS-SettlementService/internal/domain"
	ownerClient "github.com/arenda-soft/ARS-SettlementService/internal/integrations/ownerservice"
	"github.com/arenda-soft/ARS-SettlementService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockBookingRepo struct {
	bookings   []*domain.BookingRecord
	lastFilter domain.SettlementPeriodFilter
	err        error
}

func (m *mockBookingRepo) GetByPeriod(_ context.Context, filter domain.SettlementPeriodFilter) ([]*domain.BookingRecord, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return m.bookings, nil
}

type mockRegistry struct {
	rates   map[int64]float64
	configs map[int64]*domain.CommissionConfig
	err     error
}

func (m *mockRegistry) RatesByApartment(context.Context) (map[int64]float64, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.rates, nil
}

func (m *mockRegistry) ConfigsByApartment(context.Context) (map[int64]*domain.CommissionConfig, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.configs, nil
}

type mockOwnerClient struct {
	owners map[int64]*ownerClient.Owner
	err    error
}

func (m *mockOwnerClient) GetOwnerWithGracefulDegradation(_ context.Context, ownerID int64) (*ownerClient.Owner, error) {
	if m.err != nil {
		return nil, m.err
	}
	owner, ok := m.owners[ownerID]
	if !ok {
		return nil, ownerClient.ErrOwnerNotFound
	}
	return owner, nil
}

func date(day int) time.Time {
	return time.Date(2026, time.October, day, 0, 0, 0, 0, time.UTC)
}

func testBooking(id string, apartmentID int64) *domain.BookingRecord {
	return &domain.BookingRecord{
		ID:          id,
		ApartmentID: apartmentID,
		CheckIn:     date(10),
		CheckOut:    date(14),

		AccommodationAmount:         10000,
		TotalAmount:                 10000,
		AggregatorCommissionPercent: 15,
		TaxBankCommissionAmount:     300,
		OperatingExpenses:           1000,

		Status:        domain.StatusConfirmed,
		PaymentStatus: domain.PaymentPaid,
	}
}

func testRequest() *Request {
	return &Request{
		From: date(1),
		To:   date(31),
	}
}

func TestExecute_BuildsReport(t *testing.T) {
	withSnapshot := testBooking("b-1", 1)
	withSnapshot.CommissionRatePercent = ptr.Ptr(10.0)

	repo := &mockBookingRepo{bookings: []*domain.BookingRecord{
		withSnapshot,
		testBooking("b-2", 2), // ставка апартамента из реестра
		testBooking("b-3", 3), // дефолтная ставка
	}}
	registry := &mockRegistry{
		rates: map[int64]float64{2: 30},
		configs: map[int64]*domain.CommissionConfig{
			2: {ApartmentID: 2, CommissionRatePercent: 30, OwnerName: "Петров П.П."},
		},
	}
	uc := NewUseCase(repo, registry, &mockOwnerClient{}, 20, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	require.Len(t, resp.Rows, 3)
	assert.Equal(t, "2026-10-01", resp.From)
	assert.Equal(t, "2026-10-31", resp.To)

	// Для всех строк: remainderBeforeManagement = 10000 - 1500 - 300 = 8200
	for _, row := range resp.Rows {
		assert.Equal(t, int64(8200), row.RemainderBeforeManagement)
		assert.Equal(t, "2026-10-10", row.CheckIn)
		assert.Equal(t, "2026-10-14", row.CheckOut)
		assert.Equal(t, string(domain.StatusConfirmed), row.Status)
	}

	// Снапшот 10% > ставка реестра 30% > дефолт 20%
	assert.Equal(t, 10.0, resp.Rows[0].CommissionRatePercent)
	assert.Equal(t, int64(820), resp.Rows[0].ManagementCommission)
	assert.Equal(t, 30.0, resp.Rows[1].CommissionRatePercent)
	assert.Equal(t, int64(2460), resp.Rows[1].ManagementCommission)
	assert.Equal(t, 20.0, resp.Rows[2].CommissionRatePercent)
	assert.Equal(t, int64(1640), resp.Rows[2].ManagementCommission)

	// Имя владельца подтягивается из конфигурации комиссии
	assert.Empty(t, resp.Rows[0].OwnerName)
	assert.Equal(t, "Петров П.П.", resp.Rows[1].OwnerName)

	// Итоги складываются из рассчитанных строк
	assert.Equal(t, int64(30000), resp.Totals.TotalAmount)
	assert.Equal(t, int64(820+2460+1640), resp.Totals.ManagementCommission)
	assert.Equal(t, int64(3000), resp.Totals.OperatingExpenses)
}

func TestExecute_OwnerNameFromOwnerService(t *testing.T) {
	repo := &mockBookingRepo{bookings: []*domain.BookingRecord{testBooking("b-1", 1)}}
	registry := &mockRegistry{
		rates: map[int64]float64{},
		configs: map[int64]*domain.CommissionConfig{
			1: {ApartmentID: 1, CommissionRatePercent: 20, OwnerID: ptr.Ptr(int64(7)), OwnerName: "устаревшее имя"},
		},
	}
	owners := &mockOwnerClient{owners: map[int64]*ownerClient.Owner{
		7: {ID: 7, Name: "Сидоров С.С."},
	}}
	uc := NewUseCase(repo, registry, owners, 20, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "Сидоров С.С.", resp.Rows[0].OwnerName)
}

func TestExecute_OwnerServiceDegradedUsesStoredName(t *testing.T) {
	repo := &mockBookingRepo{bookings: []*domain.BookingRecord{testBooking("b-1", 1)}}
	registry := &mockRegistry{
		rates: map[int64]float64{},
		configs: map[int64]*domain.CommissionConfig{
			1: {ApartmentID: 1, CommissionRatePercent: 20, OwnerID: ptr.Ptr(int64(7)), OwnerName: "Иванов И.И."},
		},
	}
	owners := &mockOwnerClient{err: ownerClient.ErrServiceDegraded}
	uc := NewUseCase(repo, registry, owners, 20, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "Иванов И.И.", resp.Rows[0].OwnerName)
}

func TestExecute_PassesFilterToRepository(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := NewUseCase(repo, &mockRegistry{rates: map[int64]float64{}}, &mockOwnerClient{}, 20, nopLogger{})

	req := testRequest()
	req.ApartmentID = ptr.Ptr(int64(5))
	req.IncludeInactive = true

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.ApartmentID)
	assert.Equal(t, int64(5), *repo.lastFilter.ApartmentID)
	assert.True(t, repo.lastFilter.IncludeInactive)
	assert.Equal(t, date(1), repo.lastFilter.From)
	assert.Equal(t, date(31), repo.lastFilter.To)
}

func TestExecute_BadRowFailsWholeReport(t *testing.T) {
	bad := testBooking("b-bad", 1)
	bad.CommissionRatePercent = ptr.Ptr(150.0)

	repo := &mockBookingRepo{bookings: []*domain.BookingRecord{
		testBooking("b-ok", 1),
		bad,
	}}
	uc := NewUseCase(repo, &mockRegistry{rates: map[int64]float64{}}, &mockOwnerClient{}, 20, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrSettlementFailed)
	assert.Nil(t, resp)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, &mockRegistry{}, &mockOwnerClient{}, 20, nopLogger{})

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:    "zero from",
			mutate:  func(r *Request) { r.From = time.Time{} },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero to",
			mutate:  func(r *Request) { r.To = time.Time{} },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "to before from",
			mutate:  func(r *Request) { r.From, r.To = r.To, r.From },
			wantErr: ErrInvalidPeriod,
		},
		{
			name:    "non-positive apartment id",
			mutate:  func(r *Request) { r.ApartmentID = ptr.Ptr(int64(0)) },
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_SingleDayPeriod(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := NewUseCase(repo, &mockRegistry{rates: map[int64]float64{}}, &mockOwnerClient{}, 20, nopLogger{})

	req := &Request{From: date(10), To: date(10)}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Rows)
	assert.Equal(t, int64(0), resp.Totals.OwnerFunds)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &mockBookingRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, &mockRegistry{}, &mockOwnerClient{}, 20, nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
