package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenda-soft/ARS-SettlementService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type mockBookingRepo struct {
	overlapping []*domain.BookingRecord
	created     *domain.BookingRecord
	gotFilter   domain.ApartmentBookingsFilter
}

func (m *mockBookingRepo) Create(_ context.Context, b *domain.BookingRecord) (*domain.BookingRecord, error) {
	created := *b
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.created = &created
	return &created, nil
}

func (m *mockBookingRepo) GetByApartmentWithFilter(_ context.Context, filter domain.ApartmentBookingsFilter) ([]*domain.BookingRecord, error) {
	m.gotFilter = filter
	return m.overlapping, nil
}

type mockRates struct{ rate float64 }

func (m mockRates) GetRate(context.Context, int64) (float64, error) { return m.rate, nil }

type passThroughTx struct{}

func (passThroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func validRequest() *Request {
	return &Request{
		ApartmentID:                 1,
		CheckIn:                     time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:                    time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		AccommodationAmount:         9000,
		TotalAmount:                 10000,
		AggregatorCommissionPercent: 15,
		TaxBankCommissionAmount:     300,
		OperatingExpenses:           1000,
	}
}

func newTestUseCase(repo *mockBookingRepo, rate float64) *UseCase {
	uc := NewUseCase(repo, mockRates{rate: rate}, passThroughTx{}, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_CreatesBookingWithRateSnapshot(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo, 25)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, repo.created)
	assert.NotEmpty(t, repo.created.ID)
	assert.Equal(t, domain.StatusConfirmed, repo.created.Status)
	assert.Equal(t, domain.PaymentUnpaid, repo.created.PaymentStatus)
	require.NotNil(t, repo.created.CommissionRatePercent)
	assert.Equal(t, 25.0, *repo.created.CommissionRatePercent)

	// Ответ содержит расчёт по снапшоту: 10000-1500-300=8200, 25% = 2050
	assert.Equal(t, int64(8200), resp.Settlement.RemainderBeforeManagement)
	assert.Equal(t, int64(2050), resp.Settlement.ManagementCommission)
	assert.Equal(t, 4, resp.Nights)
}

func TestExecute_LocksOverlapInterval(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo, 20)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, repo.gotFilter.OverlapsFrom)
	require.NotNil(t, repo.gotFilter.OverlapsTo)
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), *repo.gotFilter.OverlapsFrom)
	assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), *repo.gotFilter.OverlapsTo)
	assert.False(t, repo.gotFilter.IncludeInactive)
}

func TestExecute_DatesNotAvailable(t *testing.T) {
	repo := &mockBookingRepo{
		overlapping: []*domain.BookingRecord{
			{
				ID:       "existing",
				CheckIn:  time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
				CheckOut: time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
				Status:   domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(repo, 20)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDatesNotAvailable)
	assert.Nil(t, repo.created)
}

func TestExecute_CheckInInPast(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, 20)

	req := validRequest()
	req.CheckIn = time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	req.CheckOut = time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, 20)

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:    "check-out not after check-in",
			mutate:  func(r *Request) { r.CheckOut = r.CheckIn },
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "negative total",
			mutate:  func(r *Request) { r.TotalAmount = -1 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "total below accommodation",
			mutate:  func(r *Request) { r.TotalAmount = 8000 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "aggregator percent above 100",
			mutate:  func(r *Request) { r.AggregatorCommissionPercent = 150 },
			wantErr: ErrInvalidInput,
		},
		{
			name: "breakdown exceeds operating expenses",
			mutate: func(r *Request) {
				r.Expenses.Cleaning = 800
				r.Expenses.Laundry = 300
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "non-positive apartment",
			mutate:  func(r *Request) { r.ApartmentID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name: "prepaid without amount",
			mutate: func(r *Request) {
				r.IsPrepaid = true
				r.PrepaymentAmount = 0
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
