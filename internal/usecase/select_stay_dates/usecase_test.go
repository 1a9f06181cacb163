package select_stay_dates

import (
	"context"
	"errors"
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
	bookings   []*domain.BookingRecord
	lastFilter domain.ApartmentBookingsFilter
	err        error
}

func (m *mockBookingRepo) GetByApartmentWithFilter(_ context.Context, filter domain.ApartmentBookingsFilter) ([]*domain.BookingRecord, error) {
	m.lastFilter = filter
	if m.err != nil {
		return nil, m.err
	}
	return m.bookings, nil
}

func day(d int) time.Time {
	return time.Date(2026, time.October, d, 0, 0, 0, 0, time.UTC)
}

func booking(status domain.BookingStatus, checkIn, checkOut int) *domain.BookingRecord {
	return &domain.BookingRecord{
		ID:          "b-1",
		ApartmentID: 1,
		CheckIn:     day(checkIn),
		CheckOut:    day(checkOut),
		Status:      status,
	}
}

func newTestUseCase(repo *mockBookingRepo) *UseCase {
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = fixedTime{now: day(5)}
	return uc
}

func TestExecute_SingleClickSetsAnchor(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		ApartmentID: 1,
		Clicks:      []time.Time{day(10)},
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.PhaseAnchorSet), resp.Phase)
	require.NotNil(t, resp.CheckIn)
	assert.Equal(t, "2026-10-10", *resp.CheckIn)
	assert.Nil(t, resp.CheckOut)
	assert.False(t, resp.IsComplete)
	assert.Equal(t, 0, resp.Nights)
}

func TestExecute_TwoClicksCompleteRange(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		ApartmentID: 1,
		Clicks:      []time.Time{day(10), day(14)},
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.PhaseRangeSet), resp.Phase)
	require.NotNil(t, resp.CheckIn)
	require.NotNil(t, resp.CheckOut)
	assert.Equal(t, "2026-10-10", *resp.CheckIn)
	assert.Equal(t, "2026-10-14", *resp.CheckOut)
	assert.True(t, resp.IsComplete)
	assert.Equal(t, 4, resp.Nights)
}

func TestExecute_BookedDayInsideRangeReanchors(t *testing.T) {
	// День 11 занят: диапазон 10-15 невозможен, клик по 15 становится новым якорем
	repo := &mockBookingRepo{bookings: []*domain.BookingRecord{
		booking(domain.StatusConfirmed, 11, 12),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ApartmentID: 1,
		Clicks:      []time.Time{day(10), day(15)},
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.PhaseAnchorSet), resp.Phase)
	require.NotNil(t, resp.CheckIn)
	assert.Equal(t, "2026-10-15", *resp.CheckIn)
	assert.Nil(t, resp.CheckOut)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	repo := &mockBookingRepo{bookings: []*domain.BookingRecord{
		booking(domain.StatusCancelled, 11, 12),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ApartmentID: 1,
		Clicks:      []time.Time{day(10), day(15)},
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.PhaseRangeSet), resp.Phase)
	assert.True(t, resp.IsComplete)
	assert.Equal(t, 5, resp.Nights)
}

func TestExecute_ClicksOnPastAndBookedDaysIgnored(t *testing.T) {
	repo := &mockBookingRepo{bookings: []*domain.BookingRecord{
		booking(domain.StatusConfirmed, 20, 22),
	}}
	uc := newTestUseCase(repo)

	// Клик в прошлое (до 5-го) и клик по занятому дню не меняют состояние
	resp, err := uc.Execute(context.Background(), &Request{
		ApartmentID: 1,
		Clicks:      []time.Time{day(3), day(20)},
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.PhaseEmpty), resp.Phase)
	assert.Nil(t, resp.CheckIn)
	assert.Nil(t, resp.CheckOut)
}

func TestExecute_FetchesBookingsCoveringAllClicks(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		ApartmentID: 1,
		Clicks:      []time.Time{day(14), day(10), day(12)},
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.OverlapsFrom)
	require.NotNil(t, repo.lastFilter.OverlapsTo)
	assert.Equal(t, day(10), *repo.lastFilter.OverlapsFrom)
	assert.Equal(t, day(15), *repo.lastFilter.OverlapsTo)
	assert.False(t, repo.lastFilter.IncludeInactive)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{})

	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "non-positive apartment id",
			req:  &Request{ApartmentID: 0, Clicks: []time.Time{day(10)}},
		},
		{
			name: "no clicks",
			req:  &Request{ApartmentID: 1},
		},
		{
			name: "too many clicks",
			req:  &Request{ApartmentID: 1, Clicks: make([]time.Time, maxClicksPerRequest+1)},
		},
		{
			name: "zero click date",
			req:  &Request{ApartmentID: 1, Clicks: []time.Time{{}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{err: errors.New("connection refused")})

	_, err := uc.Execute(context.Background(), &Request{
		ApartmentID: 1,
		Clicks:      []time.Time{day(10)},
	})
	assert.ErrorIs(t, err, ErrInternal)
}
