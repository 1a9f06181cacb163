package commission

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenda-soft/ARS-SettlementService/internal/domain"
	commissionRepo "github.com/arenda-soft/ARS-SettlementService/internal/infra/storage/commission"
	"github.com/arenda-soft/ARS-SettlementService/internal/service/commission/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockRepo struct {
	configs map[int64]*domain.CommissionConfig
	deleted []int64
}

func newMockRepo(configs ...*domain.CommissionConfig) *mockRepo {
	m := &mockRepo{configs: make(map[int64]*domain.CommissionConfig)}
	for _, cfg := range configs {
		m.configs[cfg.ApartmentID] = cfg
	}
	return m
}

func (m *mockRepo) GetByApartment(_ context.Context, apartmentID int64) (*domain.CommissionConfig, error) {
	cfg, ok := m.configs[apartmentID]
	if !ok {
		return nil, commissionRepo.ErrConfigNotFound
	}
	return cfg, nil
}

func (m *mockRepo) GetAll(context.Context) ([]*domain.CommissionConfig, error) {
	all := make([]*domain.CommissionConfig, 0, len(m.configs))
	for _, cfg := range m.configs {
		all = append(all, cfg)
	}
	return all, nil
}

func (m *mockRepo) Upsert(_ context.Context, cfg *domain.CommissionConfig) (*domain.CommissionConfig, error) {
	m.configs[cfg.ApartmentID] = cfg
	return cfg, nil
}

func (m *mockRepo) Delete(_ context.Context, apartmentID int64) error {
	if _, ok := m.configs[apartmentID]; !ok {
		return commissionRepo.ErrConfigNotFound
	}
	delete(m.configs, apartmentID)
	m.deleted = append(m.deleted, apartmentID)
	return nil
}

func TestGet_ConfiguredApartment(t *testing.T) {
	repo := newMockRepo(&domain.CommissionConfig{ApartmentID: 1, CommissionRatePercent: 35})
	svc := NewService(repo, 20, nopLogger{})

	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 35.0, resp.CommissionRatePercent)
	assert.False(t, resp.IsDefault)
}

func TestGet_FallsBackToDefaultRate(t *testing.T) {
	svc := NewService(newMockRepo(), 20, nopLogger{})

	resp, err := svc.Get(context.Background(), 99)
	require.NoError(t, err)

	assert.Equal(t, 20.0, resp.CommissionRatePercent)
	assert.True(t, resp.IsDefault)
	assert.Equal(t, int64(99), resp.ApartmentID)
}

func TestGetRate(t *testing.T) {
	repo := newMockRepo(&domain.CommissionConfig{ApartmentID: 1, CommissionRatePercent: 35})
	svc := NewService(repo, 20, nopLogger{})

	rate, err := svc.GetRate(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 35.0, rate)

	rate, err = svc.GetRate(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 20.0, rate)
}

func TestRatesByApartment(t *testing.T) {
	repo := newMockRepo(
		&domain.CommissionConfig{ApartmentID: 1, CommissionRatePercent: 35},
		&domain.CommissionConfig{ApartmentID: 2, CommissionRatePercent: 15},
	)
	svc := NewService(repo, 20, nopLogger{})

	rates, err := svc.RatesByApartment(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[int64]float64{1: 35, 2: 15}, rates)
}

func TestSet(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, 20, nopLogger{})

	resp, err := svc.Set(context.Background(), &models.SetCommissionRequest{
		ApartmentID:           1,
		CommissionRatePercent: 42.5,
		OwnerName:             "Иванов И.И.",
	})
	require.NoError(t, err)

	assert.Equal(t, 42.5, resp.CommissionRatePercent)
	assert.Equal(t, "Иванов И.И.", resp.OwnerName)
	assert.Contains(t, repo.configs, int64(1))
}

func TestSet_RateBounds(t *testing.T) {
	svc := NewService(newMockRepo(), 20, nopLogger{})

	for _, rate := range []float64{-0.1, 100.1, 150} {
		_, err := svc.Set(context.Background(), &models.SetCommissionRequest{
			ApartmentID:           1,
			CommissionRatePercent: rate,
		})
		assert.ErrorIs(t, err, ErrInvalidCommissionRate, "rate %g", rate)
	}

	// Граничные значения допустимы
	for _, rate := range []float64{0, 100} {
		_, err := svc.Set(context.Background(), &models.SetCommissionRequest{
			ApartmentID:           1,
			CommissionRatePercent: rate,
		})
		assert.NoError(t, err, "rate %g", rate)
	}
}

func TestDelete(t *testing.T) {
	repo := newMockRepo(&domain.CommissionConfig{ApartmentID: 1, CommissionRatePercent: 35})
	svc := NewService(repo, 20, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, []int64{1}, repo.deleted)

	// После удаления действует дефолтная ставка
	rate, err := svc.GetRate(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 20.0, rate)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(newMockRepo(), 20, nopLogger{})
	err := svc.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}
