package commission

import (
	"context"
	"errors"
	"fmt"

	"github.com/arenda-soft/ARS-SettlementService/internal/domain"
	commissionRepo "github.com/arenda-soft/ARS-SettlementService/internal/infra/storage/commission"
	"github.com/arenda-soft/ARS-SettlementService/internal/service/commission/models"
)

// Service реестр ставок управляющей комиссии по апартаментам.
// Хранит последнюю ставку без истории: смена ставки действует только на
// будущие расчёты, сохранённые снапшоты бронирований не пересчитываются.
type Service struct {
	repo        CommissionRepository
	defaultRate float64
	logger      Logger
}

// NewService создает новый экземпляр сервиса комиссий
func NewService(repo CommissionRepository, defaultRate float64, logger Logger) *Service {
	return &Service{
		repo:        repo,
		defaultRate: defaultRate,
		logger:      logger,
	}
}

// Get получает ставку комиссии апартамента.
// Если для апартамента нет записи, возвращается дефолтная ставка.
func (s *Service) Get(ctx context.Context, apartmentID int64) (*models.CommissionResponse, error) {
	cfg, err := s.repo.GetByApartment(ctx, apartmentID)
	if err != nil {
		if errors.Is(err, commissionRepo.ErrConfigNotFound) {
			s.logger.Info("Get: no commission config for apartment=%d, using default rate %g",
				apartmentID, s.defaultRate)
			return models.DefaultConfigResponse(apartmentID, s.defaultRate), nil
		}
		s.logger.Error("Get: repository error for apartment=%d: %v", apartmentID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg), nil
}

// GetRate получает действующую ставку апартамента как число.
// Используется use case'ами, которым нужна только ставка.
func (s *Service) GetRate(ctx context.Context, apartmentID int64) (float64, error) {
	resp, err := s.Get(ctx, apartmentID)
	if err != nil {
		return 0, err
	}
	return resp.CommissionRatePercent, nil
}

// RatesByApartment возвращает ставки всех настроенных апартаментов.
// Используется при расчёте отчёта за период.
func (s *Service) RatesByApartment(ctx context.Context) (map[int64]float64, error) {
	configs, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("RatesByApartment: repository error: %v", err)
		return nil, fmt.Errorf("%w: RatesByApartment - repository error: %v", ErrInternal, err)
	}

	rates := make(map[int64]float64, len(configs))
	for _, cfg := range configs {
		rates[cfg.ApartmentID] = cfg.CommissionRatePercent
	}

	return rates, nil
}

// Delete удаляет ставку апартамента, возвращая его на дефолтную.
// Снапшоты существующих бронирований не затрагиваются.
func (s *Service) Delete(ctx context.Context, apartmentID int64) error {
	if apartmentID <= 0 {
		return fmt.Errorf("%w: apartmentID must be positive", ErrInvalidInput)
	}

	if err := s.repo.Delete(ctx, apartmentID); err != nil {
		if errors.Is(err, commissionRepo.ErrConfigNotFound) {
			return fmt.Errorf("%w: apartment=%d", ErrConfigNotFound, apartmentID)
		}
		s.logger.Error("Delete: repository error for apartment=%d: %v", apartmentID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: commission config removed for apartment=%d, default rate %g applies",
		apartmentID, s.defaultRate)
	return nil
}

// ConfigsByApartment возвращает конфигурации всех настроенных апартаментов.
// Используется отчётом за период для обогащения строк данными владельцев.
func (s *Service) ConfigsByApartment(ctx context.Context) (map[int64]*domain.CommissionConfig, error) {
	configs, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ConfigsByApartment: repository error: %v", err)
		return nil, fmt.Errorf("%w: ConfigsByApartment - repository error: %v", ErrInternal, err)
	}

	byApartment := make(map[int64]*domain.CommissionConfig, len(configs))
	for _, cfg := range configs {
		byApartment[cfg.ApartmentID] = cfg
	}

	return byApartment, nil
}

// List возвращает все конфигурации комиссий
func (s *Service) List(ctx context.Context) (*models.CommissionListResponse, error) {
	configs, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfigList(configs), nil
}

// Set сохраняет ставку комиссии апартамента.
// Ставка валидируется на диапазон 0-100 до записи.
func (s *Service) Set(ctx context.Context, req *models.SetCommissionRequest) (*models.CommissionResponse, error) {
	s.logger.Info("Set: saving commission rate for apartment=%d, rate=%g",
		req.ApartmentID, req.CommissionRatePercent)

	if req.ApartmentID <= 0 {
		return nil, fmt.Errorf("%w: apartmentID must be positive", ErrInvalidInput)
	}

	if !domain.CommissionRateValid(req.CommissionRatePercent) {
		s.logger.Warn("Set: invalid commission rate %g for apartment=%d",
			req.CommissionRatePercent, req.ApartmentID)
		return nil, fmt.Errorf("%w: %g is outside 0-100", ErrInvalidCommissionRate, req.CommissionRatePercent)
	}

	cfg := &domain.CommissionConfig{
		ApartmentID:           req.ApartmentID,
		CommissionRatePercent: req.CommissionRatePercent,
		OwnerID:               req.OwnerID,
		OwnerName:             req.OwnerName,
	}

	saved, err := s.repo.Upsert(ctx, cfg)
	if err != nil {
		s.logger.Error("Set: repository error for apartment=%d: %v", req.ApartmentID, err)
		return nil, fmt.Errorf("%w: Set - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Set: commission rate saved for apartment=%d, rate=%g",
		saved.ApartmentID, saved.CommissionRatePercent)
	return models.FromDomainConfig(saved), nil
}
