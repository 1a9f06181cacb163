package models

import "github.com/arenda-soft/ARS-SettlementService/internal/domain"

// SetCommissionRequest запрос на сохранение ставки комиссии апартамента
type SetCommissionRequest struct {
	ApartmentID           int64   `json:"apartmentId"`
	CommissionRatePercent float64 `json:"commissionRatePercent"`
	OwnerID               *int64  `json:"ownerId,omitempty"`
	OwnerName             string  `json:"ownerName"`
}

// CommissionResponse ответ со ставкой комиссии апартамента
type CommissionResponse struct {
	ApartmentID           int64   `json:"apartmentId"`
	CommissionRatePercent float64 `json:"commissionRatePercent"`
	OwnerID               *int64  `json:"ownerId,omitempty"`
	OwnerName             string  `json:"ownerName,omitempty"`
	IsDefault             bool    `json:"isDefault"` // true, если ставка дефолтная (нет записи для апартамента)
}

// CommissionListResponse ответ со списком конфигураций комиссий
type CommissionListResponse struct {
	Configs []CommissionResponse `json:"configs"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(cfg *domain.CommissionConfig) *CommissionResponse {
	if cfg == nil {
		return nil
	}

	return &CommissionResponse{
		ApartmentID:           cfg.ApartmentID,
		CommissionRatePercent: cfg.CommissionRatePercent,
		OwnerID:               cfg.OwnerID,
		OwnerName:             cfg.OwnerName,
		IsDefault:             false,
	}
}

// DefaultConfigResponse возвращает ответ с дефолтной ставкой
func DefaultConfigResponse(apartmentID int64, defaultRate float64) *CommissionResponse {
	return &CommissionResponse{
		ApartmentID:           apartmentID,
		CommissionRatePercent: defaultRate,
		IsDefault:             true,
	}
}

// FromDomainConfigList конвертирует список domain моделей в DTO
func FromDomainConfigList(configs []*domain.CommissionConfig) *CommissionListResponse {
	resp := &CommissionListResponse{
		Configs: make([]CommissionResponse, 0, len(configs)),
	}
	for _, cfg := range configs {
		resp.Configs = append(resp.Configs, *FromDomainConfig(cfg))
	}
	return resp
}
