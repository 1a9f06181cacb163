package update_commission_config

import "github.com/arenda-soft/ARS-SettlementService/internal/service/commission/models"

// UpdateCommissionRequest HTTP request model
type UpdateCommissionRequest struct {
	CommissionRatePercent float64 `json:"commissionRatePercent"`
	OwnerID               *int64  `json:"ownerId,omitempty"`
	OwnerName             string  `json:"ownerName,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateCommissionRequest) ToServiceRequest(apartmentID int64) *models.SetCommissionRequest {
	return &models.SetCommissionRequest{
		ApartmentID:           apartmentID,
		CommissionRatePercent: r.CommissionRatePercent,
		OwnerID:               r.OwnerID,
		OwnerName:             r.OwnerName,
	}
}
