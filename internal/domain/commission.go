package domain

import "time"

// CommissionConfig represents the per-apartment management commission rate
// and owner identity. One row per apartment; when absent, the configured
// default rate applies. The registry is not versioned: rate changes apply to
// future settlements only, persisted per-booking snapshots are never altered.
type CommissionConfig struct {
	ID                    int64
	ApartmentID           int64
	CommissionRatePercent float64 // 0-100
	OwnerID               *int64  // ID владельца в OwnerService (опционально)
	OwnerName             string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// RateValid returns true if the commission rate is inside the allowed 0-100 range
func (c *CommissionConfig) RateValid() bool {
	return CommissionRateValid(c.CommissionRatePercent)
}

// CommissionRateValid reports whether a commission rate is inside 0-100
func CommissionRateValid(rate float64) bool {
	return rate >= MinCommissionRatePercent && rate <= MaxCommissionRatePercent
}
