package repositories

import (
	"context"

	"github.com/julofinance/lender-ledger/internal/core/domain"
)

// PartnerRepository defines persistence operations for platform partners.
type PartnerRepository interface {
	// SavePartner persists a new partner.
	SavePartner(ctx context.Context, partner domain.Partner) error

	// FindPartnerByID retrieves a partner by its unique identifier.
	FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error)

	// UpdatePartner updates a partner's mutable fields (type, active flag).
	UpdatePartner(ctx context.Context, partner domain.Partner) error
}

// RateRepository defines persistence operations for lender service rates.
type RateRepository interface {
	// SaveRate persists a new rate configuration for a partner, replacing the
	// previously effective one.
	SaveRate(ctx context.Context, rate domain.LenderServiceRate) error

	// FindEffectiveRateByPartnerID retrieves the rate configuration currently
	// in effect for the partner. Postings resolve rates at event time.
	FindEffectiveRateByPartnerID(ctx context.Context, partnerID string) (*domain.LenderServiceRate, error)
}
