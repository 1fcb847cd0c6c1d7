package services

import (
	"context"

	"github.com/julofinance/lender-ledger/internal/core/domain"
	"github.com/julofinance/lender-ledger/internal/dto"
)

// PartnerSvcFacade defines partner and rate management operations.
type PartnerSvcFacade interface {
	// CreatePartner registers a new platform partner.
	CreatePartner(ctx context.Context, req dto.CreatePartnerRequest, creatorUserID string) (*domain.Partner, error)

	// GetPartnerByID retrieves a partner.
	GetPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error)

	// ActivateAsLender creates the partner's ledger account. The account is
	// created exactly once; re-activation of an existing lender is rejected
	// with ErrDuplicate. Fails with ErrNotALender for non-lender partners.
	ActivateAsLender(ctx context.Context, partnerID string, creatorUserID string) (*domain.LedgerAccount, error)

	// DeactivateLender soft-archives the partner's ledger account.
	DeactivateLender(ctx context.Context, partnerID string, updatedBy string) error

	// SetServiceRate replaces the partner's effective revenue-split rates.
	SetServiceRate(ctx context.Context, partnerID string, req dto.SetServiceRateRequest, creatorUserID string) (*domain.LenderServiceRate, error)

	// GetEffectiveRate retrieves the rates currently in effect for the partner.
	GetEffectiveRate(ctx context.Context, partnerID string) (*domain.LenderServiceRate, error)
}
