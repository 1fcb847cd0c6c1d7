package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/julofinance/lender-ledger/internal/apperrors"
	"github.com/julofinance/lender-ledger/internal/core/domain"
	portsrepo "github.com/julofinance/lender-ledger/internal/core/ports/repositories"
	portssvc "github.com/julofinance/lender-ledger/internal/core/ports/services"
	"github.com/julofinance/lender-ledger/internal/dto"
	"github.com/julofinance/lender-ledger/internal/middleware"
)

var (
	ErrPartnerInactive = errors.New("partner is deactivated")
	ErrNoLedgerAccount = errors.New("partner has no ledger account")
)

// partnerService manages partners, their lender activation and service rates.
type partnerService struct {
	partnerRepo portsrepo.PartnerRepository
	ledgerRepo  portsrepo.LedgerRepositoryWithTx
	rateRepo    portsrepo.RateRepository
}

// NewPartnerService creates a new PartnerService.
func NewPartnerService(partnerRepo portsrepo.PartnerRepository, ledgerRepo portsrepo.LedgerRepositoryWithTx, rateRepo portsrepo.RateRepository) portssvc.PartnerSvcFacade {
	return &partnerService{
		partnerRepo: partnerRepo,
		ledgerRepo:  ledgerRepo,
		rateRepo:    rateRepo,
	}
}

var _ portssvc.PartnerSvcFacade = (*partnerService)(nil)

// CreatePartner registers a new platform partner.
func (s *partnerService) CreatePartner(ctx context.Context, req dto.CreatePartnerRequest, creatorUserID string) (*domain.Partner, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	partner := domain.Partner{
		PartnerID: uuid.NewString(),
		Name:      req.Name,
		Type:      req.Type,
		Email:     req.Email,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.partnerRepo.SavePartner(ctx, partner); err != nil {
		logger.Error("Failed to save partner", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save partner: %w", err)
	}

	logger.Info("Partner created", slog.String("partner_id", partner.PartnerID), slog.String("partner_type", string(partner.Type)))
	return &partner, nil
}

// GetPartnerByID retrieves a partner.
func (s *partnerService) GetPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	return partner, nil
}

// ActivateAsLender creates the partner's ledger account. Each lender gets
// exactly one account for its lifetime; the account is never deleted.
func (s *partnerService) ActivateAsLender(ctx context.Context, partnerID string, creatorUserID string) (*domain.LedgerAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if !partner.IsLender() {
		return nil, apperrors.ErrNotALender
	}
	if !partner.IsActive {
		return nil, ErrPartnerInactive
	}

	existing, err := s.ledgerRepo.FindAccountByPartnerID(ctx, partnerID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing ledger account: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicate
	}

	now := time.Now()
	account := domain.LedgerAccount{
		AccountID: uuid.NewString(),
		PartnerID: partnerID,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.ledgerRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to create ledger account", slog.String("partner_id", partnerID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create ledger account: %w", err)
	}

	logger.Info("Lender activated", slog.String("partner_id", partnerID), slog.String("account_id", account.AccountID))
	return &account, nil
}

// DeactivateLender soft-archives the partner's ledger account.
func (s *partnerService) DeactivateLender(ctx context.Context, partnerID string, updatedBy string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.ledgerRepo.FindAccountByPartnerID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return ErrNoLedgerAccount
		}
		return err
	}

	if err := s.ledgerRepo.ArchiveAccount(ctx, account.AccountID, updatedBy); err != nil {
		return fmt.Errorf("failed to archive ledger account: %w", err)
	}

	logger.Info("Lender deactivated", slog.String("partner_id", partnerID), slog.String("account_id", account.AccountID))
	return nil
}

// SetServiceRate replaces the partner's effective revenue-split rates.
func (s *partnerService) SetServiceRate(ctx context.Context, partnerID string, req dto.SetServiceRateRequest, creatorUserID string) (*domain.LenderServiceRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if !partner.IsLender() {
		return nil, apperrors.ErrNotALender
	}

	now := time.Now()
	rate := domain.LenderServiceRate{
		RateID:        uuid.NewString(),
		PartnerID:     partnerID,
		ProvisionRate: req.ProvisionRate,
		PrincipalRate: req.PrincipalRate,
		InterestRate:  req.InterestRate,
		LateFeeRate:   req.LateFeeRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := rate.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.rateRepo.SaveRate(ctx, rate); err != nil {
		logger.Error("Failed to save service rate", slog.String("partner_id", partnerID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save service rate: %w", err)
	}

	logger.Info("Service rate updated", slog.String("partner_id", partnerID), slog.String("rate_id", rate.RateID))
	return &rate, nil
}

// GetEffectiveRate retrieves the rates currently in effect for the partner.
func (s *partnerService) GetEffectiveRate(ctx context.Context, partnerID string) (*domain.LenderServiceRate, error) {
	return s.rateRepo.FindEffectiveRateByPartnerID(ctx, partnerID)
}
