package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/julofinance/lender-ledger/internal/apperrors"
	"github.com/julofinance/lender-ledger/internal/core/domain"
	portsrepo "github.com/julofinance/lender-ledger/internal/core/ports/repositories"
	portssvc "github.com/julofinance/lender-ledger/internal/core/ports/services"
	"github.com/julofinance/lender-ledger/internal/dto"
	"github.com/julofinance/lender-ledger/internal/middleware"
)

var (
	ErrScheduleMismatch = errors.New("installment principals must sum to the loan amount")
	ErrFeeOutOfRange    = errors.New("origination fee pct must be within [0,1]")
)

// loanService is the engine's minimal loan-intake surface. It exists so that
// disbursements and repayments have referents; origination proper lives in
// the loan subsystem.
type loanService struct {
	loanRepo    portsrepo.LoanRepositoryWithTx
	partnerRepo portsrepo.PartnerRepository
	validate    *validator.Validate
}

// NewLoanService creates a new LoanService.
func NewLoanService(loanRepo portsrepo.LoanRepositoryWithTx, partnerRepo portsrepo.PartnerRepository) portssvc.LoanSvcFacade {
	// DTOs carry gin binding tags; align the standalone validator with them.
	validate := validator.New()
	validate.SetTagName("binding")
	return &loanService{
		loanRepo:    loanRepo,
		partnerRepo: partnerRepo,
		validate:    validate,
	}
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

// CreateProduct registers a loan product and its origination fee.
func (s *loanService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.LoanProduct, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.OriginationFeePct.IsNegative() || req.OriginationFeePct.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrFeeOutOfRange.Error())
	}

	now := time.Now()
	product := domain.LoanProduct{
		ProductID:         uuid.NewString(),
		Name:              req.Name,
		OriginationFeePct: req.OriginationFeePct,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.loanRepo.SaveProduct(ctx, product); err != nil {
		logger.Error("Failed to save loan product", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save loan product: %w", err)
	}

	logger.Info("Loan product created", slog.String("product_id", product.ProductID))
	return &product, nil
}

// RegisterLoan registers a loan with its installment schedule.
func (s *loanService) RegisterLoan(ctx context.Context, req dto.RegisterLoanRequest, creatorUserID string) (*domain.Loan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Handlers validate via binding tags; re-validate here for callers that
	// reach the service in-process.
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	partner, err := s.partnerRepo.FindPartnerByID(ctx, req.PartnerID)
	if err != nil {
		return nil, err
	}
	if !partner.IsLender() {
		return nil, apperrors.ErrNotALender
	}

	if _, err := s.loanRepo.FindProductByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	var principalSum int64
	for _, in := range req.Installments {
		principalSum += in.Principal
	}
	if principalSum != req.Amount {
		return nil, fmt.Errorf("%w: schedule sums to %d, loan amount is %d", ErrScheduleMismatch, principalSum, req.Amount)
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}
	loan := domain.Loan{
		LoanID:      uuid.NewString(),
		PartnerID:   req.PartnerID,
		BorrowerID:  req.BorrowerID,
		ProductID:   req.ProductID,
		Amount:      req.Amount,
		Status:      domain.LoanPending,
		AuditFields: audit,
	}

	installments := make([]domain.Installment, 0, len(req.Installments))
	for _, in := range req.Installments {
		installments = append(installments, domain.Installment{
			InstallmentID:        uuid.NewString(),
			LoanID:               loan.LoanID,
			Sequence:             in.Sequence,
			DueDate:              in.DueDate,
			InstallmentPrincipal: in.Principal,
			InstallmentInterest:  in.Interest,
			AuditFields:          audit,
		})
	}

	if err := s.loanRepo.SaveLoan(ctx, loan, installments); err != nil {
		logger.Error("Failed to save loan", slog.String("loan_id", loan.LoanID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save loan: %w", err)
	}

	logger.Info("Loan registered", slog.String("loan_id", loan.LoanID), slog.Int64("amount", loan.Amount), slog.Int("installments", len(installments)))
	return &loan, nil
}

// GetLoanByID retrieves a loan.
func (s *loanService) GetLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	return s.loanRepo.FindLoanByID(ctx, loanID)
}

// ListInstallments retrieves a loan's schedule in sequence order.
func (s *loanService) ListInstallments(ctx context.Context, loanID string) ([]domain.Installment, error) {
	return s.loanRepo.ListInstallmentsByLoanID(ctx, loanID)
}
