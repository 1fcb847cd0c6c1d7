package services

import (
	"context"

	"github.com/julofinance/lender-ledger/internal/core/domain"
	"github.com/julofinance/lender-ledger/internal/dto"
)

// LoanSvcFacade defines the minimal loan-intake surface the engine needs so
// that disbursements and repayments have referents. Origination and scoring
// live in the loan subsystem proper.
type LoanSvcFacade interface {
	// CreateProduct registers a loan product and its origination fee.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.LoanProduct, error)

	// RegisterLoan registers a loan with its installment schedule. The
	// schedule's principal components must sum to the loan amount.
	RegisterLoan(ctx context.Context, req dto.RegisterLoanRequest, creatorUserID string) (*domain.Loan, error)

	// GetLoanByID retrieves a loan.
	GetLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)

	// ListInstallments retrieves a loan's schedule in sequence order.
	ListInstallments(ctx context.Context, loanID string) ([]domain.Installment, error)
}
