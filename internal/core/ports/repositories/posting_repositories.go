package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/julofinance/lender-ledger/internal/core/domain"
)

// PostingRecordRepository persists the per-operation allocation records.
type PostingRecordRepository interface {
	// SaveDisbursementRecord persists a disbursement split record within the
	// given transaction.
	SaveDisbursementRecord(ctx context.Context, tx pgx.Tx, record domain.DisbursementRecord) error

	// SaveRepaymentRecord persists a repayment allocation record within the
	// given transaction.
	SaveRepaymentRecord(ctx context.Context, tx pgx.Tx, record domain.RepaymentAllocationRecord) error

	// ListRepaymentRecordsByInstallmentID retrieves the allocation records of
	// one installment, oldest first.
	ListRepaymentRecordsByInstallmentID(ctx context.Context, installmentID string) ([]domain.RepaymentAllocationRecord, error)

	// FindDisbursementRecordByLoanID retrieves the disbursement record of a loan.
	FindDisbursementRecordByLoanID(ctx context.Context, loanID string) (*domain.DisbursementRecord, error)
}

// RepositoryProvider bundles all repositories for dependency injection.
type RepositoryProvider struct {
	LedgerRepo  LedgerRepositoryWithTx
	PartnerRepo PartnerRepository
	RateRepo    RateRepository
	LoanRepo    LoanRepositoryWithTx
	PostingRepo PostingRecordRepository
}
