package services

import (
	"context"

	"github.com/julofinance/lender-ledger/internal/core/domain"
	"github.com/julofinance/lender-ledger/internal/dto"
)

// RepaymentResult bundles the allocation records written by one repayment
// posting with the excess amount that no installment consumed.
type RepaymentResult struct {
	Records []domain.RepaymentAllocationRecord
	Excess  int64
}

// PostingSvcFacade is the ledger posting orchestrator: every mutation of a
// lender's ledger account goes through exactly one of these operations, each
// an all-or-nothing transition from one consistent ledger state to the next.
type PostingSvcFacade interface {
	// Deposit credits lender capital. Fails with ErrNotALender if the partner
	// is not a lender.
	Deposit(ctx context.Context, partnerID string, amount int64, actorUserID string) (*domain.LedgerEvent, error)

	// Withdraw debits lender capital. Fails with ErrNotALender or, when the
	// amount exceeds the available balance, ErrInsufficientBalance; in both
	// cases no counter is touched.
	Withdraw(ctx context.Context, partnerID string, amount int64, actorUserID string) (*domain.LedgerEvent, error)

	// PostDisbursement allocates a loan disbursement: provision is carved off
	// the loan amount and split lender/platform, the rest goes to the
	// borrower. Fails with ErrInsufficientBalance before any mutation when
	// the loan amount exceeds the available balance.
	PostDisbursement(ctx context.Context, loanID string, actorUserID string) (*domain.DisbursementRecord, error)

	// PostRepayment applies a verified incoming payment to one installment
	// via the late-fee/interest/principal waterfall and splits each component
	// between lender and platform. Excess beyond the installment's total due
	// is reported on the result, never dropped.
	PostRepayment(ctx context.Context, installmentID string, amount int64, meta dto.RepaymentMeta, actorUserID string) (*RepaymentResult, error)

	// PostRepaymentAcrossInstallments applies one payment to a loan's unpaid
	// installments in due-date order within a single transaction.
	PostRepaymentAcrossInstallments(ctx context.Context, loanID string, amount int64, meta dto.RepaymentMeta, actorUserID string) (*RepaymentResult, error)

	// GetAccountByPartnerID retrieves a lender's ledger account.
	GetAccountByPartnerID(ctx context.Context, partnerID string) (*domain.LedgerAccount, error)

	// ListEvents retrieves an account's event log in commit order.
	ListEvents(ctx context.Context, accountID string) ([]domain.LedgerEvent, error)

	// VerifyAccountEvents replays the account's event log and checks it
	// reconstructs the current available balance (reconciliation law).
	VerifyAccountEvents(ctx context.Context, accountID string) error
}
