package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/julofinance/lender-ledger/internal/core/domain"
)

// LoanReader defines read operations for loans and their schedules.
type LoanReader interface {
	// FindLoanByID retrieves a loan by its unique identifier.
	FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)

	// FindProductByID retrieves a loan product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.LoanProduct, error)

	// ListInstallmentsByLoanID retrieves a loan's installments ordered by sequence.
	ListInstallmentsByLoanID(ctx context.Context, loanID string) ([]domain.Installment, error)
}

// LoanWriter defines write operations for loans and their schedules.
type LoanWriter interface {
	// SaveProduct persists a loan product.
	SaveProduct(ctx context.Context, product domain.LoanProduct) error

	// SaveLoan persists a loan together with its installment schedule.
	SaveLoan(ctx context.Context, loan domain.Loan, installments []domain.Installment) error

	// UpdateLoanStatus updates the loan status within the given transaction.
	UpdateLoanStatus(ctx context.Context, tx pgx.Tx, loanID string, status domain.LoanStatus, updatedBy string) error
}

// InstallmentWriter defines the paid-field updates the posting service makes.
type InstallmentWriter interface {
	// FindInstallmentByIDForUpdate retrieves an installment and locks its row
	// for the duration of the transaction.
	FindInstallmentByIDForUpdate(ctx context.Context, tx pgx.Tx, installmentID string) (*domain.Installment, error)

	// FindUnpaidInstallmentsByLoanForUpdate retrieves the loan's not fully
	// paid installments in due-date order, locking their rows.
	FindUnpaidInstallmentsByLoanForUpdate(ctx context.Context, tx pgx.Tx, loanID string) ([]domain.Installment, error)

	// UpdateInstallmentPaid writes the installment's paid fields and paid date
	// within the given transaction.
	UpdateInstallmentPaid(ctx context.Context, tx pgx.Tx, installment domain.Installment) error
}

// LoanRepositoryFacade combines all loan-related repository interfaces.
type LoanRepositoryFacade interface {
	LoanReader
	LoanWriter
	InstallmentWriter
}

// LoanRepositoryWithTx extends LoanRepositoryFacade with transaction capabilities.
type LoanRepositoryWithTx interface {
	LoanRepositoryFacade
	TransactionManager
}
