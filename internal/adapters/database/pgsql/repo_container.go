package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/julofinance/lender-ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx repositories to one connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:  newPgxLedgerRepository(dbPool),
		PartnerRepo: newPgxPartnerRepository(dbPool),
		RateRepo:    newPgxRateRepository(dbPool),
		LoanRepo:    newPgxLoanRepository(dbPool),
		PostingRepo: newPgxPostingRepository(dbPool),
	}
}
