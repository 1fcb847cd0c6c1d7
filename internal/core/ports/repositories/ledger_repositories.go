package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/julofinance/lender-ledger/internal/core/domain"
)

// LedgerAccountReader defines read operations for ledger account data.
type LedgerAccountReader interface {
	// FindAccountByID retrieves a ledger account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.LedgerAccount, error)

	// FindAccountByPartnerID retrieves the ledger account of a lender partner.
	FindAccountByPartnerID(ctx context.Context, partnerID string) (*domain.LedgerAccount, error)
}

// LedgerAccountWriter defines write operations for ledger account data.
type LedgerAccountWriter interface {
	// SaveAccount persists a newly created ledger account.
	SaveAccount(ctx context.Context, account domain.LedgerAccount) error

	// FindAccountByPartnerIDForUpdate retrieves the lender's account and locks
	// the row for the duration of the transaction. All balance mutations on
	// one account are serialized through this lock.
	FindAccountByPartnerIDForUpdate(ctx context.Context, tx pgx.Tx, partnerID string) (*domain.LedgerAccount, error)

	// UpdateAccountCounters writes the account's cumulative counters within
	// the given transaction. Must only be called on a row previously locked
	// via FindAccountByPartnerIDForUpdate.
	UpdateAccountCounters(ctx context.Context, tx pgx.Tx, account domain.LedgerAccount) error

	// ArchiveAccount soft-archives the account when the partner is
	// deactivated. Accounts are never deleted.
	ArchiveAccount(ctx context.Context, accountID string, updatedBy string) error
}

// LedgerEventReader defines read operations for the append-only event log.
type LedgerEventReader interface {
	// ListEventsByAccountID retrieves all events of an account in commit
	// order, oldest first.
	ListEventsByAccountID(ctx context.Context, accountID string) ([]domain.LedgerEvent, error)
}

// LedgerEventWriter defines write operations for the append-only event log.
type LedgerEventWriter interface {
	// AppendEvent appends an immutable event within the given transaction.
	AppendEvent(ctx context.Context, tx pgx.Tx, event domain.LedgerEvent) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerAccountReader
	LedgerAccountWriter
	LedgerEventReader
	LedgerEventWriter
}

// LedgerRepositoryWithTx extends LedgerRepositoryFacade with transaction capabilities.
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}
