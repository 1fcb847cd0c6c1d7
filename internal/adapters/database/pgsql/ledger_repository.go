package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/julofinance/lender-ledger/internal/apperrors"
	"github.com/julofinance/lender-ledger/internal/core/domain"
	portsrepo "github.com/julofinance/lender-ledger/internal/core/ports/repositories"
	"github.com/julofinance/lender-ledger/internal/models"
	"github.com/julofinance/lender-ledger/internal/utils/mapping"
)

const ledgerAccountColumns = `account_id, partner_id,
	total_deposit, total_withdrawal, total_disbursed_principal,
	total_received_principal, total_received_interest, total_received_late_fee, total_received_provision,
	total_paidout_principal, total_paidout_interest, total_paidout_late_fee, total_paidout_provision,
	outstanding_principal, is_active, created_at, created_by, last_updated_at, last_updated_by`

// PgxLedgerRepository persists ledger accounts and their append-only events.
type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryWithTx {
	return &PgxLedgerRepository{BaseRepository{Pool: pool}}
}

type pgxRow interface {
	Scan(dest ...any) error
}

func scanLedgerAccount(row pgxRow) (*domain.LedgerAccount, error) {
	var m models.LedgerAccount
	err := row.Scan(
		&m.AccountID, &m.PartnerID,
		&m.TotalDeposit, &m.TotalWithdrawal, &m.TotalDisbursedPrincipal,
		&m.TotalReceivedPrincipal, &m.TotalReceivedInterest, &m.TotalReceivedLateFee, &m.TotalReceivedProvision,
		&m.TotalPaidoutPrincipal, &m.TotalPaidoutInterest, &m.TotalPaidoutLateFee, &m.TotalPaidoutProvision,
		&m.OutstandingPrincipal, &m.IsActive, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan ledger account: %w", err)
	}
	account := mapping.ToDomainLedgerAccount(m)
	return &account, nil
}

// SaveAccount persists a newly created ledger account.
func (r *PgxLedgerRepository) SaveAccount(ctx context.Context, account domain.LedgerAccount) error {
	m := mapping.ToModelLedgerAccount(account)
	query := `
		INSERT INTO ledger_accounts (` + ledgerAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID, m.PartnerID,
		m.TotalDeposit, m.TotalWithdrawal, m.TotalDisbursedPrincipal,
		m.TotalReceivedPrincipal, m.TotalReceivedInterest, m.TotalReceivedLateFee, m.TotalReceivedProvision,
		m.TotalPaidoutPrincipal, m.TotalPaidoutInterest, m.TotalPaidoutLateFee, m.TotalPaidoutProvision,
		m.OutstandingPrincipal, m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ledger account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves a ledger account by its unique identifier.
func (r *PgxLedgerRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.LedgerAccount, error) {
	query := `SELECT ` + ledgerAccountColumns + ` FROM ledger_accounts WHERE account_id = $1;`
	return scanLedgerAccount(r.Pool.QueryRow(ctx, query, accountID))
}

// FindAccountByPartnerID retrieves the ledger account of a lender partner.
func (r *PgxLedgerRepository) FindAccountByPartnerID(ctx context.Context, partnerID string) (*domain.LedgerAccount, error) {
	query := `SELECT ` + ledgerAccountColumns + ` FROM ledger_accounts WHERE partner_id = $1;`
	return scanLedgerAccount(r.Pool.QueryRow(ctx, query, partnerID))
}

// FindAccountByPartnerIDForUpdate retrieves the account and locks the row
// for the duration of the transaction, serializing all balance mutations on
// one account.
func (r *PgxLedgerRepository) FindAccountByPartnerIDForUpdate(ctx context.Context, tx pgx.Tx, partnerID string) (*domain.LedgerAccount, error) {
	query := `SELECT ` + ledgerAccountColumns + ` FROM ledger_accounts WHERE partner_id = $1 FOR UPDATE;`
	return scanLedgerAccount(tx.QueryRow(ctx, query, partnerID))
}

// UpdateAccountCounters writes the account's cumulative counters within the
// given transaction.
func (r *PgxLedgerRepository) UpdateAccountCounters(ctx context.Context, tx pgx.Tx, account domain.LedgerAccount) error {
	m := mapping.ToModelLedgerAccount(account)
	query := `
		UPDATE ledger_accounts SET
			total_deposit = $2,
			total_withdrawal = $3,
			total_disbursed_principal = $4,
			total_received_principal = $5,
			total_received_interest = $6,
			total_received_late_fee = $7,
			total_received_provision = $8,
			total_paidout_principal = $9,
			total_paidout_interest = $10,
			total_paidout_late_fee = $11,
			total_paidout_provision = $12,
			outstanding_principal = $13,
			last_updated_at = $14,
			last_updated_by = $15
		WHERE account_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.AccountID,
		m.TotalDeposit, m.TotalWithdrawal, m.TotalDisbursedPrincipal,
		m.TotalReceivedPrincipal, m.TotalReceivedInterest, m.TotalReceivedLateFee, m.TotalReceivedProvision,
		m.TotalPaidoutPrincipal, m.TotalPaidoutInterest, m.TotalPaidoutLateFee, m.TotalPaidoutProvision,
		m.OutstandingPrincipal, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update ledger account %s: %w", m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ArchiveAccount soft-archives the account. Accounts are never deleted.
func (r *PgxLedgerRepository) ArchiveAccount(ctx context.Context, accountID string, updatedBy string) error {
	query := `
		UPDATE ledger_accounts
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to archive ledger account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AppendEvent appends an immutable event row within the given transaction.
func (r *PgxLedgerRepository) AppendEvent(ctx context.Context, tx pgx.Tx, event domain.LedgerEvent) error {
	m := mapping.ToModelLedgerEvent(event)
	query := `
		INSERT INTO ledger_events (event_id, account_id, event_type, amount, before_balance, after_balance, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query,
		m.EventID, m.AccountID, m.EventType, m.Amount, m.BeforeBalance, m.AfterBalance, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ledger event %s: %w", m.EventID, err)
	}
	return nil
}

// ListEventsByAccountID retrieves all events of an account in commit order.
func (r *PgxLedgerRepository) ListEventsByAccountID(ctx context.Context, accountID string) ([]domain.LedgerEvent, error) {
	query := `
		SELECT event_id, account_id, event_type, amount, before_balance, after_balance, created_at, created_by
		FROM ledger_events
		WHERE account_id = $1
		ORDER BY created_at ASC, event_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger events: %w", err)
	}
	defer rows.Close()

	var events []domain.LedgerEvent
	for rows.Next() {
		var m models.LedgerEvent
		if err := rows.Scan(&m.EventID, &m.AccountID, &m.EventType, &m.Amount, &m.BeforeBalance, &m.AfterBalance, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan ledger event: %w", err)
		}
		events = append(events, mapping.ToDomainLedgerEvent(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger events: %w", err)
	}
	return events, nil
}
