package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/julofinance/lender-ledger/internal/apperrors"
	"github.com/julofinance/lender-ledger/internal/core/domain"
	portsrepo "github.com/julofinance/lender-ledger/internal/core/ports/repositories"
	"github.com/julofinance/lender-ledger/internal/models"
	"github.com/julofinance/lender-ledger/internal/utils/mapping"
)

const repaymentRecordColumns = `record_id, installment_id, account_id,
	borrower_repaid, borrower_repaid_principal, borrower_repaid_interest, borrower_repaid_late_fee,
	lender_received_principal, lender_received_interest, lender_received_late_fee,
	julo_fee_received_principal, julo_fee_received_interest, julo_fee_received_late_fee,
	lender_balance_before, lender_balance_after, transaction_date, source, created_at, created_by`

// PgxPostingRepository persists the per-operation allocation records.
type PgxPostingRepository struct {
	BaseRepository
}

// newPgxPostingRepository creates a new repository for posting records.
func newPgxPostingRepository(pool *pgxpool.Pool) portsrepo.PostingRecordRepository {
	return &PgxPostingRepository{BaseRepository{Pool: pool}}
}

// SaveDisbursementRecord persists a disbursement split record within the
// given transaction.
func (r *PgxPostingRepository) SaveDisbursementRecord(ctx context.Context, tx pgx.Tx, record domain.DisbursementRecord) error {
	m := mapping.ToModelDisbursementRecord(record)
	query := `
		INSERT INTO disbursement_records (record_id, loan_id, account_id, lender_disbursed, total_provision_received, lender_provision_received, julo_provision_received, borrower_received, lender_balance_before, lender_balance_after, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := tx.Exec(ctx, query,
		m.RecordID, m.LoanID, m.AccountID, m.LenderDisbursed, m.TotalProvisionReceived,
		m.LenderProvisionReceived, m.JuloProvisionReceived, m.BorrowerReceived,
		m.LenderBalanceBefore, m.LenderBalanceAfter, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert disbursement record %s: %w", m.RecordID, err)
	}
	return nil
}

// SaveRepaymentRecord persists a repayment allocation record within the given
// transaction.
func (r *PgxPostingRepository) SaveRepaymentRecord(ctx context.Context, tx pgx.Tx, record domain.RepaymentAllocationRecord) error {
	m := mapping.ToModelRepaymentRecord(record)
	query := `
		INSERT INTO repayment_allocation_records (` + repaymentRecordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := tx.Exec(ctx, query,
		m.RecordID, m.InstallmentID, m.AccountID,
		m.BorrowerRepaid, m.BorrowerRepaidPrincipal, m.BorrowerRepaidInterest, m.BorrowerRepaidLateFee,
		m.LenderReceivedPrincipal, m.LenderReceivedInterest, m.LenderReceivedLateFee,
		m.JuloFeeReceivedPrincipal, m.JuloFeeReceivedInterest, m.JuloFeeReceivedLateFee,
		m.LenderBalanceBefore, m.LenderBalanceAfter, m.TransactionDate, m.Source, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert repayment record %s: %w", m.RecordID, err)
	}
	return nil
}

// ListRepaymentRecordsByInstallmentID retrieves the allocation records of one
// installment, oldest first.
func (r *PgxPostingRepository) ListRepaymentRecordsByInstallmentID(ctx context.Context, installmentID string) ([]domain.RepaymentAllocationRecord, error) {
	query := `
		SELECT ` + repaymentRecordColumns + `
		FROM repayment_allocation_records
		WHERE installment_id = $1
		ORDER BY created_at ASC, record_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, installmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query repayment records: %w", err)
	}
	defer rows.Close()

	var records []domain.RepaymentAllocationRecord
	for rows.Next() {
		var m models.RepaymentAllocationRecord
		err := rows.Scan(
			&m.RecordID, &m.InstallmentID, &m.AccountID,
			&m.BorrowerRepaid, &m.BorrowerRepaidPrincipal, &m.BorrowerRepaidInterest, &m.BorrowerRepaidLateFee,
			&m.LenderReceivedPrincipal, &m.LenderReceivedInterest, &m.LenderReceivedLateFee,
			&m.JuloFeeReceivedPrincipal, &m.JuloFeeReceivedInterest, &m.JuloFeeReceivedLateFee,
			&m.LenderBalanceBefore, &m.LenderBalanceAfter, &m.TransactionDate, &m.Source, &m.CreatedAt, &m.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan repayment record: %w", err)
		}
		records = append(records, mapping.ToDomainRepaymentRecord(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating repayment records: %w", err)
	}
	return records, nil
}

// FindDisbursementRecordByLoanID retrieves the disbursement record of a loan.
func (r *PgxPostingRepository) FindDisbursementRecordByLoanID(ctx context.Context, loanID string) (*domain.DisbursementRecord, error) {
	query := `
		SELECT record_id, loan_id, account_id, lender_disbursed, total_provision_received, lender_provision_received, julo_provision_received, borrower_received, lender_balance_before, lender_balance_after, created_at, created_by
		FROM disbursement_records WHERE loan_id = $1;
	`
	var m models.DisbursementRecord
	err := r.Pool.QueryRow(ctx, query, loanID).Scan(
		&m.RecordID, &m.LoanID, &m.AccountID, &m.LenderDisbursed, &m.TotalProvisionReceived,
		&m.LenderProvisionReceived, &m.JuloProvisionReceived, &m.BorrowerReceived,
		&m.LenderBalanceBefore, &m.LenderBalanceAfter, &m.CreatedAt, &m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan disbursement record: %w", err)
	}
	record := mapping.ToDomainDisbursementRecord(m)
	return &record, nil
}
