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

const installmentColumns = `installment_id, loan_id, sequence, due_date,
	installment_principal, installment_interest, late_fee_amount,
	paid_principal, paid_interest, paid_late_fee, paid_date,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxLoanRepository persists loans, products and installment schedules.
type PgxLoanRepository struct {
	BaseRepository
}

// newPgxLoanRepository creates a new repository for loan data.
func newPgxLoanRepository(pool *pgxpool.Pool) portsrepo.LoanRepositoryWithTx {
	return &PgxLoanRepository{BaseRepository{Pool: pool}}
}

// SaveProduct persists a loan product.
func (r *PgxLoanRepository) SaveProduct(ctx context.Context, product domain.LoanProduct) error {
	m := mapping.ToModelLoanProduct(product)
	query := `
		INSERT INTO loan_products (product_id, name, origination_fee_pct, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID, m.Name, m.OriginationFeePct, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert loan product %s: %w", m.ProductID, err)
	}
	return nil
}

// FindProductByID retrieves a loan product.
func (r *PgxLoanRepository) FindProductByID(ctx context.Context, productID string) (*domain.LoanProduct, error) {
	query := `
		SELECT product_id, name, origination_fee_pct, created_at, created_by, last_updated_at, last_updated_by
		FROM loan_products WHERE product_id = $1;
	`
	var m models.LoanProduct
	err := r.Pool.QueryRow(ctx, query, productID).Scan(
		&m.ProductID, &m.Name, &m.OriginationFeePct, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan loan product: %w", err)
	}
	product := mapping.ToDomainLoanProduct(m)
	return &product, nil
}

// SaveLoan persists a loan and its installment schedule in one transaction,
// batching the installment inserts.
func (r *PgxLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan, installments []domain.Installment) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	m := mapping.ToModelLoan(loan)
	loanQuery := `
		INSERT INTO loans (loan_id, partner_id, borrower_id, product_id, amount, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, loanQuery,
		m.LoanID, m.PartnerID, m.BorrowerID, m.ProductID, m.Amount, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert loan %s: %w", m.LoanID, err)
	}

	batch := &pgx.Batch{}
	instQuery := `
		INSERT INTO installments (` + installmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	for _, inst := range installments {
		im := mapping.ToModelInstallment(inst)
		batch.Queue(instQuery,
			im.InstallmentID, im.LoanID, im.Sequence, im.DueDate,
			im.InstallmentPrincipal, im.InstallmentInterest, im.LateFeeAmount,
			im.PaidPrincipal, im.PaidInterest, im.PaidLateFee, im.PaidDate,
			im.CreatedAt, im.CreatedBy, im.LastUpdatedAt, im.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range installments {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("failed to insert installment for loan %s: %w", m.LoanID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close installment batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// FindLoanByID retrieves a loan.
func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	query := `
		SELECT loan_id, partner_id, borrower_id, product_id, amount, status, created_at, created_by, last_updated_at, last_updated_by
		FROM loans WHERE loan_id = $1;
	`
	var m models.Loan
	err := r.Pool.QueryRow(ctx, query, loanID).Scan(
		&m.LoanID, &m.PartnerID, &m.BorrowerID, &m.ProductID, &m.Amount, &m.Status,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan loan: %w", err)
	}
	loan := mapping.ToDomainLoan(m)
	return &loan, nil
}

// UpdateLoanStatus updates the loan status within the given transaction.
func (r *PgxLoanRepository) UpdateLoanStatus(ctx context.Context, tx pgx.Tx, loanID string, status domain.LoanStatus, updatedBy string) error {
	query := `
		UPDATE loans SET status = $2, last_updated_at = $3, last_updated_by = $4 WHERE loan_id = $1;
	`
	tag, err := tx.Exec(ctx, query, loanID, string(status), time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update loan %s status: %w", loanID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanInstallment(row pgxRow) (*domain.Installment, error) {
	var m models.Installment
	err := row.Scan(
		&m.InstallmentID, &m.LoanID, &m.Sequence, &m.DueDate,
		&m.InstallmentPrincipal, &m.InstallmentInterest, &m.LateFeeAmount,
		&m.PaidPrincipal, &m.PaidInterest, &m.PaidLateFee, &m.PaidDate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan installment: %w", err)
	}
	inst := mapping.ToDomainInstallment(m)
	return &inst, nil
}

// ListInstallmentsByLoanID retrieves a loan's schedule in sequence order.
func (r *PgxLoanRepository) ListInstallmentsByLoanID(ctx context.Context, loanID string) ([]domain.Installment, error) {
	query := `SELECT ` + installmentColumns + ` FROM installments WHERE loan_id = $1 ORDER BY sequence ASC;`
	rows, err := r.Pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to query installments: %w", err)
	}
	defer rows.Close()

	var installments []domain.Installment
	for rows.Next() {
		inst, err := scanInstallment(rows)
		if err != nil {
			return nil, err
		}
		installments = append(installments, *inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating installments: %w", err)
	}
	return installments, nil
}

// FindInstallmentByIDForUpdate retrieves an installment and locks its row.
func (r *PgxLoanRepository) FindInstallmentByIDForUpdate(ctx context.Context, tx pgx.Tx, installmentID string) (*domain.Installment, error) {
	query := `SELECT ` + installmentColumns + ` FROM installments WHERE installment_id = $1 FOR UPDATE;`
	return scanInstallment(tx.QueryRow(ctx, query, installmentID))
}

// FindUnpaidInstallmentsByLoanForUpdate retrieves the loan's not fully paid
// installments in due-date order, locking their rows.
func (r *PgxLoanRepository) FindUnpaidInstallmentsByLoanForUpdate(ctx context.Context, tx pgx.Tx, loanID string) ([]domain.Installment, error) {
	query := `
		SELECT ` + installmentColumns + `
		FROM installments
		WHERE loan_id = $1
		  AND (paid_principal < installment_principal
		    OR paid_interest < installment_interest
		    OR paid_late_fee < late_fee_amount)
		ORDER BY due_date ASC, sequence ASC
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to query unpaid installments: %w", err)
	}
	defer rows.Close()

	var installments []domain.Installment
	for rows.Next() {
		inst, err := scanInstallment(rows)
		if err != nil {
			return nil, err
		}
		installments = append(installments, *inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unpaid installments: %w", err)
	}
	return installments, nil
}

// UpdateInstallmentPaid writes the installment's paid fields within the given
// transaction.
func (r *PgxLoanRepository) UpdateInstallmentPaid(ctx context.Context, tx pgx.Tx, installment domain.Installment) error {
	m := mapping.ToModelInstallment(installment)
	query := `
		UPDATE installments SET
			late_fee_amount = $2,
			paid_principal = $3,
			paid_interest = $4,
			paid_late_fee = $5,
			paid_date = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE installment_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.InstallmentID, m.LateFeeAmount, m.PaidPrincipal, m.PaidInterest, m.PaidLateFee, m.PaidDate,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update installment %s: %w", m.InstallmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
