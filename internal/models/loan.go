package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanProduct is the database representation of a loan product.
type LoanProduct struct {
	ProductID         string          `db:"product_id"`
	Name              string          `db:"name"`
	OriginationFeePct decimal.Decimal `db:"origination_fee_pct"`
	AuditFields
}

// Loan is the database representation of a loan.
type Loan struct {
	LoanID     string `db:"loan_id"`
	PartnerID  string `db:"partner_id"`
	BorrowerID string `db:"borrower_id"`
	ProductID  string `db:"product_id"`
	Amount     int64  `db:"amount"`
	Status     string `db:"status"`
	AuditFields
}

// Installment is the database representation of one scheduled repayment unit.
type Installment struct {
	InstallmentID        string     `db:"installment_id"`
	LoanID               string     `db:"loan_id"`
	Sequence             int        `db:"sequence"`
	DueDate              time.Time  `db:"due_date"`
	InstallmentPrincipal int64      `db:"installment_principal"`
	InstallmentInterest  int64      `db:"installment_interest"`
	LateFeeAmount        int64      `db:"late_fee_amount"`
	PaidPrincipal        int64      `db:"paid_principal"`
	PaidInterest         int64      `db:"paid_interest"`
	PaidLateFee          int64      `db:"paid_late_fee"`
	PaidDate             *time.Time `db:"paid_date"`
	AuditFields
}
