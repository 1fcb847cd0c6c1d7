package domain

import "github.com/shopspring/decimal"

// LoanStatus indicates where a loan sits in the disbursement lifecycle.
type LoanStatus string

const (
	LoanPending   LoanStatus = "PENDING"
	LoanDisbursed LoanStatus = "DISBURSED"
	LoanPaidOff   LoanStatus = "PAID_OFF"
)

// LoanProduct carries the fee configuration a loan was originated under.
type LoanProduct struct {
	ProductID         string          `json:"productID"` // Primary key (UUID)
	Name              string          `json:"name"`
	OriginationFeePct decimal.Decimal `json:"originationFeePct"` // Fraction of the loan amount taken as provision
	AuditFields
}

// Loan is the engine's view of a loan: who funds it, how much, and under
// which product. Origination, scoring and schedules are owned elsewhere.
type Loan struct {
	LoanID     string     `json:"loanID"`     // Primary key (UUID)
	PartnerID  string     `json:"partnerID"`  // Funding lender, FK -> partners.partner_id
	BorrowerID string     `json:"borrowerID"` // Opaque reference to the borrower
	ProductID  string     `json:"productID"`  // FK -> loan_products.product_id
	Amount     int64      `json:"amount"`     // Requested loan amount, smallest currency unit
	Status     LoanStatus `json:"status"`
	AuditFields
}
