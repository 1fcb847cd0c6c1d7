package domain

import (
	"time"

	"github.com/julofinance/lender-ledger/internal/apperrors"
)

// DisbursementRecord captures the money split of one loan disbursement: the
// origination fee (provision) is deducted from the disbursed amount and split
// between lender and platform; the borrower receives the rest.
type DisbursementRecord struct {
	RecordID                string    `json:"recordID"` // Primary key (UUID)
	LoanID                  string    `json:"loanID"`   // FK -> loans.loan_id
	AccountID               string    `json:"accountID"`
	LenderDisbursed         int64     `json:"lenderDisbursed"` // = requested loan amount
	TotalProvisionReceived  int64     `json:"totalProvisionReceived"`
	LenderProvisionReceived int64     `json:"lenderProvisionReceived"`
	JuloProvisionReceived   int64     `json:"juloProvisionReceived"`
	BorrowerReceived        int64     `json:"borrowerReceived"`
	LenderBalanceBefore     int64     `json:"lenderBalanceBefore"`
	LenderBalanceAfter      int64     `json:"lenderBalanceAfter"`
	CreatedAt               time.Time `json:"createdAt"`
	CreatedBy               string    `json:"createdBy"`
}

// CheckConservation verifies the disbursement split sums exactly.
func (d DisbursementRecord) CheckConservation() error {
	if d.LenderDisbursed != d.TotalProvisionReceived+d.BorrowerReceived {
		return apperrors.NewInvariantViolation("disbursement-conservation",
			"loan %s: lender_disbursed %d != provision %d + borrower_received %d",
			d.LoanID, d.LenderDisbursed, d.TotalProvisionReceived, d.BorrowerReceived)
	}
	if d.TotalProvisionReceived != d.LenderProvisionReceived+d.JuloProvisionReceived {
		return apperrors.NewInvariantViolation("provision-split-conservation",
			"loan %s: total_provision %d != lender %d + julo %d",
			d.LoanID, d.TotalProvisionReceived, d.LenderProvisionReceived, d.JuloProvisionReceived)
	}
	return nil
}
