package models

import "time"

// DisbursementRecord is the database representation of one loan disbursement split.
type DisbursementRecord struct {
	RecordID                string    `db:"record_id"`
	LoanID                  string    `db:"loan_id"`
	AccountID               string    `db:"account_id"`
	LenderDisbursed         int64     `db:"lender_disbursed"`
	TotalProvisionReceived  int64     `db:"total_provision_received"`
	LenderProvisionReceived int64     `db:"lender_provision_received"`
	JuloProvisionReceived   int64     `db:"julo_provision_received"`
	BorrowerReceived        int64     `db:"borrower_received"`
	LenderBalanceBefore     int64     `db:"lender_balance_before"`
	LenderBalanceAfter      int64     `db:"lender_balance_after"`
	CreatedAt               time.Time `db:"created_at"`
	CreatedBy               string    `db:"created_by"`
}

// RepaymentAllocationRecord is the database representation of one repayment
// applied to one installment.
type RepaymentAllocationRecord struct {
	RecordID                 string    `db:"record_id"`
	InstallmentID            string    `db:"installment_id"`
	AccountID                string    `db:"account_id"`
	BorrowerRepaid           int64     `db:"borrower_repaid"`
	BorrowerRepaidPrincipal  int64     `db:"borrower_repaid_principal"`
	BorrowerRepaidInterest   int64     `db:"borrower_repaid_interest"`
	BorrowerRepaidLateFee    int64     `db:"borrower_repaid_late_fee"`
	LenderReceivedPrincipal  int64     `db:"lender_received_principal"`
	LenderReceivedInterest   int64     `db:"lender_received_interest"`
	LenderReceivedLateFee    int64     `db:"lender_received_late_fee"`
	JuloFeeReceivedPrincipal int64     `db:"julo_fee_received_principal"`
	JuloFeeReceivedInterest  int64     `db:"julo_fee_received_interest"`
	JuloFeeReceivedLateFee   int64     `db:"julo_fee_received_late_fee"`
	LenderBalanceBefore      int64     `db:"lender_balance_before"`
	LenderBalanceAfter       int64     `db:"lender_balance_after"`
	TransactionDate          time.Time `db:"transaction_date"`
	Source                   string    `db:"source"`
	CreatedAt                time.Time `db:"created_at"`
	CreatedBy                string    `db:"created_by"`
}
