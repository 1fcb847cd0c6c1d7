package domain

import (
	"time"

	"github.com/julofinance/lender-ledger/internal/apperrors"
)

// RepaymentSource identifies the channel a repayment arrived through. It is
// recorded for audit but never participates in allocation math.
type RepaymentSource string

const (
	SourceBorrowerBank   RepaymentSource = "borrower_bank"
	SourceBorrowerWallet RepaymentSource = "borrower_wallet"
)

// RepaymentAllocationRecord captures how one incoming payment against one
// installment was split across late fee, interest and principal, and how each
// component was then divided between the lender and the platform.
type RepaymentAllocationRecord struct {
	RecordID      string `json:"recordID"`      // Primary key (UUID)
	InstallmentID string `json:"installmentID"` // FK -> installments.installment_id
	AccountID     string `json:"accountID"`

	BorrowerRepaid          int64 `json:"borrowerRepaid"` // Amount applied to this installment
	BorrowerRepaidPrincipal int64 `json:"borrowerRepaidPrincipal"`
	BorrowerRepaidInterest  int64 `json:"borrowerRepaidInterest"`
	BorrowerRepaidLateFee   int64 `json:"borrowerRepaidLateFee"`

	LenderReceivedPrincipal int64 `json:"lenderReceivedPrincipal"`
	LenderReceivedInterest  int64 `json:"lenderReceivedInterest"`
	LenderReceivedLateFee   int64 `json:"lenderReceivedLateFee"`

	JuloFeeReceivedPrincipal int64 `json:"juloFeeReceivedPrincipal"`
	JuloFeeReceivedInterest  int64 `json:"juloFeeReceivedInterest"`
	JuloFeeReceivedLateFee   int64 `json:"juloFeeReceivedLateFee"`

	LenderBalanceBefore int64 `json:"lenderBalanceBefore"`
	LenderBalanceAfter  int64 `json:"lenderBalanceAfter"`

	TransactionDate time.Time       `json:"transactionDate"` // When the payment happened at the source
	Source          RepaymentSource `json:"source"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// LenderReceivedTotal is the lender's share across all three components.
func (r RepaymentAllocationRecord) LenderReceivedTotal() int64 {
	return r.LenderReceivedPrincipal + r.LenderReceivedInterest + r.LenderReceivedLateFee
}

// CheckConservation verifies both repayment conservation laws: the waterfall
// components sum to the applied amount, and each component splits exactly
// between lender and platform.
func (r RepaymentAllocationRecord) CheckConservation() error {
	componentSum := r.BorrowerRepaidPrincipal + r.BorrowerRepaidInterest + r.BorrowerRepaidLateFee
	if r.BorrowerRepaid != componentSum {
		return apperrors.NewInvariantViolation("repayment-conservation",
			"installment %s: borrower_repaid %d != principal %d + interest %d + late_fee %d",
			r.InstallmentID, r.BorrowerRepaid, r.BorrowerRepaidPrincipal, r.BorrowerRepaidInterest, r.BorrowerRepaidLateFee)
	}
	splits := []struct {
		name      string
		component int64
		lender    int64
		julo      int64
	}{
		{"principal", r.BorrowerRepaidPrincipal, r.LenderReceivedPrincipal, r.JuloFeeReceivedPrincipal},
		{"interest", r.BorrowerRepaidInterest, r.LenderReceivedInterest, r.JuloFeeReceivedInterest},
		{"late_fee", r.BorrowerRepaidLateFee, r.LenderReceivedLateFee, r.JuloFeeReceivedLateFee},
	}
	for _, s := range splits {
		if s.lender+s.julo != s.component {
			return apperrors.NewInvariantViolation("component-split-conservation",
				"installment %s: %s lender %d + julo %d != component %d",
				r.InstallmentID, s.name, s.lender, s.julo, s.component)
		}
	}
	return nil
}
