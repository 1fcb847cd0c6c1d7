package dto

import (
	"time"

	"github.com/julofinance/lender-ledger/internal/core/domain"
)

// DisburseRequest defines the JSON body to disburse a registered loan.
type DisburseRequest struct {
	LoanID string `json:"loanID" binding:"required"`
}

// DisbursementResponse mirrors the persisted disbursement split record.
type DisbursementResponse struct {
	RecordID                string `json:"recordID"`
	LoanID                  string `json:"loanID"`
	LenderDisbursed         int64  `json:"lenderDisbursed"`
	TotalProvisionReceived  int64  `json:"totalProvisionReceived"`
	LenderProvisionReceived int64  `json:"lenderProvisionReceived"`
	JuloProvisionReceived   int64  `json:"juloProvisionReceived"`
	BorrowerReceived        int64  `json:"borrowerReceived"`
	LenderBalanceBefore     int64  `json:"lenderBalanceBefore"`
	LenderBalanceAfter      int64  `json:"lenderBalanceAfter"`
}

// ToDisbursementResponse maps a disbursement record to its response DTO.
func ToDisbursementResponse(d domain.DisbursementRecord) DisbursementResponse {
	return DisbursementResponse{
		RecordID:                d.RecordID,
		LoanID:                  d.LoanID,
		LenderDisbursed:         d.LenderDisbursed,
		TotalProvisionReceived:  d.TotalProvisionReceived,
		LenderProvisionReceived: d.LenderProvisionReceived,
		JuloProvisionReceived:   d.JuloProvisionReceived,
		BorrowerReceived:        d.BorrowerReceived,
		LenderBalanceBefore:     d.LenderBalanceBefore,
		LenderBalanceAfter:      d.LenderBalanceAfter,
	}
}

// RepaymentMeta carries audit metadata attached to a repayment posting. It is
// recorded on the allocation record but never used in allocation math.
type RepaymentMeta struct {
	TransactionDate time.Time              `json:"transactionDate" binding:"required"`
	Source          domain.RepaymentSource `json:"source" binding:"required,oneof=borrower_bank borrower_wallet"`
}

// RepayInstallmentRequest defines the JSON body to post a repayment against
// one installment.
type RepayInstallmentRequest struct {
	InstallmentID string `json:"installmentID" binding:"required"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
	RepaymentMeta
}

// RepayLoanRequest defines the JSON body to post a repayment that may span
// several installments of one loan, oldest due first.
type RepayLoanRequest struct {
	LoanID string `json:"loanID" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
	RepaymentMeta
}

// RepaymentAllocationResponse mirrors one persisted repayment allocation record.
type RepaymentAllocationResponse struct {
	RecordID                 string `json:"recordID"`
	InstallmentID            string `json:"installmentID"`
	BorrowerRepaid           int64  `json:"borrowerRepaid"`
	BorrowerRepaidPrincipal  int64  `json:"borrowerRepaidPrincipal"`
	BorrowerRepaidInterest   int64  `json:"borrowerRepaidInterest"`
	BorrowerRepaidLateFee    int64  `json:"borrowerRepaidLateFee"`
	LenderReceivedPrincipal  int64  `json:"lenderReceivedPrincipal"`
	LenderReceivedInterest   int64  `json:"lenderReceivedInterest"`
	LenderReceivedLateFee    int64  `json:"lenderReceivedLateFee"`
	JuloFeeReceivedPrincipal int64  `json:"juloFeeReceivedPrincipal"`
	JuloFeeReceivedInterest  int64  `json:"juloFeeReceivedInterest"`
	JuloFeeReceivedLateFee   int64  `json:"juloFeeReceivedLateFee"`
	LenderBalanceBefore      int64  `json:"lenderBalanceBefore"`
	LenderBalanceAfter       int64  `json:"lenderBalanceAfter"`
}

// RepaymentResponse is the top-level result of a repayment posting. Excess is
// the portion of the payment not consumed by the targeted installment(s); the
// caller decides whether it becomes cashback or a refund.
type RepaymentResponse struct {
	Allocations []RepaymentAllocationResponse `json:"allocations"`
	Excess      int64                         `json:"excess"`
}

// ToRepaymentAllocationResponse maps an allocation record to its response DTO.
func ToRepaymentAllocationResponse(r domain.RepaymentAllocationRecord) RepaymentAllocationResponse {
	return RepaymentAllocationResponse{
		RecordID:                 r.RecordID,
		InstallmentID:            r.InstallmentID,
		BorrowerRepaid:           r.BorrowerRepaid,
		BorrowerRepaidPrincipal:  r.BorrowerRepaidPrincipal,
		BorrowerRepaidInterest:   r.BorrowerRepaidInterest,
		BorrowerRepaidLateFee:    r.BorrowerRepaidLateFee,
		LenderReceivedPrincipal:  r.LenderReceivedPrincipal,
		LenderReceivedInterest:   r.LenderReceivedInterest,
		LenderReceivedLateFee:    r.LenderReceivedLateFee,
		JuloFeeReceivedPrincipal: r.JuloFeeReceivedPrincipal,
		JuloFeeReceivedInterest:  r.JuloFeeReceivedInterest,
		JuloFeeReceivedLateFee:   r.JuloFeeReceivedLateFee,
		LenderBalanceBefore:      r.LenderBalanceBefore,
		LenderBalanceAfter:       r.LenderBalanceAfter,
	}
}
