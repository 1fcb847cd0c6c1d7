package dto

import (
	"time"

	"github.com/julofinance/lender-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the JSON body to register a loan product.
type CreateProductRequest struct {
	Name              string          `json:"name" binding:"required"`
	OriginationFeePct decimal.Decimal `json:"originationFeePct" binding:"required"`
}

// InstallmentInput is one scheduled installment in a loan registration.
type InstallmentInput struct {
	Sequence  int       `json:"sequence" binding:"required,gt=0"`
	DueDate   time.Time `json:"dueDate" binding:"required"`
	Principal int64     `json:"principal" binding:"required,gt=0"`
	Interest  int64     `json:"interest" binding:"gte=0"`
}

// RegisterLoanRequest defines the JSON body to register a loan and its
// installment schedule with the engine.
type RegisterLoanRequest struct {
	PartnerID    string             `json:"partnerID" binding:"required"`
	BorrowerID   string             `json:"borrowerID" binding:"required"`
	ProductID    string             `json:"productID" binding:"required"`
	Amount       int64              `json:"amount" binding:"required,gt=0"`
	Installments []InstallmentInput `json:"installments" binding:"required,min=1,dive"`
}

// LoanResponse defines the JSON representation of a loan.
type LoanResponse struct {
	LoanID     string `json:"loanID"`
	PartnerID  string `json:"partnerID"`
	BorrowerID string `json:"borrowerID"`
	ProductID  string `json:"productID"`
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
}

// ToLoanResponse maps a domain loan to its response DTO.
func ToLoanResponse(l domain.Loan) LoanResponse {
	return LoanResponse{
		LoanID:     l.LoanID,
		PartnerID:  l.PartnerID,
		BorrowerID: l.BorrowerID,
		ProductID:  l.ProductID,
		Amount:     l.Amount,
		Status:     string(l.Status),
	}
}

// InstallmentResponse is the read view of one installment.
type InstallmentResponse struct {
	InstallmentID        string     `json:"installmentID"`
	LoanID               string     `json:"loanID"`
	Sequence             int        `json:"sequence"`
	DueDate              time.Time  `json:"dueDate"`
	InstallmentPrincipal int64      `json:"installmentPrincipal"`
	InstallmentInterest  int64      `json:"installmentInterest"`
	LateFeeAmount        int64      `json:"lateFeeAmount"`
	PaidPrincipal        int64      `json:"paidPrincipal"`
	PaidInterest         int64      `json:"paidInterest"`
	PaidLateFee          int64      `json:"paidLateFee"`
	RemainingTotal       int64      `json:"remainingTotal"`
	PaidDate             *time.Time `json:"paidDate,omitempty"`
}

// ToInstallmentResponse maps a domain installment to its read view.
func ToInstallmentResponse(i domain.Installment) InstallmentResponse {
	return InstallmentResponse{
		InstallmentID:        i.InstallmentID,
		LoanID:               i.LoanID,
		Sequence:             i.Sequence,
		DueDate:              i.DueDate,
		InstallmentPrincipal: i.InstallmentPrincipal,
		InstallmentInterest:  i.InstallmentInterest,
		LateFeeAmount:        i.LateFeeAmount,
		PaidPrincipal:        i.PaidPrincipal,
		PaidInterest:         i.PaidInterest,
		PaidLateFee:          i.PaidLateFee,
		RemainingTotal:       i.RemainingTotal(),
		PaidDate:             i.PaidDate,
	}
}
