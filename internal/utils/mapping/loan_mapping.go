package mapping

import (
	"github.com/julofinance/lender-ledger/internal/core/domain"
	"github.com/julofinance/lender-ledger/internal/models"
)

// ToModelLoanProduct converts a domain LoanProduct to its model
func ToModelLoanProduct(d domain.LoanProduct) models.LoanProduct {
	return models.LoanProduct{
		ProductID:         d.ProductID,
		Name:              d.Name,
		OriginationFeePct: d.OriginationFeePct,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLoanProduct converts a model LoanProduct to its domain type
func ToDomainLoanProduct(m models.LoanProduct) domain.LoanProduct {
	return domain.LoanProduct{
		ProductID:         m.ProductID,
		Name:              m.Name,
		OriginationFeePct: m.OriginationFeePct,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLoan converts a domain Loan to its model
func ToModelLoan(d domain.Loan) models.Loan {
	return models.Loan{
		LoanID:      d.LoanID,
		PartnerID:   d.PartnerID,
		BorrowerID:  d.BorrowerID,
		ProductID:   d.ProductID,
		Amount:      d.Amount,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLoan converts a model Loan to its domain type
func ToDomainLoan(m models.Loan) domain.Loan {
	return domain.Loan{
		LoanID:      m.LoanID,
		PartnerID:   m.PartnerID,
		BorrowerID:  m.BorrowerID,
		ProductID:   m.ProductID,
		Amount:      m.Amount,
		Status:      domain.LoanStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelInstallment converts a domain Installment to its model
func ToModelInstallment(d domain.Installment) models.Installment {
	return models.Installment{
		InstallmentID:        d.InstallmentID,
		LoanID:               d.LoanID,
		Sequence:             d.Sequence,
		DueDate:              d.DueDate,
		InstallmentPrincipal: d.InstallmentPrincipal,
		InstallmentInterest:  d.InstallmentInterest,
		LateFeeAmount:        d.LateFeeAmount,
		PaidPrincipal:        d.PaidPrincipal,
		PaidInterest:         d.PaidInterest,
		PaidLateFee:          d.PaidLateFee,
		PaidDate:             d.PaidDate,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInstallment converts a model Installment to its domain type
func ToDomainInstallment(m models.Installment) domain.Installment {
	return domain.Installment{
		InstallmentID:        m.InstallmentID,
		LoanID:               m.LoanID,
		Sequence:             m.Sequence,
		DueDate:              m.DueDate,
		InstallmentPrincipal: m.InstallmentPrincipal,
		InstallmentInterest:  m.InstallmentInterest,
		LateFeeAmount:        m.LateFeeAmount,
		PaidPrincipal:        m.PaidPrincipal,
		PaidInterest:         m.PaidInterest,
		PaidLateFee:          m.PaidLateFee,
		PaidDate:             m.PaidDate,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}
