package mapping

import (
	"github.com/julofinance/lender-ledger/internal/core/domain"
	"github.com/julofinance/lender-ledger/internal/models"
)

// ToModelDisbursementRecord converts a domain DisbursementRecord to its model
func ToModelDisbursementRecord(d domain.DisbursementRecord) models.DisbursementRecord {
	return models.DisbursementRecord{
		RecordID:                d.RecordID,
		LoanID:                  d.LoanID,
		AccountID:               d.AccountID,
		LenderDisbursed:         d.LenderDisbursed,
		TotalProvisionReceived:  d.TotalProvisionReceived,
		LenderProvisionReceived: d.LenderProvisionReceived,
		JuloProvisionReceived:   d.JuloProvisionReceived,
		BorrowerReceived:        d.BorrowerReceived,
		LenderBalanceBefore:     d.LenderBalanceBefore,
		LenderBalanceAfter:      d.LenderBalanceAfter,
		CreatedAt:               d.CreatedAt,
		CreatedBy:               d.CreatedBy,
	}
}

// ToDomainDisbursementRecord converts a model DisbursementRecord to its domain type
func ToDomainDisbursementRecord(m models.DisbursementRecord) domain.DisbursementRecord {
	return domain.DisbursementRecord{
		RecordID:                m.RecordID,
		LoanID:                  m.LoanID,
		AccountID:               m.AccountID,
		LenderDisbursed:         m.LenderDisbursed,
		TotalProvisionReceived:  m.TotalProvisionReceived,
		LenderProvisionReceived: m.LenderProvisionReceived,
		JuloProvisionReceived:   m.JuloProvisionReceived,
		BorrowerReceived:        m.BorrowerReceived,
		LenderBalanceBefore:     m.LenderBalanceBefore,
		LenderBalanceAfter:      m.LenderBalanceAfter,
		CreatedAt:               m.CreatedAt,
		CreatedBy:               m.CreatedBy,
	}
}

// ToModelRepaymentRecord converts a domain RepaymentAllocationRecord to its model
func ToModelRepaymentRecord(d domain.RepaymentAllocationRecord) models.RepaymentAllocationRecord {
	return models.RepaymentAllocationRecord{
		RecordID:                 d.RecordID,
		InstallmentID:            d.InstallmentID,
		AccountID:                d.AccountID,
		BorrowerRepaid:           d.BorrowerRepaid,
		BorrowerRepaidPrincipal:  d.BorrowerRepaidPrincipal,
		BorrowerRepaidInterest:   d.BorrowerRepaidInterest,
		BorrowerRepaidLateFee:    d.BorrowerRepaidLateFee,
		LenderReceivedPrincipal:  d.LenderReceivedPrincipal,
		LenderReceivedInterest:   d.LenderReceivedInterest,
		LenderReceivedLateFee:    d.LenderReceivedLateFee,
		JuloFeeReceivedPrincipal: d.JuloFeeReceivedPrincipal,
		JuloFeeReceivedInterest:  d.JuloFeeReceivedInterest,
		JuloFeeReceivedLateFee:   d.JuloFeeReceivedLateFee,
		LenderBalanceBefore:      d.LenderBalanceBefore,
		LenderBalanceAfter:       d.LenderBalanceAfter,
		TransactionDate:          d.TransactionDate,
		Source:                   string(d.Source),
		CreatedAt:                d.CreatedAt,
		CreatedBy:                d.CreatedBy,
	}
}

// ToDomainRepaymentRecord converts a model RepaymentAllocationRecord to its domain type
func ToDomainRepaymentRecord(m models.RepaymentAllocationRecord) domain.RepaymentAllocationRecord {
	return domain.RepaymentAllocationRecord{
		RecordID:                 m.RecordID,
		InstallmentID:            m.InstallmentID,
		AccountID:                m.AccountID,
		BorrowerRepaid:           m.BorrowerRepaid,
		BorrowerRepaidPrincipal:  m.BorrowerRepaidPrincipal,
		BorrowerRepaidInterest:   m.BorrowerRepaidInterest,
		BorrowerRepaidLateFee:    m.BorrowerRepaidLateFee,
		LenderReceivedPrincipal:  m.LenderReceivedPrincipal,
		LenderReceivedInterest:   m.LenderReceivedInterest,
		LenderReceivedLateFee:    m.LenderReceivedLateFee,
		JuloFeeReceivedPrincipal: m.JuloFeeReceivedPrincipal,
		JuloFeeReceivedInterest:  m.JuloFeeReceivedInterest,
		JuloFeeReceivedLateFee:   m.JuloFeeReceivedLateFee,
		LenderBalanceBefore:      m.LenderBalanceBefore,
		LenderBalanceAfter:       m.LenderBalanceAfter,
		TransactionDate:          m.TransactionDate,
		Source:                   domain.RepaymentSource(m.Source),
		CreatedAt:                m.CreatedAt,
		CreatedBy:                m.CreatedBy,
	}
}
