package mapping

import (
	"github.com/julofinance/lender-ledger/internal/core/domain"
	"github.com/julofinance/lender-ledger/internal/models"
)

// ToModelLedgerAccount converts a domain LedgerAccount to a model LedgerAccount
func ToModelLedgerAccount(d domain.LedgerAccount) models.LedgerAccount {
	return models.LedgerAccount{
		AccountID:               d.AccountID,
		PartnerID:               d.PartnerID,
		TotalDeposit:            d.TotalDeposit,
		TotalWithdrawal:         d.TotalWithdrawal,
		TotalDisbursedPrincipal: d.TotalDisbursedPrincipal,
		TotalReceivedPrincipal:  d.TotalReceivedPrincipal,
		TotalReceivedInterest:   d.TotalReceivedInterest,
		TotalReceivedLateFee:    d.TotalReceivedLateFee,
		TotalReceivedProvision:  d.TotalReceivedProvision,
		TotalPaidoutPrincipal:   d.TotalPaidoutPrincipal,
		TotalPaidoutInterest:    d.TotalPaidoutInterest,
		TotalPaidoutLateFee:     d.TotalPaidoutLateFee,
		TotalPaidoutProvision:   d.TotalPaidoutProvision,
		OutstandingPrincipal:    d.OutstandingPrincipal,
		IsActive:                d.IsActive,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerAccount converts a model LedgerAccount to a domain LedgerAccount
func ToDomainLedgerAccount(m models.LedgerAccount) domain.LedgerAccount {
	return domain.LedgerAccount{
		AccountID:               m.AccountID,
		PartnerID:               m.PartnerID,
		TotalDeposit:            m.TotalDeposit,
		TotalWithdrawal:         m.TotalWithdrawal,
		TotalDisbursedPrincipal: m.TotalDisbursedPrincipal,
		TotalReceivedPrincipal:  m.TotalReceivedPrincipal,
		TotalReceivedInterest:   m.TotalReceivedInterest,
		TotalReceivedLateFee:    m.TotalReceivedLateFee,
		TotalReceivedProvision:  m.TotalReceivedProvision,
		TotalPaidoutPrincipal:   m.TotalPaidoutPrincipal,
		TotalPaidoutInterest:    m.TotalPaidoutInterest,
		TotalPaidoutLateFee:     m.TotalPaidoutLateFee,
		TotalPaidoutProvision:   m.TotalPaidoutProvision,
		OutstandingPrincipal:    m.OutstandingPrincipal,
		IsActive:                m.IsActive,
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLedgerEvent converts a domain LedgerEvent to a model LedgerEvent
func ToModelLedgerEvent(d domain.LedgerEvent) models.LedgerEvent {
	return models.LedgerEvent{
		EventID:       d.EventID,
		AccountID:     d.AccountID,
		EventType:     string(d.EventType),
		Amount:        d.Amount,
		BeforeBalance: d.BeforeBalance,
		AfterBalance:  d.AfterBalance,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

// ToDomainLedgerEvent converts a model LedgerEvent to a domain LedgerEvent
func ToDomainLedgerEvent(m models.LedgerEvent) domain.LedgerEvent {
	return domain.LedgerEvent{
		EventID:       m.EventID,
		AccountID:     m.AccountID,
		EventType:     domain.EventType(m.EventType),
		Amount:        m.Amount,
		BeforeBalance: m.BeforeBalance,
		AfterBalance:  m.AfterBalance,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}
