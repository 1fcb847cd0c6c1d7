package mapping

import (
	"github.com/julofinance/lender-ledger/internal/core/domain"
	"github.com/julofinance/lender-ledger/internal/models"
)

// ToModelPartner converts a domain Partner to a model Partner
func ToModelPartner(d domain.Partner) models.Partner {
	return models.Partner{
		PartnerID:   d.PartnerID,
		Name:        d.Name,
		Type:        string(d.Type),
		Email:       d.Email,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPartner converts a model Partner to a domain Partner
func ToDomainPartner(m models.Partner) domain.Partner {
	return domain.Partner{
		PartnerID:   m.PartnerID,
		Name:        m.Name,
		Type:        domain.PartnerType(m.Type),
		Email:       m.Email,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelRate converts a domain LenderServiceRate to its model
func ToModelRate(d domain.LenderServiceRate) models.LenderServiceRate {
	return models.LenderServiceRate{
		RateID:        d.RateID,
		PartnerID:     d.PartnerID,
		ProvisionRate: d.ProvisionRate,
		PrincipalRate: d.PrincipalRate,
		InterestRate:  d.InterestRate,
		LateFeeRate:   d.LateFeeRate,
		IsEffective:   true,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRate converts a model LenderServiceRate to its domain type
func ToDomainRate(m models.LenderServiceRate) domain.LenderServiceRate {
	return domain.LenderServiceRate{
		RateID:        m.RateID,
		PartnerID:     m.PartnerID,
		ProvisionRate: m.ProvisionRate,
		PrincipalRate: m.PrincipalRate,
		InterestRate:  m.InterestRate,
		LateFeeRate:   m.LateFeeRate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
