package domain

// PartnerType classifies a partner's role on the platform.
type PartnerType string

const (
	PartnerLender   PartnerType = "LENDER"
	PartnerMerchant PartnerType = "MERCHANT"
	PartnerAgent    PartnerType = "AGENT"
)

// Partner represents a platform counterparty. Only partners of type LENDER
// may hold a ledger account and move capital through it.
type Partner struct {
	PartnerID string      `json:"partnerID"` // Primary key (UUID)
	Name      string      `json:"name"`
	Type      PartnerType `json:"type"`
	Email     string      `json:"email"`
	IsActive  bool        `json:"isActive"` // Soft delete / deactivation flag
	AuditFields
}

// IsLender reports whether the partner may act as a capital-providing lender.
func (p Partner) IsLender() bool {
	return p.Type == PartnerLender
}
