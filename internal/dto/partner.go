package dto

import (
	"github.com/julofinance/lender-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePartnerRequest defines the expected JSON body to create a partner.
type CreatePartnerRequest struct {
	Name  string             `json:"name" binding:"required"`
	Type  domain.PartnerType `json:"type" binding:"required,oneof=LENDER MERCHANT AGENT"`
	Email string             `json:"email" binding:"omitempty,email"`
}

// PartnerResponse defines the JSON representation of a partner.
type PartnerResponse struct {
	PartnerID string             `json:"partnerID"`
	Name      string             `json:"name"`
	Type      domain.PartnerType `json:"type"`
	Email     string             `json:"email,omitempty"`
	IsActive  bool               `json:"isActive"`
}

// ToPartnerResponse maps a domain partner to its response DTO.
func ToPartnerResponse(p domain.Partner) PartnerResponse {
	return PartnerResponse{
		PartnerID: p.PartnerID,
		Name:      p.Name,
		Type:      p.Type,
		Email:     p.Email,
		IsActive:  p.IsActive,
	}
}

// SetServiceRateRequest defines the JSON body to configure a lender's
// revenue-split rates. Each rate is the lender's fraction in [0,1].
type SetServiceRateRequest struct {
	ProvisionRate decimal.Decimal `json:"provisionRate" binding:"required"`
	PrincipalRate decimal.Decimal `json:"principalRate" binding:"required"`
	InterestRate  decimal.Decimal `json:"interestRate" binding:"required"`
	LateFeeRate   decimal.Decimal `json:"lateFeeRate" binding:"required"`
}

// RateResponse defines the JSON representation of a lender service rate.
type RateResponse struct {
	RateID        string          `json:"rateID"`
	PartnerID     string          `json:"partnerID"`
	ProvisionRate decimal.Decimal `json:"provisionRate"`
	PrincipalRate decimal.Decimal `json:"principalRate"`
	InterestRate  decimal.Decimal `json:"interestRate"`
	LateFeeRate   decimal.Decimal `json:"lateFeeRate"`
}

// ToRateResponse maps a domain rate to its response DTO.
func ToRateResponse(r domain.LenderServiceRate) RateResponse {
	return RateResponse{
		RateID:        r.RateID,
		PartnerID:     r.PartnerID,
		ProvisionRate: r.ProvisionRate,
		PrincipalRate: r.PrincipalRate,
		InterestRate:  r.InterestRate,
		LateFeeRate:   r.LateFeeRate,
	}
}
