package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LenderServiceRate holds the revenue-split rates agreed with one lender
// partner. Each rate is the lender's fraction of the corresponding money
// component; the platform always takes the remainder. Rates are resolved at
// the time of the posting event, not frozen at loan origination.
type LenderServiceRate struct {
	RateID        string          `json:"rateID"`    // Primary key (UUID)
	PartnerID     string          `json:"partnerID"` // FK -> partners.partner_id
	ProvisionRate decimal.Decimal `json:"provisionRate"`
	PrincipalRate decimal.Decimal `json:"principalRate"`
	InterestRate  decimal.Decimal `json:"interestRate"`
	LateFeeRate   decimal.Decimal `json:"lateFeeRate"`
	AuditFields
}

// Validate checks that every rate lies in [0, 1].
func (r LenderServiceRate) Validate() error {
	rates := map[string]decimal.Decimal{
		"provisionRate": r.ProvisionRate,
		"principalRate": r.PrincipalRate,
		"interestRate":  r.InterestRate,
		"lateFeeRate":   r.LateFeeRate,
	}
	one := decimal.NewFromInt(1)
	for name, rate := range rates {
		if rate.IsNegative() || rate.GreaterThan(one) {
			return fmt.Errorf("%s must be within [0,1], got %s", name, rate.String())
		}
	}
	return nil
}
