package models

import "github.com/shopspring/decimal"

// Partner is the database representation of a platform counterparty.
type Partner struct {
	PartnerID string `db:"partner_id"`
	Name      string `db:"name"`
	Type      string `db:"type"`
	Email     string `db:"email"`
	IsActive  bool   `db:"is_active"`
	AuditFields
}

// LenderServiceRate is the database representation of a lender's revenue
// split configuration. Rates are NUMERIC columns scanned into decimals.
type LenderServiceRate struct {
	RateID        string          `db:"rate_id"`
	PartnerID     string          `db:"partner_id"`
	ProvisionRate decimal.Decimal `db:"provision_rate"`
	PrincipalRate decimal.Decimal `db:"principal_rate"`
	InterestRate  decimal.Decimal `db:"interest_rate"`
	LateFeeRate   decimal.Decimal `db:"late_fee_rate"`
	IsEffective   bool            `db:"is_effective"`
	AuditFields
}
