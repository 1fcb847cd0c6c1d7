// Package allocation holds the pure money-allocation arithmetic of the
// lender ledger: the lender/platform revenue split and the repayment
// waterfall. Everything here is stateless and side-effect free so the rules
// can be tested without a database.
package allocation

import "github.com/shopspring/decimal"

// Split divides amount between the lender and the platform. The lender share
// is floor(amount * rate); the platform share is always the remainder, never
// rounded on its own, so the two shares sum to amount exactly.
//
// amount must be non-negative and rate must lie in [0,1]; both are validated
// by the caller.
func Split(amount int64, rate decimal.Decimal) (lenderShare, platformShare int64) {
	lenderShare = decimal.NewFromInt(amount).Mul(rate).Floor().IntPart()
	platformShare = amount - lenderShare
	return lenderShare, platformShare
}

// FloorFraction returns floor(amount * fraction). Used for the origination
// fee taken off a disbursement before the lender/platform split.
func FloorFraction(amount int64, fraction decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(fraction).Floor().IntPart()
}
