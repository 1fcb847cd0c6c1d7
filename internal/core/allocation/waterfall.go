package allocation

import "github.com/julofinance/lender-ledger/internal/core/domain"

// Allocation is the result of applying a payment amount to one installment.
// LateFee + Interest + Principal + Remainder always equals the input amount.
type Allocation struct {
	LateFee   int64
	Interest  int64
	Principal int64
	// Remainder is whatever exceeded the installment's total due. The caller
	// routes it to the next unpaid installment or to a refund; it is never
	// silently dropped here.
	Remainder int64
}

// Applied is the portion of the payment consumed by this installment.
func (a Allocation) Applied() int64 {
	return a.LateFee + a.Interest + a.Principal
}

// Waterfall applies amount to the installment's outstanding components in the
// fixed business order: late fee first, then interest, then principal. The
// order is the defining rule of the repayment engine and must not change.
//
// Remaining component amounts are read from the installment at call time,
// never cached, because late fees can accrue retroactively between two
// partial payments against the same installment.
func Waterfall(installment domain.Installment, amount int64) Allocation {
	var alloc Allocation

	alloc.LateFee = min64(amount, installment.RemainingLateFee())
	amount -= alloc.LateFee

	alloc.Interest = min64(amount, installment.RemainingInterest())
	amount -= alloc.Interest

	alloc.Principal = min64(amount, installment.RemainingPrincipal())
	amount -= alloc.Principal

	alloc.Remainder = amount
	return alloc
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
