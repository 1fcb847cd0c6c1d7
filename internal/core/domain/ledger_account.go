package domain

import (
	"github.com/julofinance/lender-ledger/internal/apperrors"
)

// LedgerAccount is the running balance record of one lender partner. All
// monetary fields are non-negative integers in the smallest currency unit.
//
// The spendable balance is never stored as a scalar; it is derived from the
// counters via AvailableBalance so it cannot drift from its defining formula.
type LedgerAccount struct {
	AccountID string `json:"accountID"` // Primary key (UUID)
	PartnerID string `json:"partnerID"` // FK -> partners.partner_id, unique

	TotalDeposit            int64 `json:"totalDeposit"`
	TotalWithdrawal         int64 `json:"totalWithdrawal"`
	TotalDisbursedPrincipal int64 `json:"totalDisbursedPrincipal"`
	TotalReceivedPrincipal  int64 `json:"totalReceivedPrincipal"`
	TotalReceivedInterest   int64 `json:"totalReceivedInterest"`
	TotalReceivedLateFee    int64 `json:"totalReceivedLateFee"`
	TotalReceivedProvision  int64 `json:"totalReceivedProvision"`
	TotalPaidoutPrincipal   int64 `json:"totalPaidoutPrincipal"`
	TotalPaidoutInterest    int64 `json:"totalPaidoutInterest"`
	TotalPaidoutLateFee     int64 `json:"totalPaidoutLateFee"`
	TotalPaidoutProvision   int64 `json:"totalPaidoutProvision"`
	OutstandingPrincipal    int64 `json:"outstandingPrincipal"`

	IsActive bool `json:"isActive"` // false once the partner is deactivated; accounts are never deleted
	AuditFields
}

// TotalReceived is the sum of everything the lender has received back.
func (a LedgerAccount) TotalReceived() int64 {
	return a.TotalReceivedPrincipal + a.TotalReceivedInterest + a.TotalReceivedLateFee + a.TotalReceivedProvision
}

// TotalPaidout is the sum of everything already paid out to the lender.
func (a LedgerAccount) TotalPaidout() int64 {
	return a.TotalPaidoutPrincipal + a.TotalPaidoutInterest + a.TotalPaidoutLateFee + a.TotalPaidoutProvision
}

// AvailableBalance is the lender's spendable capital:
// deposits − withdrawals − disbursed principal + total received.
func (a LedgerAccount) AvailableBalance() int64 {
	return a.TotalDeposit - a.TotalWithdrawal - a.TotalDisbursedPrincipal + a.TotalReceived()
}

// CheckPrincipalConservation verifies that disbursed principal is fully
// accounted for as outstanding, received, or paid out. Must hold after every
// mutation; a failure means the ledger is corrupted.
func (a LedgerAccount) CheckPrincipalConservation() error {
	accounted := a.OutstandingPrincipal + a.TotalReceivedPrincipal + a.TotalPaidoutPrincipal
	if a.TotalDisbursedPrincipal != accounted {
		return apperrors.NewInvariantViolation("principal-conservation",
			"account %s: total_disbursed_principal %d != outstanding %d + received %d + paidout %d",
			a.AccountID, a.TotalDisbursedPrincipal, a.OutstandingPrincipal, a.TotalReceivedPrincipal, a.TotalPaidoutPrincipal)
	}
	return nil
}

// CheckNonNegative verifies that no cumulative counter has gone below zero.
func (a LedgerAccount) CheckNonNegative() error {
	counters := map[string]int64{
		"total_deposit":             a.TotalDeposit,
		"total_withdrawal":          a.TotalWithdrawal,
		"total_disbursed_principal": a.TotalDisbursedPrincipal,
		"total_received_principal":  a.TotalReceivedPrincipal,
		"total_received_interest":   a.TotalReceivedInterest,
		"total_received_late_fee":   a.TotalReceivedLateFee,
		"total_received_provision":  a.TotalReceivedProvision,
		"total_paidout_principal":   a.TotalPaidoutPrincipal,
		"total_paidout_interest":    a.TotalPaidoutInterest,
		"total_paidout_late_fee":    a.TotalPaidoutLateFee,
		"total_paidout_provision":   a.TotalPaidoutProvision,
		"outstanding_principal":     a.OutstandingPrincipal,
	}
	for name, v := range counters {
		if v < 0 {
			return apperrors.NewInvariantViolation("non-negative-counter",
				"account %s: %s is negative (%d)", a.AccountID, name, v)
		}
	}
	return nil
}
