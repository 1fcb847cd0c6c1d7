package domain

import "time"

// Installment is one scheduled repayment unit of a loan, with principal,
// interest and late-fee sub-components and running paid totals. The engine
// only reads the totals and advances the paid fields; the schedule itself is
// owned by the loan subsystem. LateFeeAmount may grow between successive
// partial payments as new late fees accrue.
type Installment struct {
	InstallmentID        string     `json:"installmentID"` // Primary key (UUID)
	LoanID               string     `json:"loanID"`        // FK -> loans.loan_id
	Sequence             int        `json:"sequence"`      // 1-based position in the schedule
	DueDate              time.Time  `json:"dueDate"`
	InstallmentPrincipal int64      `json:"installmentPrincipal"`
	InstallmentInterest  int64      `json:"installmentInterest"`
	LateFeeAmount        int64      `json:"lateFeeAmount"`
	PaidPrincipal        int64      `json:"paidPrincipal"`
	PaidInterest         int64      `json:"paidInterest"`
	PaidLateFee          int64      `json:"paidLateFee"`
	PaidDate             *time.Time `json:"paidDate"` // Set when the installment is fully paid
	AuditFields
}

// DueAmount is the installment's total charge including accrued late fees.
func (i Installment) DueAmount() int64 {
	return i.InstallmentPrincipal + i.InstallmentInterest + i.LateFeeAmount
}

// RemainingLateFee is the unpaid portion of the accrued late fee. Always
// computed at call time since LateFeeAmount can increase retroactively.
func (i Installment) RemainingLateFee() int64 {
	return i.LateFeeAmount - i.PaidLateFee
}

// RemainingInterest is the unpaid portion of the installment interest.
func (i Installment) RemainingInterest() int64 {
	return i.InstallmentInterest - i.PaidInterest
}

// RemainingPrincipal is the unpaid portion of the installment principal.
func (i Installment) RemainingPrincipal() int64 {
	return i.InstallmentPrincipal - i.PaidPrincipal
}

// RemainingTotal is everything still owed on this installment.
func (i Installment) RemainingTotal() int64 {
	return i.RemainingLateFee() + i.RemainingInterest() + i.RemainingPrincipal()
}

// IsFullyPaid reports whether no component has an unpaid remainder.
func (i Installment) IsFullyPaid() bool {
	return i.RemainingTotal() == 0
}
