package models

// LedgerAccount is the database representation of a lender's running balance
// record. All monetary columns are BIGINT in the smallest currency unit.
type LedgerAccount struct {
	AccountID string `db:"account_id"`
	PartnerID string `db:"partner_id"`

	TotalDeposit            int64 `db:"total_deposit"`
	TotalWithdrawal         int64 `db:"total_withdrawal"`
	TotalDisbursedPrincipal int64 `db:"total_disbursed_principal"`
	TotalReceivedPrincipal  int64 `db:"total_received_principal"`
	TotalReceivedInterest   int64 `db:"total_received_interest"`
	TotalReceivedLateFee    int64 `db:"total_received_late_fee"`
	TotalReceivedProvision  int64 `db:"total_received_provision"`
	TotalPaidoutPrincipal   int64 `db:"total_paidout_principal"`
	TotalPaidoutInterest    int64 `db:"total_paidout_interest"`
	TotalPaidoutLateFee     int64 `db:"total_paidout_late_fee"`
	TotalPaidoutProvision   int64 `db:"total_paidout_provision"`
	OutstandingPrincipal    int64 `db:"outstanding_principal"`

	IsActive bool `db:"is_active"`
	AuditFields
}
