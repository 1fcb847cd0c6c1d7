package dto

import "github.com/julofinance/lender-ledger/internal/core/domain"

// DepositRequest defines the JSON body for a lender capital deposit.
// Amounts are integers in the smallest currency unit.
type DepositRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// WithdrawRequest defines the JSON body for a lender capital withdrawal.
type WithdrawRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// BalanceResponse is the read view of a lender's ledger account, including
// the derived totals.
type BalanceResponse struct {
	AccountID               string `json:"accountID"`
	PartnerID               string `json:"partnerID"`
	TotalDeposit            int64  `json:"totalDeposit"`
	TotalWithdrawal         int64  `json:"totalWithdrawal"`
	TotalDisbursedPrincipal int64  `json:"totalDisbursedPrincipal"`
	TotalReceived           int64  `json:"totalReceived"`
	TotalPaidout            int64  `json:"totalPaidout"`
	OutstandingPrincipal    int64  `json:"outstandingPrincipal"`
	AvailableBalance        int64  `json:"availableBalance"`
	IsActive                bool   `json:"isActive"`
}

// ToBalanceResponse maps a ledger account to its read view.
func ToBalanceResponse(a domain.LedgerAccount) BalanceResponse {
	return BalanceResponse{
		AccountID:               a.AccountID,
		PartnerID:               a.PartnerID,
		TotalDeposit:            a.TotalDeposit,
		TotalWithdrawal:         a.TotalWithdrawal,
		TotalDisbursedPrincipal: a.TotalDisbursedPrincipal,
		TotalReceived:           a.TotalReceived(),
		TotalPaidout:            a.TotalPaidout(),
		OutstandingPrincipal:    a.OutstandingPrincipal,
		AvailableBalance:        a.AvailableBalance(),
		IsActive:                a.IsActive,
	}
}

// EventResponse is the read view of one ledger event.
type EventResponse struct {
	EventID       string `json:"eventID"`
	AccountID     string `json:"accountID"`
	EventType     string `json:"eventType"`
	Amount        int64  `json:"amount"`
	BeforeBalance int64  `json:"beforeBalance"`
	AfterBalance  int64  `json:"afterBalance"`
	CreatedAt     string `json:"createdAt"`
}

// ToEventResponse maps a ledger event to its read view.
func ToEventResponse(e domain.LedgerEvent) EventResponse {
	return EventResponse{
		EventID:       e.EventID,
		AccountID:     e.AccountID,
		EventType:     string(e.EventType),
		Amount:        e.Amount,
		BeforeBalance: e.BeforeBalance,
		AfterBalance:  e.AfterBalance,
		CreatedAt:     e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
