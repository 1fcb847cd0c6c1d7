package domain

import (
	"time"

	"github.com/julofinance/lender-ledger/internal/apperrors"
)

// EventType identifies the kind of balance mutation a ledger event records.
type EventType string

const (
	EventDeposit      EventType = "DEPOSIT"
	EventWithdraw     EventType = "WITHDRAW"
	EventDisbursement EventType = "DISBURSEMENT"
	EventRepayment    EventType = "REPAYMENT"
)

// LedgerEvent is one append-only record of a balance mutation. Events are
// immutable once created. BeforeBalance/AfterBalance snapshot the account's
// available balance around the mutation, so that within one account the chain
// of events reconstructs every historical balance.
type LedgerEvent struct {
	EventID       string    `json:"eventID"`   // Primary key (UUID)
	AccountID     string    `json:"accountID"` // FK -> ledger_accounts.account_id
	EventType     EventType `json:"eventType"`
	Amount        int64     `json:"amount"`        // Positive magnitude of the movement
	BeforeBalance int64     `json:"beforeBalance"` // Available balance before the mutation
	AfterBalance  int64     `json:"afterBalance"`  // Available balance after the mutation
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
}

// BalanceDelta is the signed effect of the event on the available balance.
func (e LedgerEvent) BalanceDelta() int64 {
	return e.AfterBalance - e.BeforeBalance
}

// CheckSnapshot verifies the event's internal consistency. For deposits and
// withdrawals the snapshot delta must equal the signed amount; disbursement
// and repayment events move the balance by their net ledger effect, which the
// posting service records in the snapshots directly.
func (e LedgerEvent) CheckSnapshot() error {
	switch e.EventType {
	case EventDeposit:
		if e.AfterBalance-e.BeforeBalance != e.Amount {
			return apperrors.NewInvariantViolation("event-snapshot",
				"deposit event %s: after %d - before %d != amount %d",
				e.EventID, e.AfterBalance, e.BeforeBalance, e.Amount)
		}
	case EventWithdraw:
		if e.AfterBalance-e.BeforeBalance != -e.Amount {
			return apperrors.NewInvariantViolation("event-snapshot",
				"withdraw event %s: after %d - before %d != -amount %d",
				e.EventID, e.AfterBalance, e.BeforeBalance, e.Amount)
		}
	}
	return nil
}

// ReplayEvents folds a slice of events, ordered by commit time, and returns
// the reconstructed available balance. It fails if the chain is broken: each
// event's before-balance must equal the previous event's after-balance.
func ReplayEvents(events []LedgerEvent) (int64, error) {
	var balance int64
	for i, e := range events {
		if err := e.CheckSnapshot(); err != nil {
			return 0, err
		}
		if i == 0 {
			balance = e.BeforeBalance
		} else if e.BeforeBalance != balance {
			return 0, apperrors.NewInvariantViolation("event-chain",
				"event %s: before balance %d does not match previous after balance %d",
				e.EventID, e.BeforeBalance, balance)
		}
		balance += e.BalanceDelta()
		if balance != e.AfterBalance {
			return 0, apperrors.NewInvariantViolation("event-chain",
				"event %s: replayed balance %d does not match recorded after balance %d",
				e.EventID, balance, e.AfterBalance)
		}
	}
	return balance, nil
}
