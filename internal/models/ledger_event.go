package models

import "time"

// LedgerEvent is the database representation of one append-only balance
// mutation. Rows are insert-only; there is no update path.
type LedgerEvent struct {
	EventID       string    `db:"event_id"`
	AccountID     string    `db:"account_id"`
	EventType     string    `db:"event_type"`
	Amount        int64     `db:"amount"`
	BeforeBalance int64     `db:"before_balance"`
	AfterBalance  int64     `db:"after_balance"`
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
}
