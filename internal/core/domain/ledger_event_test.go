package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julofinance/lender-ledger/internal/apperrors"
	"github.com/julofinance/lender-ledger/internal/core/domain"
)

func TestLedgerEvent_CheckSnapshot(t *testing.T) {
	tests := []struct {
		name    string
		event   domain.LedgerEvent
		wantErr bool
	}{
		{
			name:  "deposit moves balance up by amount",
			event: domain.LedgerEvent{EventType: domain.EventDeposit, Amount: 100, BeforeBalance: 50, AfterBalance: 150},
		},
		{
			name:    "deposit with wrong after balance",
			event:   domain.LedgerEvent{EventType: domain.EventDeposit, Amount: 100, BeforeBalance: 50, AfterBalance: 149},
			wantErr: true,
		},
		{
			name:  "withdraw moves balance down by amount",
			event: domain.LedgerEvent{EventType: domain.EventWithdraw, Amount: 30, BeforeBalance: 150, AfterBalance: 120},
		},
		{
			name:    "withdraw with wrong after balance",
			event:   domain.LedgerEvent{EventType: domain.EventWithdraw, Amount: 30, BeforeBalance: 150, AfterBalance: 121},
			wantErr: true,
		},
		{
			name: "disbursement snapshot carries the net effect",
			// Balance drops by the borrower payout, not the full loan amount.
			event: domain.LedgerEvent{EventType: domain.EventDisbursement, Amount: 4_750_000, BeforeBalance: 15_000_000, AfterBalance: 10_250_000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.CheckSnapshot()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReplayEvents(t *testing.T) {
	chain := []domain.LedgerEvent{
		{EventID: "e1", EventType: domain.EventDeposit, Amount: 15_000_000, BeforeBalance: 0, AfterBalance: 15_000_000},
		{EventID: "e2", EventType: domain.EventDisbursement, Amount: 4_750_000, BeforeBalance: 15_000_000, AfterBalance: 10_250_000},
		{EventID: "e3", EventType: domain.EventRepayment, Amount: 150_000, BeforeBalance: 10_250_000, AfterBalance: 10_400_000},
		{EventID: "e4", EventType: domain.EventWithdraw, Amount: 400_000, BeforeBalance: 10_400_000, AfterBalance: 10_000_000},
	}

	balance, err := domain.ReplayEvents(chain)
	require.NoError(t, err)
	assert.Equal(t, int64(10_000_000), balance)
}

func TestReplayEvents_Empty(t *testing.T) {
	balance, err := domain.ReplayEvents(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestReplayEvents_BrokenChain(t *testing.T) {
	chain := []domain.LedgerEvent{
		{EventID: "e1", EventType: domain.EventDeposit, Amount: 100, BeforeBalance: 0, AfterBalance: 100},
		{EventID: "e2", EventType: domain.EventDeposit, Amount: 100, BeforeBalance: 150, AfterBalance: 250},
	}

	_, err := domain.ReplayEvents(chain)
	var inv *apperrors.InvariantViolationError
	require.ErrorAs(t, err, &inv)
	assert.Equal(t, "event-chain", inv.Invariant)
}
