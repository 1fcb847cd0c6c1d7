package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julofinance/lender-ledger/internal/apperrors"
	"github.com/julofinance/lender-ledger/internal/core/domain"
)

func TestLedgerAccount_AvailableBalance(t *testing.T) {
	tests := []struct {
		name    string
		account domain.LedgerAccount
		want    int64
	}{
		{
			name:    "fresh account",
			account: domain.LedgerAccount{},
			want:    0,
		},
		{
			name: "deposits minus withdrawals",
			account: domain.LedgerAccount{
				TotalDeposit:    10_000_000,
				TotalWithdrawal: 3_000_000,
			},
			want: 7_000_000,
		},
		{
			name: "disbursed capital is not spendable",
			account: domain.LedgerAccount{
				TotalDeposit:            10_000_000,
				TotalDisbursedPrincipal: 4_000_000,
				OutstandingPrincipal:    4_000_000,
			},
			want: 6_000_000,
		},
		{
			name: "repayments and provision flow back in",
			account: domain.LedgerAccount{
				TotalDeposit:            10_000_000,
				TotalDisbursedPrincipal: 4_000_000,
				TotalReceivedPrincipal:  1_000_000,
				TotalReceivedInterest:   120_000,
				TotalReceivedLateFee:    5_000,
				TotalReceivedProvision:  200_000,
				OutstandingPrincipal:    3_000_000,
			},
			want: 7_325_000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.account.AvailableBalance())
		})
	}
}

func TestLedgerAccount_CheckPrincipalConservation(t *testing.T) {
	ok := domain.LedgerAccount{
		TotalDisbursedPrincipal: 5_000_000,
		OutstandingPrincipal:    3_000_000,
		TotalReceivedPrincipal:  1_500_000,
		TotalPaidoutPrincipal:   500_000,
	}
	assert.NoError(t, ok.CheckPrincipalConservation())

	broken := ok
	broken.OutstandingPrincipal = 2_999_999
	err := broken.CheckPrincipalConservation()
	var inv *apperrors.InvariantViolationError
	assert.ErrorAs(t, err, &inv)
	assert.Equal(t, "principal-conservation", inv.Invariant)
}

func TestLedgerAccount_CheckNonNegative(t *testing.T) {
	account := domain.LedgerAccount{TotalDeposit: 100}
	assert.NoError(t, account.CheckNonNegative())

	account.OutstandingPrincipal = -1
	err := account.CheckNonNegative()
	var inv *apperrors.InvariantViolationError
	assert.ErrorAs(t, err, &inv)
	assert.Equal(t, "non-negative-counter", inv.Invariant)
}
