package allocation_test

import (
	"testing"

	"github.com/julofinance/lender-ledger/internal/core/allocation"
	"github.com/julofinance/lender-ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freshInstallment() domain.Installment {
	return domain.Installment{
		InstallmentID:        "inst-1",
		InstallmentPrincipal: 1000000,
		InstallmentInterest:  200000,
		LateFeeAmount:        100000,
	}
}

func applyAllocation(inst *domain.Installment, alloc allocation.Allocation) {
	inst.PaidLateFee += alloc.LateFee
	inst.PaidInterest += alloc.Interest
	inst.PaidPrincipal += alloc.Principal
}

func TestWaterfall_PriorityOrder(t *testing.T) {
	inst := freshInstallment()

	alloc := allocation.Waterfall(inst, 150000)

	assert.Equal(t, int64(100000), alloc.LateFee, "late fee is paid first")
	assert.Equal(t, int64(50000), alloc.Interest, "interest is paid second")
	assert.Equal(t, int64(0), alloc.Principal)
	assert.Equal(t, int64(0), alloc.Remainder)
	assert.Equal(t, int64(150000), alloc.Applied())
}

func TestWaterfall_PartialLateFeeOnly(t *testing.T) {
	inst := freshInstallment()

	alloc := allocation.Waterfall(inst, 40000)

	assert.Equal(t, int64(40000), alloc.LateFee)
	assert.Equal(t, int64(0), alloc.Interest)
	assert.Equal(t, int64(0), alloc.Principal)
	assert.Equal(t, int64(0), alloc.Remainder)
}

func TestWaterfall_PartialThenCompleteMatchesSinglePayment(t *testing.T) {
	// No late fee on this installment.
	split := domain.Installment{InstallmentPrincipal: 1000000, InstallmentInterest: 200000}
	single := split

	first := allocation.Waterfall(split, 1000000)
	applyAllocation(&split, first)
	second := allocation.Waterfall(split, 200000)
	applyAllocation(&split, second)

	whole := allocation.Waterfall(single, 1200000)
	applyAllocation(&single, whole)

	assert.Equal(t, int64(200000), split.PaidInterest)
	assert.Equal(t, int64(1000000), split.PaidPrincipal)
	assert.Equal(t, single.PaidInterest, split.PaidInterest)
	assert.Equal(t, single.PaidPrincipal, split.PaidPrincipal)
	assert.True(t, split.IsFullyPaid())
}

func TestWaterfall_LateFeeAccruesBetweenPartials(t *testing.T) {
	inst := freshInstallment()

	first := allocation.Waterfall(inst, 100000)
	applyAllocation(&inst, first)
	require.Equal(t, int64(100000), inst.PaidLateFee)
	require.Equal(t, int64(0), inst.RemainingLateFee())

	// A new late fee accrues before the next partial payment; the waterfall
	// must pick it up at call time.
	inst.LateFeeAmount += 50000

	second := allocation.Waterfall(inst, 60000)
	assert.Equal(t, int64(50000), second.LateFee)
	assert.Equal(t, int64(10000), second.Interest)
	assert.Equal(t, int64(0), second.Principal)
}

func TestWaterfall_OverpaymentGoesToRemainder(t *testing.T) {
	inst := freshInstallment()

	alloc := allocation.Waterfall(inst, 1500000)

	assert.Equal(t, int64(100000), alloc.LateFee)
	assert.Equal(t, int64(200000), alloc.Interest)
	assert.Equal(t, int64(1000000), alloc.Principal)
	assert.Equal(t, int64(200000), alloc.Remainder, "excess is surfaced, never dropped")
	assert.Equal(t, int64(1500000), alloc.Applied()+alloc.Remainder)
}

func TestWaterfall_NeverExceedsComponentRemainders(t *testing.T) {
	inst := freshInstallment()
	inst.PaidLateFee = 70000
	inst.PaidInterest = 150000
	inst.PaidPrincipal = 900000

	alloc := allocation.Waterfall(inst, 500000)

	assert.Equal(t, int64(30000), alloc.LateFee)
	assert.Equal(t, int64(50000), alloc.Interest)
	assert.Equal(t, int64(100000), alloc.Principal)
	assert.Equal(t, int64(320000), alloc.Remainder)

	applyAllocation(&inst, alloc)
	assert.True(t, inst.IsFullyPaid())
	assert.Equal(t, inst.LateFeeAmount, inst.PaidLateFee)
	assert.Equal(t, inst.InstallmentInterest, inst.PaidInterest)
	assert.Equal(t, inst.InstallmentPrincipal, inst.PaidPrincipal)
}
