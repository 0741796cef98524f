package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
)

func TestBalanceProjector_Project(t *testing.T) {
	projector := domain.BalanceProjector{
		OpeningBalance: d("100"),
		Transactions: []domain.Transaction{
			{TransactionSlug: "TR-1", Type: domain.Purchase, TotalBill: d("1000"), TotalPaid: d("400")},
			{TransactionSlug: "TR-2", Type: domain.PayToVendor, TotalPaid: d("500")},
			{TransactionSlug: "TR-3", Type: domain.VendorReturn, TotalBill: d("200"), TotalPaid: d("0")},
		},
	}

	entries := projector.Project()
	require.Len(t, entries, 3)

	// 100 + 600 = 700 payable after the credit purchase.
	assert.True(t, d("600").Equal(entries[0].Effect))
	assert.True(t, d("700").Equal(entries[0].RunningBalance))

	// Paying the vendor 500 brings it down to 200.
	assert.True(t, d("-500").Equal(entries[1].Effect))
	assert.True(t, d("200").Equal(entries[1].RunningBalance))

	// Returning 200 of goods settles the account.
	assert.True(t, d("-200").Equal(entries[2].Effect))
	assert.True(t, entries[2].RunningBalance.IsZero())

	assert.True(t, projector.ClosingBalance().IsZero())
}

func TestBalanceProjector_Replay(t *testing.T) {
	projector := domain.BalanceProjector{
		OpeningBalance: decimal.Zero,
		Transactions: []domain.Transaction{
			{Type: domain.Sale, TotalBill: d("300"), TotalPaid: d("100")},
			{Type: domain.GetFromCustomer, TotalPaid: d("200")},
		},
	}

	first := projector.Project()
	second := projector.Project()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, first[i].RunningBalance.Equal(second[i].RunningBalance),
			"replay must be deterministic")
	}
}

func TestBalanceProjector_EarlyStop(t *testing.T) {
	projector := domain.BalanceProjector{
		Transactions: []domain.Transaction{
			{Type: domain.Sale, TotalBill: d("100")},
			{Type: domain.Sale, TotalBill: d("100")},
			{Type: domain.Sale, TotalBill: d("100")},
		},
	}

	count := 0
	for range projector.All() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestBalanceProjector_Empty(t *testing.T) {
	projector := domain.BalanceProjector{OpeningBalance: d("42.50")}
	entries := projector.Project()
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
	assert.True(t, d("42.50").Equal(projector.ClosingBalance()))
}
