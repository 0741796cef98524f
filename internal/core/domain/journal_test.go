package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hisaabi/hisaabi_backend/internal/apperrors"
	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
)

func TestJournalDraft_State(t *testing.T) {
	draft := domain.NewJournalDraft()
	assert.Equal(t, domain.DraftEmpty, draft.State())

	vendor := domain.Party{PartySlug: "PA-1", Name: "Acme Supplies", Role: domain.RoleVendor}
	added := draft.AddPartyAccount(vendor)
	require.True(t, added)
	assert.Equal(t, domain.DraftUnbalanced, draft.State(), "single zero-amount account is never balanced")

	// Duplicate parties are ignored.
	assert.False(t, draft.AddPartyAccount(vendor))
	assert.Len(t, draft.Accounts, 1)

	draft.AddPaymentMethodAccount(domain.PaymentMethod{PaymentMethodSlug: "PM-1", Title: "Cash"})
	draft.SetAmount(0, decimal.NewFromInt(500))
	draft.SetAmount(1, decimal.NewFromInt(500))
	assert.Equal(t, domain.DraftUnbalanced, draft.State(), "both legs on the debit side")

	draft.ToggleSide(1)
	assert.Equal(t, domain.DraftBalanced, draft.State())
	assert.True(t, decimal.NewFromInt(500).Equal(draft.TotalDebit))
	assert.True(t, decimal.NewFromInt(500).Equal(draft.TotalCredit))
}

func TestJournalDraft_Validate(t *testing.T) {
	debit := func(amount int64) domain.JournalAccount {
		slug := "PA-1"
		return domain.JournalAccount{
			Amount: decimal.NewFromInt(amount), IsDebit: true,
			AccountType: domain.JournalAccountVendor, PartySlug: &slug, PartyRole: domain.RoleVendor,
		}
	}
	credit := func(amount int64) domain.JournalAccount {
		slug := "PM-1"
		return domain.JournalAccount{
			Amount: decimal.NewFromInt(amount), IsDebit: false,
			AccountType: domain.JournalAccountPaymentMethod, PaymentMethodSlug: &slug,
		}
	}

	t.Run("balanced draft passes", func(t *testing.T) {
		draft := domain.JournalDraftFromAccounts([]domain.JournalAccount{debit(500), credit(500)})
		assert.NoError(t, draft.Validate())
	})

	t.Run("mismatched totals are rejected with both sums", func(t *testing.T) {
		draft := domain.JournalDraftFromAccounts([]domain.JournalAccount{debit(500), credit(300)})
		err := draft.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrUnbalancedJournal))

		var unbalanced *apperrors.UnbalancedJournalError
		require.ErrorAs(t, err, &unbalanced)
		assert.Equal(t, apperrors.UnbalanceMismatch, unbalanced.Cause)
		assert.Equal(t, "500", unbalanced.TotalDebit)
		assert.Equal(t, "300", unbalanced.TotalCredit)
	})

	t.Run("zero totals are a distinct cause", func(t *testing.T) {
		draft := domain.JournalDraftFromAccounts([]domain.JournalAccount{debit(0), credit(0)})
		err := draft.Validate()
		require.Error(t, err)

		var unbalanced *apperrors.UnbalancedJournalError
		require.ErrorAs(t, err, &unbalanced)
		assert.Equal(t, apperrors.UnbalanceZeroTotal, unbalanced.Cause)
	})

	t.Run("single account never balances", func(t *testing.T) {
		draft := domain.JournalDraftFromAccounts([]domain.JournalAccount{debit(500)})
		assert.Error(t, draft.Validate())
	})
}

func TestJournalDraft_Remove(t *testing.T) {
	slug := "PA-1"
	draft := domain.JournalDraftFromAccounts([]domain.JournalAccount{
		{Amount: decimal.NewFromInt(100), IsDebit: true, AccountType: domain.JournalAccountVendor, PartySlug: &slug},
	})
	draft.Remove(5) // out of range, no-op
	assert.Len(t, draft.Accounts, 1)

	draft.Remove(0)
	assert.Empty(t, draft.Accounts)
	assert.True(t, draft.TotalDebit.IsZero())
	assert.Equal(t, domain.DraftEmpty, draft.State())
}

func TestChildTransactionType(t *testing.T) {
	tests := []struct {
		name    string
		role    domain.PartyRole
		isDebit bool
		want    domain.TransactionType
	}{
		{"vendor debit", domain.RoleVendor, true, domain.PayToVendor},
		{"vendor credit", domain.RoleVendor, false, domain.GetFromVendor},
		{"default vendor debit", domain.RoleDefaultVendor, true, domain.PayToVendor},
		{"investor debit", domain.RoleInvestor, true, domain.InvestmentWithdraw},
		{"investor credit", domain.RoleInvestor, false, domain.InvestmentDeposit},
		{"expense either side", domain.RoleExpense, true, domain.Expense},
		{"expense credit", domain.RoleExpense, false, domain.Expense},
		{"extra income either side", domain.RoleExtraIncome, false, domain.ExtraIncome},
		{"customer debit", domain.RoleCustomer, true, domain.PayToCustomer},
		{"customer credit", domain.RoleCustomer, false, domain.GetFromCustomer},
		{"walk-in customer credit", domain.RoleWalkInCustomer, false, domain.GetFromCustomer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ChildTransactionType(tt.role, tt.isDebit))
		})
	}
}

func TestDraftFromChildren(t *testing.T) {
	pivot := "PM-1"
	vendor := "PA-1"
	expense := "PA-7"
	savings := "PM-2"

	children := []domain.Transaction{
		{Type: domain.PayToVendor, PartySlug: &vendor, TotalPaid: d("500")},
		{Type: domain.Expense, PartySlug: &expense, TotalPaid: d("-200")},
		{Type: domain.PaymentTransfer, PaymentMethodFrom: &savings, PaymentMethodTo: &pivot, TotalPaid: d("300")},
	}

	draft := domain.DraftFromChildren(&pivot, children)
	require.Len(t, draft.Accounts, 3)

	assert.Equal(t, domain.JournalAccountVendor, draft.Accounts[0].AccountType)
	assert.True(t, draft.Accounts[0].IsDebit)
	assert.True(t, d("500").Equal(draft.Accounts[0].Amount))

	// A negated expense leg reads back as a credit with the positive amount.
	assert.Equal(t, domain.JournalAccountExpense, draft.Accounts[1].AccountType)
	assert.False(t, draft.Accounts[1].IsDebit)
	assert.True(t, d("200").Equal(draft.Accounts[1].Amount))

	// A transfer into the pivot stands for a credited payment method.
	assert.Equal(t, domain.JournalAccountPaymentMethod, draft.Accounts[2].AccountType)
	assert.False(t, draft.Accounts[2].IsDebit)
	assert.Equal(t, "PM-2", *draft.Accounts[2].PaymentMethodSlug)

	assert.True(t, d("500").Equal(draft.TotalDebit))
	assert.True(t, d("500").Equal(draft.TotalCredit))
	assert.Equal(t, domain.DraftBalanced, draft.State())
}

func TestDraftFromChildren_DebitTransferLeg(t *testing.T) {
	pivot := "PM-1"
	wallet := "PM-3"

	draft := domain.DraftFromChildren(&pivot, []domain.Transaction{
		{Type: domain.PaymentTransfer, PaymentMethodFrom: &pivot, PaymentMethodTo: &wallet, TotalPaid: d("150")},
	})
	require.Len(t, draft.Accounts, 1)
	assert.True(t, draft.Accounts[0].IsDebit)
	assert.Equal(t, "PM-3", *draft.Accounts[0].PaymentMethodSlug)
}

func TestJournalAccountTypeForRole(t *testing.T) {
	accountType, ok := domain.JournalAccountTypeForRole(domain.RoleCustomer)
	assert.True(t, ok)
	assert.Equal(t, domain.JournalAccountCustomer, accountType)

	_, ok = domain.JournalAccountTypeForRole(domain.RoleStockAdjuster)
	assert.False(t, ok, "stock adjuster cannot appear in a voucher")
}
