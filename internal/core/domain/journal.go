package domain

import (
	"github.com/shopspring/decimal"

	"github.com/hisaabi/hisaabi_backend/internal/apperrors"
)

// JournalAccountType classifies a line in a journal voucher.
type JournalAccountType string

const (
	JournalAccountCustomer      JournalAccountType = "CUSTOMER"
	JournalAccountVendor        JournalAccountType = "VENDOR"
	JournalAccountInvestor      JournalAccountType = "INVESTOR"
	JournalAccountExpense       JournalAccountType = "EXPENSE"
	JournalAccountExtraIncome   JournalAccountType = "EXTRA_INCOME"
	JournalAccountPaymentMethod JournalAccountType = "PAYMENT_METHOD"
)

// JournalAccountTypeForRole maps a party role to its journal account type.
// Roles that cannot appear in a voucher (e.g. stock adjuster) return false.
func JournalAccountTypeForRole(role PartyRole) (JournalAccountType, bool) {
	switch role {
	case RoleCustomer, RoleWalkInCustomer:
		return JournalAccountCustomer, true
	case RoleVendor, RoleDefaultVendor:
		return JournalAccountVendor, true
	case RoleInvestor:
		return JournalAccountInvestor, true
	case RoleExpense:
		return JournalAccountExpense, true
	case RoleExtraIncome:
		return JournalAccountExtraIncome, true
	default:
		return "", false
	}
}

// JournalAccount is one debit or credit leg of a journal voucher draft.
// Exactly one of PartySlug/PaymentMethodSlug is set, depending on AccountType.
type JournalAccount struct {
	Title             string             `json:"title"`
	Amount            decimal.Decimal    `json:"amount"`
	IsDebit           bool               `json:"isDebit"`
	AccountType       JournalAccountType `json:"accountType"`
	PartySlug         *string            `json:"partySlug,omitempty"`
	PartyRole         PartyRole          `json:"partyRole,omitempty"`
	PaymentMethodSlug *string            `json:"paymentMethodSlug,omitempty"`
}

// DraftState is the balancing state of a journal voucher draft.
type DraftState string

const (
	DraftEmpty      DraftState = "EMPTY"
	DraftUnbalanced DraftState = "UNBALANCED"
	DraftBalanced   DraftState = "BALANCED"
)

// JournalDraft is the mutable working copy of a journal voucher. It is owned
// by a single caller (one editing session) and is not safe for concurrent
// mutation. Every mutation recomputes the debit/credit totals.
type JournalDraft struct {
	Accounts    []JournalAccount
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// NewJournalDraft returns an empty draft.
func NewJournalDraft() *JournalDraft {
	return &JournalDraft{}
}

// JournalDraftFromAccounts builds a draft from fully specified accounts, as
// submitted in a save request rather than assembled interactively.
func JournalDraftFromAccounts(accounts []JournalAccount) *JournalDraft {
	d := &JournalDraft{Accounts: accounts}
	d.recompute()
	return d
}

// AddPartyAccount appends a debit leg for the party. Duplicate parties are
// ignored, as are roles that have no journal account type.
func (d *JournalDraft) AddPartyAccount(party Party) bool {
	for _, acc := range d.Accounts {
		if acc.PartySlug != nil && *acc.PartySlug == party.PartySlug {
			return false
		}
	}
	accountType, ok := JournalAccountTypeForRole(party.Role)
	if !ok {
		return false
	}
	slug := party.PartySlug
	d.Accounts = append(d.Accounts, JournalAccount{
		Title:       party.Name,
		IsDebit:     true,
		AccountType: accountType,
		PartySlug:   &slug,
		PartyRole:   party.Role,
	})
	d.recompute()
	return true
}

// AddPaymentMethodAccount appends a debit leg for the payment method.
func (d *JournalDraft) AddPaymentMethodAccount(pm PaymentMethod) {
	slug := pm.PaymentMethodSlug
	d.Accounts = append(d.Accounts, JournalAccount{
		Title:             pm.Title,
		IsDebit:           true,
		AccountType:       JournalAccountPaymentMethod,
		PaymentMethodSlug: &slug,
	})
	d.recompute()
}

// Remove deletes the account at index i.
func (d *JournalDraft) Remove(i int) {
	if i < 0 || i >= len(d.Accounts) {
		return
	}
	d.Accounts = append(d.Accounts[:i], d.Accounts[i+1:]...)
	d.recompute()
}

// SetAmount updates the amount of the account at index i.
func (d *JournalDraft) SetAmount(i int, amount decimal.Decimal) {
	if i < 0 || i >= len(d.Accounts) {
		return
	}
	d.Accounts[i].Amount = amount
	d.recompute()
}

// ToggleSide flips the account at index i between debit and credit.
func (d *JournalDraft) ToggleSide(i int) {
	if i < 0 || i >= len(d.Accounts) {
		return
	}
	d.Accounts[i].IsDebit = !d.Accounts[i].IsDebit
	d.recompute()
}

func (d *JournalDraft) recompute() {
	debit := decimal.Zero
	credit := decimal.Zero
	for _, acc := range d.Accounts {
		if acc.IsDebit {
			debit = debit.Add(acc.Amount)
		} else {
			credit = credit.Add(acc.Amount)
		}
	}
	d.TotalDebit = debit
	d.TotalCredit = credit
}

// State reports the balancing state. Balanced requires equal debit and
// credit totals that are both greater than zero, which also implies at
// least two accounts on opposing sides.
func (d *JournalDraft) State() DraftState {
	if len(d.Accounts) == 0 {
		return DraftEmpty
	}
	if d.TotalDebit.IsPositive() && d.TotalDebit.Equal(d.TotalCredit) {
		return DraftBalanced
	}
	return DraftUnbalanced
}

// Validate gates a save attempt. It returns nil only from the Balanced
// state; otherwise an *apperrors.UnbalancedJournalError describing whether
// the totals were zero or mismatched.
func (d *JournalDraft) Validate() error {
	if d.State() == DraftBalanced {
		return nil
	}
	cause := apperrors.UnbalanceMismatch
	if d.TotalDebit.IsZero() && d.TotalCredit.IsZero() {
		cause = apperrors.UnbalanceZeroTotal
	}
	return &apperrors.UnbalancedJournalError{
		Cause:       cause,
		TotalDebit:  d.TotalDebit.String(),
		TotalCredit: d.TotalCredit.String(),
	}
}

// DraftFromChildren rebuilds the draft a voucher was saved from, for edit
// flows that reopen a stored voucher. pivot is the voucher's own payment
// method; a transfer leg's non-pivot side is the account the leg stands for.
// Children whose type does not come from the fan-out mapping are skipped.
func DraftFromChildren(pivot *string, children []Transaction) *JournalDraft {
	accounts := make([]JournalAccount, 0, len(children))
	for _, child := range children {
		if acc, ok := accountFromChild(pivot, child); ok {
			accounts = append(accounts, acc)
		}
	}
	return JournalDraftFromAccounts(accounts)
}

func accountFromChild(pivot *string, child Transaction) (JournalAccount, bool) {
	if child.Type == PaymentTransfer {
		acc := JournalAccount{
			AccountType: JournalAccountPaymentMethod,
			Amount:      child.TotalPaid,
		}
		switch {
		case child.PaymentMethodTo != nil && (pivot == nil || *child.PaymentMethodTo != *pivot):
			acc.IsDebit = true
			acc.PaymentMethodSlug = child.PaymentMethodTo
		case child.PaymentMethodFrom != nil:
			acc.PaymentMethodSlug = child.PaymentMethodFrom
		default:
			return JournalAccount{}, false
		}
		return acc, true
	}

	if child.PartySlug == nil {
		return JournalAccount{}, false
	}
	acc := JournalAccount{
		Amount:    child.TotalPaid,
		PartySlug: child.PartySlug,
	}
	switch child.Type {
	case PayToVendor:
		acc.AccountType, acc.PartyRole, acc.IsDebit = JournalAccountVendor, RoleVendor, true
	case GetFromVendor:
		acc.AccountType, acc.PartyRole = JournalAccountVendor, RoleVendor
	case InvestmentWithdraw:
		acc.AccountType, acc.PartyRole, acc.IsDebit = JournalAccountInvestor, RoleInvestor, true
	case InvestmentDeposit:
		acc.AccountType, acc.PartyRole = JournalAccountInvestor, RoleInvestor
	case Expense:
		acc.AccountType, acc.PartyRole = JournalAccountExpense, RoleExpense
		acc.IsDebit = !child.TotalPaid.IsNegative()
		acc.Amount = child.TotalPaid.Abs()
	case ExtraIncome:
		acc.AccountType, acc.PartyRole = JournalAccountExtraIncome, RoleExtraIncome
		acc.IsDebit = !child.TotalPaid.IsNegative()
		acc.Amount = child.TotalPaid.Abs()
	case PayToCustomer:
		acc.AccountType, acc.PartyRole, acc.IsDebit = JournalAccountCustomer, RoleCustomer, true
	case GetFromCustomer:
		acc.AccountType, acc.PartyRole = JournalAccountCustomer, RoleCustomer
	default:
		return JournalAccount{}, false
	}
	return acc, true
}

// ChildTransactionType resolves the transaction type for a party leg from
// the fixed (role, isDebit) mapping used when fanning a voucher out into
// child transactions.
func ChildTransactionType(role PartyRole, isDebit bool) TransactionType {
	switch role {
	case RoleVendor, RoleDefaultVendor:
		if isDebit {
			return PayToVendor
		}
		return GetFromVendor
	case RoleInvestor:
		if isDebit {
			return InvestmentWithdraw
		}
		return InvestmentDeposit
	case RoleExpense:
		return Expense
	case RoleExtraIncome:
		return ExtraIncome
	default:
		// Customers, walk-in customers and anything unmapped.
		if isDebit {
			return PayToCustomer
		}
		return GetFromCustomer
	}
}
