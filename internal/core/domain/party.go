package domain

import "github.com/shopspring/decimal"

// PartyRole classifies a party. The numeric values are persisted.
type PartyRole int

const (
	RoleCustomer       PartyRole = 0
	RoleVendor         PartyRole = 1
	RoleDefaultVendor  PartyRole = 10
	RoleWalkInCustomer PartyRole = 11
	RoleInvestor       PartyRole = 12
	RoleStockAdjuster  PartyRole = 13
	RoleExpense        PartyRole = 14
	RoleExtraIncome    PartyRole = 15
)

// BalanceStatus is the direction of a party balance.
type BalanceStatus string

const (
	// BalancePayable means the business owes the party (balance > 0).
	BalancePayable BalanceStatus = "PAYABLE"
	// BalanceReceivable means the party owes the business (balance < 0).
	BalanceReceivable BalanceStatus = "RECEIVABLE"
	// BalanceSettled means the balance is zero.
	BalanceSettled BalanceStatus = "SETTLED"
)

// Party is a customer, vendor, investor, or a pseudo-party representing an
// expense/income category, tracked with a running balance. The balance is
// derived: opening balance plus the signed effect of every transaction
// involving the party.
type Party struct {
	PartySlug      string          `json:"partySlug"`
	BusinessSlug   string          `json:"businessSlug"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	Email          string          `json:"email"`
	Description    string          `json:"description"`
	Role           PartyRole       `json:"roleId"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Balance        decimal.Decimal `json:"balance"`
	Status         Status          `json:"statusId"`
	AuditFields
}

func (p Party) IsCustomer() bool {
	return p.Role == RoleCustomer || p.Role == RoleWalkInCustomer
}

func (p Party) IsVendor() bool {
	return p.Role == RoleVendor || p.Role == RoleDefaultVendor
}

func (p Party) IsInvestor() bool {
	return p.Role == RoleInvestor
}

// BalanceStatus classifies the current balance direction.
func (p Party) BalanceStatus() BalanceStatus {
	switch {
	case p.Balance.IsPositive():
		return BalancePayable
	case p.Balance.IsNegative():
		return BalanceReceivable
	default:
		return BalanceSettled
	}
}
