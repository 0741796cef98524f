package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hisaabi/hisaabi_backend/internal/apperrors"
	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
)

// JournalAccountRequest is one debit or credit row of a journal voucher.
// Exactly one of partySlug or paymentMethodSlug must be set.
type JournalAccountRequest struct {
	Title             string          `json:"title"`
	PartySlug         *string         `json:"partySlug"`
	PartyRole         *int            `json:"partyRole"`
	PaymentMethodSlug *string         `json:"paymentMethodSlug"`
	Amount            decimal.Decimal `json:"amount"`
	IsDebit           bool            `json:"isDebit"`
}

// ToDomain converts the request row to a domain.JournalAccount.
func (r JournalAccountRequest) ToDomain() (domain.JournalAccount, error) {
	if r.Amount.IsNegative() {
		return domain.JournalAccount{}, fmt.Errorf("%w: journal amount must not be negative", apperrors.ErrInvalidAmount)
	}
	acc := domain.JournalAccount{
		Title:   r.Title,
		Amount:  r.Amount,
		IsDebit: r.IsDebit,
	}
	switch {
	case r.PaymentMethodSlug != nil:
		acc.AccountType = domain.JournalAccountPaymentMethod
		acc.PaymentMethodSlug = r.PaymentMethodSlug
	case r.PartySlug != nil:
		if r.PartyRole == nil {
			return domain.JournalAccount{}, fmt.Errorf("%w: party rows need a role", apperrors.ErrValidation)
		}
		role := domain.PartyRole(*r.PartyRole)
		accountType, ok := domain.JournalAccountTypeForRole(role)
		if !ok {
			return domain.JournalAccount{}, fmt.Errorf("%w: party role %d cannot appear in a journal voucher", apperrors.ErrValidation, *r.PartyRole)
		}
		acc.AccountType = accountType
		acc.PartySlug = r.PartySlug
		acc.PartyRole = role
	default:
		return domain.JournalAccount{}, fmt.Errorf("%w: journal row needs a party or payment method", apperrors.ErrValidation)
	}
	return acc, nil
}

// CreateJournalVoucherRequest defines the data needed to record a journal voucher.
// PaymentMethodSlug is the cash account payment-method legs settle against.
type CreateJournalVoucherRequest struct {
	Timestamp         *time.Time              `json:"timestamp"`
	Description       string                  `json:"description"`
	PaymentMethodSlug *string                 `json:"paymentMethodSlug"`
	Accounts          []JournalAccountRequest `json:"accounts" binding:"required,min=2"`
}

// JournalAccountResponse is one reassembled debit or credit row of a voucher.
type JournalAccountResponse struct {
	Title             string          `json:"title,omitempty"`
	AccountType       string          `json:"accountType"`
	PartySlug         *string         `json:"partySlug,omitempty"`
	PartyRole         *int            `json:"partyRole,omitempty"`
	PaymentMethodSlug *string         `json:"paymentMethodSlug,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	IsDebit           bool            `json:"isDebit"`
}

// JournalVoucherResponse returns a voucher with its children and the draft
// rows it was built from, so a client can reopen it for editing.
type JournalVoucherResponse struct {
	Parent      TransactionResponse      `json:"parent"`
	Children    []TransactionResponse    `json:"children"`
	Accounts    []JournalAccountResponse `json:"accounts"`
	TotalDebit  decimal.Decimal          `json:"totalDebit"`
	TotalCredit decimal.Decimal          `json:"totalCredit"`
}

// ToJournalAccountResponses converts draft rows to their response form.
func ToJournalAccountResponses(accounts []domain.JournalAccount) []JournalAccountResponse {
	responses := make([]JournalAccountResponse, len(accounts))
	for i, acc := range accounts {
		resp := JournalAccountResponse{
			Title:             acc.Title,
			AccountType:       string(acc.AccountType),
			PartySlug:         acc.PartySlug,
			PaymentMethodSlug: acc.PaymentMethodSlug,
			Amount:            acc.Amount,
			IsDebit:           acc.IsDebit,
		}
		if acc.PartySlug != nil {
			role := int(acc.PartyRole)
			resp.PartyRole = &role
		}
		responses[i] = resp
	}
	return responses
}
