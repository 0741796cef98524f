package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hisaabi/hisaabi_backend/internal/utils/accounting"
)

// TransactionState tracks the workflow state of orders and quotations.
type TransactionState int

const (
	StatePending    TransactionState = 0
	StateInProgress TransactionState = 1
	StateCompleted  TransactionState = 2
	StateCancelled  TransactionState = 3
)

// LineItem is one product/quantity/price row within a transaction.
// Quantity may be zero or negative (returns and adjustments); a negative or
// zero price is permitted but must be explicit.
type LineItem struct {
	DetailSlug      string          `json:"detailSlug"`
	TransactionSlug string          `json:"transactionSlug"`
	ProductSlug     string          `json:"productSlug"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Discount        DiscountOrTax   `json:"discount"`
	Tax             DiscountOrTax   `json:"tax"`
	Description     string          `json:"description"`
	AuditFields
}

// Subtotal is UnitPrice * Quantity, unrounded.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(li.Quantity)
}

// EffectiveDiscount resolves the line discount against the line subtotal.
func (li LineItem) EffectiveDiscount() decimal.Decimal {
	return li.Discount.EffectiveAmount(li.Subtotal())
}

// EffectiveTax resolves the line tax against the line subtotal.
func (li LineItem) EffectiveTax() decimal.Decimal {
	return li.Tax.EffectiveAmount(li.Subtotal())
}

// Total is the line amount after discount and tax, rounded to 2 decimals.
// A zero quantity yields exactly zero: percent adjustments resolve to zero
// on a zero base, and a flat discount/tax still applies only to what was
// actually sold, which is nothing.
func (li LineItem) Total() decimal.Decimal {
	if li.Quantity.IsZero() {
		return decimal.Zero
	}
	return accounting.Round2(li.Subtotal().Sub(li.EffectiveDiscount()).Add(li.EffectiveTax()))
}

// Transaction is the aggregate for every bookkeeping event: sales,
// purchases, payments, transfers, stock adjustments and journal vouchers.
// Child transactions (journal voucher legs) reference their parent via
// ParentSlug.
type Transaction struct {
	TransactionSlug   string           `json:"transactionSlug"`
	BusinessSlug      string           `json:"businessSlug"`
	ParentSlug        *string          `json:"parentSlug,omitempty"`
	Type              TransactionType  `json:"transactionType"`
	PartySlug         *string          `json:"partySlug,omitempty"`
	PaymentMethodFrom *string          `json:"paymentMethodFromSlug,omitempty"`
	PaymentMethodTo   *string          `json:"paymentMethodToSlug,omitempty"`
	WarehouseFrom     *string          `json:"warehouseFromSlug,omitempty"`
	WarehouseTo       *string          `json:"warehouseToSlug,omitempty"`
	Discount          DiscountOrTax    `json:"discount"`
	Tax               DiscountOrTax    `json:"tax"`
	AdditionalCharges decimal.Decimal  `json:"additionalCharges"`
	TotalBill         decimal.Decimal  `json:"totalBill"`
	TotalPaid         decimal.Decimal  `json:"totalPaid"`
	Timestamp         time.Time        `json:"timestamp"`
	Description       string           `json:"description"`
	State             TransactionState `json:"stateId"`
	Status            Status           `json:"statusId"`
	LineItems         []LineItem       `json:"lineItems,omitempty"`
	AuditFields
}

// Subtotal sums the unrounded subtotals of all line items.
func (t Transaction) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, li := range t.LineItems {
		sum = sum.Add(li.Subtotal())
	}
	return sum
}

// ProductsDiscount sums the effective line-level discounts.
func (t Transaction) ProductsDiscount() decimal.Decimal {
	sum := decimal.Zero
	for _, li := range t.LineItems {
		sum = sum.Add(li.EffectiveDiscount())
	}
	return sum
}

// ProductsTax sums the effective line-level taxes.
func (t Transaction) ProductsTax() decimal.Decimal {
	sum := decimal.Zero
	for _, li := range t.LineItems {
		sum = sum.Add(li.EffectiveTax())
	}
	return sum
}

// TransactionDiscount resolves the transaction-level discount against the
// transaction subtotal. The base is always Subtotal(), never the
// post-line-adjustment total, so the result does not depend on the order in
// which discount and tax were entered.
func (t Transaction) TransactionDiscount() decimal.Decimal {
	return t.Discount.EffectiveAmount(t.Subtotal())
}

// TransactionTax resolves the transaction-level tax against the
// transaction subtotal, symmetric to TransactionDiscount.
func (t Transaction) TransactionTax() decimal.Decimal {
	return t.Tax.EffectiveAmount(t.Subtotal())
}

// GrandTotal is the final bill amount, rounded to 2 decimals. All terms are
// kept at full precision until this single rounding step.
func (t Transaction) GrandTotal() decimal.Decimal {
	return accounting.Round2(t.Subtotal().
		Add(t.AdditionalCharges).
		Add(t.ProductsTax()).
		Add(t.TransactionTax()).
		Sub(t.ProductsDiscount()).
		Sub(t.TransactionDiscount()))
}

// Payable is the outstanding amount after the payment made now. Negative
// means overpayment (refund due to the party).
func (t Transaction) Payable() decimal.Decimal {
	return accounting.Round2(t.GrandTotal().Sub(t.TotalPaid))
}

// BalanceEffect is the signed change this transaction applies to its
// party's balance, resolved through the type traits table. Types without a
// balance mapping contribute zero.
func (t Transaction) BalanceEffect() decimal.Decimal {
	sign := t.Type.Traits().BalanceEffectSign
	if sign == 0 {
		return decimal.Zero
	}
	effect := t.TotalBill.Sub(t.TotalPaid)
	if sign < 0 {
		effect = effect.Neg()
	}
	return effect
}

// IsActive reports whether the transaction is not soft-deleted.
func (t Transaction) IsActive() bool {
	return t.Status == StatusActive
}
