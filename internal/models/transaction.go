package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the transactions table row.
type Transaction struct {
	TransactionSlug       string          `db:"transaction_slug"`
	BusinessSlug          string          `db:"business_slug"`
	ParentSlug            *string         `db:"parent_slug"`
	TransactionType       int             `db:"transaction_type"`
	PartySlug             *string         `db:"party_slug"`
	PaymentMethodFromSlug *string         `db:"payment_method_from_slug"`
	PaymentMethodToSlug   *string         `db:"payment_method_to_slug"`
	WarehouseFromSlug     *string         `db:"warehouse_from_slug"`
	WarehouseToSlug       *string         `db:"warehouse_to_slug"`
	FlatDiscount          decimal.Decimal `db:"flat_discount"`
	DiscountTypeID        int             `db:"discount_type_id"`
	FlatTax               decimal.Decimal `db:"flat_tax"`
	TaxTypeID             int             `db:"tax_type_id"`
	AdditionalCharges     decimal.Decimal `db:"additional_charges"`
	TotalBill             decimal.Decimal `db:"total_bill"`
	TotalPaid             decimal.Decimal `db:"total_paid"`
	Timestamp             time.Time       `db:"timestamp"`
	Description           string          `db:"description"`
	StateID               int             `db:"state_id"`
	StatusID              int             `db:"status_id"`
	AuditFields
}

// TransactionDetail is the transaction_details table row (one line item).
type TransactionDetail struct {
	DetailSlug      string          `db:"detail_slug"`
	TransactionSlug string          `db:"transaction_slug"`
	BusinessSlug    string          `db:"business_slug"`
	ProductSlug     string          `db:"product_slug"`
	Quantity        decimal.Decimal `db:"quantity"`
	Price           decimal.Decimal `db:"price"`
	FlatDiscount    decimal.Decimal `db:"flat_discount"`
	DiscountTypeID  int             `db:"discount_type_id"`
	FlatTax         decimal.Decimal `db:"flat_tax"`
	TaxTypeID       int             `db:"tax_type_id"`
	Description     string          `db:"description"`
	AuditFields
}
