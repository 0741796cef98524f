package models

import "github.com/shopspring/decimal"

// PaymentMethod is the payment_methods table row.
type PaymentMethod struct {
	PaymentMethodSlug string          `db:"payment_method_slug"`
	BusinessSlug      string          `db:"business_slug"`
	Title             string          `db:"title"`
	Description       string          `db:"description"`
	Balance           decimal.Decimal `db:"balance"`
	StatusID          int             `db:"status_id"`
	AuditFields
}
