package models

import "github.com/shopspring/decimal"

// Product is the products table row.
type Product struct {
	ProductSlug    string          `db:"product_slug"`
	BusinessSlug   string          `db:"business_slug"`
	Name           string          `db:"name"`
	Description    string          `db:"description"`
	CategorySlug   *string         `db:"category_slug"`
	RetailPrice    decimal.Decimal `db:"retail_price"`
	WholesalePrice decimal.Decimal `db:"wholesale_price"`
	PurchasePrice  decimal.Decimal `db:"purchase_price"`
	Quantity       decimal.Decimal `db:"quantity"`
	StatusID       int             `db:"status_id"`
	AuditFields
}
