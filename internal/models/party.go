package models

import "github.com/shopspring/decimal"

// Party is the parties table row.
type Party struct {
	PartySlug      string          `db:"party_slug"`
	BusinessSlug   string          `db:"business_slug"`
	Name           string          `db:"name"`
	Phone          string          `db:"phone"`
	Address        string          `db:"address"`
	Email          string          `db:"email"`
	Description    string          `db:"description"`
	RoleID         int             `db:"role_id"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	Balance        decimal.Decimal `db:"balance"`
	StatusID       int             `db:"status_id"`
	AuditFields
}
