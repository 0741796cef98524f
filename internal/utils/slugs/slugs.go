// Package slugs mints the durable identifiers assigned to entities on
// creation. A slug is "<entity-prefix>-<uuid>" so every identifier reveals
// what kind of entity it names.
package slugs

import "github.com/google/uuid"

// Entity prefixes.
const (
	Party         = "PA"
	Category      = "CA"
	Product       = "PR"
	Transaction   = "TR"
	LineItem      = "TD"
	PaymentMethod = "PM"
	Warehouse     = "WH"
	User          = "US"
	Business      = "BU"
)

// New returns a fresh slug for the given entity prefix.
func New(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
