package models

// Warehouse is the warehouses table row.
type Warehouse struct {
	WarehouseSlug string `db:"warehouse_slug"`
	BusinessSlug  string `db:"business_slug"`
	Title         string `db:"title"`
	Address       string `db:"address"`
	StatusID      int    `db:"status_id"`
	AuditFields
}
