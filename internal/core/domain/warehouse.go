package domain

// Warehouse is a stock location used by stock adjustment transactions.
type Warehouse struct {
	WarehouseSlug string `json:"warehouseSlug"`
	BusinessSlug  string `json:"businessSlug"`
	Title         string `json:"title"`
	Address       string `json:"address"`
	Status        Status `json:"statusId"`
	AuditFields
}
