package repositories

import (
	"context"

	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
)

// WarehouseRepositoryFacade defines operations for warehouse data
type WarehouseRepositoryFacade interface {
	// FindWarehouseBySlug retrieves a specific warehouse by its slug.
	FindWarehouseBySlug(ctx context.Context, businessSlug, warehouseSlug string) (*domain.Warehouse, error)

	// ListWarehouses retrieves all active warehouses for a business.
	ListWarehouses(ctx context.Context, businessSlug string) ([]domain.Warehouse, error)

	// SaveWarehouse persists a new warehouse.
	SaveWarehouse(ctx context.Context, warehouse domain.Warehouse) error

	// UpdateWarehouse updates warehouse details.
	UpdateWarehouse(ctx context.Context, warehouse domain.Warehouse) error

	// MarkWarehouseDeleted soft-deletes a warehouse.
	MarkWarehouseDeleted(ctx context.Context, businessSlug, warehouseSlug, updatedBy string) error
}

// CategoryRepositoryFacade defines operations for category data
type CategoryRepositoryFacade interface {
	// FindCategoryBySlug retrieves a specific category by its slug.
	FindCategoryBySlug(ctx context.Context, businessSlug, categorySlug string) (*domain.Category, error)

	// ListCategories retrieves categories for a business, optionally filtered by type.
	ListCategories(ctx context.Context, businessSlug string, categoryType *domain.CategoryType) ([]domain.Category, error)

	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory updates category details.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// MarkCategoryDeleted soft-deletes a category.
	MarkCategoryDeleted(ctx context.Context, businessSlug, categorySlug, updatedBy string) error
}
