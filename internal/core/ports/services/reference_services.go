package services

import (
	"context"

	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	"github.com/hisaabi/hisaabi_backend/internal/dto"
)

// WarehouseSvcFacade defines operations for warehouse data
type WarehouseSvcFacade interface {
	// GetWarehouse retrieves a specific warehouse by slug.
	GetWarehouse(ctx context.Context, sess domain.SessionContext, warehouseSlug string) (*domain.Warehouse, error)

	// ListWarehouses retrieves all active warehouses for the business.
	ListWarehouses(ctx context.Context, sess domain.SessionContext) (*dto.ListWarehousesResponse, error)

	// CreateWarehouse persists a new warehouse.
	CreateWarehouse(ctx context.Context, sess domain.SessionContext, req dto.CreateWarehouseRequest) (*domain.Warehouse, error)

	// UpdateWarehouse updates warehouse details.
	UpdateWarehouse(ctx context.Context, sess domain.SessionContext, warehouseSlug string, req dto.UpdateWarehouseRequest) (*domain.Warehouse, error)

	// DeleteWarehouse soft-deletes a warehouse.
	DeleteWarehouse(ctx context.Context, sess domain.SessionContext, warehouseSlug string) error
}

// CategorySvcFacade defines operations for category data
type CategorySvcFacade interface {
	// GetCategory retrieves a specific category by slug.
	GetCategory(ctx context.Context, sess domain.SessionContext, categorySlug string) (*domain.Category, error)

	// ListCategories retrieves categories for the business.
	ListCategories(ctx context.Context, sess domain.SessionContext, params dto.ListCategoriesParams) (*dto.ListCategoriesResponse, error)

	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, sess domain.SessionContext, req dto.CreateCategoryRequest) (*domain.Category, error)

	// UpdateCategory updates category details.
	UpdateCategory(ctx context.Context, sess domain.SessionContext, categorySlug string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory soft-deletes a category.
	DeleteCategory(ctx context.Context, sess domain.SessionContext, categorySlug string) error
}
