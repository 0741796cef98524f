package dto

import (
	"time"

	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
)

// CreateWarehouseRequest defines the data needed to create a warehouse.
type CreateWarehouseRequest struct {
	Title   string `json:"title" binding:"required"`
	Address string `json:"address"`
}

// UpdateWarehouseRequest defines the data allowed for updating a warehouse.
type UpdateWarehouseRequest struct {
	Title   *string `json:"title"`
	Address *string `json:"address"`
}

// WarehouseResponse defines the data returned for a warehouse.
type WarehouseResponse struct {
	WarehouseSlug string    `json:"warehouseSlug"`
	Title         string    `json:"title"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
}

// ToWarehouseResponse converts a domain.Warehouse to WarehouseResponse DTO.
func ToWarehouseResponse(w *domain.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		WarehouseSlug: w.WarehouseSlug,
		Title:         w.Title,
		Address:       w.Address,
		CreatedAt:     w.CreatedAt,
		CreatedBy:     w.CreatedBy,
	}
}

// ListWarehousesResponse wraps the list of warehouses.
type ListWarehousesResponse struct {
	Warehouses []WarehouseResponse `json:"warehouses"`
}

// ToListWarehousesResponse converts domain warehouses to the list DTO.
func ToListWarehousesResponse(ws []domain.Warehouse) ListWarehousesResponse {
	res := make([]WarehouseResponse, len(ws))
	for i := range ws {
		res[i] = ToWarehouseResponse(&ws[i])
	}
	return ListWarehousesResponse{Warehouses: res}
}

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Title string `json:"title" binding:"required"`
	Type  int    `json:"type"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	Title *string `json:"title"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategorySlug string    `json:"categorySlug"`
	Title        string    `json:"title"`
	Type         int       `json:"type"`
	CreatedAt    time.Time `json:"createdAt"`
	CreatedBy    string    `json:"createdBy"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategorySlug: c.CategorySlug,
		Title:        c.Title,
		Type:         int(c.Type),
		CreatedAt:    c.CreatedAt,
		CreatedBy:    c.CreatedBy,
	}
}

// ListCategoriesParams defines query parameters for listing categories.
type ListCategoriesParams struct {
	Type *int `form:"type"`
}

// ListCategoriesResponse wraps the list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToListCategoriesResponse converts domain categories to the list DTO.
func ToListCategoriesResponse(cs []domain.Category) ListCategoriesResponse {
	res := make([]CategoryResponse, len(cs))
	for i := range cs {
		res[i] = ToCategoryResponse(&cs[i])
	}
	return ListCategoriesResponse{Categories: res}
}
