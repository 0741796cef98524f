package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
)

// CreateProductRequest defines the data needed to create a product.
type CreateProductRequest struct {
	Name           string          `json:"name" binding:"required"`
	Description    string          `json:"description"`
	CategorySlug   *string         `json:"categorySlug"`
	RetailPrice    decimal.Decimal `json:"retailPrice"`
	WholesalePrice decimal.Decimal `json:"wholesalePrice"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
	Quantity       decimal.Decimal `json:"quantity"`
}

// UpdateProductRequest defines the data allowed for updating a product.
type UpdateProductRequest struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	CategorySlug   *string          `json:"categorySlug"`
	RetailPrice    *decimal.Decimal `json:"retailPrice"`
	WholesalePrice *decimal.Decimal `json:"wholesalePrice"`
	PurchasePrice  *decimal.Decimal `json:"purchasePrice"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductSlug    string          `json:"productSlug"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	CategorySlug   *string         `json:"categorySlug,omitempty"`
	RetailPrice    decimal.Decimal `json:"retailPrice"`
	WholesalePrice decimal.Decimal `json:"wholesalePrice"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
	Quantity       decimal.Decimal `json:"quantity"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductSlug:    p.ProductSlug,
		Name:           p.Name,
		Description:    p.Description,
		CategorySlug:   p.CategorySlug,
		RetailPrice:    p.RetailPrice,
		WholesalePrice: p.WholesalePrice,
		PurchasePrice:  p.PurchasePrice,
		Quantity:       p.Quantity,
		CreatedAt:      p.CreatedAt,
		CreatedBy:      p.CreatedBy,
	}
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	Limit        int     `form:"limit,default=20"`
	Offset       int     `form:"offset,default=0"`
	CategorySlug *string `form:"categorySlug"`
}

// ListProductsResponse wraps the list of products.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToListProductsResponse converts domain products to the list DTO.
func ToListProductsResponse(products []domain.Product) ListProductsResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return ListProductsResponse{Products: res}
}
