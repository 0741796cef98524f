package repositories

import (
	"context"

	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductBySlug retrieves a specific product by its slug.
	FindProductBySlug(ctx context.Context, businessSlug, productSlug string) (*domain.Product, error)

	// ListProducts retrieves products for a business, optionally filtered by category.
	ListProducts(ctx context.Context, businessSlug string, categorySlug *string, limit int, offset int) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates product details.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// AdjustProductQuantity applies a delta to the product's stock quantity.
	AdjustProductQuantity(ctx context.Context, businessSlug, productSlug string, delta decimal.Decimal) error

	// MarkProductDeleted soft-deletes a product.
	MarkProductDeleted(ctx context.Context, businessSlug, productSlug, updatedBy string) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
