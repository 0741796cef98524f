package services

import (
	"context"

	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	"github.com/hisaabi/hisaabi_backend/internal/dto"
)

// ProductSvcFacade defines operations for product data
type ProductSvcFacade interface {
	// GetProduct retrieves a specific product by slug.
	GetProduct(ctx context.Context, sess domain.SessionContext, productSlug string) (*domain.Product, error)

	// ListProducts retrieves products for the business.
	ListProducts(ctx context.Context, sess domain.SessionContext, params dto.ListProductsParams) (*dto.ListProductsResponse, error)

	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, sess domain.SessionContext, req dto.CreateProductRequest) (*domain.Product, error)

	// UpdateProduct updates product details.
	UpdateProduct(ctx context.Context, sess domain.SessionContext, productSlug string, req dto.UpdateProductRequest) (*domain.Product, error)

	// DeleteProduct soft-deletes a product.
	DeleteProduct(ctx context.Context, sess domain.SessionContext, productSlug string) error
}
