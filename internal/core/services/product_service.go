package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hisaabi/hisaabi_backend/internal/apperrors"
	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	portsrepo "github.com/hisaabi/hisaabi_backend/internal/core/ports/repositories"
	portssvc "github.com/hisaabi/hisaabi_backend/internal/core/ports/services"
	"github.com/hisaabi/hisaabi_backend/internal/dto"
	"github.com/hisaabi/hisaabi_backend/internal/middleware"
	"github.com/hisaabi/hisaabi_backend/internal/utils/slugs"
)

// productService manages the product catalog and stock quantities.
type productService struct {
	productRepo  portsrepo.ProductRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo, categoryRepo: categoryRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

// CreateProduct persists a new product.
func (s *productService) CreateProduct(ctx context.Context, sess domain.SessionContext, req dto.CreateProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.RetailPrice.IsNegative() || req.WholesalePrice.IsNegative() || req.PurchasePrice.IsNegative() {
		return nil, fmt.Errorf("%w: product prices must not be negative", apperrors.ErrInvalidAmount)
	}
	if req.CategorySlug != nil {
		if _, err := s.categoryRepo.FindCategoryBySlug(ctx, sess.BusinessSlug, *req.CategorySlug); err != nil {
			return nil, fmt.Errorf("failed to resolve category %s: %w", *req.CategorySlug, err)
		}
	}

	now := time.Now().UTC()
	product := domain.Product{
		ProductSlug:    slugs.New(slugs.Product),
		BusinessSlug:   sess.BusinessSlug,
		Name:           req.Name,
		Description:    req.Description,
		CategorySlug:   req.CategorySlug,
		RetailPrice:    req.RetailPrice,
		WholesalePrice: req.WholesalePrice,
		PurchasePrice:  req.PurchasePrice,
		Quantity:       req.Quantity,
		Status:         domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     sess.UserSlug,
			LastUpdatedAt: now,
			LastUpdatedBy: sess.UserSlug,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		logger.Error("Failed to save product", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	logger.Info("Product created", slog.String("product_slug", product.ProductSlug))
	return &product, nil
}

// GetProduct retrieves a specific product by slug.
func (s *productService) GetProduct(ctx context.Context, sess domain.SessionContext, productSlug string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	product, err := s.productRepo.FindProductBySlug(ctx, sess.BusinessSlug, productSlug)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find product", slog.String("error", err.Error()), slog.String("product_slug", productSlug))
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productSlug, err)
	}
	return product, nil
}

// ListProducts retrieves products for the business.
func (s *productService) ListProducts(ctx context.Context, sess domain.SessionContext, params dto.ListProductsParams) (*dto.ListProductsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	products, err := s.productRepo.ListProducts(ctx, sess.BusinessSlug, params.CategorySlug, limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list products", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	resp := dto.ToListProductsResponse(products)
	return &resp, nil
}

// UpdateProduct updates product details.
func (s *productService) UpdateProduct(ctx context.Context, sess domain.SessionContext, productSlug string, req dto.UpdateProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	product, err := s.productRepo.FindProductBySlug(ctx, sess.BusinessSlug, productSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to find product %s: %w", productSlug, err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.CategorySlug != nil {
		if _, err := s.categoryRepo.FindCategoryBySlug(ctx, sess.BusinessSlug, *req.CategorySlug); err != nil {
			return nil, fmt.Errorf("failed to resolve category %s: %w", *req.CategorySlug, err)
		}
		product.CategorySlug = req.CategorySlug
	}
	if req.RetailPrice != nil {
		if req.RetailPrice.IsNegative() {
			return nil, fmt.Errorf("%w: retail price must not be negative", apperrors.ErrInvalidAmount)
		}
		product.RetailPrice = *req.RetailPrice
	}
	if req.WholesalePrice != nil {
		if req.WholesalePrice.IsNegative() {
			return nil, fmt.Errorf("%w: wholesale price must not be negative", apperrors.ErrInvalidAmount)
		}
		product.WholesalePrice = *req.WholesalePrice
	}
	if req.PurchasePrice != nil {
		if req.PurchasePrice.IsNegative() {
			return nil, fmt.Errorf("%w: purchase price must not be negative", apperrors.ErrInvalidAmount)
		}
		product.PurchasePrice = *req.PurchasePrice
	}
	product.LastUpdatedAt = time.Now().UTC()
	product.LastUpdatedBy = sess.UserSlug

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		logger.Error("Failed to update product", slog.String("error", err.Error()), slog.String("product_slug", productSlug))
		return nil, fmt.Errorf("failed to update product %s: %w", productSlug, err)
	}
	return product, nil
}

// DeleteProduct soft-deletes a product.
func (s *productService) DeleteProduct(ctx context.Context, sess domain.SessionContext, productSlug string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.productRepo.FindProductBySlug(ctx, sess.BusinessSlug, productSlug); err != nil {
		return fmt.Errorf("failed to find product %s: %w", productSlug, err)
	}
	if err := s.productRepo.MarkProductDeleted(ctx, sess.BusinessSlug, productSlug, sess.UserSlug); err != nil {
		logger.Error("Failed to delete product", slog.String("error", err.Error()), slog.String("product_slug", productSlug))
		return fmt.Errorf("failed to delete product %s: %w", productSlug, err)
	}
	logger.Info("Product deleted", slog.String("product_slug", productSlug))
	return nil
}
