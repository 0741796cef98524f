package services

import (
	"context"
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

// categoryService manages product, party and expense categories.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// CreateCategory persists a new category.
func (s *categoryService) CreateCategory(ctx context.Context, sess domain.SessionContext, req dto.CreateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	categoryType := domain.CategoryType(req.Type)
	switch categoryType {
	case domain.CategoryProduct, domain.CategoryParty, domain.CategoryExpense:
	default:
		return nil, fmt.Errorf("%w: unknown category type %d", apperrors.ErrValidation, req.Type)
	}

	now := time.Now().UTC()
	category := domain.Category{
		CategorySlug: slugs.New(slugs.Category),
		BusinessSlug: sess.BusinessSlug,
		Title:        req.Title,
		Type:         categoryType,
		Status:       domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     sess.UserSlug,
			LastUpdatedAt: now,
			LastUpdatedBy: sess.UserSlug,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		logger.Error("Failed to save category", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save category: %w", err)
	}
	logger.Info("Category created", slog.String("category_slug", category.CategorySlug))
	return &category, nil
}

// GetCategory retrieves a specific category by slug.
func (s *categoryService) GetCategory(ctx context.Context, sess domain.SessionContext, categorySlug string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryBySlug(ctx, sess.BusinessSlug, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("failed to find category %s: %w", categorySlug, err)
	}
	return category, nil
}

// ListCategories retrieves categories for the business.
func (s *categoryService) ListCategories(ctx context.Context, sess domain.SessionContext, params dto.ListCategoriesParams) (*dto.ListCategoriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var categoryType *domain.CategoryType
	if params.Type != nil {
		ct := domain.CategoryType(*params.Type)
		categoryType = &ct
	}

	categories, err := s.categoryRepo.ListCategories(ctx, sess.BusinessSlug, categoryType)
	if err != nil {
		logger.Error("Failed to list categories", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	resp := dto.ToListCategoriesResponse(categories)
	return &resp, nil
}

// UpdateCategory updates category details.
func (s *categoryService) UpdateCategory(ctx context.Context, sess domain.SessionContext, categorySlug string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category, err := s.categoryRepo.FindCategoryBySlug(ctx, sess.BusinessSlug, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("failed to find category %s: %w", categorySlug, err)
	}

	if req.Title != nil {
		category.Title = *req.Title
	}
	category.LastUpdatedAt = time.Now().UTC()
	category.LastUpdatedBy = sess.UserSlug

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		logger.Error("Failed to update category", slog.String("error", err.Error()), slog.String("category_slug", categorySlug))
		return nil, fmt.Errorf("failed to update category %s: %w", categorySlug, err)
	}
	return category, nil
}

// DeleteCategory soft-deletes a category.
func (s *categoryService) DeleteCategory(ctx context.Context, sess domain.SessionContext, categorySlug string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.categoryRepo.FindCategoryBySlug(ctx, sess.BusinessSlug, categorySlug); err != nil {
		return fmt.Errorf("failed to find category %s: %w", categorySlug, err)
	}
	if err := s.categoryRepo.MarkCategoryDeleted(ctx, sess.BusinessSlug, categorySlug, sess.UserSlug); err != nil {
		logger.Error("Failed to delete category", slog.String("error", err.Error()), slog.String("category_slug", categorySlug))
		return fmt.Errorf("failed to delete category %s: %w", categorySlug, err)
	}
	logger.Info("Category deleted", slog.String("category_slug", categorySlug))
	return nil
}
