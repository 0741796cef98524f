package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	portsrepo "github.com/hisaabi/hisaabi_backend/internal/core/ports/repositories"
	portssvc "github.com/hisaabi/hisaabi_backend/internal/core/ports/services"
	"github.com/hisaabi/hisaabi_backend/internal/dto"
	"github.com/hisaabi/hisaabi_backend/internal/middleware"
	"github.com/hisaabi/hisaabi_backend/internal/utils/slugs"
)

// warehouseService manages stock locations.
type warehouseService struct {
	warehouseRepo portsrepo.WarehouseRepositoryFacade
}

// NewWarehouseService creates a new WarehouseService.
func NewWarehouseService(warehouseRepo portsrepo.WarehouseRepositoryFacade) portssvc.WarehouseSvcFacade {
	return &warehouseService{warehouseRepo: warehouseRepo}
}

var _ portssvc.WarehouseSvcFacade = (*warehouseService)(nil)

// CreateWarehouse persists a new warehouse.
func (s *warehouseService) CreateWarehouse(ctx context.Context, sess domain.SessionContext, req dto.CreateWarehouseRequest) (*domain.Warehouse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	warehouse := domain.Warehouse{
		WarehouseSlug: slugs.New(slugs.Warehouse),
		BusinessSlug:  sess.BusinessSlug,
		Title:         req.Title,
		Address:       req.Address,
		Status:        domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     sess.UserSlug,
			LastUpdatedAt: now,
			LastUpdatedBy: sess.UserSlug,
		},
	}

	if err := s.warehouseRepo.SaveWarehouse(ctx, warehouse); err != nil {
		logger.Error("Failed to save warehouse", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save warehouse: %w", err)
	}
	logger.Info("Warehouse created", slog.String("warehouse_slug", warehouse.WarehouseSlug))
	return &warehouse, nil
}

// GetWarehouse retrieves a specific warehouse by slug.
func (s *warehouseService) GetWarehouse(ctx context.Context, sess domain.SessionContext, warehouseSlug string) (*domain.Warehouse, error) {
	warehouse, err := s.warehouseRepo.FindWarehouseBySlug(ctx, sess.BusinessSlug, warehouseSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to find warehouse %s: %w", warehouseSlug, err)
	}
	return warehouse, nil
}

// ListWarehouses retrieves all active warehouses for the business.
func (s *warehouseService) ListWarehouses(ctx context.Context, sess domain.SessionContext) (*dto.ListWarehousesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	warehouses, err := s.warehouseRepo.ListWarehouses(ctx, sess.BusinessSlug)
	if err != nil {
		logger.Error("Failed to list warehouses", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list warehouses: %w", err)
	}
	resp := dto.ToListWarehousesResponse(warehouses)
	return &resp, nil
}

// UpdateWarehouse updates warehouse details.
func (s *warehouseService) UpdateWarehouse(ctx context.Context, sess domain.SessionContext, warehouseSlug string, req dto.UpdateWarehouseRequest) (*domain.Warehouse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	warehouse, err := s.warehouseRepo.FindWarehouseBySlug(ctx, sess.BusinessSlug, warehouseSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to find warehouse %s: %w", warehouseSlug, err)
	}

	if req.Title != nil {
		warehouse.Title = *req.Title
	}
	if req.Address != nil {
		warehouse.Address = *req.Address
	}
	warehouse.LastUpdatedAt = time.Now().UTC()
	warehouse.LastUpdatedBy = sess.UserSlug

	if err := s.warehouseRepo.UpdateWarehouse(ctx, *warehouse); err != nil {
		logger.Error("Failed to update warehouse", slog.String("error", err.Error()), slog.String("warehouse_slug", warehouseSlug))
		return nil, fmt.Errorf("failed to update warehouse %s: %w", warehouseSlug, err)
	}
	return warehouse, nil
}

// DeleteWarehouse soft-deletes a warehouse.
func (s *warehouseService) DeleteWarehouse(ctx context.Context, sess domain.SessionContext, warehouseSlug string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.warehouseRepo.FindWarehouseBySlug(ctx, sess.BusinessSlug, warehouseSlug); err != nil {
		return fmt.Errorf("failed to find warehouse %s: %w", warehouseSlug, err)
	}
	if err := s.warehouseRepo.MarkWarehouseDeleted(ctx, sess.BusinessSlug, warehouseSlug, sess.UserSlug); err != nil {
		logger.Error("Failed to delete warehouse", slog.String("error", err.Error()), slog.String("warehouse_slug", warehouseSlug))
		return fmt.Errorf("failed to delete warehouse %s: %w", warehouseSlug, err)
	}
	logger.Info("Warehouse deleted", slog.String("warehouse_slug", warehouseSlug))
	return nil
}
