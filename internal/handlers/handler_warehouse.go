package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hisaabi/hisaabi_backend/internal/core/ports/services"
	"github.com/hisaabi/hisaabi_backend/internal/dto"
	"github.com/hisaabi/hisaabi_backend/internal/middleware"
)

// warehouseHandler handles HTTP requests related to warehouses.
type warehouseHandler struct {
	warehouseService portssvc.WarehouseSvcFacade
}

func newWarehouseHandler(warehouseService portssvc.WarehouseSvcFacade) *warehouseHandler {
	return &warehouseHandler{
		warehouseService: warehouseService,
	}
}

// registerWarehouseRoutes wires warehouse endpoints into the given group.
func registerWarehouseRoutes(rg *gin.RouterGroup, warehouseService portssvc.WarehouseSvcFacade) {
	h := newWarehouseHandler(warehouseService)

	warehouses := rg.Group("/warehouses")
	{
		warehouses.POST("", h.createWarehouse)
		warehouses.GET("", h.listWarehouses)
		warehouses.GET("/:warehouseSlug", h.getWarehouse)
		warehouses.PUT("/:warehouseSlug", h.updateWarehouse)
		warehouses.DELETE("/:warehouseSlug", h.deleteWarehouse)
	}
}

func (h *warehouseHandler) createWarehouse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CreateWarehouse", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	warehouse, err := h.warehouseService.CreateWarehouse(c.Request.Context(), sess, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create warehouse")
		return
	}

	logger.Info("Warehouse created", slog.String("warehouse_slug", warehouse.WarehouseSlug))
	c.JSON(http.StatusCreated, dto.ToWarehouseResponse(warehouse))
}

func (h *warehouseHandler) getWarehouse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	warehouseSlug := c.Param("warehouseSlug")

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	warehouse, err := h.warehouseService.GetWarehouse(c.Request.Context(), sess, warehouseSlug)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve warehouse")
		return
	}

	c.JSON(http.StatusOK, dto.ToWarehouseResponse(warehouse))
}

func (h *warehouseHandler) listWarehouses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	resp, err := h.warehouseService.ListWarehouses(c.Request.Context(), sess)
	if err != nil {
		respondError(c, logger, err, "Failed to list warehouses")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *warehouseHandler) updateWarehouse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	warehouseSlug := c.Param("warehouseSlug")

	var req dto.UpdateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for UpdateWarehouse", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	warehouse, err := h.warehouseService.UpdateWarehouse(c.Request.Context(), sess, warehouseSlug, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update warehouse")
		return
	}

	c.JSON(http.StatusOK, dto.ToWarehouseResponse(warehouse))
}

func (h *warehouseHandler) deleteWarehouse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	warehouseSlug := c.Param("warehouseSlug")

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	if err := h.warehouseService.DeleteWarehouse(c.Request.Context(), sess, warehouseSlug); err != nil {
		respondError(c, logger, err, "Failed to delete warehouse")
		return
	}

	logger.Info("Warehouse deleted", slog.String("warehouse_slug", warehouseSlug))
	c.Status(http.StatusNoContent)
}
