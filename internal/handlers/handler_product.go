package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hisaabi/hisaabi_backend/internal/core/ports/services"
	"github.com/hisaabi/hisaabi_backend/internal/dto"
	"github.com/hisaabi/hisaabi_backend/internal/middleware"
)

// productHandler handles HTTP requests related to products.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func newProductHandler(productService portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{
		productService: productService,
	}
}

// registerProductRoutes wires product endpoints into the given group.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:productSlug", h.getProduct)
		products.PUT("/:productSlug", h.updateProduct)
		products.DELETE("/:productSlug", h.deleteProduct)
	}
}

func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CreateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), sess, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create product")
		return
	}

	logger.Info("Product created", slog.String("product_slug", product.ProductSlug))
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

func (h *productHandler) getProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productSlug := c.Param("productSlug")

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), sess, productSlug)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve product")
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for ListProducts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	resp, err := h.productService.ListProducts(c.Request.Context(), sess, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list products")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *productHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productSlug := c.Param("productSlug")

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for UpdateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), sess, productSlug, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

func (h *productHandler) deleteProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productSlug := c.Param("productSlug")

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), sess, productSlug); err != nil {
		respondError(c, logger, err, "Failed to delete product")
		return
	}

	logger.Info("Product deleted", slog.String("product_slug", productSlug))
	c.Status(http.StatusNoContent)
}
