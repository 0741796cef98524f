package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hisaabi/hisaabi_backend/internal/core/ports/services"
	"github.com/hisaabi/hisaabi_backend/internal/dto"
	"github.com/hisaabi/hisaabi_backend/internal/middleware"
)

// paymentMethodHandler handles HTTP requests related to payment methods.
type paymentMethodHandler struct {
	paymentMethodService portssvc.PaymentMethodSvcFacade
}

func newPaymentMethodHandler(paymentMethodService portssvc.PaymentMethodSvcFacade) *paymentMethodHandler {
	return &paymentMethodHandler{
		paymentMethodService: paymentMethodService,
	}
}

// registerPaymentMethodRoutes wires payment method endpoints into the given group.
func registerPaymentMethodRoutes(rg *gin.RouterGroup, paymentMethodService portssvc.PaymentMethodSvcFacade) {
	h := newPaymentMethodHandler(paymentMethodService)

	methods := rg.Group("/payment-methods")
	{
		methods.POST("", h.createPaymentMethod)
		methods.GET("", h.listPaymentMethods)
		methods.GET("/:paymentMethodSlug", h.getPaymentMethod)
		methods.PUT("/:paymentMethodSlug", h.updatePaymentMethod)
		methods.DELETE("/:paymentMethodSlug", h.deletePaymentMethod)
	}
}

func (h *paymentMethodHandler) createPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CreatePaymentMethod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	pm, err := h.paymentMethodService.CreatePaymentMethod(c.Request.Context(), sess, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create payment method")
		return
	}

	logger.Info("Payment method created", slog.String("payment_method_slug", pm.PaymentMethodSlug))
	c.JSON(http.StatusCreated, dto.ToPaymentMethodResponse(pm))
}

func (h *paymentMethodHandler) getPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentMethodSlug := c.Param("paymentMethodSlug")

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	pm, err := h.paymentMethodService.GetPaymentMethod(c.Request.Context(), sess, paymentMethodSlug)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve payment method")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(pm))
}

func (h *paymentMethodHandler) listPaymentMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	resp, err := h.paymentMethodService.ListPaymentMethods(c.Request.Context(), sess)
	if err != nil {
		respondError(c, logger, err, "Failed to list payment methods")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *paymentMethodHandler) updatePaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentMethodSlug := c.Param("paymentMethodSlug")

	var req dto.UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for UpdatePaymentMethod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	pm, err := h.paymentMethodService.UpdatePaymentMethod(c.Request.Context(), sess, paymentMethodSlug, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update payment method")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(pm))
}

func (h *paymentMethodHandler) deletePaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentMethodSlug := c.Param("paymentMethodSlug")

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	if err := h.paymentMethodService.DeletePaymentMethod(c.Request.Context(), sess, paymentMethodSlug); err != nil {
		respondError(c, logger, err, "Failed to delete payment method")
		return
	}

	logger.Info("Payment method deleted", slog.String("payment_method_slug", paymentMethodSlug))
	c.Status(http.StatusNoContent)
}
