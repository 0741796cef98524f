package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hisaabi/hisaabi_backend/internal/core/ports/services"
	"github.com/hisaabi/hisaabi_backend/internal/dto"
	"github.com/hisaabi/hisaabi_backend/internal/middleware"
)

// journalVoucherHandler handles HTTP requests for compound journal vouchers.
type journalVoucherHandler struct {
	voucherService portssvc.JournalVoucherSvc
}

func newJournalVoucherHandler(voucherService portssvc.JournalVoucherSvc) *journalVoucherHandler {
	return &journalVoucherHandler{
		voucherService: voucherService,
	}
}

// registerJournalVoucherRoutes wires journal voucher endpoints into the given group.
func registerJournalVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.JournalVoucherSvc) {
	h := newJournalVoucherHandler(voucherService)

	vouchers := rg.Group("/journal-vouchers")
	{
		vouchers.POST("", h.createJournalVoucher)
		vouchers.GET("/:transactionSlug", h.getJournalVoucher)
	}
}

// createJournalVoucher records a balanced multi-account voucher. The request
// must carry at least two account rows whose debit and credit totals match;
// an unbalanced draft is rejected with the observed totals.
func (h *journalVoucherHandler) createJournalVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJournalVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CreateJournalVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	resp, err := h.voucherService.CreateJournalVoucher(c.Request.Context(), sess, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create journal voucher")
		return
	}

	logger.Info("Journal voucher created",
		slog.String("transaction_slug", resp.Parent.TransactionSlug),
		slog.Int("children", len(resp.Children)))
	c.JSON(http.StatusCreated, resp)
}

// getJournalVoucher retrieves a voucher with its generated children.
func (h *journalVoucherHandler) getJournalVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionSlug := c.Param("transactionSlug")

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	resp, err := h.voucherService.GetJournalVoucher(c.Request.Context(), sess, transactionSlug)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve journal voucher")
		return
	}

	c.JSON(http.StatusOK, resp)
}
