package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hisaabi/hisaabi_backend/internal/core/ports/services"
	"github.com/hisaabi/hisaabi_backend/internal/dto"
	"github.com/hisaabi/hisaabi_backend/internal/middleware"
)

// partyHandler handles HTTP requests related to parties.
type partyHandler struct {
	partyService       portssvc.PartySvcFacade
	transactionService portssvc.TransactionSvcFacade
}

func newPartyHandler(partyService portssvc.PartySvcFacade, transactionService portssvc.TransactionSvcFacade) *partyHandler {
	return &partyHandler{
		partyService:       partyService,
		transactionService: transactionService,
	}
}

// registerPartyRoutes wires party endpoints into the given group. The balance
// history endpoint lives here because it is addressed by party.
func registerPartyRoutes(rg *gin.RouterGroup, partyService portssvc.PartySvcFacade, transactionService portssvc.TransactionSvcFacade) {
	h := newPartyHandler(partyService, transactionService)

	parties := rg.Group("/parties")
	{
		parties.POST("", h.createParty)
		parties.GET("", h.listParties)
		parties.GET("/:partySlug", h.getParty)
		parties.PUT("/:partySlug", h.updateParty)
		parties.DELETE("/:partySlug", h.deleteParty)
		parties.GET("/:partySlug/balance-history", h.getBalanceHistory)
	}
}

func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CreateParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	party, err := h.partyService.CreateParty(c.Request.Context(), sess, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create party")
		return
	}

	logger.Info("Party created", slog.String("party_slug", party.PartySlug))
	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

func (h *partyHandler) getParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partySlug := c.Param("partySlug")

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	party, err := h.partyService.GetParty(c.Request.Context(), sess, partySlug)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve party")
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

func (h *partyHandler) listParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListPartiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for ListParties", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	resp, err := h.partyService.ListParties(c.Request.Context(), sess, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list parties")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *partyHandler) updateParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partySlug := c.Param("partySlug")

	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for UpdateParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	party, err := h.partyService.UpdateParty(c.Request.Context(), sess, partySlug, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update party")
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

func (h *partyHandler) deleteParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partySlug := c.Param("partySlug")

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	if err := h.partyService.DeleteParty(c.Request.Context(), sess, partySlug); err != nil {
		respondError(c, logger, err, "Failed to delete party")
		return
	}

	logger.Info("Party deleted", slog.String("party_slug", partySlug))
	c.Status(http.StatusNoContent)
}

// getBalanceHistory projects the party's ledger with a running balance per
// row. Paginated; the nextToken carries the balance forward so later pages
// do not replay earlier history.
func (h *partyHandler) getBalanceHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partySlug := c.Param("partySlug")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for GetBalanceHistory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	sess, ok := requireSession(c, logger)
	if !ok {
		return
	}

	resp, err := h.transactionService.GetPartyBalanceHistory(c.Request.Context(), sess, partySlug, params)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve balance history")
		return
	}

	c.JSON(http.StatusOK, resp)
}
