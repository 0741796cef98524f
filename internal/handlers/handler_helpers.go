package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hisaabi/hisaabi_backend/internal/apperrors"
	"github.com/hisaabi/hisaabi_backend/internal/core/domain"
	"github.com/hisaabi/hisaabi_backend/internal/middleware"
)

// requireSession pulls the authenticated session from the context. Writes a
// 401 response and returns false when it is missing, which only happens if a
// route was registered without the auth middleware.
func requireSession(c *gin.Context, logger *slog.Logger) (domain.SessionContext, bool) {
	sess, ok := middleware.GetSessionFromContext(c)
	if !ok {
		logger.Error("Session not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return domain.SessionContext{}, false
	}
	return sess, true
}

// respondError translates service errors into HTTP responses. Validation
// style failures come back as 400 with the underlying message; everything
// unexpected is logged and hidden behind a generic 500.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	var unbalanced *apperrors.UnbalancedJournalError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &unbalanced):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       unbalanced.Error(),
			"cause":       string(unbalanced.Cause),
			"totalDebit":  unbalanced.TotalDebit,
			"totalCredit": unbalanced.TotalCredit,
		})
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInvalidAmount),
		errors.Is(err, apperrors.ErrMissingParty),
		errors.Is(err, apperrors.ErrEmptyLineItems),
		errors.Is(err, apperrors.ErrMissingPaymentMethod),
		errors.Is(err, apperrors.ErrMissingWarehouse),
		errors.Is(err, apperrors.ErrDuplicateWarehouse),
		errors.Is(err, apperrors.ErrSameAccountTransfer):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}
