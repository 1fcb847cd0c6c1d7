package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/julofinance/lender-ledger/internal/apperrors"
	"github.com/julofinance/lender-ledger/internal/core/services"
	"github.com/julofinance/lender-ledger/internal/middleware"
)

// respondError maps service errors to HTTP responses. Invariant violations
// indicate a corrupted ledger: they are logged at error level and surface as
// 500 so the caller's transaction semantics stay intact.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var invariantErr *apperrors.InvariantViolationError
	if errors.As(err, &invariantErr) {
		logger.Error("Ledger invariant violated", slog.String("invariant", invariantErr.Invariant), slog.String("detail", invariantErr.Detail))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal ledger inconsistency"})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotALender),
		errors.Is(err, apperrors.ErrInsufficientBalance),
		errors.Is(err, services.ErrLoanNotPending),
		errors.Is(err, services.ErrInstallmentPaid),
		errors.Is(err, services.ErrNoUnpaidInstallment),
		errors.Is(err, services.ErrAccountArchived),
		errors.Is(err, services.ErrPartnerInactive),
		errors.Is(err, services.ErrNoLedgerAccount),
		errors.Is(err, services.ErrScheduleMismatch):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
