package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/julofinance/lender-ledger/internal/core/ports/services"
	"github.com/julofinance/lender-ledger/internal/dto"
	"github.com/julofinance/lender-ledger/internal/middleware"
)

// capitalHandler handles the partner capital-management surface: deposits,
// withdrawals, balance reads and the event log.
type capitalHandler struct {
	postingService portssvc.PostingSvcFacade
}

func newCapitalHandler(ps portssvc.PostingSvcFacade) *capitalHandler {
	return &capitalHandler{postingService: ps}
}

// RegisterCapitalRoutes registers routes for lender capital management.
func RegisterCapitalRoutes(rg *gin.RouterGroup, ps portssvc.PostingSvcFacade) {
	h := newCapitalHandler(ps)

	lenders := rg.Group("/lenders/:partnerID")
	{
		lenders.POST("/deposits", h.deposit)
		lenders.POST("/withdrawals", h.withdraw)
		lenders.GET("/balance", h.getBalance)
		lenders.GET("/events", h.listEvents)
		lenders.POST("/reconciliation", h.verifyEvents)
	}
}

func (h *capitalHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	event, err := h.postingService.Deposit(c.Request.Context(), c.Param("partnerID"), req.Amount, middleware.GetActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToEventResponse(*event))
}

func (h *capitalHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for withdraw", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	event, err := h.postingService.Withdraw(c.Request.Context(), c.Param("partnerID"), req.Amount, middleware.GetActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToEventResponse(*event))
}

func (h *capitalHandler) getBalance(c *gin.Context) {
	account, err := h.postingService.GetAccountByPartnerID(c.Request.Context(), c.Param("partnerID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(*account))
}

func (h *capitalHandler) listEvents(c *gin.Context) {
	account, err := h.postingService.GetAccountByPartnerID(c.Request.Context(), c.Param("partnerID"))
	if err != nil {
		respondError(c, err)
		return
	}
	events, err := h.postingService.ListEvents(c.Request.Context(), account.AccountID)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}
	c.JSON(http.StatusOK, gin.H{"events": resp})
}

// verifyEvents replays the lender's event log against the current balance.
// Used by back-office reconciliation jobs.
func (h *capitalHandler) verifyEvents(c *gin.Context) {
	account, err := h.postingService.GetAccountByPartnerID(c.Request.Context(), c.Param("partnerID"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.postingService.VerifyAccountEvents(c.Request.Context(), account.AccountID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "consistent", "availableBalance": account.AvailableBalance()})
}
