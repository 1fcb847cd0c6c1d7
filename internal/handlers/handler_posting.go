package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/julofinance/lender-ledger/internal/core/ports/services"
	"github.com/julofinance/lender-ledger/internal/dto"
	"github.com/julofinance/lender-ledger/internal/middleware"
)

// postingHandler handles disbursement and repayment postings.
type postingHandler struct {
	postingService portssvc.PostingSvcFacade
}

func newPostingHandler(ps portssvc.PostingSvcFacade) *postingHandler {
	return &postingHandler{postingService: ps}
}

// RegisterPostingRoutes registers routes for disbursement and repayment
// allocation.
func RegisterPostingRoutes(rg *gin.RouterGroup, ps portssvc.PostingSvcFacade) {
	h := newPostingHandler(ps)

	rg.POST("/disbursements", h.disburse)
	repayments := rg.Group("/repayments")
	{
		repayments.POST("/installment", h.repayInstallment)
		repayments.POST("/loan", h.repayLoan)
	}
}

func (h *postingHandler) disburse(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DisburseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for disburse", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.postingService.PostDisbursement(c.Request.Context(), req.LoanID, middleware.GetActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToDisbursementResponse(*record))
}

func (h *postingHandler) repayInstallment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RepayInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for repayInstallment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.postingService.PostRepayment(c.Request.Context(), req.InstallmentID, req.Amount, req.RepaymentMeta, middleware.GetActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRepaymentResponse(result))
}

func (h *postingHandler) repayLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RepayLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for repayLoan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.postingService.PostRepaymentAcrossInstallments(c.Request.Context(), req.LoanID, req.Amount, req.RepaymentMeta, middleware.GetActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRepaymentResponse(result))
}

func toRepaymentResponse(result *portssvc.RepaymentResult) dto.RepaymentResponse {
	allocations := make([]dto.RepaymentAllocationResponse, 0, len(result.Records))
	for _, rec := range result.Records {
		allocations = append(allocations, dto.ToRepaymentAllocationResponse(rec))
	}
	return dto.RepaymentResponse{Allocations: allocations, Excess: result.Excess}
}
