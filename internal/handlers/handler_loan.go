package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/julofinance/lender-ledger/internal/core/ports/services"
	"github.com/julofinance/lender-ledger/internal/dto"
	"github.com/julofinance/lender-ledger/internal/middleware"
)

// loanHandler handles loan and product intake.
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

func newLoanHandler(ls portssvc.LoanSvcFacade) *loanHandler {
	return &loanHandler{loanService: ls}
}

// RegisterLoanRoutes registers routes for loan intake.
func RegisterLoanRoutes(rg *gin.RouterGroup, ls portssvc.LoanSvcFacade) {
	h := newLoanHandler(ls)

	products := rg.Group("/loan-products")
	{
		products.POST("", h.createProduct)
	}
	loans := rg.Group("/loans")
	{
		loans.POST("", h.registerLoan)
		loans.GET("/:loanID", h.getLoan)
		loans.GET("/:loanID/installments", h.listInstallments)
	}
}

func (h *loanHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	product, err := h.loanService.CreateProduct(c.Request.Context(), req, middleware.GetActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"productID": product.ProductID})
}

func (h *loanHandler) registerLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for registerLoan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	loan, err := h.loanService.RegisterLoan(c.Request.Context(), req, middleware.GetActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToLoanResponse(*loan))
}

func (h *loanHandler) getLoan(c *gin.Context) {
	loan, err := h.loanService.GetLoanByID(c.Request.Context(), c.Param("loanID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLoanResponse(*loan))
}

func (h *loanHandler) listInstallments(c *gin.Context) {
	installments, err := h.loanService.ListInstallments(c.Request.Context(), c.Param("loanID"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]dto.InstallmentResponse, 0, len(installments))
	for _, inst := range installments {
		resp = append(resp, dto.ToInstallmentResponse(inst))
	}
	c.JSON(http.StatusOK, gin.H{"installments": resp})
}
