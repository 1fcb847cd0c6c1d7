package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/julofinance/lender-ledger/internal/core/ports/services"
	"github.com/julofinance/lender-ledger/internal/dto"
	"github.com/julofinance/lender-ledger/internal/middleware"
)

// partnerHandler handles HTTP requests related to partners and their rates.
type partnerHandler struct {
	partnerService portssvc.PartnerSvcFacade
}

func newPartnerHandler(ps portssvc.PartnerSvcFacade) *partnerHandler {
	return &partnerHandler{partnerService: ps}
}

// RegisterPartnerRoutes registers routes related to partner management.
func RegisterPartnerRoutes(rg *gin.RouterGroup, ps portssvc.PartnerSvcFacade) {
	h := newPartnerHandler(ps)

	partners := rg.Group("/partners")
	{
		partners.POST("", h.createPartner)
		partners.GET("/:partnerID", h.getPartner)
		partners.POST("/:partnerID/lender-activation", h.activateAsLender)
		partners.DELETE("/:partnerID/lender-activation", h.deactivateLender)
		partners.PUT("/:partnerID/service-rate", h.setServiceRate)
		partners.GET("/:partnerID/service-rate", h.getServiceRate)
	}
}

func (h *partnerHandler) createPartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPartner", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	partner, err := h.partnerService.CreatePartner(c.Request.Context(), req, middleware.GetActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToPartnerResponse(*partner))
}

func (h *partnerHandler) getPartner(c *gin.Context) {
	partner, err := h.partnerService.GetPartnerByID(c.Request.Context(), c.Param("partnerID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPartnerResponse(*partner))
}

func (h *partnerHandler) activateAsLender(c *gin.Context) {
	account, err := h.partnerService.ActivateAsLender(c.Request.Context(), c.Param("partnerID"), middleware.GetActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToBalanceResponse(*account))
}

func (h *partnerHandler) deactivateLender(c *gin.Context) {
	if err := h.partnerService.DeactivateLender(c.Request.Context(), c.Param("partnerID"), middleware.GetActorID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *partnerHandler) setServiceRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetServiceRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for setServiceRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rate, err := h.partnerService.SetServiceRate(c.Request.Context(), c.Param("partnerID"), req, middleware.GetActorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRateResponse(*rate))
}

func (h *partnerHandler) getServiceRate(c *gin.Context) {
	rate, err := h.partnerService.GetEffectiveRate(c.Request.Context(), c.Param("partnerID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRateResponse(*rate))
}
