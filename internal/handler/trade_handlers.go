package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pshams/tradebook/internal/service"
)

type TradeHandler struct {
	tradeService *service.TradesService
}

func NewTradeHandler(tradeService *service.TradesService) *TradeHandler {
	return &TradeHandler{
		tradeService: tradeService,
	}
}

func (h *TradeHandler) Create(c *gin.Context) {
	var form service.TradeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trade, err := h.tradeService.Create(h.tradeService.NormalizeTrade(&form))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, trade)
}

func (h *TradeHandler) List(c *gin.Context) {
	trades, err := h.tradeService.List()
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, trades)
}

func (h *TradeHandler) Get(c *gin.Context) {
	trade, err := h.tradeService.Get(c.Param("trade_id"))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, trade)
}

// Update re-normalizes the submitted form before persisting, so the fees the
// ledger stores are the ones derived from the submitted prices. The ledger's
// Update itself trusts whatever fees it is handed.
func (h *TradeHandler) Update(c *gin.Context) {
	var form service.TradeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trade, err := h.tradeService.Update(c.Param("trade_id"), h.tradeService.NormalizeTrade(&form))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, trade)
}

func (h *TradeHandler) Delete(c *gin.Context) {
	deleted, err := h.tradeService.Delete(c.Param("trade_id"))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete trade"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
