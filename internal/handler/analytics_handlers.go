package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pshams/tradebook/internal/model"
	"github.com/pshams/tradebook/internal/service"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// analyticsQuery pulls the required range parameters out of the request,
// rejecting before anything reaches the engine when one is missing.
func analyticsQuery(c *gin.Context) (startDate, endDate, traderID string, ok bool) {
	startDate = c.Query("start_date")
	endDate = c.Query("end_date")
	traderID = c.Query("trader_id")
	if startDate == "" || endDate == "" || traderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date, end_date and trader_id are required"})
		return "", "", "", false
	}
	return startDate, endDate, traderID, true
}

func (h *AnalyticsHandler) ProfitLoss(c *gin.Context) {
	startDate, endDate, traderID, ok := analyticsQuery(c)
	if !ok {
		return
	}

	result, err := h.analyticsService.ProfitLoss(
		traderID, startDate, endDate,
		model.Asset(c.Query("asset")),
		model.TradeType(c.Query("trade_type")),
	)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AnalyticsHandler) CumulativeFees(c *gin.Context) {
	startDate, endDate, traderID, ok := analyticsQuery(c)
	if !ok {
		return
	}

	result, err := h.analyticsService.CumulativeFees(traderID, startDate, endDate)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AnalyticsHandler) Slippage(c *gin.Context) {
	startDate, endDate, traderID, ok := analyticsQuery(c)
	if !ok {
		return
	}

	result, err := h.analyticsService.Slippage(traderID, startDate, endDate)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
