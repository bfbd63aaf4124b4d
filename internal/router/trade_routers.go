package router

import (
	"github.com/gin-gonic/gin"
	"github.com/pshams/tradebook/internal/handler"
)

func registerTradeRoutes(router *gin.RouterGroup, tradeHandler *handler.TradeHandler, guard gin.HandlerFunc) {
	trades := router.Group("/trades", guard)
	{
		trades.POST("", tradeHandler.Create)
		trades.GET("", tradeHandler.List)
		trades.GET("/:trade_id", tradeHandler.Get)
		trades.PUT("/:trade_id", tradeHandler.Update)
		trades.DELETE("/:trade_id", tradeHandler.Delete)
	}
}

func registerAnalyticsRoutes(router *gin.RouterGroup, analyticsHandler *handler.AnalyticsHandler, guard gin.HandlerFunc) {
	router.GET("/profit-loss", guard, analyticsHandler.ProfitLoss)
	router.GET("/cumulative-fees", guard, analyticsHandler.CumulativeFees)
	router.GET("/slippage", guard, analyticsHandler.Slippage)
}
