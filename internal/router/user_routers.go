package router

import (
	"github.com/gin-gonic/gin"
	"github.com/pshams/tradebook/internal/handler"
)

func registerUserRoutes(router *gin.RouterGroup, userHandler *handler.UserHandler, guard gin.HandlerFunc) {
	router.POST("/users", userHandler.Register)
	router.POST("/login", userHandler.Login)

	users := router.Group("/users", guard)
	{
		users.GET("", userHandler.List)
		users.GET("/:user_id", userHandler.Get)
		users.PUT("/:user_id", userHandler.Update)
		users.DELETE("/:user_id", userHandler.Delete)
	}
}

func registerWalletRoutes(router *gin.RouterGroup, walletHandler *handler.WalletHandler, guard gin.HandlerFunc) {
	wallets := router.Group("/wallets", guard)
	{
		wallets.GET("", walletHandler.List)
		wallets.GET("/:wallet_id", walletHandler.Get)
		wallets.PUT("/:wallet_id/balance", walletHandler.SetBalance)
	}
}
