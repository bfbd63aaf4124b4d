package router

import (
	"github.com/gin-gonic/gin"
	"github.com/pshams/tradebook/internal/auth"
	"github.com/pshams/tradebook/internal/handler"
	"github.com/pshams/tradebook/internal/middleware"
	"golang.org/x/time/rate"
)

type Config struct {
	TradeHandler     *handler.TradeHandler
	AnalyticsHandler *handler.AnalyticsHandler
	UserHandler      *handler.UserHandler
	WalletHandler    *handler.WalletHandler
	Tokens           *auth.Manager
	Limiter          *rate.Limiter
}

func NewRouter(cfg *Config) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.RateLimit(cfg.Limiter))

	guard := middleware.JWTGuard(cfg.Tokens)

	api := router.Group("/v1/")
	registerUserRoutes(api, cfg.UserHandler, guard)
	registerTradeRoutes(api, cfg.TradeHandler, guard)
	registerAnalyticsRoutes(api, cfg.AnalyticsHandler, guard)
	registerWalletRoutes(api, cfg.WalletHandler, guard)

	return router
}
