package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pressly/goose/v3"
	"github.com/pshams/tradebook/config"
	"github.com/pshams/tradebook/internal/auth"
	"github.com/pshams/tradebook/internal/handler"
	"github.com/pshams/tradebook/internal/repository"
	"github.com/pshams/tradebook/internal/router"
	"github.com/pshams/tradebook/internal/service"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET must be set")
	}
	if cfg.DebugMode != "True" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	migrateFlag := flag.Bool("migrate", false, "Run database migrations and exit")
	flag.Parse()

	if *migrateFlag {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Fatalf("Failed to get sql.DB: %v", err)
		}
		if err := goose.SetDialect("sqlite3"); err != nil {
			logrus.Fatalf("Goose: failed to set dialect: %v", err)
		}
		logrus.Info("Running database migrations...")
		if err := goose.Up(sqlDB, "migrations"); err != nil {
			logrus.Fatalf("Goose migration failed: %v", err)
		}
	}

	tokens := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	tradeRepo := repository.NewGormTradeRepository(db)
	userRepo := repository.NewGormUserRepository(db)
	walletRepo := repository.NewGormWalletRepository(db)

	tradeService := service.NewTradesService(tradeRepo)
	analyticsService := service.NewAnalyticsService(tradeRepo)
	walletService := service.NewWalletService(walletRepo)
	userService := service.NewUserService(userRepo, walletService, tokens)

	routerConfig := &router.Config{
		TradeHandler:     handler.NewTradeHandler(tradeService),
		AnalyticsHandler: handler.NewAnalyticsHandler(analyticsService),
		UserHandler:      handler.NewUserHandler(userService),
		WalletHandler:    handler.NewWalletHandler(walletService),
		Tokens:           tokens,
		Limiter:          rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), int(cfg.RateLimitRPS)),
	}

	r := router.NewRouter(routerConfig)

	if err := r.Run(fmt.Sprintf(":%s", cfg.ServerPort)); err != nil {
		logrus.Fatalf("Server stopped: %v", err)
	}
}
