package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pshams/tradebook/internal/service"
	"github.com/shopspring/decimal"
)

type BalanceForm struct {
	Balance decimal.Decimal `json:"balance"`
}

type WalletHandler struct {
	walletService *service.WalletService
}

func NewWalletHandler(walletService *service.WalletService) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

func (h *WalletHandler) List(c *gin.Context) {
	wallets, err := h.walletService.List()
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, wallets)
}

func (h *WalletHandler) Get(c *gin.Context) {
	wallet, err := h.walletService.Get(c.Param("wallet_id"))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, wallet)
}

func (h *WalletHandler) SetBalance(c *gin.Context) {
	var form BalanceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wallet, err := h.walletService.SetBalance(c.Param("wallet_id"), form.Balance)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, wallet)
}
