package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pshams/tradebook/internal/model"
	"github.com/pshams/tradebook/internal/repository"
	"github.com/pshams/tradebook/utils"
	"github.com/sirupsen/logrus"
)

// TradeForm is an inbound trade submission. Optional numeric fields default
// to zero before fee derivation; fees themselves are never accepted from the
// client.
type TradeForm struct {
	UserID         string   `json:"user_id" binding:"required"`
	WalletID       string   `json:"wallet_id" binding:"required"`
	Amount         float64  `json:"amount"`
	Chain          string   `json:"chain" binding:"required"`
	TradeType      string   `json:"trade_type" binding:"required"`
	Asset          string   `json:"asset" binding:"required"`
	BeforePrice    *float64 `json:"before_price"`
	ExecutionPrice *float64 `json:"execution_price"`
	FinalPrice     *float64 `json:"final_price"`
	TradedAmount   *float64 `json:"traded_amount"`
	Timestamp      *int64   `json:"timestamp"`
}

// TradesService is the trade ledger: it normalizes submissions, derives fees,
// and performs validated create/update/delete against storage.
type TradesService struct {
	repo repository.TradeRepository
}

func NewTradesService(repo repository.TradeRepository) *TradesService {
	return &TradesService{
		repo: repo,
	}
}

// NormalizeTrade turns a submission into a fully populated Trade. Missing
// optional numerics default to 0, fees are derived from the execution price
// and traded amount, and CreatedAt comes from the supplied epoch timestamp
// when present, otherwise now. The id is left empty pending assignment by
// Create.
func (ts *TradesService) NormalizeTrade(form *TradeForm) *model.Trade {
	executionPrice := deref(form.ExecutionPrice)
	tradedAmount := deref(form.TradedAmount)

	createdAt := time.Now()
	if form.Timestamp != nil {
		createdAt = utils.FromUnixSeconds(*form.Timestamp)
	}

	return &model.Trade{
		UserID:         form.UserID,
		WalletID:       form.WalletID,
		Amount:         form.Amount,
		Chain:          model.Chain(form.Chain),
		TradeType:      model.TradeType(form.TradeType),
		Asset:          model.Asset(form.Asset),
		BeforePrice:    deref(form.BeforePrice),
		ExecutionPrice: executionPrice,
		FinalPrice:     deref(form.FinalPrice),
		TradedAmount:   tradedAmount,
		ExecutionFee:   executionPrice * tradedAmount * model.ExecutionFeeRate,
		TransactionFee: executionPrice * model.TransactionFeeRate,
		CreatedAt:      createdAt,
		UpdatedAt:      time.Now(),
	}
}

// Create assigns a fresh id, gates on the enumerated fields, persists, and
// returns the freshly reloaded record so stored defaults are authoritative.
func (ts *TradesService) Create(trade *model.Trade) (*model.Trade, error) {
	if err := validateTradeEnums(trade); err != nil {
		return nil, err
	}

	trade.ID = uuid.NewString()
	if err := ts.repo.Create(trade); err != nil {
		logrus.WithError(err).Error("failed to insert trade")
		return nil, err
	}
	return ts.repo.FindByID(trade.ID)
}

// Update overwrites the mutable fields of an existing trade, including the
// caller-supplied fees: fees are regenerated on create through NormalizeTrade
// but trusted here, so callers that want fresh fees must normalize first.
func (ts *TradesService) Update(id string, trade *model.Trade) (*model.Trade, error) {
	if err := validateTradeEnums(trade); err != nil {
		return nil, err
	}

	existing, err := ts.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	existing.Amount = trade.Amount
	existing.Chain = trade.Chain
	existing.TradeType = trade.TradeType
	existing.Asset = trade.Asset
	existing.BeforePrice = trade.BeforePrice
	existing.ExecutionPrice = trade.ExecutionPrice
	existing.FinalPrice = trade.FinalPrice
	existing.TradedAmount = trade.TradedAmount
	existing.ExecutionFee = trade.ExecutionFee
	existing.TransactionFee = trade.TransactionFee
	existing.UpdatedAt = time.Now()

	if err := ts.repo.Update(existing); err != nil {
		logrus.WithError(err).WithField("trade_id", id).Error("failed to update trade")
		return nil, err
	}
	return ts.repo.FindByID(id)
}

// Delete removes a trade and reports whether the record is now absent, so a
// double delete still returns true.
func (ts *TradesService) Delete(id string) (bool, error) {
	if err := ts.repo.Delete(id); err != nil {
		logrus.WithError(err).WithField("trade_id", id).Error("failed to delete trade")
		return false, err
	}

	_, err := ts.repo.FindByID(id)
	if errors.Is(err, model.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

func (ts *TradesService) Get(id string) (*model.Trade, error) {
	return ts.repo.FindByID(id)
}

func (ts *TradesService) List() ([]model.Trade, error) {
	return ts.repo.List()
}

func validateTradeEnums(trade *model.Trade) error {
	if trade.Chain == "" || trade.TradeType == "" || trade.Asset == "" {
		return model.NewValidationError("chain, trade_type and asset are required")
	}
	if !trade.Chain.Valid() {
		return model.NewValidationError(fmt.Sprintf("invalid chain %q", trade.Chain))
	}
	if !trade.TradeType.Valid() {
		return model.NewValidationError(fmt.Sprintf("invalid trade_type %q", trade.TradeType))
	}
	if !trade.Asset.Valid() {
		return model.NewValidationError(fmt.Sprintf("invalid asset %q", trade.Asset))
	}
	return nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
