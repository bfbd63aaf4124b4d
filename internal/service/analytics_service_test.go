package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pshams/tradebook/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrade(userID string, createdAt time.Time, tradeType model.TradeType, asset model.Asset, before, exec, final, traded float64) *model.Trade {
	return &model.Trade{
		ID:             uuid.NewString(),
		UserID:         userID,
		WalletID:       "wallet-1",
		Chain:          model.ChainEthereum,
		TradeType:      tradeType,
		Asset:          asset,
		BeforePrice:    before,
		ExecutionPrice: exec,
		FinalPrice:     final,
		TradedAmount:   traded,
		ExecutionFee:   exec * traded * model.ExecutionFeeRate,
		TransactionFee: exec * model.TransactionFeeRate,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}
}

// Three trades for user-1 across two days, inserted out of order:
//
//	A 2024-01-10 MarketBuy  ETH exec=100 final=105 traded=10 -> pnl  46.5
//	B 2024-01-10 LimitSell  BTC before=110 final=105 traded=2 -> pnl -11.1
//	C 2024-01-12 MarketSell ETH before=100 final=102 traded=5 -> pnl  7.98
func seedLedger(t *testing.T) *fakeTradeRepo {
	t.Helper()
	repo := newFakeTradeRepo()

	day1 := time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(newTrade("user-1", day2, model.TradeTypeMarketSell, model.AssetETH, 100, 101, 102, 5)))
	require.NoError(t, repo.Create(newTrade("user-1", day1, model.TradeTypeMarketBuy, model.AssetETH, 90, 100, 105, 10)))
	require.NoError(t, repo.Create(newTrade("user-1", day1, model.TradeTypeLimitSell, model.AssetBTC, 110, 100, 105, 2)))

	// Outside the January range and a different user; both must never show up.
	require.NoError(t, repo.Create(newTrade("user-1", time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC), model.TradeTypeMarketBuy, model.AssetETH, 90, 100, 105, 10)))
	require.NoError(t, repo.Create(newTrade("user-2", day1, model.TradeTypeMarketBuy, model.AssetETH, 90, 100, 105, 10)))

	return repo
}

const (
	rangeStart = "2024-01-01"
	rangeEnd   = "2024-01-31 23:59:59"
)

func TestProfitLossGroupsByDayChronologically(t *testing.T) {
	t.Parallel()
	as := NewAnalyticsService(seedLedger(t))

	result, err := as.ProfitLoss("user-1", rangeStart, rangeEnd, "", "")
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, model.DailyProfitLoss{Date: "2024-01-10", Profit: 47, Loss: -11}, result[0])
	assert.Equal(t, model.DailyProfitLoss{Date: "2024-01-12", Profit: 8, Loss: 0}, result[1])
}

func TestProfitLossReconcilesWithPerTradePnL(t *testing.T) {
	t.Parallel()
	repo := seedLedger(t)
	as := NewAnalyticsService(repo)

	trades, err := repo.ListByUserBetween("user-1", rangeStart, rangeEnd)
	require.NoError(t, err)

	var total float64
	for i := range trades {
		total += trades[i].PnL()
	}

	result, err := as.ProfitLoss("user-1", rangeStart, rangeEnd, "", "")
	require.NoError(t, err)

	var aggregated float64
	for _, day := range result {
		aggregated += day.Profit + day.Loss
	}

	// Each day rounds profit and loss independently, so allow one unit of
	// rounding slack per day.
	assert.InDelta(t, total, aggregated, float64(len(result)))
}

func TestProfitLossDimensionFilters(t *testing.T) {
	t.Parallel()
	as := NewAnalyticsService(seedLedger(t))

	t.Run("by_asset", func(t *testing.T) {
		result, err := as.ProfitLoss("user-1", rangeStart, rangeEnd, model.AssetETH, "")
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, model.DailyProfitLoss{Date: "2024-01-10", Profit: 47, Loss: 0}, result[0])
		assert.Equal(t, model.DailyProfitLoss{Date: "2024-01-12", Profit: 8, Loss: 0}, result[1])
	})

	t.Run("by_trade_type", func(t *testing.T) {
		result, err := as.ProfitLoss("user-1", rangeStart, rangeEnd, "", model.TradeTypeLimitSell)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, model.DailyProfitLoss{Date: "2024-01-10", Profit: 0, Loss: -11}, result[0])
	})

	t.Run("asset_takes_precedence", func(t *testing.T) {
		result, err := as.ProfitLoss("user-1", rangeStart, rangeEnd, model.AssetBTC, model.TradeTypeMarketBuy)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, model.DailyProfitLoss{Date: "2024-01-10", Profit: 0, Loss: -11}, result[0])
	})
}

func TestCumulativeFeesScopedToRangeAndUser(t *testing.T) {
	t.Parallel()
	as := NewAnalyticsService(seedLedger(t))

	result, err := as.CumulativeFees("user-1", rangeStart, rangeEnd)
	require.NoError(t, err)

	// A: 3 + 0.5, B: 0.6 + 0.5, C: 1.515 + 0.505 -> 6.62 -> 7
	assert.Equal(t, "user-1", result.TraderID)
	assert.InDelta(t, 7, result.CumulativeFees, 1e-9)
}

func TestSlippageAggregation(t *testing.T) {
	t.Parallel()
	repo := newFakeTradeRepo()
	as := NewAnalyticsService(repo)

	day := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)
	// effective = (100*10 + 3.5)/10 = 100.35 -> slippage 1.35, cost 1.3636%
	require.NoError(t, repo.Create(newTrade("user-1", day, model.TradeTypeMarketBuy, model.AssetETH, 99, 100, 105, 10)))
	// effective = (100*5 + 2)/5 = 100.4 -> slippage 0.4, cost 0.4%
	require.NoError(t, repo.Create(newTrade("user-1", day, model.TradeTypeLimitBuy, model.AssetBTC, 100, 100, 101, 5)))
	// Zero traded amount: no defined slippage, excluded from the averages.
	require.NoError(t, repo.Create(newTrade("user-1", day, model.TradeTypeMarketBuy, model.AssetXRP, 99, 100, 105, 0)))

	result, err := as.Slippage("user-1", rangeStart, rangeEnd)
	require.NoError(t, err)

	assert.Equal(t, "user-1", result.TraderID)
	assert.InDelta(t, 2, result.TotalSlippage, 1e-9)          // round(1.75)
	assert.InDelta(t, 1, result.AverageSlippage, 1e-9)        // round(0.875)
	assert.InDelta(t, 2, result.TotalSlippageCostPercent, 1e-9) // round(1.7636)
	assert.InDelta(t, 1, result.AvgSlippageCostPercent, 1e-9)   // round(0.8818)
}

func TestEmptyRangeYieldsDefinedZeroes(t *testing.T) {
	t.Parallel()
	as := NewAnalyticsService(newFakeTradeRepo())

	profitLoss, err := as.ProfitLoss("user-1", rangeStart, rangeEnd, "", "")
	require.NoError(t, err)
	assert.Empty(t, profitLoss)

	fees, err := as.CumulativeFees("user-1", rangeStart, rangeEnd)
	require.NoError(t, err)
	assert.Zero(t, fees.CumulativeFees)

	slippage, err := as.Slippage("user-1", rangeStart, rangeEnd)
	require.NoError(t, err)
	assert.Equal(t, &model.SlippageByTrader{TraderID: "user-1"}, slippage)
}
