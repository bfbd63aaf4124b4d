package service

import (
	"math"
	"sort"

	"github.com/pshams/tradebook/internal/model"
	"github.com/pshams/tradebook/internal/repository"
)

// AnalyticsService computes derived statistics over the trade ledger. Every
// operation is a pure function of its inputs plus the ledger contents at call
// time: filter the trades for a user and date range, then reduce.
type AnalyticsService struct {
	repo repository.TradeRepository
}

func NewAnalyticsService(repo repository.TradeRepository) *AnalyticsService {
	return &AnalyticsService{
		repo: repo,
	}
}

// selectTrades is the shared filter stage. An asset narrows the selection
// when present; a trade type is only consulted when no asset was given.
func (as *AnalyticsService) selectTrades(userID, startDate, endDate string, asset model.Asset, tradeType model.TradeType) ([]model.Trade, error) {
	switch {
	case asset != "":
		return as.repo.ListByUserBetweenAsset(userID, startDate, endDate, asset)
	case tradeType != "":
		return as.repo.ListByUserBetweenTradeType(userID, startDate, endDate, tradeType)
	default:
		return as.repo.ListByUserBetween(userID, startDate, endDate)
	}
}

// ProfitLoss groups the selected trades by calendar day and sums each day's
// positive per-trade P&L into profit and non-positive into loss. Days come
// back in chronological order, one record per day, both figures rounded to
// the nearest integer.
func (as *AnalyticsService) ProfitLoss(userID, startDate, endDate string, asset model.Asset, tradeType model.TradeType) ([]model.DailyProfitLoss, error) {
	trades, err := as.selectTrades(userID, startDate, endDate, asset, tradeType)
	if err != nil {
		return nil, err
	}

	type accumulator struct {
		profit float64
		loss   float64
	}
	byDay := make(map[string]*accumulator)
	days := make([]string, 0)

	for i := range trades {
		day := trades[i].Day()
		acc, ok := byDay[day]
		if !ok {
			acc = &accumulator{}
			byDay[day] = acc
			days = append(days, day)
		}
		pnl := trades[i].PnL()
		if pnl > 0 {
			acc.profit += pnl
		} else {
			acc.loss += pnl
		}
	}

	sort.Strings(days)

	result := make([]model.DailyProfitLoss, 0, len(days))
	for _, day := range days {
		acc := byDay[day]
		result = append(result, model.DailyProfitLoss{
			Date:   day,
			Profit: math.Round(acc.profit),
			Loss:   math.Round(acc.loss),
		})
	}
	return result, nil
}

// CumulativeFees sums execution and transaction fees over every trade of the
// user in the date range.
func (as *AnalyticsService) CumulativeFees(userID, startDate, endDate string) (*model.CumulativeFeesResponse, error) {
	trades, err := as.repo.ListByUserBetween(userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	var fees float64
	for i := range trades {
		fees += trades[i].Fees()
	}

	return &model.CumulativeFeesResponse{
		TraderID:       userID,
		CumulativeFees: math.Round(fees),
	}, nil
}

// Slippage aggregates per-trade slippage over the date range. Trades with a
// zero traded amount or zero reference price carry no defined slippage and
// are excluded from both the sums and the averaging denominator; with no
// measurable trades at all the response is zeroed rather than undefined.
func (as *AnalyticsService) Slippage(userID, startDate, endDate string) (*model.SlippageByTrader, error) {
	trades, err := as.repo.ListByUserBetween(userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	var (
		totalSlippage    float64
		totalCostPercent float64
		measured         int
	)
	for i := range trades {
		slippage, costPercent, ok := trades[i].SlippageStats()
		if !ok {
			continue
		}
		totalSlippage += slippage
		totalCostPercent += costPercent
		measured++
	}

	result := &model.SlippageByTrader{TraderID: userID}
	if measured == 0 {
		return result, nil
	}

	result.TotalSlippage = math.Round(totalSlippage)
	result.AverageSlippage = math.Round(totalSlippage / float64(measured))
	result.TotalSlippageCostPercent = math.Round(totalCostPercent)
	result.AvgSlippageCostPercent = math.Round(totalCostPercent / float64(measured))
	return result, nil
}
