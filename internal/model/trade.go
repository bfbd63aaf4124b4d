package model

import "time"

const (
	// ExecutionFeeRate is the taker-style fee applied to the executed
	// notional (execution price times traded amount).
	ExecutionFeeRate = 0.003

	// TransactionFeeRate is applied to the execution price alone.
	TransactionFeeRate = 0.005
)

// Trade is a single executed trade recorded against a user's wallet.
// Fees are derived at creation time and never client-supplied.
type Trade struct {
	ID             string    `gorm:"column:id;primaryKey" json:"id"`
	UserID         string    `gorm:"column:user_id;index" json:"user_id"`
	WalletID       string    `gorm:"column:wallet_id" json:"wallet_id"`
	Amount         float64   `gorm:"column:amount" json:"amount"`
	Chain          Chain     `gorm:"column:chain" json:"chain"`
	TradeType      TradeType `gorm:"column:trade_type" json:"trade_type"`
	Asset          Asset     `gorm:"column:asset" json:"asset"`
	BeforePrice    float64   `gorm:"column:before_price" json:"before_price"`
	ExecutionPrice float64   `gorm:"column:execution_price" json:"execution_price"`
	FinalPrice     float64   `gorm:"column:final_price" json:"final_price"`
	TradedAmount   float64   `gorm:"column:traded_amount" json:"traded_amount"`
	ExecutionFee   float64   `gorm:"column:execution_fee" json:"execution_fee"`
	TransactionFee float64   `gorm:"column:transaction_fee" json:"transaction_fee"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Trade) TableName() string {
	return "trades"
}

// Day returns the calendar date of the trade, the grouping key for daily
// profit/loss.
func (t *Trade) Day() string {
	return t.CreatedAt.Format("2006-01-02")
}

// Fees returns the total fee load of the trade.
func (t *Trade) Fees() float64 {
	return t.ExecutionFee + t.TransactionFee
}

// PnL is the net economic result of the trade. Buys benchmark against their
// own fill price, sells against the pre-trade reference price; fees are
// always subtracted.
func (t *Trade) PnL() float64 {
	var raw float64
	switch {
	case t.TradeType.IsBuy():
		raw = t.FinalPrice - t.ExecutionPrice
	case t.TradeType.IsSell():
		raw = t.FinalPrice - t.BeforePrice
	}
	return raw*t.TradedAmount - t.ExecutionFee - t.TransactionFee
}

// SlippageStats returns the absolute slippage of the trade and its cost as a
// percentage of the reference price. ok is false when the trade carries no
// traded amount or no reference price, in which case both values are
// undefined and the trade must be left out of slippage aggregates.
func (t *Trade) SlippageStats() (slippage, costPercent float64, ok bool) {
	if t.TradedAmount == 0 || t.BeforePrice == 0 {
		return 0, 0, false
	}
	effectivePrice := (t.ExecutionPrice*t.TradedAmount + t.Fees()) / t.TradedAmount
	slippage = effectivePrice - t.BeforePrice
	costPercent = (slippage / t.BeforePrice) * 100
	return slippage, costPercent, true
}

// DailyProfitLoss is one day's aggregated profit and loss. Profit collects
// the positive per-trade P&L of the day, loss the non-positive.
type DailyProfitLoss struct {
	Date   string  `json:"date"`
	Profit float64 `json:"profit"`
	Loss   float64 `json:"loss"`
}

// CumulativeFeesResponse wraps the fee total of a trader over a date range.
type CumulativeFeesResponse struct {
	TraderID       string  `json:"trader_id"`
	CumulativeFees float64 `json:"cumulative_fees"`
}

// SlippageByTrader aggregates slippage statistics for one trader.
type SlippageByTrader struct {
	TraderID                 string  `json:"trader_id"`
	TotalSlippage            float64 `json:"total_slippage"`
	AverageSlippage          float64 `json:"average_slippage"`
	TotalSlippageCostPercent float64 `json:"total_slippage_cost_percent"`
	AvgSlippageCostPercent   float64 `json:"average_slippage_cost_percent"`
}
