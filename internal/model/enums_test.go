package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChainValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		chain Chain
		valid bool
	}{
		{ChainEthereum, true},
		{ChainArbitrum, true},
		{ChainOptimism, true},
		{ChainPolygon, true},
		{Chain(""), false},
		{Chain("ethereum"), false},
		{Chain("Solana"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.chain.Valid(), "chain %q", tt.chain)
	}
}

func TestTradeTypeValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tradeType TradeType
		valid     bool
	}{
		{TradeTypeLimitBuy, true},
		{TradeTypeLimitSell, true},
		{TradeTypeMarketBuy, true},
		{TradeTypeMarketSell, true},
		{TradeType(""), false},
		{TradeType("limitbuy"), false},
		{TradeType("StopLoss"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.tradeType.Valid(), "trade type %q", tt.tradeType)
	}
}

func TestTradeTypeSides(t *testing.T) {
	t.Parallel()

	assert.True(t, TradeTypeLimitBuy.IsBuy())
	assert.True(t, TradeTypeMarketBuy.IsBuy())
	assert.False(t, TradeTypeLimitSell.IsBuy())
	assert.False(t, TradeTypeMarketSell.IsBuy())

	assert.True(t, TradeTypeLimitSell.IsSell())
	assert.True(t, TradeTypeMarketSell.IsSell())
	assert.False(t, TradeTypeLimitBuy.IsSell())
	assert.False(t, TradeType("").IsSell())
}

func TestAssetValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		asset Asset
		valid bool
	}{
		{AssetBTC, true},
		{AssetETH, true},
		{AssetXRP, true},
		{AssetXLM, true},
		{AssetDOGE, true},
		{Asset(""), false},
		{Asset("btc"), false},
		{Asset("SHIB"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.asset.Valid(), "asset %q", tt.asset)
	}
}
