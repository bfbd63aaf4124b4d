package model

// Chain is the settlement network of a trade. The set is closed; anything
// outside it is rejected before a trade reaches storage.
type Chain string

const (
	ChainEthereum Chain = "Ethereum"
	ChainArbitrum Chain = "Arbitrum"
	ChainOptimism Chain = "Optimism"
	ChainPolygon  Chain = "Polygon"
)

func (c Chain) Valid() bool {
	switch c {
	case ChainEthereum, ChainArbitrum, ChainOptimism, ChainPolygon:
		return true
	}
	return false
}

// TradeType is the order style of a trade.
type TradeType string

const (
	TradeTypeLimitBuy   TradeType = "LimitBuy"
	TradeTypeLimitSell  TradeType = "LimitSell"
	TradeTypeMarketBuy  TradeType = "MarketBuy"
	TradeTypeMarketSell TradeType = "MarketSell"
)

func (t TradeType) Valid() bool {
	switch t {
	case TradeTypeLimitBuy, TradeTypeLimitSell, TradeTypeMarketBuy, TradeTypeMarketSell:
		return true
	}
	return false
}

// IsBuy reports whether the trade type opens by buying. Buy trades benchmark
// P&L against their own fill price, sell trades against the pre-trade
// reference price.
func (t TradeType) IsBuy() bool {
	return t == TradeTypeLimitBuy || t == TradeTypeMarketBuy
}

func (t TradeType) IsSell() bool {
	return t == TradeTypeLimitSell || t == TradeTypeMarketSell
}

// Asset is the instrument being traded.
type Asset string

const (
	AssetBTC  Asset = "BTC"
	AssetETH  Asset = "ETH"
	AssetXRP  Asset = "XRP"
	AssetXLM  Asset = "XLM"
	AssetDOGE Asset = "DOGE"
)

func (a Asset) Valid() bool {
	switch a {
	case AssetBTC, AssetETH, AssetXRP, AssetXLM, AssetDOGE:
		return true
	}
	return false
}
