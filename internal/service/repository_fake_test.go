package service

import (
	"github.com/pshams/tradebook/internal/model"
)

// fakeTradeRepo is an in-memory TradeRepository double. Date filtering
// mirrors the storage contract: lexicographic comparison of the formatted
// timestamp against the supplied bounds, inclusive.
type fakeTradeRepo struct {
	trades map[string]model.Trade
	order  []string
}

func newFakeTradeRepo() *fakeTradeRepo {
	return &fakeTradeRepo{trades: make(map[string]model.Trade)}
}

func (f *fakeTradeRepo) Create(trade *model.Trade) error {
	f.trades[trade.ID] = *trade
	f.order = append(f.order, trade.ID)
	return nil
}

func (f *fakeTradeRepo) FindByID(id string) (*model.Trade, error) {
	trade, ok := f.trades[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	return &trade, nil
}

func (f *fakeTradeRepo) List() ([]model.Trade, error) {
	out := make([]model.Trade, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		if trade, ok := f.trades[f.order[i]]; ok {
			out = append(out, trade)
		}
	}
	return out, nil
}

func (f *fakeTradeRepo) Update(trade *model.Trade) error {
	f.trades[trade.ID] = *trade
	return nil
}

func (f *fakeTradeRepo) Delete(id string) error {
	delete(f.trades, id)
	return nil
}

func (f *fakeTradeRepo) inRange(trade *model.Trade, userID, startDate, endDate string) bool {
	if trade.UserID != userID {
		return false
	}
	ts := trade.CreatedAt.Format("2006-01-02 15:04:05")
	return ts >= startDate && ts <= endDate
}

func (f *fakeTradeRepo) ListByUserBetween(userID, startDate, endDate string) ([]model.Trade, error) {
	var out []model.Trade
	for _, id := range f.order {
		trade, ok := f.trades[id]
		if ok && f.inRange(&trade, userID, startDate, endDate) {
			out = append(out, trade)
		}
	}
	return out, nil
}

func (f *fakeTradeRepo) ListByUserBetweenAsset(userID, startDate, endDate string, asset model.Asset) ([]model.Trade, error) {
	var out []model.Trade
	for _, id := range f.order {
		trade, ok := f.trades[id]
		if ok && f.inRange(&trade, userID, startDate, endDate) && trade.Asset == asset {
			out = append(out, trade)
		}
	}
	return out, nil
}

func (f *fakeTradeRepo) ListByUserBetweenTradeType(userID, startDate, endDate string, tradeType model.TradeType) ([]model.Trade, error) {
	var out []model.Trade
	for _, id := range f.order {
		trade, ok := f.trades[id]
		if ok && f.inRange(&trade, userID, startDate, endDate) && trade.TradeType == tradeType {
			out = append(out, trade)
		}
	}
	return out, nil
}
