package repository

import (
	"errors"

	"github.com/pshams/tradebook/internal/model"
	"gorm.io/gorm"
)

// TradeRepository is the storage boundary for trades. Date-range queries
// compare the stored timestamp text against the supplied bounds
// lexicographically, inclusive on both ends; callers supply comparably
// formatted dates.
type TradeRepository interface {
	Create(trade *model.Trade) error
	FindByID(id string) (*model.Trade, error)
	List() ([]model.Trade, error)
	Update(trade *model.Trade) error
	Delete(id string) error
	ListByUserBetween(userID, startDate, endDate string) ([]model.Trade, error)
	ListByUserBetweenAsset(userID, startDate, endDate string, asset model.Asset) ([]model.Trade, error)
	ListByUserBetweenTradeType(userID, startDate, endDate string, tradeType model.TradeType) ([]model.Trade, error)
}

type gormTradeRepository struct {
	db *gorm.DB
}

func NewGormTradeRepository(db *gorm.DB) TradeRepository {
	return &gormTradeRepository{db: db}
}

func (gtr *gormTradeRepository) Create(trade *model.Trade) error {
	return gtr.db.Create(trade).Error
}

func (gtr *gormTradeRepository) FindByID(id string) (*model.Trade, error) {
	var trade model.Trade
	err := gtr.db.First(&trade, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &trade, nil
}

func (gtr *gormTradeRepository) List() ([]model.Trade, error) {
	var trades []model.Trade
	err := gtr.db.Order("id desc").Find(&trades).Error
	return trades, err
}

func (gtr *gormTradeRepository) Update(trade *model.Trade) error {
	return gtr.db.Save(trade).Error
}

func (gtr *gormTradeRepository) Delete(id string) error {
	return gtr.db.Delete(&model.Trade{}, "id = ?", id).Error
}

func (gtr *gormTradeRepository) betweenQuery(userID, startDate, endDate string) *gorm.DB {
	return gtr.db.
		Where("user_id = ?", userID).
		Where("created_at >= ?", startDate).
		Where("created_at <= ?", endDate)
}

func (gtr *gormTradeRepository) ListByUserBetween(userID, startDate, endDate string) ([]model.Trade, error) {
	var trades []model.Trade
	err := gtr.betweenQuery(userID, startDate, endDate).Find(&trades).Error
	return trades, err
}

func (gtr *gormTradeRepository) ListByUserBetweenAsset(userID, startDate, endDate string, asset model.Asset) ([]model.Trade, error) {
	var trades []model.Trade
	err := gtr.betweenQuery(userID, startDate, endDate).
		Where("asset = ?", asset).
		Find(&trades).Error
	return trades, err
}

func (gtr *gormTradeRepository) ListByUserBetweenTradeType(userID, startDate, endDate string, tradeType model.TradeType) ([]model.Trade, error) {
	var trades []model.Trade
	err := gtr.betweenQuery(userID, startDate, endDate).
		Where("trade_type = ?", tradeType).
		Find(&trades).Error
	return trades, err
}
