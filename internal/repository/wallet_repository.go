package repository

import (
	"errors"
	"time"

	"github.com/pshams/tradebook/internal/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type WalletRepository interface {
	Create(wallet *model.Wallet) error
	FindByID(id string) (*model.Wallet, error)
	FindByHash(hash string) (*model.Wallet, error)
	List() ([]model.Wallet, error)
	UpdateBalance(id string, balance decimal.Decimal) error
}

type gormWalletRepository struct {
	db *gorm.DB
}

func NewGormWalletRepository(db *gorm.DB) WalletRepository {
	return &gormWalletRepository{db: db}
}

func (gwr *gormWalletRepository) Create(wallet *model.Wallet) error {
	return gwr.db.Create(wallet).Error
}

func (gwr *gormWalletRepository) FindByID(id string) (*model.Wallet, error) {
	var wallet model.Wallet
	err := gwr.db.First(&wallet, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &wallet, nil
}

func (gwr *gormWalletRepository) FindByHash(hash string) (*model.Wallet, error) {
	var wallet model.Wallet
	err := gwr.db.First(&wallet, "public_hash = ?", hash).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &wallet, nil
}

func (gwr *gormWalletRepository) List() ([]model.Wallet, error) {
	var wallets []model.Wallet
	err := gwr.db.Order("id desc").Find(&wallets).Error
	return wallets, err
}

func (gwr *gormWalletRepository) UpdateBalance(id string, balance decimal.Decimal) error {
	return gwr.db.Model(&model.Wallet{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"balance":    balance,
			"updated_at": time.Now(),
		}).Error
}
