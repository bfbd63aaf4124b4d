package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/pshams/tradebook/internal/model"
	"github.com/pshams/tradebook/internal/repository"
	"github.com/pshams/tradebook/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// WalletService manages the wallet lifecycle: creation with a zero balance
// and a fresh public hash, and explicit balance updates. Trade creation never
// moves a balance; the set operation is the only mutation.
type WalletService struct {
	repo repository.WalletRepository
}

func NewWalletService(repo repository.WalletRepository) *WalletService {
	return &WalletService{
		repo: repo,
	}
}

// Create allocates a wallet with a zero balance and a unique 64-hex public
// hash, then reloads it by hash so stored values are authoritative.
func (ws *WalletService) Create() (*model.Wallet, error) {
	hash, err := utils.NewWalletHash()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	wallet := &model.Wallet{
		ID:         uuid.NewString(),
		PublicHash: hash,
		Balance:    decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := ws.repo.Create(wallet); err != nil {
		logrus.WithError(err).Error("failed to insert wallet")
		return nil, err
	}
	return ws.repo.FindByHash(hash)
}

// SetBalance overwrites the wallet balance and returns the refreshed record.
func (ws *WalletService) SetBalance(id string, balance decimal.Decimal) (*model.Wallet, error) {
	if _, err := ws.repo.FindByID(id); err != nil {
		return nil, err
	}
	if err := ws.repo.UpdateBalance(id, balance); err != nil {
		logrus.WithError(err).WithField("wallet_id", id).Error("failed to update wallet balance")
		return nil, err
	}
	return ws.repo.FindByID(id)
}

func (ws *WalletService) Get(id string) (*model.Wallet, error) {
	return ws.repo.FindByID(id)
}

func (ws *WalletService) GetByHash(hash string) (*model.Wallet, error) {
	return ws.repo.FindByHash(hash)
}

func (ws *WalletService) List() ([]model.Wallet, error) {
	return ws.repo.List()
}
