package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet holds a balance. PublicHash is a 64-character hex identifier derived
// from a throwaway public key; it identifies the wallet pseudonymously and is
// never used for signing. Balance starts at zero and only moves through the
// explicit balance-set operation.
type Wallet struct {
	ID         string          `gorm:"column:id;primaryKey" json:"id"`
	PublicHash string          `gorm:"column:public_hash;uniqueIndex" json:"public_hash"`
	Balance    decimal.Decimal `gorm:"column:balance;type:decimal(20,8)" json:"balance"`
	CreatedAt  time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

func (Wallet) TableName() string {
	return "wallets"
}
