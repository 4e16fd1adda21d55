package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletDB represents a wallet row in the database
type WalletDB struct {
	WalletID     uuid.UUID       `json:"id" db:"id"`                         // Unique wallet identifier
	UserID       uuid.UUID       `json:"userId" db:"user_id"`                // Identifier of the wallet's owner
	BlockchainID string          `json:"blockchainId" db:"blockchain_id"`    // Chain the wallet lives on (e.g. ethereum)
	Address      string          `json:"address" db:"address"`               // On-chain address
	Balance      decimal.Decimal `json:"balance" db:"balance"`               // Current balance, never negative
	IsDefault    bool            `json:"isDefault" db:"is_default"`          // Default wallet for (user, blockchain)
	LastSynced   *time.Time      `json:"lastSynced,omitempty" db:"last_synced"` // Last chain sync
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`          // Timestamp when the wallet was created
	UpdatedAt    time.Time       `json:"updatedAt" db:"updated_at"`          // Timestamp of the last wallet update
}
