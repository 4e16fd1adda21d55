package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

// PlatformFeeRate is the share of every sale retained by the platform.
var PlatformFeeRate = decimal.RequireFromString("0.05")

// TransactionType classifies a wallet transaction.
type TransactionType string

// Transaction types
const (
	TransactionTypeMarketplacePurchase TransactionType = "MARKETPLACE_PURCHASE"
)

// TransactionStatus is the only mutable field of a transaction.
type TransactionStatus string

// Transaction statuses
const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// Transaction represents an append-only wallet transaction record.
type Transaction struct {
	ID        uuid.UUID         `json:"id" db:"id"`               // Unique transaction identifier
	WalletID  uuid.UUID         `json:"walletId" db:"wallet_id"`  // Wallet that paid
	Type      TransactionType   `json:"type" db:"type"`           // Kind of transaction
	Status    TransactionStatus `json:"status" db:"status"`       // Processing status
	Amount    decimal.Decimal   `json:"amount" db:"amount"`       // Amount debited from the wallet
	Fee       decimal.Decimal   `json:"fee" db:"fee"`             // Platform fee included in Amount
	Data      types.JSONText    `json:"data" db:"data"`           // Opaque payload
	Timestamp time.Time         `json:"timestamp" db:"timestamp"` // Creation time
}

// PurchaseData is the payload stored on a marketplace purchase transaction.
type PurchaseData struct {
	ListingID      uuid.UUID       `json:"listingId"`
	ListingType    ListingType     `json:"listingType"`
	SellerID       uuid.UUID       `json:"sellerId"`
	SellerWalletID *uuid.UUID      `json:"sellerWalletId,omitempty"`
	SellerCredit   decimal.Decimal `json:"sellerCredit"`
	SellerCredited bool            `json:"sellerCredited"`
	Quantity       int             `json:"quantity"`
}

// SplitPrice returns the platform fee and the seller's share of price.
func SplitPrice(price decimal.Decimal) (fee, sellerCredit decimal.Decimal) {
	fee = price.Mul(PlatformFeeRate)
	return fee, price.Sub(fee)
}
