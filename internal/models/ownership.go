package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GameLicense is the right to a game, bound to a wallet.
type GameLicense struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	WalletID   uuid.UUID  `json:"walletId" db:"wallet_id"`
	GameID     uuid.UUID  `json:"gameId" db:"game_id"`
	ListingID  *uuid.UUID `json:"listingId,omitempty" db:"listing_id"`
	AcquiredAt time.Time  `json:"acquiredAt" db:"acquired_at"`
}

// LicenseTransaction records how a license was acquired.
type LicenseTransaction struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	LicenseID  uuid.UUID       `json:"licenseId" db:"license_id"`
	ListingID  uuid.UUID       `json:"listingId" db:"listing_id"`
	SellerID   uuid.UUID       `json:"sellerId" db:"seller_id"`
	ToWalletID uuid.UUID       `json:"toWalletId" db:"to_wallet_id"`
	Price      decimal.Decimal `json:"price" db:"price"`
	CreatedAt  time.Time       `json:"createdAt" db:"created_at"`
}

// ItemOwnership is a quantity of a stackable item held by a wallet.
type ItemOwnership struct {
	ID        uuid.UUID `json:"id" db:"id"`
	WalletID  uuid.UUID `json:"walletId" db:"wallet_id"`
	ItemID    uuid.UUID `json:"itemId" db:"item_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// ItemTransaction records an item quantity moving into a wallet.
type ItemTransaction struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	OwnershipID uuid.UUID       `json:"ownershipId" db:"ownership_id"`
	ItemID      uuid.UUID       `json:"itemId" db:"item_id"`
	ListingID   uuid.UUID       `json:"listingId" db:"listing_id"`
	SellerID    uuid.UUID       `json:"sellerId" db:"seller_id"`
	ToWalletID  uuid.UUID       `json:"toWalletId" db:"to_wallet_id"`
	Quantity    int             `json:"quantity" db:"quantity"`
	Price       decimal.Decimal `json:"price" db:"price"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}
