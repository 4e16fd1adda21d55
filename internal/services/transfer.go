package services

//go:generate mockgen -source=transfer.go -destination=transfer_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-game-marketplace/internal/models"
)

// LicenseStore is the game license registry.
type LicenseStore interface {
	HasLicense(ctx context.Context, userID, gameID uuid.UUID) (bool, error)
	CreateLicense(ctx context.Context, l *models.GameLicense) error
	CreateLicenseTransaction(ctx context.Context, t *models.LicenseTransaction) error
}

// ItemStore is the item ownership registry.
type ItemStore interface {
	AddItems(ctx context.Context, walletID, itemID uuid.UUID, quantity int) (*models.ItemOwnership, error)
	CreateItemTransaction(ctx context.Context, t *models.ItemTransaction) error
}

// ownershipTransfer moves the asset of a sold listing into the buyer's wallet.
// There is one implementation per listing type.
type ownershipTransfer interface {
	Transfer(ctx context.Context, listing *models.Listing, to *models.WalletDB) error
}

type licenseTransfer struct {
	store LicenseStore
}

// Transfer grants a license unless the buyer already holds one for the game.
func (t licenseTransfer) Transfer(ctx context.Context, listing *models.Listing, to *models.WalletDB) error {
	if listing.GameID == nil {
		return ErrUnsupportedListingType
	}
	gameID := *listing.GameID

	owned, err := t.store.HasLicense(ctx, to.UserID, gameID)
	if err != nil {
		return err
	}
	if owned {
		return ErrLicenseAlreadyOwned
	}

	license := &models.GameLicense{
		ID:        uuid.New(),
		WalletID:  to.WalletID,
		GameID:    gameID,
		ListingID: &listing.ID,
	}
	if err := t.store.CreateLicense(ctx, license); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return ErrLicenseAlreadyOwned
		}
		return err
	}

	return t.store.CreateLicenseTransaction(ctx, &models.LicenseTransaction{
		ID:         uuid.New(),
		LicenseID:  license.ID,
		ListingID:  listing.ID,
		SellerID:   listing.SellerID,
		ToWalletID: to.WalletID,
		Price:      listing.Price,
	})
}

type itemTransfer struct {
	store ItemStore
}

// Transfer adds the listed quantity to the buyer's ownership row, creating
// it on first purchase.
func (t itemTransfer) Transfer(ctx context.Context, listing *models.Listing, to *models.WalletDB) error {
	if listing.ItemID == nil {
		return ErrUnsupportedListingType
	}
	itemID := *listing.ItemID

	ownership, err := t.store.AddItems(ctx, to.WalletID, itemID, listing.Quantity)
	if err != nil {
		return err
	}

	return t.store.CreateItemTransaction(ctx, &models.ItemTransaction{
		ID:          uuid.New(),
		OwnershipID: ownership.ID,
		ItemID:      itemID,
		ListingID:   listing.ID,
		SellerID:    listing.SellerID,
		ToWalletID:  to.WalletID,
		Quantity:    listing.Quantity,
		Price:       listing.Price,
	})
}
