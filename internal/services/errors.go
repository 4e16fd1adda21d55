package services

import (
	"fmt"

	"github.com/sbilibin2017/gw-game-marketplace/internal/models"
)

// Listing errors
var (
	ErrListingNotFound        = fmt.Errorf("%w: listing not found", models.ErrNotFound)
	ErrListingUnavailable     = fmt.Errorf("%w: listing is not available for purchase", models.ErrConflict)
	ErrListingExpired         = fmt.Errorf("%w: listing has expired", models.ErrConflict)
	ErrSelfPurchase           = fmt.Errorf("%w: cannot purchase your own listing", models.ErrConflict)
	ErrListingTerminal        = fmt.Errorf("%w: listing can no longer be changed", models.ErrConflict)
	ErrInvalidTransition      = fmt.Errorf("%w: status transition not allowed", models.ErrConflict)
	ErrUnsupportedListingType = fmt.Errorf("%w: unsupported listing type", models.ErrValidation)
	ErrAssetNotOwned          = fmt.Errorf("%w: seller does not own the listed asset", models.ErrValidation)
)

// Wallet and ownership errors
var (
	ErrWalletNotFound      = fmt.Errorf("%w: wallet not found", models.ErrNotFound)
	ErrInvalidWallet       = fmt.Errorf("%w: wallet does not belong to buyer", models.ErrValidation)
	ErrInsufficientFunds   = fmt.Errorf("%w: insufficient funds", models.ErrValidation)
	ErrLicenseAlreadyOwned = fmt.Errorf("%w: buyer already owns a license for this game", models.ErrConflict)
	ErrChainUnsupported    = fmt.Errorf("%w: blockchain does not support balance sync", models.ErrValidation)
)

// Auth errors
var (
	ErrUserAlreadyExists  = fmt.Errorf("%w: username or email already exists", models.ErrConflict)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", models.ErrValidation)
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{models.ErrValidation}, args...)...)
}
