package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-game-marketplace/internal/models"
)

// OwnershipRepository tracks which wallets hold game licenses and items.
type OwnershipRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewOwnershipRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *OwnershipRepository {
	return &OwnershipRepository{db: db, txGetter: txGetter}
}

// HasLicense reports whether any wallet of the user holds a license for the game.
func (r *OwnershipRepository) HasLicense(ctx context.Context, userID, gameID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM game_licenses gl
			JOIN wallets w ON w.id = gl.wallet_id
			WHERE w.user_id = $1 AND gl.game_id = $2
		)
	`
	args := []any{userID, gameID}

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, args...)
	logQuery(query, args, exists, err)

	return exists, err
}

// CreateLicense inserts a license row. A second license for the same
// wallet and game violates the unique constraint and yields ErrConflict.
func (r *OwnershipRepository) CreateLicense(ctx context.Context, l *models.GameLicense) error {
	query := `
		INSERT INTO game_licenses (id, wallet_id, game_id, listing_id, acquired_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING acquired_at
	`
	args := []any{l.ID, l.WalletID, l.GameID, l.ListingID}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).Scan(&l.AcquiredAt)
	logQuery(query, args, l.ID, err)

	return classify(err)
}

// CreateLicenseTransaction appends a license audit row.
func (r *OwnershipRepository) CreateLicenseTransaction(ctx context.Context, t *models.LicenseTransaction) error {
	query := `
		INSERT INTO license_transactions (id, license_id, listing_id, seller_id, to_wallet_id, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`
	args := []any{t.ID, t.LicenseID, t.ListingID, t.SellerID, t.ToWalletID, t.Price}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).Scan(&t.CreatedAt)
	logQuery(query, args, t.ID, err)

	return classify(err)
}

// ItemQuantity returns how many units of the item the user holds across wallets.
func (r *OwnershipRepository) ItemQuantity(ctx context.Context, userID, itemID uuid.UUID) (int, error) {
	query := `
		SELECT COALESCE(SUM(io.quantity), 0)
		FROM item_ownerships io
		JOIN wallets w ON w.id = io.wallet_id
		WHERE w.user_id = $1 AND io.item_id = $2
	`
	args := []any{userID, itemID}

	var quantity int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &quantity, query, args...)
	logQuery(query, args, quantity, err)

	return quantity, err
}

// AddItems performs an UPSERT: creates the ownership row if the wallet has
// none for the item, otherwise increases its quantity.
func (r *OwnershipRepository) AddItems(ctx context.Context, walletID, itemID uuid.UUID, quantity int) (*models.ItemOwnership, error) {
	query := `
		INSERT INTO item_ownerships (id, wallet_id, item_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (wallet_id, item_id)
		DO UPDATE SET quantity = item_ownerships.quantity + EXCLUDED.quantity, updated_at = NOW()
		RETURNING id, wallet_id, item_id, quantity, created_at, updated_at
	`
	args := []any{uuid.New(), walletID, itemID, quantity}

	var o models.ItemOwnership
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &o, query, args...)
	logQuery(query, args, o.Quantity, err)
	if err != nil {
		return nil, classify(err)
	}
	return &o, nil
}

// CreateItemTransaction appends an item audit row.
func (r *OwnershipRepository) CreateItemTransaction(ctx context.Context, t *models.ItemTransaction) error {
	query := `
		INSERT INTO item_transactions (id, ownership_id, item_id, listing_id, seller_id, to_wallet_id, quantity, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING created_at
	`
	args := []any{t.ID, t.OwnershipID, t.ItemID, t.ListingID, t.SellerID, t.ToWalletID, t.Quantity, t.Price}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).Scan(&t.CreatedAt)
	logQuery(query, args, t.ID, err)

	return classify(err)
}
