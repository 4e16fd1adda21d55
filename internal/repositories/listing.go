package repositories

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-game-marketplace/internal/models"
)

const listingColumns = `id, type, status, seller_id, price, quantity, expires_at, game_id, item_id, created_at, updated_at`

// ListingRepository persists marketplace listings.
type ListingRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewListingRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ListingRepository {
	return &ListingRepository{db: db, txGetter: txGetter}
}

// Create inserts the listing and fills in its timestamps.
func (r *ListingRepository) Create(ctx context.Context, l *models.Listing) error {
	query := `
		INSERT INTO listings (id, type, status, seller_id, price, quantity, expires_at, game_id, item_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	args := []any{l.ID, l.Type, l.Status, l.SellerID, l.Price, l.Quantity, l.ExpiresAt, l.GameID, l.ItemID}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).
		Scan(&l.CreatedAt, &l.UpdatedAt)
	logQuery(query, args, l.ID, err)

	return classify(err)
}

// GetByID returns the listing or sql.ErrNoRows.
func (r *ListingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	return r.get(ctx, query, id)
}

// GetForUpdate returns the listing and locks its row until the surrounding
// transaction ends.
func (r *ListingRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1 FOR UPDATE`
	return r.get(ctx, query, id)
}

func (r *ListingRepository) get(ctx context.Context, query string, id uuid.UUID) (*models.Listing, error) {
	var l models.Listing
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &l, query, id)
	logQuery(query, []any{id}, l.Status, err)
	if err != nil {
		return nil, classify(err)
	}
	return &l, nil
}

// List returns one page of listings matching the filter and the total
// number of matches. Status filters use the effective status, so ACTIVE
// excludes and EXPIRED includes listings past their expiry.
func (r *ListingRepository) List(ctx context.Context, f models.ListingFilter) ([]models.Listing, int, error) {
	const query = `
		SELECT ` + listingColumns + `, COUNT(*) OVER() AS total
		FROM listings
		WHERE ($1::TEXT IS NULL OR type = $1)
		  AND ($2::TEXT IS NULL
		       OR ($2 = 'ACTIVE' AND status = 'ACTIVE' AND (expires_at IS NULL OR expires_at > NOW()))
		       OR ($2 = 'EXPIRED' AND (status = 'EXPIRED' OR (status = 'ACTIVE' AND expires_at <= NOW())))
		       OR ($2 NOT IN ('ACTIVE', 'EXPIRED') AND status = $2))
		  AND ($3::UUID IS NULL OR seller_id = $3)
		  AND ($4::UUID IS NULL OR game_id = $4)
		  AND ($5::UUID IS NULL OR item_id = $5)
		  AND ($6::NUMERIC IS NULL OR price >= $6)
		  AND ($7::NUMERIC IS NULL OR price <= $7)
		ORDER BY created_at DESC, id
		LIMIT $8 OFFSET $9
	`
	args := []any{f.Type, f.Status, f.SellerID, f.GameID, f.ItemID, f.MinPrice, f.MaxPrice, f.Limit, f.Offset()}

	var rows []struct {
		models.Listing
		Total int `db:"total"`
	}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, args...)
	logQuery(query, args, len(rows), err)
	if err != nil {
		return nil, 0, err
	}

	listings := make([]models.Listing, 0, len(rows))
	total := 0
	for _, row := range rows {
		listings = append(listings, row.Listing)
		total = row.Total
	}
	return listings, total, nil
}

// MarkSold moves an ACTIVE listing to SOLD. It returns sql.ErrNoRows when
// the listing is missing or no longer ACTIVE, so only one purchase can win.
func (r *ListingRepository) MarkSold(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	query := `
		UPDATE listings SET status = 'SOLD', updated_at = NOW()
		WHERE id = $1 AND status = 'ACTIVE'
		RETURNING ` + listingColumns

	var l models.Listing
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &l, query, id)
	logQuery(query, []any{id}, l.Status, err)
	if err != nil {
		return nil, classify(err)
	}
	return &l, nil
}

// Update writes the mutable fields of a listing provided its stored status
// is still from. A listing that changed status meanwhile yields sql.ErrNoRows.
func (r *ListingRepository) Update(ctx context.Context, l *models.Listing, from models.ListingStatus) error {
	query := `
		UPDATE listings
		SET price = $2, quantity = $3, expires_at = $4, status = $5, updated_at = NOW()
		WHERE id = $1 AND status = $6
		RETURNING updated_at
	`
	args := []any{l.ID, l.Price, l.Quantity, l.ExpiresAt, l.Status, from}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).Scan(&l.UpdatedAt)
	logQuery(query, args, l.UpdatedAt, err)

	return classify(err)
}

// Delete removes the listing row provided its stored status is still from.
// A listing that changed status meanwhile yields sql.ErrNoRows.
func (r *ListingRepository) Delete(ctx context.Context, id uuid.UUID, from models.ListingStatus) error {
	query := `DELETE FROM listings WHERE id = $1 AND status = $2`
	args := []any{id, from}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return classify(err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
