package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-game-marketplace/internal/models"
	"github.com/shopspring/decimal"
)

const walletColumns = `id, user_id, blockchain_id, address, balance, is_default, last_synced, created_at, updated_at`

// WalletRepository handles wallet reads and balance mutations.
type WalletRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletRepository {
	return &WalletRepository{db: db, txGetter: txGetter}
}

// Create inserts a wallet and fills in its timestamps.
func (r *WalletRepository) Create(ctx context.Context, w *models.WalletDB) error {
	query := `
		INSERT INTO wallets (id, user_id, blockchain_id, address, balance, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	args := []any{w.WalletID, w.UserID, w.BlockchainID, w.Address, w.Balance, w.IsDefault}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).
		Scan(&w.CreatedAt, &w.UpdatedAt)
	logQuery(query, args, w.WalletID, err)

	return classify(err)
}

// GetByID returns the wallet or sql.ErrNoRows.
func (r *WalletRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.WalletDB, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1`

	var w models.WalletDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &w, query, id)
	logQuery(query, []any{id}, w.Balance, err)
	if err != nil {
		return nil, classify(err)
	}
	return &w, nil
}

// GetDefault returns the user's default wallet on a blockchain or sql.ErrNoRows.
func (r *WalletRepository) GetDefault(ctx context.Context, userID uuid.UUID, blockchainID string) (*models.WalletDB, error) {
	query := `
		SELECT ` + walletColumns + `
		FROM wallets
		WHERE user_id = $1 AND blockchain_id = $2 AND is_default
	`
	args := []any{userID, blockchainID}

	var w models.WalletDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &w, query, args...)
	logQuery(query, args, w.WalletID, err)
	if err != nil {
		return nil, classify(err)
	}
	return &w, nil
}

// ListByUser returns all wallets of a user.
func (r *WalletRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WalletDB, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1 ORDER BY created_at`

	wallets := []models.WalletDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &wallets, query, userID)
	logQuery(query, []any{userID}, len(wallets), err)

	return wallets, err
}

// ClearDefault unsets the default flag on the user's wallets for a blockchain.
func (r *WalletRepository) ClearDefault(ctx context.Context, userID uuid.UUID, blockchainID string) error {
	query := `
		UPDATE wallets SET is_default = FALSE, updated_at = NOW()
		WHERE user_id = $1 AND blockchain_id = $2 AND is_default
	`
	args := []any{userID, blockchainID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return err
}

// Debit subtracts amount from the balance in a single statement that only
// matches while balance >= amount. It returns sql.ErrNoRows when the
// wallet is missing or the balance is insufficient.
func (r *WalletRepository) Debit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE wallets SET balance = balance - $2, updated_at = NOW()
		WHERE id = $1 AND balance >= $2
		RETURNING balance
	`
	return r.adjust(ctx, query, id, amount)
}

// Credit adds amount to the balance and returns the new balance.
func (r *WalletRepository) Credit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE wallets SET balance = balance + $2, updated_at = NOW()
		WHERE id = $1
		RETURNING balance
	`
	return r.adjust(ctx, query, id, amount)
}

func (r *WalletRepository) adjust(ctx context.Context, query string, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	args := []any{id, amount}

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, args...)
	logQuery(query, args, balance, err)
	if err != nil {
		return decimal.Zero, classify(err)
	}
	return balance, nil
}

// SetSyncedBalance stores a balance read from the chain.
func (r *WalletRepository) SetSyncedBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal, syncedAt time.Time) (*models.WalletDB, error) {
	query := `
		UPDATE wallets SET balance = $2, last_synced = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + walletColumns
	args := []any{id, balance, syncedAt}

	var w models.WalletDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &w, query, args...)
	logQuery(query, args, w.Balance, err)
	if err != nil {
		return nil, classify(err)
	}
	return &w, nil
}
