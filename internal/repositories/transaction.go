package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-game-marketplace/internal/models"
)

// TransactionRepository appends wallet transaction records.
type TransactionRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionRepository {
	return &TransactionRepository{db: db, txGetter: txGetter}
}

// Create inserts the record and sets its timestamp.
func (r *TransactionRepository) Create(ctx context.Context, t *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, wallet_id, type, status, amount, fee, data, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING timestamp
	`
	args := []any{t.ID, t.WalletID, t.Type, t.Status, t.Amount, t.Fee, t.Data}

	err := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...).Scan(&t.Timestamp)
	logQuery(query, args, t.ID, err)

	return classify(err)
}
