package services

//go:generate mockgen -source=wallet.go -destination=wallet_mock.go -package=services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-game-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-game-marketplace/internal/models"
	"github.com/sbilibin2017/gw-game-marketplace/internal/policy"
	"github.com/shopspring/decimal"
)

// WalletStore persists wallets.
type WalletStore interface {
	Create(ctx context.Context, w *models.WalletDB) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.WalletDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WalletDB, error)
	ClearDefault(ctx context.Context, userID uuid.UUID, blockchainID string) error
	SetSyncedBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal, syncedAt time.Time) (*models.WalletDB, error)
}

// BalanceFetcher reads an on-chain balance.
type BalanceFetcher interface {
	BalanceOf(ctx context.Context, address string) (decimal.Decimal, error)
}

// CreateWalletInput holds the fields of a new wallet.
type CreateWalletInput struct {
	BlockchainID string
	Address      string
	IsDefault    bool
}

// WalletService manages user wallets.
type WalletService struct {
	tx     TxRunner
	store  WalletStore
	chains map[string]BalanceFetcher
	now    func() time.Time
}

// NewWalletService creates a new WalletService. chains maps a blockchain id
// to the client used to sync wallets on it.
func NewWalletService(tx TxRunner, store WalletStore, chains map[string]BalanceFetcher) *WalletService {
	if chains == nil {
		chains = map[string]BalanceFetcher{}
	}
	return &WalletService{
		tx:     tx,
		store:  store,
		chains: chains,
		now:    time.Now,
	}
}

// Create registers a wallet for owner. A default wallet replaces the
// owner's previous default on the same blockchain.
func (s *WalletService) Create(ctx context.Context, owner policy.Actor, in CreateWalletInput) (*models.WalletDB, error) {
	blockchainID := strings.ToLower(strings.TrimSpace(in.BlockchainID))
	address := strings.TrimSpace(in.Address)
	if blockchainID == "" || address == "" {
		return nil, invalid("blockchainId and address are required")
	}

	w := &models.WalletDB{
		WalletID:     uuid.New(),
		UserID:       owner.UserID,
		BlockchainID: blockchainID,
		Address:      address,
		Balance:      decimal.Zero,
		IsDefault:    in.IsDefault,
	}
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if w.IsDefault {
			if err := s.store.ClearDefault(ctx, owner.UserID, blockchainID); err != nil {
				return err
			}
		}
		return s.store.Create(ctx, w)
	})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to create wallet", "user_id", owner.UserID, "blockchain_id", blockchainID, "error", err)
		return nil, err
	}

	logger.FromContext(ctx).Infow("wallet created", "wallet_id", w.WalletID, "user_id", owner.UserID, "default", w.IsDefault)
	return w, nil
}

// List returns the owner's wallets.
func (s *WalletService) List(ctx context.Context, owner policy.Actor) ([]models.WalletDB, error) {
	wallets, err := s.store.ListByUser(ctx, owner.UserID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list wallets", "user_id", owner.UserID, "error", err)
		return nil, err
	}
	return wallets, nil
}

// Sync replaces the stored balance with the balance reported by the chain.
func (s *WalletService) Sync(ctx context.Context, actor policy.Actor, id uuid.UUID) (*models.WalletDB, error) {
	log := logger.FromContext(ctx)

	w, err := s.store.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWalletNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(actor, policy.WalletResource(w), policy.PermWalletSync); err != nil {
		return nil, err
	}

	chain, ok := s.chains[w.BlockchainID]
	if !ok {
		return nil, ErrChainUnsupported
	}
	balance, err := chain.BalanceOf(ctx, w.Address)
	if err != nil {
		log.Errorw("failed to fetch chain balance", "wallet_id", id, "blockchain_id", w.BlockchainID, "error", err)
		return nil, fmt.Errorf("fetch %s balance: %w", w.BlockchainID, err)
	}

	synced, err := s.store.SetSyncedBalance(ctx, id, balance, s.now())
	if err != nil {
		log.Errorw("failed to store synced balance", "wallet_id", id, "error", err)
		return nil, err
	}

	log.Infow("wallet synced", "wallet_id", id, "balance", balance.String())
	return synced, nil
}
