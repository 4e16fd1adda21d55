package handlers

//go:generate mockgen -source=wallets.go -destination=wallets_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-game-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-game-marketplace/internal/models"
	"github.com/sbilibin2017/gw-game-marketplace/internal/policy"
	"github.com/sbilibin2017/gw-game-marketplace/internal/services"
)

// WalletCreator registers wallets.
type WalletCreator interface {
	Create(ctx context.Context, owner policy.Actor, in services.CreateWalletInput) (*models.WalletDB, error)
}

// WalletLister lists the caller's wallets.
type WalletLister interface {
	List(ctx context.Context, owner policy.Actor) ([]models.WalletDB, error)
}

// WalletSyncer refreshes a wallet balance from its blockchain.
type WalletSyncer interface {
	Sync(ctx context.Context, actor policy.Actor, id uuid.UUID) (*models.WalletDB, error)
}

// CreateWalletRequest represents the JSON body for registering a wallet
// swagger:model CreateWalletRequest
type CreateWalletRequest struct {
	// Blockchain of the wallet
	// required: true
	// default: ethereum
	BlockchainID string `json:"blockchainId"`

	// On-chain address
	// required: true
	Address string `json:"address"`

	// Make this the default wallet for the blockchain
	// default: false
	IsDefault bool `json:"isDefault"`
}

// NewCreateWalletHandler returns an HTTP handler for registering a wallet.
// @Summary Create wallet
// @Description Registers a wallet for the caller
// @Tags wallets
// @Accept json
// @Produce json
// @Param request body handlers.CreateWalletRequest true "Create Wallet Request"
// @Success 201 {object} handlers.Response "Wallet created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid wallet"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Address already registered"
// @Router /wallets [post]
// @Security BearerAuth
func NewCreateWalletHandler(svc WalletCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		owner, ok := requireActor(w, r)
		if !ok {
			return
		}

		var req CreateWalletRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.FromContext(ctx).Warnw("failed to decode create wallet request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		wallet, err := svc.Create(ctx, owner, services.CreateWalletInput{
			BlockchainID: req.BlockchainID,
			Address:      req.Address,
			IsDefault:    req.IsDefault,
		})
		if err != nil {
			writeServiceError(ctx, w, err, http.StatusConflict)
			return
		}

		writeData(w, http.StatusCreated, wallet)
	}
}

// NewListWalletsHandler returns an HTTP handler listing the caller's wallets.
// @Summary List wallets
// @Tags wallets
// @Produce json
// @Success 200 {object} handlers.Response "Wallets"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /wallets [get]
// @Security BearerAuth
func NewListWalletsHandler(svc WalletLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, ok := requireActor(w, r)
		if !ok {
			return
		}

		wallets, err := svc.List(r.Context(), owner)
		if err != nil {
			writeServiceError(r.Context(), w, err, http.StatusConflict)
			return
		}

		writeData(w, http.StatusOK, wallets)
	}
}

// NewSyncWalletHandler returns an HTTP handler syncing a wallet balance.
// @Summary Sync wallet
// @Description Replaces the stored balance with the on-chain balance
// @Tags wallets
// @Produce json
// @Param id path string true "Wallet ID"
// @Success 200 {object} handlers.Response "Synced wallet"
// @Failure 400 {object} handlers.ErrorResponse "Blockchain not supported"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Wallet not found"
// @Router /wallets/{id}/sync [post]
// @Security BearerAuth
func NewSyncWalletHandler(svc WalletSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := requireActor(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r)
		if !ok {
			return
		}

		wallet, err := svc.Sync(r.Context(), actor, id)
		if err != nil {
			writeServiceError(r.Context(), w, err, http.StatusConflict)
			return
		}

		writeData(w, http.StatusOK, wallet)
	}
}
