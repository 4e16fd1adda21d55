package handlers

//go:generate mockgen -source=purchase.go -destination=purchase_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-game-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-game-marketplace/internal/policy"
	"github.com/sbilibin2017/gw-game-marketplace/internal/services"
)

// Purchaser settles a purchase.
type Purchaser interface {
	Purchase(ctx context.Context, buyer policy.Actor, listingID, walletID uuid.UUID) (*services.PurchaseResult, error)
}

// PurchaseRequest represents the JSON body for purchasing a listing
// swagger:model PurchaseRequest
type PurchaseRequest struct {
	// Buyer wallet to pay from
	// required: true
	WalletID string `json:"walletId"`
}

// NewPurchaseHandler returns an HTTP handler for purchasing a listing.
// @Summary Purchase listing
// @Description Pays for an active listing from the buyer's wallet and transfers the asset
// @Tags marketplace
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body handlers.PurchaseRequest true "Purchase Request"
// @Success 201 {object} handlers.Response "Listing and transaction"
// @Failure 400 {object} handlers.ErrorResponse "Listing unavailable, insufficient funds or invalid wallet"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Listing not found"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /marketplace/listings/{id}/purchase [post]
// @Security BearerAuth
func NewPurchaseHandler(svc Purchaser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		buyer, ok := requireActor(w, r)
		if !ok {
			return
		}
		listingID, ok := pathID(w, r)
		if !ok {
			return
		}

		var req PurchaseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.FromContext(ctx).Warnw("failed to decode purchase request", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		walletID, err := uuid.Parse(req.WalletID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid walletId")
			return
		}

		result, err := svc.Purchase(ctx, buyer, listingID, walletID)
		if err != nil {
			writeServiceError(ctx, w, err, http.StatusBadRequest)
			return
		}

		writeData(w, http.StatusCreated, result)
	}
}
