package services

//go:generate mockgen -source=purchase.go -destination=purchase_mock.go -package=services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-game-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-game-marketplace/internal/metrics"
	"github.com/sbilibin2017/gw-game-marketplace/internal/models"
	"github.com/sbilibin2017/gw-game-marketplace/internal/policy"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// TxRunner runs fn inside a single database transaction.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// PurchaseListingStore locks and settles listings.
type PurchaseListingStore interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (*models.Listing, error)
	MarkSold(ctx context.Context, id uuid.UUID) (*models.Listing, error)
}

// PurchaseWalletStore reads and moves wallet balances.
type PurchaseWalletStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.WalletDB, error)
	GetDefault(ctx context.Context, userID uuid.UUID, blockchainID string) (*models.WalletDB, error)
	Debit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
	Credit(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
}

// TransactionWriter appends wallet transactions.
type TransactionWriter interface {
	Create(ctx context.Context, t *models.Transaction) error
}

// ListingCache caches listings by id.
type ListingCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Listing, error)
	Set(ctx context.Context, l *models.Listing) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PurchaseResult is the outcome of a completed purchase.
type PurchaseResult struct {
	Listing     *models.Listing     `json:"listing"`
	Transaction *models.Transaction `json:"transaction"`
}

// PurchaseEvent is published to Kafka after a purchase commits.
type PurchaseEvent struct {
	EventID       string          `json:"eventId"`
	TransactionID string          `json:"transactionId"`
	ListingID     string          `json:"listingId"`
	ListingType   string          `json:"listingType"`
	BuyerID       string          `json:"buyerId"`
	BuyerWalletID string          `json:"buyerWalletId"`
	SellerID      string          `json:"sellerId"`
	Price         decimal.Decimal `json:"price"`
	Fee           decimal.Decimal `json:"fee"`
	Timestamp     int64           `json:"timestamp"`
}

// PurchaseService settles marketplace purchases.
type PurchaseService struct {
	tx          TxRunner
	listings    PurchaseListingStore
	wallets     PurchaseWalletStore
	txns        TransactionWriter
	transfers   map[models.ListingType]ownershipTransfer
	cache       ListingCache
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewPurchaseService creates a new PurchaseService. cache and kafkaWriter
// may be nil.
func NewPurchaseService(
	tx TxRunner,
	listings PurchaseListingStore,
	wallets PurchaseWalletStore,
	txns TransactionWriter,
	licenses LicenseStore,
	items ItemStore,
	cache ListingCache,
	kafkaWriter KafkaWriter,
) *PurchaseService {
	return &PurchaseService{
		tx:       tx,
		listings: listings,
		wallets:  wallets,
		txns:     txns,
		transfers: map[models.ListingType]ownershipTransfer{
			models.ListingTypeGameLicense: licenseTransfer{store: licenses},
			models.ListingTypeGameItem:    itemTransfer{store: items},
		},
		cache:       cache,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// Purchase buys listingID for buyer, paying from walletID. Either every
// effect of the purchase is committed or none is.
func (s *PurchaseService) Purchase(ctx context.Context, buyer policy.Actor, listingID, walletID uuid.UUID) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)
	listingType := "unknown"

	var result *PurchaseResult
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		listing, err := s.listings.GetForUpdate(ctx, listingID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrListingNotFound
		}
		if err != nil {
			return err
		}
		listingType = string(listing.Type)

		if err := s.checkPurchasable(listing, buyer.UserID); err != nil {
			return err
		}
		transfer, ok := s.transfers[listing.Type]
		if !ok {
			return ErrUnsupportedListingType
		}

		wallet, err := s.buyerWallet(ctx, buyer, walletID)
		if err != nil {
			return err
		}
		if wallet.Balance.LessThan(listing.Price) {
			return ErrInsufficientFunds
		}

		sold, err := s.listings.MarkSold(ctx, listing.ID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrListingUnavailable
		}
		if err != nil {
			return err
		}

		if _, err := s.wallets.Debit(ctx, wallet.WalletID, listing.Price); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrInsufficientFunds
			}
			return err
		}

		fee, sellerCredit := models.SplitPrice(listing.Price)
		data := models.PurchaseData{
			ListingID:    listing.ID,
			ListingType:  listing.Type,
			SellerID:     listing.SellerID,
			SellerCredit: sellerCredit,
			Quantity:     listing.Quantity,
		}
		if err := s.creditSeller(ctx, listing, wallet.BlockchainID, sellerCredit, &data); err != nil {
			return err
		}

		if err := transfer.Transfer(ctx, sold, wallet); err != nil {
			return err
		}

		payload, err := json.Marshal(data)
		if err != nil {
			return err
		}
		txn := &models.Transaction{
			ID:       uuid.New(),
			WalletID: wallet.WalletID,
			Type:     models.TransactionTypeMarketplacePurchase,
			Status:   models.TransactionStatusCompleted,
			Amount:   listing.Price,
			Fee:      fee,
			Data:     payload,
		}
		if err := s.txns.Create(ctx, txn); err != nil {
			return err
		}

		result = &PurchaseResult{Listing: sold, Transaction: txn}
		return nil
	})
	if err != nil {
		metrics.RecordPurchase(listingType, purchaseOutcome(err))
		log.Errorw("purchase failed", "listing_id", listingID, "wallet_id", walletID, "buyer_id", buyer.UserID, "error", err)
		return nil, err
	}

	metrics.RecordPurchase(listingType, "success")
	metrics.RecordSale(result.Transaction.Amount, result.Transaction.Fee)
	log.Infow("purchase completed",
		"listing_id", listingID,
		"transaction_id", result.Transaction.ID,
		"buyer_id", buyer.UserID,
		"amount", result.Transaction.Amount.String(),
	)

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, listingID); err != nil {
			log.Warnw("failed to invalidate cached listing", "listing_id", listingID, "error", err)
		}
	}
	s.publishPurchase(ctx, buyer.UserID, result)

	return result, nil
}

func (s *PurchaseService) checkPurchasable(listing *models.Listing, buyerID uuid.UUID) error {
	if !listing.IsPurchasable(s.now()) {
		if listing.Status == models.ListingStatusActive {
			return ErrListingExpired
		}
		return ErrListingUnavailable
	}
	if listing.SellerID == buyerID {
		return ErrSelfPurchase
	}
	return nil
}

func (s *PurchaseService) buyerWallet(ctx context.Context, buyer policy.Actor, walletID uuid.UUID) (*models.WalletDB, error) {
	wallet, err := s.wallets.GetByID(ctx, walletID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidWallet
	}
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(buyer, policy.WalletResource(wallet), policy.PermWalletUse); err != nil {
		return nil, ErrInvalidWallet
	}
	return wallet, nil
}

// creditSeller pays the seller's default wallet on the buyer's blockchain.
// A seller without one is not credited and the purchase still completes.
func (s *PurchaseService) creditSeller(ctx context.Context, listing *models.Listing, blockchainID string, amount decimal.Decimal, data *models.PurchaseData) error {
	sellerWallet, err := s.wallets.GetDefault(ctx, listing.SellerID, blockchainID)
	if errors.Is(err, sql.ErrNoRows) {
		logger.FromContext(ctx).Warnw("seller has no default wallet, credit skipped",
			"listing_id", listing.ID,
			"seller_id", listing.SellerID,
			"blockchain_id", blockchainID,
		)
		metrics.RecordSellerCreditSkipped()
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := s.wallets.Credit(ctx, sellerWallet.WalletID, amount); err != nil {
		return err
	}
	data.SellerWalletID = &sellerWallet.WalletID
	data.SellerCredited = true
	return nil
}

// publishPurchase publishes a committed purchase to Kafka.
func (s *PurchaseService) publishPurchase(ctx context.Context, buyerID uuid.UUID, result *PurchaseResult) {
	log := logger.FromContext(ctx)
	txn := result.Transaction
	if s.kafkaWriter == nil {
		log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.ID)
		return
	}

	event := PurchaseEvent{
		EventID:       uuid.NewString(),
		TransactionID: txn.ID.String(),
		ListingID:     result.Listing.ID.String(),
		ListingType:   string(result.Listing.Type),
		BuyerID:       buyerID.String(),
		BuyerWalletID: txn.WalletID.String(),
		SellerID:      result.Listing.SellerID.String(),
		Price:         txn.Amount,
		Fee:           txn.Fee,
		Timestamp:     s.now().Unix(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Errorw("Failed to marshal purchase for Kafka", "transaction_id", txn.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.ListingID),
		Value: data,
	}
	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		log.Errorw("Failed to publish purchase to Kafka", "transaction_id", txn.ID, "error", err)
	} else {
		log.Infow("Purchase published to Kafka", "transaction_id", txn.ID, "amount", txn.Amount.String())
	}
}

func purchaseOutcome(err error) string {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return "not_found"
	case errors.Is(err, models.ErrConflict):
		return "conflict"
	case errors.Is(err, models.ErrValidation):
		return "rejected"
	}
	return "error"
}
