package services

//go:generate mockgen -source=listing.go -destination=listing_mock.go -package=services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-game-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-game-marketplace/internal/models"
	"github.com/sbilibin2017/gw-game-marketplace/internal/policy"
	"github.com/shopspring/decimal"
)

// Page size bounds for listing searches
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// ListingStore persists listings.
type ListingStore interface {
	Create(ctx context.Context, l *models.Listing) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error)
	List(ctx context.Context, f models.ListingFilter) ([]models.Listing, int, error)
	Update(ctx context.Context, l *models.Listing, from models.ListingStatus) error
	Delete(ctx context.Context, id uuid.UUID, from models.ListingStatus) error
}

// OwnershipReader answers whether a user holds an asset.
type OwnershipReader interface {
	HasLicense(ctx context.Context, userID, gameID uuid.UUID) (bool, error)
	ItemQuantity(ctx context.Context, userID, itemID uuid.UUID) (int, error)
}

// CreateListingInput holds the fields of a new listing.
type CreateListingInput struct {
	Type      models.ListingType
	Status    models.ListingStatus // empty means ACTIVE
	Price     decimal.Decimal
	Quantity  int
	ExpiresAt *time.Time
	GameID    *uuid.UUID
	ItemID    *uuid.UUID
}

// UpdateListingInput holds the fields to change. Nil fields are kept.
type UpdateListingInput struct {
	Price     *decimal.Decimal
	Quantity  *int
	ExpiresAt *time.Time
	Status    *models.ListingStatus
}

// ListingPage is one page of search results.
type ListingPage struct {
	Listings   []models.Listing `json:"listings"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Total      int              `json:"total"`
	TotalPages int              `json:"totalPages"`
}

// ListingService manages the listing lifecycle.
type ListingService struct {
	store     ListingStore
	ownership OwnershipReader
	cache     ListingCache
	now       func() time.Time
}

// NewListingService creates a new ListingService. cache may be nil.
func NewListingService(store ListingStore, ownership OwnershipReader, cache ListingCache) *ListingService {
	return &ListingService{
		store:     store,
		ownership: ownership,
		cache:     cache,
		now:       time.Now,
	}
}

// Create lists an asset the seller owns.
func (s *ListingService) Create(ctx context.Context, seller policy.Actor, in CreateListingInput) (*models.Listing, error) {
	log := logger.FromContext(ctx)

	l := &models.Listing{
		ID:        uuid.New(),
		Type:      in.Type,
		Status:    in.Status,
		SellerID:  seller.UserID,
		Price:     in.Price,
		Quantity:  in.Quantity,
		ExpiresAt: in.ExpiresAt,
		GameID:    in.GameID,
		ItemID:    in.ItemID,
	}
	if l.Status == "" {
		l.Status = models.ListingStatusActive
	}
	if l.Quantity == 0 {
		l.Quantity = 1
	}
	if err := s.validateNew(l); err != nil {
		return nil, err
	}
	if err := s.verifyOwnership(ctx, l); err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, l); err != nil {
		log.Errorw("failed to create listing", "seller_id", seller.UserID, "error", err)
		return nil, err
	}

	log.Infow("listing created", "listing_id", l.ID, "type", l.Type, "seller_id", l.SellerID)
	return l, nil
}

func (s *ListingService) validateNew(l *models.Listing) error {
	switch {
	case l.Type == models.ListingTypeBundle:
		return ErrUnsupportedListingType
	case !l.Type.Valid():
		return invalid("unknown listing type %q", l.Type)
	case l.Status != models.ListingStatusActive && l.Status != models.ListingStatusDraft:
		return invalid("listing must be created ACTIVE or DRAFT")
	case !l.HasValidAsset():
		return invalid("%s listing requires exactly its asset reference", l.Type)
	}
	if err := s.validateExpiry(l.ExpiresAt); err != nil {
		return err
	}
	return s.validateTerms(l)
}

// validateTerms checks the fields a seller may change.
func (s *ListingService) validateTerms(l *models.Listing) error {
	switch {
	case l.Price.IsNegative():
		return invalid("price must not be negative")
	case l.Quantity < 1:
		return invalid("quantity must be at least 1")
	case l.Type == models.ListingTypeGameLicense && l.Quantity != 1:
		return invalid("license listings sell exactly one license")
	}
	return nil
}

func (s *ListingService) validateExpiry(expiresAt *time.Time) error {
	if expiresAt != nil && !expiresAt.After(s.now()) {
		return invalid("expiresAt must be in the future")
	}
	return nil
}

func (s *ListingService) verifyOwnership(ctx context.Context, l *models.Listing) error {
	switch l.Type {
	case models.ListingTypeGameLicense:
		owned, err := s.ownership.HasLicense(ctx, l.SellerID, *l.GameID)
		if err != nil {
			return err
		}
		if !owned {
			return ErrAssetNotOwned
		}
	case models.ListingTypeGameItem:
		held, err := s.ownership.ItemQuantity(ctx, l.SellerID, *l.ItemID)
		if err != nil {
			return err
		}
		if held < l.Quantity {
			return ErrAssetNotOwned
		}
	}
	return nil
}

// Get returns a listing with its effective status, reading through the cache.
func (s *ListingService) Get(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	log := logger.FromContext(ctx)

	if s.cache != nil {
		if l, err := s.cache.Get(ctx, id); err == nil {
			return s.effective(l), nil
		}
	}

	l, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, l); err != nil {
			log.Warnw("failed to cache listing", "listing_id", id, "error", err)
		}
	}
	return s.effective(l), nil
}

// List searches listings. Page defaults to 1 and limit to DefaultPageLimit,
// capped at MaxPageLimit.
func (s *ListingService) List(ctx context.Context, f models.ListingFilter) (*ListingPage, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageLimit
	}
	if f.Limit > MaxPageLimit {
		f.Limit = MaxPageLimit
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return nil, invalid("minPrice must not exceed maxPrice")
	}

	listings, total, err := s.store.List(ctx, f)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list listings", "error", err)
		return nil, err
	}
	for i := range listings {
		listings[i].Status = listings[i].EffectiveStatus(s.now())
	}

	return &ListingPage{
		Listings:   listings,
		Page:       f.Page,
		Limit:      f.Limit,
		Total:      total,
		TotalPages: (total + f.Limit - 1) / f.Limit,
	}, nil
}

// Update changes price, quantity, expiry or status of a listing. Only
// DRAFT -> ACTIVE and cancellation are accepted as status changes.
func (s *ListingService) Update(ctx context.Context, actor policy.Actor, id uuid.UUID, in UpdateListingInput) (*models.Listing, error) {
	l, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(actor, policy.ListingResource(l), policy.PermListingUpdate); err != nil {
		return nil, err
	}
	if l.Status.Terminal() {
		return nil, ErrListingTerminal
	}
	from := l.Status

	if in.Price != nil {
		l.Price = *in.Price
	}
	if in.Quantity != nil {
		l.Quantity = *in.Quantity
	}
	if in.ExpiresAt != nil {
		if err := s.validateExpiry(in.ExpiresAt); err != nil {
			return nil, err
		}
		l.ExpiresAt = in.ExpiresAt
	}
	if in.Status != nil && *in.Status != l.Status {
		next := *in.Status
		if next != models.ListingStatusActive && next != models.ListingStatusCancelled {
			return nil, ErrInvalidTransition
		}
		if !models.CanTransition(l.Status, next) {
			return nil, ErrInvalidTransition
		}
		l.Status = next
	}
	if err := s.validateTerms(l); err != nil {
		return nil, err
	}
	if l.Type == models.ListingTypeGameItem && in.Quantity != nil {
		if err := s.verifyOwnership(ctx, l); err != nil {
			return nil, err
		}
	}

	if err := s.store.Update(ctx, l, from); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrListingTerminal
		}
		logger.FromContext(ctx).Errorw("failed to update listing", "listing_id", id, "error", err)
		return nil, err
	}
	s.invalidate(ctx, id)

	logger.FromContext(ctx).Infow("listing updated", "listing_id", id, "status", l.Status, "actor_id", actor.UserID)
	return s.effective(l), nil
}

// Delete withdraws a listing. A DRAFT is removed, an ACTIVE listing is
// cancelled. The listing is returned as it was before removal.
func (s *ListingService) Delete(ctx context.Context, actor policy.Actor, id uuid.UUID) (*models.Listing, error) {
	log := logger.FromContext(ctx)

	l, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(actor, policy.ListingResource(l), policy.PermListingCancel); err != nil {
		return nil, err
	}

	switch l.Status {
	case models.ListingStatusDraft:
		err = s.store.Delete(ctx, id, models.ListingStatusDraft)
	case models.ListingStatusActive:
		l.Status = models.ListingStatusCancelled
		err = s.store.Update(ctx, l, models.ListingStatusActive)
	default:
		return nil, ErrListingTerminal
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrListingTerminal
	}
	if err != nil {
		log.Errorw("failed to withdraw listing", "listing_id", id, "error", err)
		return nil, err
	}
	s.invalidate(ctx, id)

	log.Infow("listing withdrawn", "listing_id", id, "status", l.Status, "actor_id", actor.UserID)
	return l, nil
}

func (s *ListingService) load(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	l, err := s.store.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get listing", "listing_id", id, "error", err)
		return nil, err
	}
	return l, nil
}

func (s *ListingService) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		logger.FromContext(ctx).Warnw("failed to invalidate cached listing", "listing_id", id, "error", err)
	}
}

func (s *ListingService) effective(l *models.Listing) *models.Listing {
	out := *l
	out.Status = l.EffectiveStatus(s.now())
	return &out
}
