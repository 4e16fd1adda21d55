package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingType identifies the kind of asset a listing sells.
type ListingType string

// Supported listing types
const (
	ListingTypeGameLicense ListingType = "GAME_LICENSE"
	ListingTypeGameItem    ListingType = "GAME_ITEM"
	ListingTypeBundle      ListingType = "BUNDLE"
)

// Valid reports whether t is a known listing type.
func (t ListingType) Valid() bool {
	switch t {
	case ListingTypeGameLicense, ListingTypeGameItem, ListingTypeBundle:
		return true
	}
	return false
}

// ListingStatus is a state of the listing lifecycle.
type ListingStatus string

// Listing lifecycle states
const (
	ListingStatusDraft     ListingStatus = "DRAFT"
	ListingStatusActive    ListingStatus = "ACTIVE"
	ListingStatusSold      ListingStatus = "SOLD"
	ListingStatusCancelled ListingStatus = "CANCELLED"
	ListingStatusExpired   ListingStatus = "EXPIRED"
)

// Valid reports whether s is a known listing status.
func (s ListingStatus) Valid() bool {
	switch s {
	case ListingStatusDraft, ListingStatusActive, ListingStatusSold,
		ListingStatusCancelled, ListingStatusExpired:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s ListingStatus) Terminal() bool {
	return s == ListingStatusSold || s == ListingStatusCancelled
}

// listingTransitions lists the stored-status transitions. ACTIVE -> EXPIRED
// is derived from ExpiresAt and never written by a transition.
var listingTransitions = map[ListingStatus][]ListingStatus{
	ListingStatusDraft:  {ListingStatusActive, ListingStatusCancelled},
	ListingStatusActive: {ListingStatusSold, ListingStatusCancelled, ListingStatusExpired},
}

// CanTransition reports whether a listing may move from one status to another.
func CanTransition(from, to ListingStatus) bool {
	for _, next := range listingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Listing represents a listings row in the database
type Listing struct {
	ID        uuid.UUID       `json:"id" db:"id"`                         // Unique listing identifier
	Type      ListingType     `json:"type" db:"type"`                     // GAME_LICENSE, GAME_ITEM or BUNDLE
	Status    ListingStatus   `json:"status" db:"status"`                 // Stored lifecycle status
	SellerID  uuid.UUID       `json:"sellerId" db:"seller_id"`            // User selling the asset
	Price     decimal.Decimal `json:"price" db:"price"`                   // Total price of the listing
	Quantity  int             `json:"quantity" db:"quantity"`             // Number of units sold together
	ExpiresAt *time.Time      `json:"expiresAt,omitempty" db:"expires_at"` // Optional expiry
	GameID    *uuid.UUID      `json:"gameId,omitempty" db:"game_id"`       // Set for GAME_LICENSE listings
	ItemID    *uuid.UUID      `json:"itemId,omitempty" db:"item_id"`       // Set for GAME_ITEM listings
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`          // Creation timestamp
	UpdatedAt time.Time       `json:"updatedAt" db:"updated_at"`          // Last update timestamp
}

// IsExpired reports whether the listing has an expiry that lies before now.
func (l *Listing) IsExpired(now time.Time) bool {
	return l.ExpiresAt != nil && l.ExpiresAt.Before(now)
}

// EffectiveStatus is the status as seen by readers: an ACTIVE listing past
// its expiry reads as EXPIRED even though the stored status is unchanged.
func (l *Listing) EffectiveStatus(now time.Time) ListingStatus {
	if l.Status == ListingStatusActive && l.IsExpired(now) {
		return ListingStatusExpired
	}
	return l.Status
}

// IsPurchasable reports whether the listing can be bought at now.
func (l *Listing) IsPurchasable(now time.Time) bool {
	return l.EffectiveStatus(now) == ListingStatusActive
}

// HasValidAsset reports whether exactly the asset reference required by the
// listing type is set.
func (l *Listing) HasValidAsset() bool {
	switch l.Type {
	case ListingTypeGameLicense:
		return l.GameID != nil && l.ItemID == nil
	case ListingTypeGameItem:
		return l.ItemID != nil && l.GameID == nil
	}
	return false
}

// ListingFilter narrows a listing search. Nil fields are not applied.
type ListingFilter struct {
	Type     *ListingType
	Status   *ListingStatus
	SellerID *uuid.UUID
	GameID   *uuid.UUID
	ItemID   *uuid.UUID
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Page     int
	Limit    int
}

// Offset returns the row offset of the filter's page.
func (f ListingFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}
