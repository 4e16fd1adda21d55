package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to ListingStatus
		want     bool
	}{
		{ListingStatusDraft, ListingStatusActive, true},
		{ListingStatusDraft, ListingStatusCancelled, true},
		{ListingStatusDraft, ListingStatusSold, false},
		{ListingStatusActive, ListingStatusSold, true},
		{ListingStatusActive, ListingStatusCancelled, true},
		{ListingStatusActive, ListingStatusExpired, true},
		{ListingStatusActive, ListingStatusDraft, false},
		{ListingStatusSold, ListingStatusActive, false},
		{ListingStatusSold, ListingStatusCancelled, false},
		{ListingStatusCancelled, ListingStatusActive, false},
		{ListingStatusExpired, ListingStatusActive, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestListingStatus_Terminal(t *testing.T) {
	assert.True(t, ListingStatusSold.Terminal())
	assert.True(t, ListingStatusCancelled.Terminal())
	assert.False(t, ListingStatusActive.Terminal())
	assert.False(t, ListingStatusDraft.Terminal())
	assert.False(t, ListingStatusExpired.Terminal())
}

func TestListing_EffectiveStatus(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name        string
		status      ListingStatus
		expiresAt   *time.Time
		want        ListingStatus
		purchasable bool
	}{
		{"active without expiry", ListingStatusActive, nil, ListingStatusActive, true},
		{"active not yet expired", ListingStatusActive, &future, ListingStatusActive, true},
		{"active past expiry", ListingStatusActive, &past, ListingStatusExpired, false},
		{"sold past expiry stays sold", ListingStatusSold, &past, ListingStatusSold, false},
		{"draft", ListingStatusDraft, nil, ListingStatusDraft, false},
		{"cancelled", ListingStatusCancelled, nil, ListingStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Listing{Status: tt.status, ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, l.EffectiveStatus(now))
			assert.Equal(t, tt.purchasable, l.IsPurchasable(now))
			assert.Equal(t, tt.status, l.Status)
		})
	}
}

func TestListing_HasValidAsset(t *testing.T) {
	id := uuid.New()

	assert.True(t, (&Listing{Type: ListingTypeGameLicense, GameID: &id}).HasValidAsset())
	assert.False(t, (&Listing{Type: ListingTypeGameLicense, ItemID: &id}).HasValidAsset())
	assert.False(t, (&Listing{Type: ListingTypeGameLicense, GameID: &id, ItemID: &id}).HasValidAsset())
	assert.True(t, (&Listing{Type: ListingTypeGameItem, ItemID: &id}).HasValidAsset())
	assert.False(t, (&Listing{Type: ListingTypeGameItem}).HasValidAsset())
	assert.False(t, (&Listing{Type: ListingTypeBundle, GameID: &id}).HasValidAsset())
}

func TestListingFilter_Offset(t *testing.T) {
	assert.Equal(t, 0, ListingFilter{Page: 0, Limit: 20}.Offset())
	assert.Equal(t, 0, ListingFilter{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, ListingFilter{Page: 3, Limit: 20}.Offset())
}

func TestSplitPrice(t *testing.T) {
	fee, credit := SplitPrice(decimal.NewFromInt(100))
	assert.True(t, fee.Equal(decimal.NewFromInt(5)), "fee %s", fee)
	assert.True(t, credit.Equal(decimal.NewFromInt(95)), "credit %s", credit)

	fee, credit = SplitPrice(decimal.RequireFromString("19.99"))
	assert.True(t, fee.Equal(decimal.RequireFromString("0.9995")), "fee %s", fee)
	assert.True(t, credit.Equal(decimal.RequireFromString("18.9905")), "credit %s", credit)
	assert.True(t, fee.Add(credit).Equal(decimal.RequireFromString("19.99")))
}
