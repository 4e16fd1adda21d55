package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-game-marketplace/internal/logger"
	"github.com/sbilibin2017/gw-game-marketplace/internal/models"
)

// ListingCacheRepository caches listing snapshots in Redis.
type ListingCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached listings
}

// NewListingCacheRepository creates a new cache repository with the given TTL.
func NewListingCacheRepository(client *redis.Client, expiration time.Duration) *ListingCacheRepository {
	return &ListingCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func listingKey(id uuid.UUID) string {
	return fmt.Sprintf("listing:%s", id)
}

// Get returns the cached listing, or an error when it is not cached.
func (r *ListingCacheRepository) Get(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	key := listingKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Debugw("cache get", "key", key, "error", err)
		if err == redis.Nil {
			return nil, fmt.Errorf("listing %s not found in cache", id)
		}
		return nil, err
	}

	var l models.Listing
	if err := json.Unmarshal(val, &l); err != nil {
		logger.Log.Warnw("cache entry corrupted", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Debugw("cache hit", "key", key)
	return &l, nil
}

// Set caches the listing with the repository TTL.
func (r *ListingCacheRepository) Set(ctx context.Context, l *models.Listing) error {
	key := listingKey(l.ID)

	data, err := json.Marshal(l)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Debugw("cache set", "key", key, "error", err)

	return err
}

// Invalidate drops the cached listing.
func (r *ListingCacheRepository) Invalidate(ctx context.Context, id uuid.UUID) error {
	key := listingKey(id)

	err := r.client.Del(ctx, key).Err()
	logger.Log.Debugw("cache invalidate", "key", key, "error", err)

	return err
}
