package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"groupcart/internal/domain/pricing"
	"groupcart/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const snapshotKeyPrefix = "pricing:snapshot:"

// PricingSnapshotCache memoizes computed quotes in Redis for a short TTL so
// the quoted amount stays stable between intent creation and settlement.
// Advisory only: a miss or a race is never an error, just a recompute.
type PricingSnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPricingSnapshotCache(client *redis.Client, ttl time.Duration) *PricingSnapshotCache {
	return &PricingSnapshotCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached quote for the collection, or (nil, nil) on a miss.
func (c *PricingSnapshotCache) Get(ctx context.Context, collectionID uuid.UUID) (*pricing.Quote, error) {
	data, err := c.client.Get(ctx, snapshotKey(collectionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to read pricing snapshot")
	}

	var quote pricing.Quote
	if err := json.Unmarshal(data, &quote); err != nil {
		// Treat a corrupt entry as a miss; it will be overwritten.
		return nil, nil
	}
	return &quote, nil
}

// Set stores the quote under the configured TTL. Last writer wins.
func (c *PricingSnapshotCache) Set(ctx context.Context, quote *pricing.Quote) error {
	data, err := json.Marshal(quote)
	if err != nil {
		return errs.Wrap(err, "failed to marshal pricing snapshot")
	}
	if err := c.client.Set(ctx, snapshotKey(quote.CollectionID), data, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write pricing snapshot")
	}
	return nil
}

func snapshotKey(collectionID uuid.UUID) string {
	return snapshotKeyPrefix + collectionID.String()
}
