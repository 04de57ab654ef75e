// Package cartstore persists session carts in Redis. Each cart is a hash
// keyed by session, mapping product identifier to requested quantity. Carts
// expire after a period of inactivity; an expired or missing cart reads
// back as an empty one.
package cartstore

import (
	"context"
	"strconv"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long an untouched cart survives before Redis evicts it.
const DefaultTTL = 7 * 24 * time.Hour

const keyPrefix = "cart:"

// RedisCartStore implements ports.CartStore on a Redis hash per session.
type RedisCartStore struct {
	client *redis.Client
}

// NewRedisCartStore creates a cart store on the given Redis client.
func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{client: client}
}

// Get retrieves the session's cart. A missing key yields an empty cart.
// Hash entries that fail to parse are dropped rather than failing the read;
// a corrupt entry must not lock a shopper out of their cart.
func (s *RedisCartStore) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	fields, err := s.client.HGetAll(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		return nil, err
	}

	items := make(map[kernel.UUID]int, len(fields))
	for rawID, rawQty := range fields {
		productID, idErr := kernel.UUIDFromString(rawID)
		if idErr != nil {
			continue
		}

		qty, qtyErr := strconv.Atoi(rawQty)
		if qtyErr != nil {
			continue
		}

		items[productID] = qty
	}

	return cart.RestoreCart(items), nil
}

// Save replaces the session's cart contents and refreshes its TTL.
// The delete and rewrite run in one pipeline so readers never observe a
// half-written cart.
func (s *RedisCartStore) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	key := keyPrefix + sessionID

	if c.IsEmpty() {
		return s.client.Del(ctx, key).Err()
	}

	fields := make(map[string]string, len(c.Items()))
	for productID, qty := range c.Items() {
		fields[productID.String()] = strconv.Itoa(qty)
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, DefaultTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// Clear removes the session's cart. Clearing an absent cart is a no-op.
func (s *RedisCartStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, keyPrefix+sessionID).Err()
}
