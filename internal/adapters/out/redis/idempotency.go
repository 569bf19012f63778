// Package redis implements the placement idempotency store. A key is
// reserved with SET NX and a TTL, so a redelivered placement message within
// the window is recognized as a duplicate without a database round trip.
package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "ordering:idempotency:"

// IdempotencyStore implements the idempotency port on a redis client.
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore creates a store with the given reservation TTL.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Reserve atomically claims the key. Returns false when the key was already
// claimed within its TTL, meaning the placement is a redelivery.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string) (bool, error) {
	return s.client.SetNX(ctx, keyPrefix+key, 1, s.ttl).Result()
}
