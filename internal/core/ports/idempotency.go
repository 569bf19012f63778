package ports

import "context"

// IdempotencyStore deduplicates order placement across message redeliveries.
// Reserve returns false when the key was already used within its TTL.
type IdempotencyStore interface {
	Reserve(ctx context.Context, key string) (bool, error)
}
