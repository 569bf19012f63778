package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its permanent unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order row entirely. Cancellation before acceptance
	// and the destroy half of modification both hard-delete the row rather
	// than soft-cancelling it.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetStaleCreated retrieves orders still in created status whose creation
	// time is before the given cutoff. Used by the expiry job.
	GetStaleCreated(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
