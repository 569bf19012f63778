package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// OrderEventPublisher notifies external collaborators about order lifecycle
// events. Publishing happens after the owning transaction commits; a failed
// publish must not undo the state change.
type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, aggregate *order.Order) error
	PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order) error
	PublishOrderCanceled(ctx context.Context, aggregate *order.Order) error
}
