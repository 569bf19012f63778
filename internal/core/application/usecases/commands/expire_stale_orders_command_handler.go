package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// ExpireStaleOrdersCommandHandler deletes pre-orders that were created but
// never accepted within the time-to-live. Orders in any later status are
// never touched.
type ExpireStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	clock      Clock
}

// NewExpireStaleOrdersCommandHandler creates a handler for the expiry sweep.
func NewExpireStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	clock Clock,
) ExpireStaleOrdersCommandHandler {
	return ExpireStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle processes the expiry sweep and returns the number of removed orders.
func (h *ExpireStaleOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := h.clock.Now().Add(-cmd.TTL())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	stale, err := repo.GetStaleCreated(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, o := range stale {
		if err = repo.Delete(ctx, o.ID()); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, o := range stale {
		_ = h.publisher.PublishOrderCanceled(ctx, o)
	}

	return len(stale), nil
}
