package commands

import (
	"context"
)

// MarkOrderPaidCommandHandler records a payment confirmation on an order.
// Confirming an already paid order is a no-op.
type MarkOrderPaidCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

// NewMarkOrderPaidCommandHandler creates a handler for payment confirmations.
func NewMarkOrderPaidCommandHandler(uowFactory OrderUoWFactory, clock Clock) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle processes the payment confirmation command.
func (h *MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	existing, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = existing.MarkPaid(h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
