package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// ErrDuplicateOrder is returned when the command's idempotency key was
// already used, i.e. the inbound message was redelivered after a previous
// placement succeeded.
var ErrDuplicateOrder = errors.New("order was already placed for this idempotency key")

// PlaceOrderCommandHandler runs one full validation and pricing pass and
// persists the resulting order in created status with a fresh daily number.
type PlaceOrderCommandHandler struct {
	uowFactory  PlacementUoWFactory
	catalog     ports.CatalogReader
	settings    ports.SettingsProvider
	hours       ports.BusinessHours
	idempotency ports.IdempotencyStore
	publisher   ports.OrderEventPublisher
	clock       Clock
	pricer      services.OrderPricer
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory PlacementUoWFactory,
	catalog ports.CatalogReader,
	settings ports.SettingsProvider,
	hours ports.BusinessHours,
	idempotency ports.IdempotencyStore,
	publisher ports.OrderEventPublisher,
	clock Clock,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:  uowFactory,
		catalog:     catalog,
		settings:    settings,
		hours:       hours,
		idempotency: idempotency,
		publisher:   publisher,
		clock:       clock,
		pricer:      services.NewOrderPricer(),
	}
}

// Handle processes the order placement command.
//
// A *services.ValidationError or *services.ValidationErrors return value is
// the engine's structured failure report for the customer; every other error
// is an infrastructure failure.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if key := cmd.IdempotencyKey(); key != "" {
		fresh, err := h.idempotency.Reserve(ctx, key)
		if err != nil {
			return nil, err
		}
		if !fresh {
			return nil, ErrDuplicateOrder
		}
	}

	settings, err := h.settings.Settings(ctx)
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	open, err := h.hours.IsOpen(ctx, now)
	if err != nil {
		return nil, err
	}

	snapshot, err := h.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	priced, err := h.pricer.Price(
		snapshot, settings, open, now, cmd.OrderType(), cmd.ScheduledAt(), cmd.Items())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dailyNumber, err := uow.DailySequencer().NextDailyNumber(ctx, now)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		dailyNumber,
		cmd.OrderType(),
		cmd.CustomerRef(),
		priced.Items,
		priced.TotalCost,
		priced.EstimatedMinutes,
		priced.ScheduledAt,
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// The order is committed; a failed publish must not undo it.
	_ = h.publisher.PublishOrderCreated(ctx, newOrder)

	return newOrder, nil
}
