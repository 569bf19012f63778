package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// ModifyOrderCommandHandler implements modification as destroy-and-recreate:
// the updated item list goes through a full validation and pricing pass, and
// only if that succeeds are the delete of the original and the insert of the
// replacement committed together. The replacement gets a fresh daily number;
// within the same day it is greater than the original's.
type ModifyOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	catalog    ports.CatalogReader
	settings   ports.SettingsProvider
	hours      ports.BusinessHours
	publisher  ports.OrderEventPublisher
	clock      Clock
	pricer     services.OrderPricer
}

// NewModifyOrderCommandHandler creates a handler for order modification.
func NewModifyOrderCommandHandler(
	uowFactory PlacementUoWFactory,
	catalog ports.CatalogReader,
	settings ports.SettingsProvider,
	hours ports.BusinessHours,
	publisher ports.OrderEventPublisher,
	clock Clock,
) ModifyOrderCommandHandler {
	return ModifyOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		settings:   settings,
		hours:      hours,
		publisher:  publisher,
		clock:      clock,
		pricer:     services.NewOrderPricer(),
	}
}

// Handle processes the modification command and returns the replacement order.
func (h *ModifyOrderCommandHandler) Handle(ctx context.Context, cmd ModifyOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
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

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	existing, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !existing.CanModify() {
		return nil, order.NewForbiddenTransitionError(
			existing.Status(), existing.Status().ModifyRefusal())
	}

	priced, err := h.pricer.Price(
		snapshot, settings, open, now, cmd.OrderType(), cmd.ScheduledAt(), cmd.Items())
	if err != nil {
		return nil, err
	}

	if err = repo.Delete(ctx, existing.ID()); err != nil {
		return nil, err
	}

	dailyNumber, err := uow.DailySequencer().NextDailyNumber(ctx, now)
	if err != nil {
		return nil, err
	}

	replacement, err := order.NewOrder(
		cmd.NewOrderID(),
		dailyNumber,
		cmd.OrderType(),
		existing.CustomerRef(),
		priced.Items,
		priced.TotalCost,
		priced.EstimatedMinutes,
		priced.ScheduledAt,
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, replacement); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	_ = h.publisher.PublishOrderCreated(ctx, replacement)

	return replacement, nil
}
