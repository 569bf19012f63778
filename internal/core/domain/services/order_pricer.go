package services

import (
	"math"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/domain/model/order"
)

// OrderPricer combines item-level prices into order totals and enforces the
// order-level gates. It is the entry point of the validation and pricing
// engine: one call takes raw requested lines to a persistable priced order
// or to a structured failure report.
type OrderPricer struct {
	itemValidator ItemValidator
}

// NewOrderPricer creates a new OrderPricer instance.
func NewOrderPricer() OrderPricer {
	return OrderPricer{itemValidator: NewItemValidator()}
}

// Price validates and prices one submitted order.
//
// Order-level gates run before any per-item work because they make the whole
// order moot: NotAcceptingOrders, then RestaurantClosed, then EmptyOrder.
// After that, every item is validated in full and all violations are
// returned together as one *ValidationErrors. A delivery order whose total
// is below the configured minimum fails with MinimumOrderValueNotMet
// carrying current, minimum, and the difference.
//
// now must already be localized to the restaurant's timezone; the engine
// never reads the wall clock itself. The time estimate comes from the
// scheduled delivery time when one was requested (clamped at zero), or from
// the configured per-type estimate otherwise.
func (p OrderPricer) Price(
	snapshot menu.Snapshot,
	settings RestaurantSettings,
	isOpen bool,
	now time.Time,
	orderType order.Type,
	scheduledAt *time.Time,
	items []RequestedItem,
) (PricedOrder, error) {
	if !settings.AcceptingOrders {
		return PricedOrder{}, NewOrderError(NotAcceptingOrders)
	}
	if !isOpen {
		return PricedOrder{}, NewOrderError(RestaurantClosed)
	}
	if len(items) == 0 {
		return PricedOrder{}, NewOrderError(EmptyOrder)
	}

	var violations []*ValidationError
	pricedItems := make([]order.Item, 0, len(items))
	total := kernel.ZeroMoney()

	for i, requested := range items {
		item, itemViolations := p.itemValidator.Validate(snapshot, i, requested)
		if len(itemViolations) > 0 {
			violations = append(violations, itemViolations...)
			continue
		}
		pricedItems = append(pricedItems, item)
		total = total.Add(item.TotalPrice)
	}

	if len(violations) > 0 {
		return PricedOrder{}, NewValidationErrors(violations)
	}

	if orderType == order.Delivery && total.LessThan(settings.MinimumDeliveryOrderValue) {
		return PricedOrder{}, NewMinimumValueError(total, settings.MinimumDeliveryOrderValue)
	}

	return PricedOrder{
		Items:            pricedItems,
		TotalCost:        total,
		EstimatedMinutes: estimateMinutes(settings, orderType, scheduledAt, now),
		ScheduledAt:      scheduledAt,
	}, nil
}

// estimateMinutes computes the customer-facing ETA. A requested scheduled
// time wins over the configured estimates and is clamped at zero when it
// already passed.
func estimateMinutes(
	settings RestaurantSettings,
	orderType order.Type,
	scheduledAt *time.Time,
	now time.Time,
) int {
	if scheduledAt != nil {
		minutes := int(math.Round(scheduledAt.Sub(now).Minutes()))
		if minutes < 0 {
			return 0
		}
		return minutes
	}

	if orderType == order.Pickup {
		return settings.EstimatedPickupMinutes
	}
	return settings.EstimatedDeliveryMinutes
}
