package services

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// RequestedCustomization is one raw pizza customization as submitted by the
// conversational layer, before validation and enrichment.
type RequestedCustomization struct {
	IngredientID string
	Half         order.Half
	Action       order.Action
}

// RequestedItem is one raw order line: what the customer asked for, before
// any catalog validation or pricing.
type RequestedItem struct {
	ProductID      string
	VariantID      string
	Quantity       int
	ModifierIDs    []string
	Customizations []RequestedCustomization
	Comment        string
}

// RestaurantSettings is the restaurant configuration consumed by the pricing
// engine. It is supplied by an external collaborator per validation pass.
type RestaurantSettings struct {
	AcceptingOrders           bool
	EstimatedPickupMinutes    int
	EstimatedDeliveryMinutes  int
	MinimumDeliveryOrderValue kernel.Money
}

// PricedOrder is the engine's output: fully priced items, the order total,
// and the time estimate, ready for persistence by the caller.
type PricedOrder struct {
	Items            []order.Item
	TotalCost        kernel.Money
	EstimatedMinutes int
	ScheduledAt      *time.Time
}
