package commands

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/guard"
)

var ErrModifyOrderCommandIsNotConstructed = errors.New(
	"ModifyOrderCommand must be created via NewModifyOrderCommand constructor",
)

// ModifyOrderCommand represents a customer's request to replace the item
// list of an order that has not been accepted yet. Modification is
// destroy-and-recreate: the original is deleted and a new order is created
// under NewOrderID with a fresh daily number.
type ModifyOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	newOrderID  kernel.UUID
	orderType   order.Type
	scheduledAt *time.Time
	items       []services.RequestedItem

	guard guard.ConstructorGuard
}

// NewModifyOrderCommand creates a command to modify an order.
func NewModifyOrderCommand(
	orderID kernel.UUID,
	newOrderID kernel.UUID,
	orderType order.Type,
	scheduledAt *time.Time,
	items []services.RequestedItem,
) (ModifyOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		newOrderID.Validate(),
		orderType.Validate(),
	); err != nil {
		return ModifyOrderCommand{}, err
	}

	return ModifyOrderCommand{
		orderID:     orderID,
		newOrderID:  newOrderID,
		orderType:   orderType,
		scheduledAt: scheduledAt,
		items:       items,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ModifyOrderCommand) Validate() error {
	return c.guard.Validate(ErrModifyOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being replaced.
func (c ModifyOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewOrderID returns the identifier the replacement order will be created under.
func (c ModifyOrderCommand) NewOrderID() kernel.UUID {
	return c.newOrderID
}

// OrderType returns the order type for the replacement order.
func (c ModifyOrderCommand) OrderType() order.Type {
	return c.orderType
}

// ScheduledAt returns the requested delivery time for the replacement order.
func (c ModifyOrderCommand) ScheduledAt() *time.Time {
	return c.scheduledAt
}

// Items returns the updated raw order lines.
func (c ModifyOrderCommand) Items() []services.RequestedItem {
	return c.items
}
