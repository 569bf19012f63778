package commands

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCustomerRefIsRequired = errors.New("customer reference is required")
)

// PlaceOrderCommand represents a request to validate, price, and persist a
// new order from the raw lines the conversational layer extracted.
//
// IdempotencyKey is optional; when set (typically the inbound message id) a
// redelivered message will not place a second order.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerRef    string
	orderType      order.Type
	scheduledAt    *time.Time
	idempotencyKey string
	items          []services.RequestedItem

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that the order id, customer reference, and order type are
// usable; the item list itself is the pricing engine's concern.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerRef string,
	orderType order.Type,
	scheduledAt *time.Time,
	idempotencyKey string,
	items []services.RequestedItem,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		scheduledAt:    scheduledAt,
		idempotencyKey: idempotencyKey,
		items:          items,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerRef(customerRef),
		cmd.setOrderType(orderType),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerRef returns the customer reference.
func (c PlaceOrderCommand) CustomerRef() string {
	return c.customerRef
}

// OrderType returns whether the order is delivery or pickup.
func (c PlaceOrderCommand) OrderType() order.Type {
	return c.orderType
}

// ScheduledAt returns the requested delivery time, nil for as soon as possible.
func (c PlaceOrderCommand) ScheduledAt() *time.Time {
	return c.scheduledAt
}

// IdempotencyKey returns the deduplication key, empty when none was given.
func (c PlaceOrderCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

// Items returns the raw requested order lines.
func (c PlaceOrderCommand) Items() []services.RequestedItem {
	return c.items
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerRef(customerRef string) error {
	if customerRef == "" {
		return ErrCustomerRefIsRequired
	}
	c.customerRef = customerRef
	return nil
}

func (c *PlaceOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	c.orderType = orderType
	return nil
}
