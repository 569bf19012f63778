package order

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root produced by the validation and pricing engine.
//
// Invariants:
//   - valid unique identifier and positive daily number
//   - at least one priced item; total cost equals the sum of item totals
//   - status transitions follow the lifecycle state machine
//   - can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the permanent unique identifier
	id kernel.UUID

	// dailyNumber is the per-calendar-day sequential number, unique within
	// its day only
	dailyNumber int

	// orderType is delivery or pickup
	orderType Type

	// status is the current lifecycle state
	status Status

	// paymentStatus tracks settlement independently of preparation
	paymentStatus PaymentStatus

	// totalCost is the sum of item totals, fixed at creation time
	totalCost kernel.Money

	// customerRef identifies the ordering customer in the surrounding system
	customerRef string

	// scheduledAt is the requested delivery time, nil for as-soon-as-possible
	scheduledAt *time.Time

	// estimatedMinutes is the ETA computed by the pricing engine
	estimatedMinutes int

	// items are the priced order lines
	items []Item

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in status created with payment pending.
// It validates every field and verifies that totalCost equals the sum of
// the items' total prices; the total is never recomputed afterwards.
func NewOrder(
	id kernel.UUID,
	dailyNumber int,
	orderType Type,
	customerRef string,
	items []Item,
	totalCost kernel.Money,
	estimatedMinutes int,
	scheduledAt *time.Time,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:           Created,
		paymentStatus:    PaymentPending,
		estimatedMinutes: estimatedMinutes,
		scheduledAt:      scheduledAt,
		createdAt:        now,
		updatedAt:        now,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDailyNumber(dailyNumber),
		o.setOrderType(orderType),
		o.setCustomerRef(customerRef),
		o.setItems(items, totalCost),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running the
// creation-time pricing invariants, but still validating every stored field.
func RestoreOrder(
	id kernel.UUID,
	dailyNumber int,
	orderType Type,
	status Status,
	paymentStatus PaymentStatus,
	customerRef string,
	items []Item,
	totalCost kernel.Money,
	estimatedMinutes int,
	scheduledAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
		paymentStatus.Validate(),
		orderType.Validate(),
	); err != nil {
		return nil, err
	}
	if dailyNumber <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("daily number is invalid",
			fmt.Errorf("%d is not greater than 0", dailyNumber))
	}

	return &Order{
		id:               id,
		dailyNumber:      dailyNumber,
		orderType:        orderType,
		status:           status,
		paymentStatus:    paymentStatus,
		totalCost:        totalCost,
		customerRef:      customerRef,
		scheduledAt:      scheduledAt,
		estimatedMinutes: estimatedMinutes,
		items:            items,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their permanent unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's permanent unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// DailyNumber returns the per-calendar-day sequential number.
func (o *Order) DailyNumber() int {
	return o.dailyNumber
}

// OrderType returns whether the order is delivery or pickup.
func (o *Order) OrderType() Type {
	return o.orderType
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// TotalCost returns the order total fixed at creation time.
func (o *Order) TotalCost() kernel.Money {
	return o.totalCost
}

// CustomerRef returns the customer reference.
func (o *Order) CustomerRef() string {
	return o.customerRef
}

// ScheduledAt returns the requested delivery time, nil when none was given.
func (o *Order) ScheduledAt() *time.Time {
	return o.scheduledAt
}

// EstimatedMinutes returns the ETA computed at pricing time.
func (o *Order) EstimatedMinutes() int {
	return o.estimatedMinutes
}

// Items returns the priced order lines.
func (o *Order) Items() []Item {
	return o.items
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// CanCancel reports whether the order may still be canceled.
func (o *Order) CanCancel() bool {
	return o.status.CanCancel()
}

// CanModify reports whether the order may still be modified
// (modification is destroy-and-recreate).
func (o *Order) CanModify() bool {
	return o.status.CanModify()
}

// ChangeStatus performs a staff- or payment-event-driven transition to target.
// Illegal transitions return a ForbiddenTransitionError with a fixed,
// status-specific message.
func (o *Order) ChangeStatus(target Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// MarkPaid records payment settlement. Marking an already-paid order is a
// no-op so payment webhooks can be redelivered safely.
func (o *Order) MarkPaid(now time.Time) error {
	if o.paymentStatus == PaymentPaid {
		return nil
	}

	o.paymentStatus = PaymentPaid
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDailyNumber(dailyNumber int) error {
	if dailyNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("daily number is invalid",
			fmt.Errorf("%d is not greater than 0", dailyNumber))
	}
	o.dailyNumber = dailyNumber
	return nil
}

func (o *Order) setOrderType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setCustomerRef(customerRef string) error {
	if customerRef == "" {
		return errs.NewValueIsRequiredError("customerRef")
	}
	o.customerRef = customerRef
	return nil
}

func (o *Order) setItems(items []Item, totalCost kernel.Money) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	sum := kernel.ZeroMoney()
	for _, item := range items {
		sum = sum.Add(item.TotalPrice)
	}
	if !sum.IsEqual(totalCost) {
		return errs.NewValueIsInvalidErrorWithCause("total cost is invalid",
			fmt.Errorf("total %s does not match item sum %s", totalCost, sum))
	}

	o.items = items
	o.totalCost = totalCost
	return nil
}
