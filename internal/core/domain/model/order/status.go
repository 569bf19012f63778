package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a one-way
// state machine: every non-initial transition is irreversible.
//
// State transitions:
//
//	created ──> accepted ──> in_preparation ──> prepared ──> in_delivery ──> finished
//	   │
//	   └──> canceled
//
// canceled and finished are terminal. Cancellation after acceptance is
// out-of-band (staff contacting the customer) and is rejected here.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status produced by the pricing engine.
	// Only orders in this status may be canceled or modified.
	Created

	// Accepted means restaurant staff confirmed the order.
	Accepted

	// InPreparation means the kitchen started working on the order.
	InPreparation

	// Prepared means the order is ready for handoff.
	Prepared

	// InDelivery means the order left with a courier.
	InDelivery

	// Finished is the terminal success status.
	Finished

	// Canceled is the terminal status for orders destroyed before acceptance.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "unknown",
		Created:       "created",
		Accepted:      "accepted",
		InPreparation: "in_preparation",
		Prepared:      "prepared",
		InDelivery:    "in_delivery",
		Finished:      "finished",
		Canceled:      "canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:       "created",
		Accepted:      "accepted",
		InPreparation: "in_preparation",
		Prepared:      "prepared",
		InDelivery:    "in_delivery",
		Finished:      "finished",
		Canceled:      "canceled",
	}
}

// next maps every status to its single legal successor on the happy path.
// Cancellation is handled separately because it only applies to Created.
func next() map[Status]Status {
	return map[Status]Status{
		Created:       Accepted,
		Accepted:      InPreparation,
		InPreparation: Prepared,
		Prepared:      InDelivery,
		InDelivery:    Finished,
	}
}

// StatusFromString parses the persisted string form of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the seven defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name used in persistence and messages.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Finished || s == Canceled
}

// CanCancel reports whether cancellation is permitted. True only for Created:
// once staff accepted the order, cancellation is out-of-band.
func (s Status) CanCancel() bool {
	return s == Created
}

// CanModify reports whether modification is permitted. Modification is
// destroy-and-recreate, so it shares the Created-only rule with cancellation.
func (s Status) CanModify() bool {
	return s == Created
}

// TransitionTo validates and performs a staff-driven transition to target.
// Only the immediate successor on the status chain is legal; Canceled is
// reachable solely from Created.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if target == Canceled {
		if !s.CanCancel() {
			return 0, NewForbiddenTransitionError(s, s.CancelRefusal())
		}
		return Canceled, nil
	}

	if successor, ok := next()[s]; ok && successor == target {
		return target, nil
	}

	return 0, NewForbiddenTransitionError(s, fmt.Sprintf(
		"an order in status %q cannot move to %q", s.String(), target.String()))
}

// CancelRefusal returns the fixed customer-facing message explaining why an
// order in this status cannot be canceled. Undefined for Created, which can.
func (s Status) CancelRefusal() string {
	messages := map[Status]string{
		Accepted:      "your order was already accepted by the restaurant and can no longer be canceled here; please contact the staff",
		InPreparation: "the kitchen already started preparing your order, so it can no longer be canceled",
		Prepared:      "your order is already prepared and can no longer be canceled",
		InDelivery:    "your order is already out for delivery and can no longer be canceled",
		Finished:      "this order was already delivered and cannot be canceled",
		Canceled:      "this order was already canceled",
	}
	if msg, ok := messages[s]; ok {
		return msg
	}
	return "this order cannot be canceled"
}

// ModifyRefusal returns the fixed customer-facing message explaining why an
// order in this status cannot be modified.
func (s Status) ModifyRefusal() string {
	messages := map[Status]string{
		Accepted:      "your order was already accepted by the restaurant and can no longer be changed here; please contact the staff",
		InPreparation: "the kitchen already started preparing your order, so it can no longer be changed",
		Prepared:      "your order is already prepared and can no longer be changed",
		InDelivery:    "your order is already out for delivery and can no longer be changed",
		Finished:      "this order was already delivered and cannot be changed",
		Canceled:      "this order was canceled and cannot be changed",
	}
	if msg, ok := messages[s]; ok {
		return msg
	}
	return "this order cannot be changed"
}

// ForbiddenTransitionError reports an attempt to cancel, modify, or advance
// an order from a status that does not permit it. Message is fixed per
// status so the customer always understands why the action was refused.
type ForbiddenTransitionError struct {
	From    Status
	Message string
}

// NewForbiddenTransitionError creates a ForbiddenTransitionError.
func NewForbiddenTransitionError(from Status, message string) *ForbiddenTransitionError {
	return &ForbiddenTransitionError{From: from, Message: message}
}

func (e *ForbiddenTransitionError) Error() string {
	return e.Message
}
