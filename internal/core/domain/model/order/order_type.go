package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Type distinguishes delivery orders from pickup orders. The minimum order
// value gate and the default time estimate both depend on it.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// Delivery orders are brought to the customer and are subject to the
	// configured minimum order value.
	Delivery

	// Pickup orders are collected by the customer at the restaurant.
	Pickup
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown: "unknown",
		Delivery:    "delivery",
		Pickup:      "pickup",
	}
}

// TypeFromString parses the persisted string form of an order type.
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if t != TypeUnknown && str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("order type is invalid",
		fmt.Errorf("%q is not a valid order type", s))
}

// Validate checks if the Type value is defined.
func (t Type) Validate() error {
	if t != Delivery && t != Pickup {
		return errs.NewValueIsInvalidErrorWithCause("order type is invalid",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the name used in persistence and messages.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
