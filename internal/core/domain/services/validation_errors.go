package services

import (
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
)

// ErrorKind enumerates every way a submitted order can fail validation.
// The set is closed: the engine has no concept of an unclassifiable failure.
type ErrorKind int

const (
	// KindUnknown catches uninitialized kinds; it never leaves the engine.
	KindUnknown ErrorKind = iota

	// InvalidProduct: the requested product id is not in the catalog, or the
	// catalog record cannot be priced at all.
	InvalidProduct

	// VariantRequired: the product is priced through variants and none (or an
	// unknown/unavailable one) was selected.
	VariantRequired

	// ModifierGroupRequired: a required modifier group has no selection.
	ModifierGroupRequired

	// ModifierSelectionCountInvalid: the number of selections in a group is
	// outside its allowed range.
	ModifierSelectionCountInvalid

	// PizzaCustomizationRequired: a pizza has no positive (ADD) customization.
	PizzaCustomizationRequired

	// InvalidPizzaConfiguration: FULL mixed with halves, unknown ingredient,
	// duplicated ingredient+half pair, or malformed half/action.
	InvalidPizzaConfiguration

	// ItemNotAvailable: a product, modifier, or added ingredient is currently
	// marked unavailable.
	ItemNotAvailable

	// MissingRequiredField: a structurally required input is absent or
	// malformed, e.g. a non-positive quantity.
	MissingRequiredField

	// EmptyOrder: no valid items remain after filtering.
	EmptyOrder

	// MinimumOrderValueNotMet: a delivery order total is below the configured
	// minimum. Carries current, minimum, and the difference.
	MinimumOrderValueNotMet

	// NotAcceptingOrders: the restaurant is not taking orders right now.
	NotAcceptingOrders

	// RestaurantClosed: outside business hours.
	RestaurantClosed
)

func getErrorKindStrings() map[ErrorKind]string {
	return map[ErrorKind]string{
		KindUnknown:                   "Unknown",
		InvalidProduct:                "InvalidProduct",
		VariantRequired:               "VariantRequired",
		ModifierGroupRequired:         "ModifierGroupRequired",
		ModifierSelectionCountInvalid: "ModifierSelectionCountInvalid",
		PizzaCustomizationRequired:    "PizzaCustomizationRequired",
		InvalidPizzaConfiguration:     "InvalidPizzaConfiguration",
		ItemNotAvailable:              "ItemNotAvailable",
		MissingRequiredField:          "MissingRequiredField",
		EmptyOrder:                    "EmptyOrder",
		MinimumOrderValueNotMet:       "MinimumOrderValueNotMet",
		NotAcceptingOrders:            "NotAcceptingOrders",
		RestaurantClosed:              "RestaurantClosed",
	}
}

// String returns the stable kind name used in API payloads and logs.
func (k ErrorKind) String() string {
	if s, ok := getErrorKindStrings()[k]; ok {
		return s
	}
	return "Unknown"
}

// ValidationError is one structured validation failure. Which payload fields
// are set depends on the kind; message localization is a presentation-layer
// concern and does not live here.
type ValidationError struct {
	Kind ErrorKind

	// ItemIndex is the zero-based position of the offending requested item,
	// or -1 for order-level failures.
	ItemIndex int

	// Subject names what failed: a product/modifier/ingredient display name
	// or id, or the missing field name.
	Subject string

	// Names carries option lists for the message, e.g. the valid variant
	// names for VariantRequired.
	Names []string

	// CurrentValue, MinimumValue, and Difference are set for
	// MinimumOrderValueNotMet so the caller can prompt "add X more".
	CurrentValue kernel.Money
	MinimumValue kernel.Money
	Difference   kernel.Money
}

// NewOrderError creates an order-level validation error.
func NewOrderError(kind ErrorKind) *ValidationError {
	return &ValidationError{Kind: kind, ItemIndex: -1}
}

// NewItemError creates a validation error tied to one requested item.
func NewItemError(kind ErrorKind, itemIndex int, subject string) *ValidationError {
	return &ValidationError{Kind: kind, ItemIndex: itemIndex, Subject: subject}
}

// NewMinimumValueError creates the MinimumOrderValueNotMet failure with the
// amounts the caller needs to prompt the customer.
func NewMinimumValueError(current, minimum kernel.Money) *ValidationError {
	return &ValidationError{
		Kind:         MinimumOrderValueNotMet,
		ItemIndex:    -1,
		CurrentValue: current,
		MinimumValue: minimum,
		Difference:   minimum.Sub(current),
	}
}

// Error renders a neutral, developer-readable message for the kind.
func (e *ValidationError) Error() string {
	switch e.Kind {
	case InvalidProduct:
		return fmt.Sprintf("%s: product %q is not on the menu", e.Kind, e.Subject)
	case VariantRequired:
		return fmt.Sprintf("%s: product %q requires one of the variants: %s",
			e.Kind, e.Subject, strings.Join(e.Names, ", "))
	case ModifierGroupRequired:
		return fmt.Sprintf("%s: group %q requires a selection", e.Kind, e.Subject)
	case ModifierSelectionCountInvalid:
		return fmt.Sprintf("%s: group %q has an invalid number of selections", e.Kind, e.Subject)
	case PizzaCustomizationRequired:
		return fmt.Sprintf("%s: pizza %q needs at least one added ingredient", e.Kind, e.Subject)
	case InvalidPizzaConfiguration:
		return fmt.Sprintf("%s: %s", e.Kind, e.Subject)
	case ItemNotAvailable:
		return fmt.Sprintf("%s: %q is currently not available", e.Kind, e.Subject)
	case MissingRequiredField:
		return fmt.Sprintf("%s: %s", e.Kind, e.Subject)
	case EmptyOrder:
		return fmt.Sprintf("%s: the order contains no valid items", e.Kind)
	case MinimumOrderValueNotMet:
		return fmt.Sprintf("%s: order total %s is below the delivery minimum %s, add %s more",
			e.Kind, e.CurrentValue, e.MinimumValue, e.Difference)
	case NotAcceptingOrders:
		return fmt.Sprintf("%s: the restaurant is not accepting orders right now", e.Kind)
	case RestaurantClosed:
		return fmt.Sprintf("%s: the restaurant is closed right now", e.Kind)
	default:
		return "Unknown: unclassified validation failure"
	}
}

// ValidationErrors aggregates every violation found across one submitted
// order so the caller can present a single consolidated correction message.
type ValidationErrors struct {
	Errors []*ValidationError
}

// NewValidationErrors wraps the collected violations.
func NewValidationErrors(errors []*ValidationError) *ValidationErrors {
	return &ValidationErrors{Errors: errors}
}

func (e *ValidationErrors) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, ve := range e.Errors {
		msgs[i] = ve.Error()
	}
	return fmt.Sprintf("order validation failed with %d error(s): %s",
		len(e.Errors), strings.Join(msgs, "; "))
}

// Has reports whether any collected violation is of the given kind.
func (e *ValidationErrors) Has(kind ErrorKind) bool {
	for _, ve := range e.Errors {
		if ve.Kind == kind {
			return true
		}
	}
	return false
}
