package order

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
)

// Half identifies which part of a pizza a customization applies to. A
// customization set must be either entirely Full or entirely split across
// Half1/Half2; the pricing engine rejects silent mixing.
type Half string

const (
	HalfFull Half = "FULL"
	Half1    Half = "HALF_1"
	Half2    Half = "HALF_2"
)

// Validate reports whether the half designator is one of the three defined values.
func (h Half) Validate() bool {
	return h == HalfFull || h == Half1 || h == Half2
}

// Action says whether a pizza customization adds or removes an ingredient.
type Action string

const (
	ActionAdd    Action = "ADD"
	ActionRemove Action = "REMOVE"
)

// Validate reports whether the action is one of the two defined values.
func (a Action) Validate() bool {
	return a == ActionAdd || a == ActionRemove
}

// ItemCustomization is an enriched pizza customization carried on a priced
// item: the requested ingredient/half/action plus the denormalized display
// name and kind for downstream presentation.
type ItemCustomization struct {
	IngredientID string
	Name         string
	Kind         menu.IngredientKind
	Half         Half
	Action       Action
}

// ItemModifier is a selected modifier with its denormalized name and the
// price delta that entered the item's modifiers price.
type ItemModifier struct {
	ID         string
	Name       string
	PriceDelta kernel.Money
}

// Item is one fully priced order line. Items are produced exclusively by the
// pricing engine (services.PriceOrder); code elsewhere treats them as
// read-only records.
//
// Pricing fields satisfy:
//
//	UnitPrice  = BasePrice + ModifiersPrice (pizza surcharge included)
//	TotalPrice = UnitPrice * Quantity
type Item struct {
	ProductID      string
	ProductName    string
	VariantID      string
	VariantName    string
	Quantity       int
	Modifiers      []ItemModifier
	Customizations []ItemCustomization
	Comment        string

	BasePrice      kernel.Money
	ModifiersPrice kernel.Money
	UnitPrice      kernel.Money
	TotalPrice     kernel.Money
}
