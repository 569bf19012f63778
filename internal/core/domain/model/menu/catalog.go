package menu

import (
	"ordering/internal/core/domain/model/kernel"
)

// IngredientKind distinguishes pizza flavors from extra ingredients.
type IngredientKind string

const (
	IngredientKindFlavor     IngredientKind = "FLAVOR"
	IngredientKindIngredient IngredientKind = "INGREDIENT"
)

// Product is a sellable menu entry. BasePrice is nil for products priced
// exclusively through their variants.
type Product struct {
	ID                 string
	Name               string
	BasePrice          *kernel.Money
	VariantIDs         []string
	ModifierGroupIDs   []string
	PizzaIngredientIDs []string
	Available          bool
}

// HasVariants reports whether the product must be ordered through a variant.
func (p Product) HasVariants() bool {
	return len(p.VariantIDs) > 0
}

// HasPizzaIngredients reports whether the product speaks the pizza
// customization sub-language.
func (p Product) HasPizzaIngredients() bool {
	return len(p.PizzaIngredientIDs) > 0
}

// Variant is a concrete size or preparation of a product. Its price replaces
// the product base price when selected.
type Variant struct {
	ID        string
	Name      string
	Price     kernel.Money
	Available bool
	ProductID string
}

// ModifierGroup is a named set of related add-on choices with its own
// selection policy. AcceptsMultiple false means exactly one selection when
// the group is used; true means one or more.
type ModifierGroup struct {
	ID              string
	Name            string
	Required        bool
	AcceptsMultiple bool
	ModifierIDs     []string
}

// Modifier is a single add-on choice within a group.
type Modifier struct {
	ID         string
	Name       string
	PriceDelta kernel.Money
	Available  bool
	GroupID    string
}

// PizzaIngredient is a half/half-capable topping or flavor. Value is the
// integer weight used for surcharge tiers, never a flat price.
type PizzaIngredient struct {
	ID        string
	Name      string
	Value     int
	Kind      IngredientKind
	Available bool
	ProductID string
}
