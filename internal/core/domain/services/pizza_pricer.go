package services

import (
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/domain/model/order"
)

// Surcharge tiers for the additive-ingredient pricing scheme. The first
// includedIngredientValue units of ingredient value are covered by the base
// price; value beyond that is charged per unit. A half-pizza ingredient
// covers half the pie, so its marginal rate is half the full-pie rate.
const includedIngredientValue = 4

var (
	fullUnitRate = kernel.MustMoneyFromString("10")
	halfUnitRate = kernel.MustMoneyFromString("5")
)

// PizzaPricing is the outcome of a successful pizza validation: the
// surcharge to add to the item's modifiers price and the enriched
// customization list for downstream display.
type PizzaPricing struct {
	Surcharge      kernel.Money
	Customizations []order.ItemCustomization
}

// PizzaPricer validates and prices the half/half pizza sub-language.
// It is stateless; every call is a pure function of its inputs.
type PizzaPricer struct{}

// NewPizzaPricer creates a new PizzaPricer instance.
func NewPizzaPricer() PizzaPricer {
	return PizzaPricer{}
}

// Price validates the customization set of one pizza item and computes its
// ingredient surcharge.
//
// Rules enforced, all violations collected:
//   - at least one ADD customization (a pizza needs a positive customization)
//   - FULL entries never coexist with HALF_1/HALF_2 entries
//   - every ingredient must belong to the product; no ingredient+half pair
//     may repeat
//   - adding an unavailable ingredient is rejected; removing one is fine
//     because it has no pricing effect
//
// Pricing: ingredient values are accumulated per scope (whole pie, left
// half, right half), ADD counting positive and REMOVE negative. Each scope
// includes the first 4 units free; excess value is surcharged at 10 per unit
// for the whole pie and 5 per unit per half.
func (p PizzaPricer) Price(
	snapshot menu.Snapshot,
	product menu.Product,
	itemIndex int,
	customizations []RequestedCustomization,
) (PizzaPricing, []*ValidationError) {
	if len(customizations) == 0 {
		return PizzaPricing{}, []*ValidationError{
			NewItemError(PizzaCustomizationRequired, itemIndex, product.Name),
		}
	}

	var violations []*ValidationError

	hasFull, hasHalf, hasAdd := false, false, false
	for _, c := range customizations {
		switch c.Half {
		case order.HalfFull:
			hasFull = true
		case order.Half1, order.Half2:
			hasHalf = true
		}
		if c.Action == order.ActionAdd {
			hasAdd = true
		}
	}

	if !hasAdd {
		violations = append(violations,
			NewItemError(PizzaCustomizationRequired, itemIndex, product.Name))
	}
	if hasFull && hasHalf {
		violations = append(violations, NewItemError(InvalidPizzaConfiguration, itemIndex,
			fmt.Sprintf("pizza %q mixes FULL with HALF_1/HALF_2 customizations", product.Name)))
	}

	var totalFull, leftValue, rightValue int
	enriched := make([]order.ItemCustomization, 0, len(customizations))
	seen := make(map[string]struct{}, len(customizations))

	for _, c := range customizations {
		if !c.Half.Validate() || !c.Action.Validate() {
			violations = append(violations, NewItemError(InvalidPizzaConfiguration, itemIndex,
				fmt.Sprintf("customization of ingredient %q has an invalid half or action", c.IngredientID)))
			continue
		}

		pairKey := c.IngredientID + "|" + string(c.Half)
		if _, dup := seen[pairKey]; dup {
			violations = append(violations, NewItemError(InvalidPizzaConfiguration, itemIndex,
				fmt.Sprintf("ingredient %q is customized twice on the same half", c.IngredientID)))
			continue
		}
		seen[pairKey] = struct{}{}

		ingredient, ok := snapshot.IngredientOwnedBy(product, c.IngredientID)
		if !ok {
			violations = append(violations, NewItemError(InvalidPizzaConfiguration, itemIndex,
				fmt.Sprintf("ingredient %q does not belong to pizza %q", c.IngredientID, product.Name)))
			continue
		}

		if !ingredient.Available && c.Action == order.ActionAdd {
			violations = append(violations,
				NewItemError(ItemNotAvailable, itemIndex, ingredient.Name))
			continue
		}

		value := ingredient.Value
		if c.Action == order.ActionRemove {
			value = -value
		}
		switch c.Half {
		case order.HalfFull:
			totalFull += value
		case order.Half1:
			leftValue += value
		case order.Half2:
			rightValue += value
		}

		enriched = append(enriched, order.ItemCustomization{
			IngredientID: ingredient.ID,
			Name:         ingredient.Name,
			Kind:         ingredient.Kind,
			Half:         c.Half,
			Action:       c.Action,
		})
	}

	if len(violations) > 0 {
		return PizzaPricing{}, violations
	}

	surcharge := fullUnitRate.MulInt(excessValue(totalFull)).
		Add(halfUnitRate.MulInt(excessValue(leftValue))).
		Add(halfUnitRate.MulInt(excessValue(rightValue)))

	return PizzaPricing{Surcharge: surcharge, Customizations: enriched}, nil
}

// excessValue returns the ingredient value beyond the included allowance,
// clamped at zero.
func excessValue(total int) int {
	if total <= includedIngredientValue {
		return 0
	}
	return total - includedIngredientValue
}
