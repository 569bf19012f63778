package services

import (
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/domain/model/order"
)

// ItemValidator validates one requested order line against the catalog
// snapshot and prices it. All violations found in the line are collected and
// returned together; the validator never stops at the first failure.
type ItemValidator struct {
	pizzaPricer PizzaPricer
}

// NewItemValidator creates a new ItemValidator instance.
func NewItemValidator() ItemValidator {
	return ItemValidator{pizzaPricer: NewPizzaPricer()}
}

// Validate checks the requested line against catalog constraints and, when
// everything holds, returns the fully priced item.
//
// Checks, in order but without short-circuiting:
//  1. the product must exist and be available
//  2. quantity must be a positive integer
//  3. a product with variants needs a known, owned, available variant; the
//     violation carries the valid variant names for the correction message
//  4. modifier-group cardinality: required groups need a selection; a used
//     group allows exactly 1 selection, or 1..N when it accepts multiple
//  5. every supplied modifier must belong to one of the product's groups and
//     be available
//  6. pizza products delegate their customizations to the PizzaPricer and
//     propagate its violations unchanged
//
// Pricing on success: base price from the selected variant (or the product
// base price), modifiers price from the selected deltas plus any pizza
// surcharge, unit price as their sum, total as unit price times quantity.
func (v ItemValidator) Validate(
	snapshot menu.Snapshot,
	itemIndex int,
	req RequestedItem,
) (order.Item, []*ValidationError) {
	product, ok := snapshot.Product(req.ProductID)
	if !ok {
		return order.Item{}, []*ValidationError{
			NewItemError(InvalidProduct, itemIndex, req.ProductID),
		}
	}

	var violations []*ValidationError

	if !product.Available {
		violations = append(violations, NewItemError(ItemNotAvailable, itemIndex, product.Name))
	}

	if req.Quantity <= 0 {
		violations = append(violations, NewItemError(MissingRequiredField, itemIndex,
			fmt.Sprintf("quantity of %q must be a positive integer", product.Name)))
	}

	basePrice, variantName, variantViolation := v.resolveBasePrice(snapshot, itemIndex, product, req.VariantID)
	if variantViolation != nil {
		violations = append(violations, variantViolation)
	}

	modifiers, modifiersPrice, modifierViolations := v.resolveModifiers(snapshot, itemIndex, product, req.ModifierIDs)
	violations = append(violations, modifierViolations...)

	var customizations []order.ItemCustomization
	if product.HasPizzaIngredients() {
		pricing, pizzaViolations := v.pizzaPricer.Price(snapshot, product, itemIndex, req.Customizations)
		if len(pizzaViolations) > 0 {
			violations = append(violations, pizzaViolations...)
		} else {
			modifiersPrice = modifiersPrice.Add(pricing.Surcharge)
			customizations = pricing.Customizations
		}
	} else if len(req.Customizations) > 0 {
		violations = append(violations, NewItemError(InvalidPizzaConfiguration, itemIndex,
			fmt.Sprintf("product %q does not accept pizza customizations", product.Name)))
	}

	if len(violations) > 0 {
		return order.Item{}, violations
	}

	unitPrice := basePrice.Add(modifiersPrice)
	return order.Item{
		ProductID:      product.ID,
		ProductName:    product.Name,
		VariantID:      req.VariantID,
		VariantName:    variantName,
		Quantity:       req.Quantity,
		Modifiers:      modifiers,
		Customizations: customizations,
		Comment:        req.Comment,
		BasePrice:      basePrice,
		ModifiersPrice: modifiersPrice,
		UnitPrice:      unitPrice,
		TotalPrice:     unitPrice.MulInt(req.Quantity),
	}, nil
}

// resolveBasePrice applies the variant rule: a product with variants must be
// ordered through a known, owned, available variant and never silently falls
// back to the base price.
func (v ItemValidator) resolveBasePrice(
	snapshot menu.Snapshot,
	itemIndex int,
	product menu.Product,
	variantID string,
) (kernel.Money, string, *ValidationError) {
	if !product.HasVariants() {
		if product.BasePrice == nil {
			// A variant-less product without a base price cannot be priced at all.
			return kernel.ZeroMoney(), "", NewItemError(InvalidProduct, itemIndex, product.Name)
		}
		return *product.BasePrice, "", nil
	}

	variant, ok := snapshot.Variant(variantID)
	if variantID == "" || !ok || variant.ProductID != product.ID || !variant.Available {
		violation := NewItemError(VariantRequired, itemIndex, product.Name)
		for _, candidate := range snapshot.VariantsOf(product) {
			if candidate.Available {
				violation.Names = append(violation.Names, candidate.Name)
			}
		}
		return kernel.ZeroMoney(), "", violation
	}

	return variant.Price, variant.Name, nil
}

// resolveModifiers enforces group cardinality and availability and sums the
// price deltas of the valid selections.
func (v ItemValidator) resolveModifiers(
	snapshot menu.Snapshot,
	itemIndex int,
	product menu.Product,
	modifierIDs []string,
) ([]order.ItemModifier, kernel.Money, []*ValidationError) {
	var violations []*ValidationError

	groups := snapshot.ModifierGroupsOf(product)
	owned := make(map[string]menu.ModifierGroup, len(modifierIDs))
	for _, group := range groups {
		for _, modifierID := range group.ModifierIDs {
			owned[modifierID] = group
		}
	}

	selectedPerGroup := make(map[string]int, len(groups))
	selected := make([]order.ItemModifier, 0, len(modifierIDs))
	modifiersPrice := kernel.ZeroMoney()

	for _, modifierID := range modifierIDs {
		group, isOwned := owned[modifierID]
		if !isOwned {
			violations = append(violations, NewItemError(ItemNotAvailable, itemIndex, modifierID))
			continue
		}
		selectedPerGroup[group.ID]++

		modifier, ok := snapshot.Modifier(modifierID)
		if !ok || !modifier.Available {
			violations = append(violations, NewItemError(ItemNotAvailable, itemIndex, modifierName(modifier, modifierID)))
			continue
		}

		selected = append(selected, order.ItemModifier{
			ID:         modifier.ID,
			Name:       modifier.Name,
			PriceDelta: modifier.PriceDelta,
		})
		modifiersPrice = modifiersPrice.Add(modifier.PriceDelta)
	}

	for _, group := range groups {
		count := selectedPerGroup[group.ID]
		if group.Required && count == 0 {
			violations = append(violations, NewItemError(ModifierGroupRequired, itemIndex, group.Name))
			continue
		}
		if count == 0 {
			continue
		}
		if !group.AcceptsMultiple && count != 1 {
			violations = append(violations, NewItemError(ModifierSelectionCountInvalid, itemIndex, group.Name))
		}
		if group.AcceptsMultiple && count > len(group.ModifierIDs) {
			violations = append(violations, NewItemError(ModifierSelectionCountInvalid, itemIndex, group.Name))
		}
	}

	return selected, modifiersPrice, violations
}

func modifierName(modifier menu.Modifier, fallbackID string) string {
	if modifier.Name != "" {
		return modifier.Name
	}
	return fallbackID
}
