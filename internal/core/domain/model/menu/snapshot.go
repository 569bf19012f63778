package menu

// Snapshot is an immutable, id-indexed view of the catalog taken once per
// validation pass. Lookups are O(1); the underlying records are copied at
// construction and never mutated afterwards.
type Snapshot struct {
	products    map[string]Product
	variants    map[string]Variant
	groups      map[string]ModifierGroup
	modifiers   map[string]Modifier
	ingredients map[string]PizzaIngredient
}

// NewSnapshot indexes the given catalog records by id. A pizza ingredient
// with a non-positive value is normalized to the default weight of 1.
func NewSnapshot(
	products []Product,
	variants []Variant,
	groups []ModifierGroup,
	modifiers []Modifier,
	ingredients []PizzaIngredient,
) Snapshot {
	s := Snapshot{
		products:    make(map[string]Product, len(products)),
		variants:    make(map[string]Variant, len(variants)),
		groups:      make(map[string]ModifierGroup, len(groups)),
		modifiers:   make(map[string]Modifier, len(modifiers)),
		ingredients: make(map[string]PizzaIngredient, len(ingredients)),
	}

	for _, p := range products {
		s.products[p.ID] = p
	}
	for _, v := range variants {
		s.variants[v.ID] = v
	}
	for _, g := range groups {
		s.groups[g.ID] = g
	}
	for _, m := range modifiers {
		s.modifiers[m.ID] = m
	}
	for _, ing := range ingredients {
		if ing.Value <= 0 {
			ing.Value = 1
		}
		s.ingredients[ing.ID] = ing
	}

	return s
}

// Product returns the product with the given id.
func (s Snapshot) Product(id string) (Product, bool) {
	p, ok := s.products[id]
	return p, ok
}

// Variant returns the variant with the given id.
func (s Snapshot) Variant(id string) (Variant, bool) {
	v, ok := s.variants[id]
	return v, ok
}

// ModifierGroup returns the modifier group with the given id.
func (s Snapshot) ModifierGroup(id string) (ModifierGroup, bool) {
	g, ok := s.groups[id]
	return g, ok
}

// Modifier returns the modifier with the given id.
func (s Snapshot) Modifier(id string) (Modifier, bool) {
	m, ok := s.modifiers[id]
	return m, ok
}

// PizzaIngredient returns the pizza ingredient with the given id.
func (s Snapshot) PizzaIngredient(id string) (PizzaIngredient, bool) {
	ing, ok := s.ingredients[id]
	return ing, ok
}

// VariantsOf returns the product's variants in catalog order, skipping ids
// the snapshot does not know.
func (s Snapshot) VariantsOf(p Product) []Variant {
	variants := make([]Variant, 0, len(p.VariantIDs))
	for _, id := range p.VariantIDs {
		if v, ok := s.variants[id]; ok {
			variants = append(variants, v)
		}
	}
	return variants
}

// ModifierGroupsOf returns the product's modifier groups in catalog order.
func (s Snapshot) ModifierGroupsOf(p Product) []ModifierGroup {
	groups := make([]ModifierGroup, 0, len(p.ModifierGroupIDs))
	for _, id := range p.ModifierGroupIDs {
		if g, ok := s.groups[id]; ok {
			groups = append(groups, g)
		}
	}
	return groups
}

// IngredientOwnedBy returns the ingredient only if it belongs to the product.
func (s Snapshot) IngredientOwnedBy(p Product, ingredientID string) (PizzaIngredient, bool) {
	ing, ok := s.ingredients[ingredientID]
	if !ok || ing.ProductID != p.ID {
		return PizzaIngredient{}, false
	}
	return ing, ok
}
