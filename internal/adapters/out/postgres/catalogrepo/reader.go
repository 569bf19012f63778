package catalogrepo

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"

	"gorm.io/gorm"
)

// GormCatalogReader implements CatalogReader by loading all five catalog
// tables and indexing them into a snapshot. The engine takes one snapshot
// per validation pass, so the read happens at most once per request.
type GormCatalogReader struct {
	db *gorm.DB
}

// NewGormCatalogReader creates a catalog reader backed by the database.
func NewGormCatalogReader(db *gorm.DB) *GormCatalogReader {
	return &GormCatalogReader{db: db}
}

// Snapshot loads the full catalog and returns an immutable id-indexed view.
func (r *GormCatalogReader) Snapshot(ctx context.Context) (menu.Snapshot, error) {
	var productDTOs []ProductDTO
	if err := r.db.WithContext(ctx).Find(&productDTOs).Error; err != nil {
		return menu.Snapshot{}, err
	}

	var variantDTOs []VariantDTO
	if err := r.db.WithContext(ctx).Find(&variantDTOs).Error; err != nil {
		return menu.Snapshot{}, err
	}

	var groupDTOs []ModifierGroupDTO
	if err := r.db.WithContext(ctx).Find(&groupDTOs).Error; err != nil {
		return menu.Snapshot{}, err
	}

	var modifierDTOs []ModifierDTO
	if err := r.db.WithContext(ctx).Find(&modifierDTOs).Error; err != nil {
		return menu.Snapshot{}, err
	}

	var ingredientDTOs []PizzaIngredientDTO
	if err := r.db.WithContext(ctx).Find(&ingredientDTOs).Error; err != nil {
		return menu.Snapshot{}, err
	}

	products := make([]menu.Product, 0, len(productDTOs))
	for _, dto := range productDTOs {
		var basePrice *kernel.Money
		if dto.BasePrice != nil {
			price := kernel.NewMoneyFromDecimal(*dto.BasePrice)
			basePrice = &price
		}

		products = append(products, menu.Product{
			ID:                 dto.ID,
			Name:               dto.Name,
			BasePrice:          basePrice,
			VariantIDs:         dto.VariantIDs,
			ModifierGroupIDs:   dto.ModifierGroupIDs,
			PizzaIngredientIDs: dto.IngredientIDs,
			Available:          dto.Available,
		})
	}

	variants := make([]menu.Variant, 0, len(variantDTOs))
	for _, dto := range variantDTOs {
		variants = append(variants, menu.Variant{
			ID:        dto.ID,
			Name:      dto.Name,
			Price:     kernel.NewMoneyFromDecimal(dto.Price),
			Available: dto.Available,
			ProductID: dto.ProductID,
		})
	}

	groups := make([]menu.ModifierGroup, 0, len(groupDTOs))
	for _, dto := range groupDTOs {
		groups = append(groups, menu.ModifierGroup{
			ID:              dto.ID,
			Name:            dto.Name,
			Required:        dto.Required,
			AcceptsMultiple: dto.AcceptsMultiple,
			ModifierIDs:     dto.ModifierIDs,
		})
	}

	modifiers := make([]menu.Modifier, 0, len(modifierDTOs))
	for _, dto := range modifierDTOs {
		modifiers = append(modifiers, menu.Modifier{
			ID:         dto.ID,
			Name:       dto.Name,
			PriceDelta: kernel.NewMoneyFromDecimal(dto.PriceDelta),
			Available:  dto.Available,
			GroupID:    dto.GroupID,
		})
	}

	ingredients := make([]menu.PizzaIngredient, 0, len(ingredientDTOs))
	for _, dto := range ingredientDTOs {
		ingredients = append(ingredients, menu.PizzaIngredient{
			ID:        dto.ID,
			Name:      dto.Name,
			Value:     dto.Value,
			Kind:      menu.IngredientKind(dto.Kind),
			Available: dto.Available,
			ProductID: dto.ProductID,
		})
	}

	return menu.NewSnapshot(products, variants, groups, modifiers, ingredients), nil
}
