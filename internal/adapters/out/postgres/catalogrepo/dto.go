// Package catalogrepo loads the menu catalog from the database and assembles
// the immutable snapshot the pricing engine validates against. The catalog is
// owned and written by the menu management system; this side only reads it.
package catalogrepo

import "github.com/shopspring/decimal"

// ProductDTO represents a sellable menu entry row.
type ProductDTO struct {
	ID               string           `gorm:"type:varchar(64);primaryKey"`
	Name             string           `gorm:"type:varchar(255);not null"`
	BasePrice        *decimal.Decimal `gorm:"type:numeric(12,2)"`
	VariantIDs       []string         `gorm:"type:jsonb;serializer:json"`
	ModifierGroupIDs []string         `gorm:"type:jsonb;serializer:json;column:modifier_group_ids"`
	IngredientIDs    []string         `gorm:"type:jsonb;serializer:json;column:pizza_ingredient_ids"`
	Available        bool             `gorm:"not null"`
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// VariantDTO represents a size or preparation of a product.
type VariantDTO struct {
	ID        string          `gorm:"type:varchar(64);primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Available bool            `gorm:"not null"`
	ProductID string          `gorm:"type:varchar(64);not null;index"`
}

// TableName specifies the database table name for variants.
func (VariantDTO) TableName() string {
	return "variants"
}

// ModifierGroupDTO represents a named set of add-on choices.
type ModifierGroupDTO struct {
	ID              string   `gorm:"type:varchar(64);primaryKey"`
	Name            string   `gorm:"type:varchar(255);not null"`
	Required        bool     `gorm:"not null"`
	AcceptsMultiple bool     `gorm:"not null"`
	ModifierIDs     []string `gorm:"type:jsonb;serializer:json"`
}

// TableName specifies the database table name for modifier groups.
func (ModifierGroupDTO) TableName() string {
	return "modifier_groups"
}

// ModifierDTO represents one add-on choice within a group.
type ModifierDTO struct {
	ID         string          `gorm:"type:varchar(64);primaryKey"`
	Name       string          `gorm:"type:varchar(255);not null"`
	PriceDelta decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Available  bool            `gorm:"not null"`
	GroupID    string          `gorm:"type:varchar(64);not null;index"`
}

// TableName specifies the database table name for modifiers.
func (ModifierDTO) TableName() string {
	return "modifiers"
}

// PizzaIngredientDTO represents a half/half-capable topping or flavor.
type PizzaIngredientDTO struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	Name      string `gorm:"type:varchar(255);not null"`
	Value     int    `gorm:"not null"`
	Kind      string `gorm:"type:varchar(16);not null"`
	Available bool   `gorm:"not null"`
	ProductID string `gorm:"type:varchar(64);not null;index"`
}

// TableName specifies the database table name for pizza ingredients.
func (PizzaIngredientDTO) TableName() string {
	return "pizza_ingredients"
}
