// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Item lines live in a single jsonb column: they are frozen at pricing time
// and always read back as a whole, so relational decomposition buys nothing.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DailyNumber      int             `gorm:"not null"`
	OrderType        string          `gorm:"type:varchar(16);not null"`
	Status           string          `gorm:"type:varchar(32);not null;index"`
	PaymentStatus    string          `gorm:"type:varchar(16);not null"`
	TotalCost        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CustomerRef      string          `gorm:"type:varchar(255);not null"`
	ScheduledAt      *time.Time
	EstimatedMinutes int
	Items            []ItemDTO `gorm:"type:jsonb;serializer:json"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one priced order line inside the jsonb items document.
type ItemDTO struct {
	ProductID      string             `json:"product_id"`
	ProductName    string             `json:"product_name"`
	VariantID      string             `json:"variant_id,omitempty"`
	VariantName    string             `json:"variant_name,omitempty"`
	Quantity       int                `json:"quantity"`
	Modifiers      []ModifierDTO      `json:"modifiers,omitempty"`
	Customizations []CustomizationDTO `json:"customizations,omitempty"`
	Comment        string             `json:"comment,omitempty"`
	BasePrice      decimal.Decimal    `json:"base_price"`
	ModifiersPrice decimal.Decimal    `json:"modifiers_price"`
	UnitPrice      decimal.Decimal    `json:"unit_price"`
	TotalPrice     decimal.Decimal    `json:"total_price"`
}

// ModifierDTO is one applied modifier inside an item line.
type ModifierDTO struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	PriceDelta decimal.Decimal `json:"price_delta"`
}

// CustomizationDTO is one applied pizza customization inside an item line.
type CustomizationDTO struct {
	IngredientID string `json:"ingredient_id"`
	Name         string `json:"name"`
	Kind         string `json:"kind"`
	Half         string `json:"half"`
	Action       string `json:"action"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(item))
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		DailyNumber:      aggregate.DailyNumber(),
		OrderType:        aggregate.OrderType().String(),
		Status:           aggregate.Status().String(),
		PaymentStatus:    aggregate.PaymentStatus().String(),
		TotalCost:        aggregate.TotalCost().Decimal(),
		CustomerRef:      aggregate.CustomerRef(),
		ScheduledAt:      aggregate.ScheduledAt(),
		EstimatedMinutes: aggregate.EstimatedMinutes(),
		Items:            items,
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

func itemFromDomain(item order.Item) ItemDTO {
	modifiers := make([]ModifierDTO, 0, len(item.Modifiers))
	for _, m := range item.Modifiers {
		modifiers = append(modifiers, ModifierDTO{
			ID:         m.ID,
			Name:       m.Name,
			PriceDelta: m.PriceDelta.Decimal(),
		})
	}

	customizations := make([]CustomizationDTO, 0, len(item.Customizations))
	for _, c := range item.Customizations {
		customizations = append(customizations, CustomizationDTO{
			IngredientID: c.IngredientID,
			Name:         c.Name,
			Kind:         string(c.Kind),
			Half:         string(c.Half),
			Action:       string(c.Action),
		})
	}

	return ItemDTO{
		ProductID:      item.ProductID,
		ProductName:    item.ProductName,
		VariantID:      item.VariantID,
		VariantName:    item.VariantName,
		Quantity:       item.Quantity,
		Modifiers:      modifiers,
		Customizations: customizations,
		Comment:        item.Comment,
		BasePrice:      item.BasePrice.Decimal(),
		ModifiersPrice: item.ModifiersPrice.Decimal(),
		UnitPrice:      item.UnitPrice.Decimal(),
		TotalPrice:     item.TotalPrice.Decimal(),
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderType, err := order.TypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, itemToDomain(item))
	}

	return order.RestoreOrder(
		id,
		dto.DailyNumber,
		orderType,
		status,
		paymentStatus,
		dto.CustomerRef,
		items,
		kernel.NewMoneyFromDecimal(dto.TotalCost),
		dto.EstimatedMinutes,
		dto.ScheduledAt,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func itemToDomain(dto ItemDTO) order.Item {
	modifiers := make([]order.ItemModifier, 0, len(dto.Modifiers))
	for _, m := range dto.Modifiers {
		modifiers = append(modifiers, order.ItemModifier{
			ID:         m.ID,
			Name:       m.Name,
			PriceDelta: kernel.NewMoneyFromDecimal(m.PriceDelta),
		})
	}

	customizations := make([]order.ItemCustomization, 0, len(dto.Customizations))
	for _, c := range dto.Customizations {
		customizations = append(customizations, order.ItemCustomization{
			IngredientID: c.IngredientID,
			Name:         c.Name,
			Kind:         menu.IngredientKind(c.Kind),
			Half:         order.Half(c.Half),
			Action:       order.Action(c.Action),
		})
	}

	return order.Item{
		ProductID:      dto.ProductID,
		ProductName:    dto.ProductName,
		VariantID:      dto.VariantID,
		VariantName:    dto.VariantName,
		Quantity:       dto.Quantity,
		Modifiers:      modifiers,
		Customizations: customizations,
		Comment:        dto.Comment,
		BasePrice:      kernel.NewMoneyFromDecimal(dto.BasePrice),
		ModifiersPrice: kernel.NewMoneyFromDecimal(dto.ModifiersPrice),
		UnitPrice:      kernel.NewMoneyFromDecimal(dto.UnitPrice),
		TotalPrice:     kernel.NewMoneyFromDecimal(dto.TotalPrice),
	}
}
