package http

import (
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

// ErrorResponse is the generic error payload for non-validation failures.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ValidationFailureResponse carries every violation found in one submitted
// order, so the conversational layer can build a single correction prompt.
type ValidationFailureResponse struct {
	Code   int               `json:"code"`
	Errors []ValidationEntry `json:"errors"`
}

// ValidationEntry is one structured validation failure.
type ValidationEntry struct {
	Kind         string   `json:"kind"`
	ItemIndex    *int     `json:"item_index,omitempty"`
	Subject      string   `json:"subject,omitempty"`
	Names        []string `json:"names,omitempty"`
	CurrentValue string   `json:"current_value,omitempty"`
	MinimumValue string   `json:"minimum_value,omitempty"`
	Difference   string   `json:"difference,omitempty"`
}

// PlaceOrderRequest is the inbound payload for placing a new order.
type PlaceOrderRequest struct {
	CustomerRef string        `json:"customer_ref"`
	OrderType   string        `json:"order_type"`
	ScheduledAt *time.Time    `json:"scheduled_at,omitempty"`
	Items       []ItemRequest `json:"items"`
}

// ModifyOrderRequest is the inbound payload for replacing an order's items.
type ModifyOrderRequest struct {
	OrderType   string        `json:"order_type"`
	ScheduledAt *time.Time    `json:"scheduled_at,omitempty"`
	Items       []ItemRequest `json:"items"`
}

// ChangeStatusRequest names the lifecycle status the order should move to.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// ItemRequest is one raw order line as extracted by the conversational layer.
type ItemRequest struct {
	ProductID      string                 `json:"product_id"`
	VariantID      string                 `json:"variant_id,omitempty"`
	Quantity       int                    `json:"quantity"`
	ModifierIDs    []string               `json:"modifier_ids,omitempty"`
	Customizations []CustomizationRequest `json:"customizations,omitempty"`
	Comment        string                 `json:"comment,omitempty"`
}

// CustomizationRequest is one raw pizza customization.
type CustomizationRequest struct {
	IngredientID string `json:"ingredient_id"`
	Half         string `json:"half"`
	Action       string `json:"action"`
}

// OrderResponse is the detailed order representation returned by placement,
// modification, and the single order endpoint.
type OrderResponse struct {
	ID               string         `json:"id"`
	DailyNumber      int            `json:"daily_number"`
	OrderType        string         `json:"order_type"`
	Status           string         `json:"status"`
	PaymentStatus    string         `json:"payment_status"`
	TotalCost        string         `json:"total_cost"`
	CustomerRef      string         `json:"customer_ref"`
	ScheduledAt      *time.Time     `json:"scheduled_at,omitempty"`
	EstimatedMinutes int            `json:"estimated_minutes"`
	Items            []ItemResponse `json:"items"`
	CreatedAt        time.Time      `json:"created_at"`
}

// ItemResponse is one priced order line.
type ItemResponse struct {
	ProductID      string                  `json:"product_id"`
	ProductName    string                  `json:"product_name"`
	VariantID      string                  `json:"variant_id,omitempty"`
	VariantName    string                  `json:"variant_name,omitempty"`
	Quantity       int                     `json:"quantity"`
	Modifiers      []ModifierResponse      `json:"modifiers,omitempty"`
	Customizations []CustomizationResponse `json:"customizations,omitempty"`
	Comment        string                  `json:"comment,omitempty"`
	UnitPrice      string                  `json:"unit_price"`
	TotalPrice     string                  `json:"total_price"`
}

// ModifierResponse is one applied modifier.
type ModifierResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceDelta string `json:"price_delta"`
}

// CustomizationResponse is one applied pizza customization.
type CustomizationResponse struct {
	IngredientID string `json:"ingredient_id"`
	Name         string `json:"name"`
	Kind         string `json:"kind"`
	Half         string `json:"half"`
	Action       string `json:"action"`
}

// OrderSummaryResponse is the flat shape returned by the active orders list.
type OrderSummaryResponse struct {
	ID               string     `json:"id"`
	DailyNumber      int        `json:"daily_number"`
	OrderType        string     `json:"order_type"`
	Status           string     `json:"status"`
	PaymentStatus    string     `json:"payment_status"`
	TotalCost        string     `json:"total_cost"`
	CustomerRef      string     `json:"customer_ref"`
	ScheduledAt      *time.Time `json:"scheduled_at,omitempty"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	CreatedAt        time.Time  `json:"created_at"`
}

func requestedItems(items []ItemRequest) []services.RequestedItem {
	requested := make([]services.RequestedItem, 0, len(items))
	for _, item := range items {
		customizations := make([]services.RequestedCustomization, 0, len(item.Customizations))
		for _, c := range item.Customizations {
			customizations = append(customizations, services.RequestedCustomization{
				IngredientID: c.IngredientID,
				Half:         order.Half(c.Half),
				Action:       order.Action(c.Action),
			})
		}

		requested = append(requested, services.RequestedItem{
			ProductID:      item.ProductID,
			VariantID:      item.VariantID,
			Quantity:       item.Quantity,
			ModifierIDs:    item.ModifierIDs,
			Customizations: customizations,
			Comment:        item.Comment,
		})
	}
	return requested
}

func orderResponse(aggregate *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemResponse(item))
	}

	return OrderResponse{
		ID:               aggregate.ID().String(),
		DailyNumber:      aggregate.DailyNumber(),
		OrderType:        aggregate.OrderType().String(),
		Status:           aggregate.Status().String(),
		PaymentStatus:    aggregate.PaymentStatus().String(),
		TotalCost:        aggregate.TotalCost().String(),
		CustomerRef:      aggregate.CustomerRef(),
		ScheduledAt:      aggregate.ScheduledAt(),
		EstimatedMinutes: aggregate.EstimatedMinutes(),
		Items:            items,
		CreatedAt:        aggregate.CreatedAt(),
	}
}

func itemResponse(item order.Item) ItemResponse {
	modifiers := make([]ModifierResponse, 0, len(item.Modifiers))
	for _, m := range item.Modifiers {
		modifiers = append(modifiers, ModifierResponse{
			ID:         m.ID,
			Name:       m.Name,
			PriceDelta: m.PriceDelta.String(),
		})
	}

	customizations := make([]CustomizationResponse, 0, len(item.Customizations))
	for _, c := range item.Customizations {
		customizations = append(customizations, CustomizationResponse{
			IngredientID: c.IngredientID,
			Name:         c.Name,
			Kind:         string(c.Kind),
			Half:         string(c.Half),
			Action:       string(c.Action),
		})
	}

	return ItemResponse{
		ProductID:      item.ProductID,
		ProductName:    item.ProductName,
		VariantID:      item.VariantID,
		VariantName:    item.VariantName,
		Quantity:       item.Quantity,
		Modifiers:      modifiers,
		Customizations: customizations,
		Comment:        item.Comment,
		UnitPrice:      item.UnitPrice.String(),
		TotalPrice:     item.TotalPrice.String(),
	}
}

func queryOrderResponse(resp queries.GetOrderQueryResponse) OrderResponse {
	items := make([]ItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		modifiers := make([]ModifierResponse, 0, len(item.Modifiers))
		for _, m := range item.Modifiers {
			modifiers = append(modifiers, ModifierResponse{
				ID:         m.ID,
				Name:       m.Name,
				PriceDelta: m.PriceDelta.String(),
			})
		}

		customizations := make([]CustomizationResponse, 0, len(item.Customizations))
		for _, c := range item.Customizations {
			customizations = append(customizations, CustomizationResponse{
				IngredientID: c.IngredientID,
				Name:         c.Name,
				Kind:         c.Kind,
				Half:         c.Half,
				Action:       c.Action,
			})
		}

		items = append(items, ItemResponse{
			ProductID:      item.ProductID,
			ProductName:    item.ProductName,
			VariantID:      item.VariantID,
			VariantName:    item.VariantName,
			Quantity:       item.Quantity,
			Modifiers:      modifiers,
			Customizations: customizations,
			Comment:        item.Comment,
			UnitPrice:      item.UnitPrice.String(),
			TotalPrice:     item.TotalPrice.String(),
		})
	}

	return OrderResponse{
		ID:               resp.ID.String(),
		DailyNumber:      resp.DailyNumber,
		OrderType:        resp.OrderType,
		Status:           resp.Status,
		PaymentStatus:    resp.PaymentStatus,
		TotalCost:        resp.TotalCost.String(),
		CustomerRef:      resp.CustomerRef,
		ScheduledAt:      resp.ScheduledAt,
		EstimatedMinutes: resp.EstimatedMinutes,
		Items:            items,
		CreatedAt:        resp.CreatedAt,
	}
}

func validationFailure(code int, violations *services.ValidationErrors) ValidationFailureResponse {
	entries := make([]ValidationEntry, 0, len(violations.Errors))
	for _, ve := range violations.Errors {
		entry := ValidationEntry{
			Kind:    ve.Kind.String(),
			Subject: ve.Subject,
			Names:   ve.Names,
		}
		if ve.ItemIndex >= 0 {
			idx := ve.ItemIndex
			entry.ItemIndex = &idx
		}
		if ve.Kind == services.MinimumOrderValueNotMet {
			entry.CurrentValue = ve.CurrentValue.String()
			entry.MinimumValue = ve.MinimumValue.String()
			entry.Difference = ve.Difference.String()
		}
		entries = append(entries, entry)
	}

	return ValidationFailureResponse{Code: code, Errors: entries}
}
