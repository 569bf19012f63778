package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler loads a single order with its item lines. Items are
// stored as a jsonb document, so one row scan plus one unmarshal covers the
// whole order.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// itemRow mirrors the jsonb layout the order repository writes.
type itemRow struct {
	ProductID      string `json:"product_id"`
	ProductName    string `json:"product_name"`
	VariantID      string `json:"variant_id,omitempty"`
	VariantName    string `json:"variant_name,omitempty"`
	Quantity       int    `json:"quantity"`
	Modifiers      []struct {
		ID         string          `json:"id"`
		Name       string          `json:"name"`
		PriceDelta decimal.Decimal `json:"price_delta"`
	} `json:"modifiers,omitempty"`
	Customizations []struct {
		IngredientID string `json:"ingredient_id"`
		Name         string `json:"name"`
		Kind         string `json:"kind"`
		Half         string `json:"half"`
		Action       string `json:"action"`
	} `json:"customizations,omitempty"`
	Comment    string          `json:"comment,omitempty"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no order
// exists under the given identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			daily_number,
			order_type,
			status,
			payment_status,
			total_cost,
			customer_ref,
			scheduled_at,
			estimated_minutes,
			items,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var resp GetOrderQueryResponse
	var id uuid.UUID
	var totalCost decimal.Decimal
	var scheduledAt sql.NullTime
	var itemsRaw []byte

	err := row.Scan(
		&id,
		&resp.DailyNumber,
		&resp.OrderType,
		&resp.Status,
		&resp.PaymentStatus,
		&totalCost,
		&resp.CustomerRef,
		&scheduledAt,
		&resp.EstimatedMinutes,
		&itemsRaw,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = orderID
	resp.TotalCost = kernel.NewMoneyFromDecimal(totalCost)
	if scheduledAt.Valid {
		at := scheduledAt.Time
		resp.ScheduledAt = &at
	}

	var rows []itemRow
	if err = json.Unmarshal(itemsRaw, &rows); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Items = make([]GetOrderQueryItem, 0, len(rows))
	for _, r := range rows {
		item := GetOrderQueryItem{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			VariantID:   r.VariantID,
			VariantName: r.VariantName,
			Quantity:    r.Quantity,
			Comment:     r.Comment,
			UnitPrice:   kernel.NewMoneyFromDecimal(r.UnitPrice),
			TotalPrice:  kernel.NewMoneyFromDecimal(r.TotalPrice),
		}

		for _, m := range r.Modifiers {
			item.Modifiers = append(item.Modifiers, GetOrderQueryItemModifier{
				ID:         m.ID,
				Name:       m.Name,
				PriceDelta: kernel.NewMoneyFromDecimal(m.PriceDelta),
			})
		}

		for _, c := range r.Customizations {
			item.Customizations = append(item.Customizations, GetOrderQueryItemCustomization{
				IngredientID: c.IngredientID,
				Name:         c.Name,
				Kind:         c.Kind,
				Half:         c.Half,
				Action:       c.Action,
			})
		}

		resp.Items = append(resp.Items, item)
	}

	return resp, nil
}
