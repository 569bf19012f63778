package queries

import (
	"context"
	"database/sql"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads in-flight orders straight from the
// database, bypassing the aggregate. Read models stay flat so the kitchen
// display never pays the cost of rehydrating item lists it does not show.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal orders.
// Results are sorted by daily number, matching the order the kitchen
// announces them in.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
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
			created_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY daily_number
	`, order.Finished.String(), order.Canceled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var id uuid.UUID
		var totalCost decimal.Decimal
		var scheduledAt sql.NullTime

		err = rows.Scan(
			&id,
			&resp.DailyNumber,
			&resp.OrderType,
			&resp.Status,
			&resp.PaymentStatus,
			&totalCost,
			&resp.CustomerRef,
			&scheduledAt,
			&resp.EstimatedMinutes,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.TotalCost = kernel.NewMoneyFromDecimal(totalCost)
		if scheduledAt.Valid {
			at := scheduledAt.Time
			resp.ScheduledAt = &at
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
