package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves all orders still moving through the
// lifecycle, i.e. everything that is not finished or canceled. Used by the
// kitchen display and the staff dashboard.
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve active orders.
// This is a parameterless query that fetches every non-terminal order.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse is a flat summary of an in-flight order.
// Item details are intentionally omitted; GetOrderQuery returns them.
type GetActiveOrdersQueryResponse struct {
	ID               kernel.UUID
	DailyNumber      int
	OrderType        string
	Status           string
	PaymentStatus    string
	TotalCost        kernel.Money
	CustomerRef      string
	ScheduledAt      *time.Time
	EstimatedMinutes int
	CreatedAt        time.Time
}
