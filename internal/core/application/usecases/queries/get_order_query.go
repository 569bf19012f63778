package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full detail of a single order, items included.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to load.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse represents the complete order, priced lines included.
type GetOrderQueryResponse struct {
	ID               kernel.UUID
	DailyNumber      int
	OrderType        string
	Status           string
	PaymentStatus    string
	TotalCost        kernel.Money
	CustomerRef      string
	ScheduledAt      *time.Time
	EstimatedMinutes int
	Items            []GetOrderQueryItem
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// GetOrderQueryItem is one priced order line as it was frozen at placement.
type GetOrderQueryItem struct {
	ProductID      string
	ProductName    string
	VariantID      string
	VariantName    string
	Quantity       int
	Modifiers      []GetOrderQueryItemModifier
	Customizations []GetOrderQueryItemCustomization
	Comment        string
	UnitPrice      kernel.Money
	TotalPrice     kernel.Money
}

// GetOrderQueryItemModifier is one applied modifier with its price delta.
type GetOrderQueryItemModifier struct {
	ID         string
	Name       string
	PriceDelta kernel.Money
}

// GetOrderQueryItemCustomization is one applied pizza customization.
type GetOrderQueryItemCustomization struct {
	IngredientID string
	Name         string
	Kind         string
	Half         string
	Action       string
}
