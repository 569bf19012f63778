package commands_test

import (
	"context"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockOrderRepository) GetStaleCreated(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDailySequencer struct{ mock.Mock }

func (m *MockDailySequencer) NextDailyNumber(ctx context.Context, day time.Time) (int, error) {
	args := m.Called(ctx, day)
	return args.Int(0), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPlacementUoW struct{ mock.Mock }

func (m *MockPlacementUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPlacementUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPlacementUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPlacementUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockPlacementUoW) DailySequencer() ports.DailySequencer {
	args := m.Called()
	return args.Get(0).(ports.DailySequencer)
}

type MockPlacementUoWFactory struct{ mock.Mock }

func (m *MockPlacementUoWFactory) Create() commands.PlacementUoW {
	args := m.Called()
	return args.Get(0).(commands.PlacementUoW)
}

type MockCatalogReader struct{ mock.Mock }

func (m *MockCatalogReader) Snapshot(ctx context.Context) (menu.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(menu.Snapshot), args.Error(1)
}

type MockSettingsProvider struct{ mock.Mock }

func (m *MockSettingsProvider) Settings(ctx context.Context) (services.RestaurantSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(services.RestaurantSettings), args.Error(1)
}

type MockBusinessHours struct{ mock.Mock }

func (m *MockBusinessHours) IsOpen(ctx context.Context, now time.Time) (bool, error) {
	args := m.Called(ctx, now)
	return args.Bool(0), args.Error(1)
}

type MockIdempotencyStore struct{ mock.Mock }

func (m *MockIdempotencyStore) Reserve(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderCreated(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockEventPublisher) PublishOrderStatusChanged(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockEventPublisher) PublishOrderCanceled(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2025, 6, 14, 18, 30, 0, 0, time.UTC)

func testSnapshot() menu.Snapshot {
	base := kernel.MustMoneyFromString("3.00")
	return menu.NewSnapshot(
		[]menu.Product{{ID: "cola", Name: "Cola 0.5l", BasePrice: &base, Available: true}},
		nil, nil, nil, nil,
	)
}

func testSettings() services.RestaurantSettings {
	return services.RestaurantSettings{
		AcceptingOrders:           true,
		EstimatedPickupMinutes:    20,
		EstimatedDeliveryMinutes:  45,
		MinimumDeliveryOrderValue: kernel.MustMoneyFromString("5.00"),
	}
}

func testItems() []order.Item {
	price := kernel.MustMoneyFromString("6.00")
	return []order.Item{{
		ProductID:      "cola",
		ProductName:    "Cola 0.5l",
		Quantity:       2,
		BasePrice:      kernel.MustMoneyFromString("3.00"),
		ModifiersPrice: kernel.ZeroMoney(),
		UnitPrice:      kernel.MustMoneyFromString("3.00"),
		TotalPrice:     price,
	}}
}

// storedOrder restores an aggregate in the given status, the way a repository
// Get would hand it back.
func storedOrder(status order.Status) *order.Order {
	o, err := order.RestoreOrder(
		kernel.NewUUID(), 5, order.Pickup, status, order.PaymentPending,
		"chat:42", testItems(), kernel.MustMoneyFromString("6.00"),
		20, nil, testNow.Add(-time.Hour), testNow.Add(-time.Hour),
	)
	if err != nil {
		panic(err)
	}
	return o
}
