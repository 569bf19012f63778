package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func placeOrderDeps() (*MockPlacementUoWFactory, *MockCatalogReader, *MockSettingsProvider,
	*MockBusinessHours, *MockIdempotencyStore, *MockEventPublisher) {
	return new(MockPlacementUoWFactory), new(MockCatalogReader), new(MockSettingsProvider),
		new(MockBusinessHours), new(MockIdempotencyStore), new(MockEventPublisher)
}

func placeOrderCommand(t *testing.T, idempotencyKey string) commands.PlaceOrderCommand {
	t.Helper()
	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), "chat:42", order.Pickup, nil, idempotencyKey,
		[]services.RequestedItem{{ProductID: "cola", Quantity: 2}},
	)
	require.NoError(t, err)
	return cmd
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t, "")

	factory, catalog, settings, hours, idempotency, publisher := placeOrderDeps()
	repo := new(MockOrderRepository)
	sequencer := new(MockDailySequencer)
	uow := new(MockPlacementUoW)

	settings.On("Settings", ctx).Return(testSettings(), nil).Once()
	hours.On("IsOpen", ctx, testNow).Return(true, nil).Once()
	catalog.On("Snapshot", ctx).Return(testSnapshot(), nil).Once()
	factory.On("Create").Return(uow).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DailySequencer").Return(sequencer).Once(),
		sequencer.On("NextDailyNumber", ctx, testNow).Return(7, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("PublishOrderCreated", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	h := commands.NewPlaceOrderCommandHandler(
		factory, catalog, settings, hours, idempotency, publisher, fixedClock{testNow})
	placed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 7, placed.DailyNumber())
	assert.Equal(t, order.Created, placed.Status())
	assert.Equal(t, order.PaymentPending, placed.PaymentStatus())
	assert.True(t, placed.TotalCost().IsEqual(kernel.MustMoneyFromString("6.00")))
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
	sequencer.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_DuplicateIdempotencyKey(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t, "msg-123")

	factory, catalog, settings, hours, idempotency, publisher := placeOrderDeps()
	idempotency.On("Reserve", ctx, "msg-123").Return(false, nil).Once()

	h := commands.NewPlaceOrderCommandHandler(
		factory, catalog, settings, hours, idempotency, publisher, fixedClock{testNow})
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrDuplicateOrder)
	idempotency.AssertExpectations(t)
	settings.AssertNotCalled(t, "Settings", mock.Anything)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_FreshIdempotencyKeyProceeds(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t, "msg-124")

	factory, catalog, settings, hours, idempotency, publisher := placeOrderDeps()
	repo := new(MockOrderRepository)
	sequencer := new(MockDailySequencer)
	uow := new(MockPlacementUoW)

	idempotency.On("Reserve", ctx, "msg-124").Return(true, nil).Once()
	settings.On("Settings", ctx).Return(testSettings(), nil).Once()
	hours.On("IsOpen", ctx, testNow).Return(true, nil).Once()
	catalog.On("Snapshot", ctx).Return(testSnapshot(), nil).Once()
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DailySequencer").Return(sequencer).Once()
	sequencer.On("NextDailyNumber", ctx, testNow).Return(8, nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	publisher.On("PublishOrderCreated", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	h := commands.NewPlaceOrderCommandHandler(
		factory, catalog, settings, hours, idempotency, publisher, fixedClock{testNow})
	_, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	idempotency.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationFailureSkipsTransaction(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t, "")

	factory, catalog, settings, hours, idempotency, publisher := placeOrderDeps()
	closedSettings := testSettings()
	closedSettings.AcceptingOrders = false
	settings.On("Settings", ctx).Return(closedSettings, nil).Once()
	hours.On("IsOpen", ctx, testNow).Return(true, nil).Once()
	catalog.On("Snapshot", ctx).Return(testSnapshot(), nil).Once()

	h := commands.NewPlaceOrderCommandHandler(
		factory, catalog, settings, hours, idempotency, publisher, fixedClock{testNow})
	_, err := h.Handle(ctx, cmd)

	var violation *services.ValidationError
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, services.NotAcceptingOrders, violation.Kind)
	factory.AssertNotCalled(t, "Create")
	publisher.AssertNotCalled(t, "PublishOrderCreated", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	ctx := t.Context()
	factory, catalog, settings, hours, idempotency, publisher := placeOrderDeps()

	h := commands.NewPlaceOrderCommandHandler(
		factory, catalog, settings, hours, idempotency, publisher, fixedClock{testNow})
	_, err := h.Handle(ctx, commands.PlaceOrderCommand{})

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
}

func TestPlaceOrderCommandHandler_Handle_CommitErrorIsReturned(t *testing.T) {
	ctx := t.Context()
	cmd := placeOrderCommand(t, "")

	factory, catalog, settings, hours, idempotency, publisher := placeOrderDeps()
	repo := new(MockOrderRepository)
	sequencer := new(MockDailySequencer)
	uow := new(MockPlacementUoW)

	settings.On("Settings", ctx).Return(testSettings(), nil).Once()
	hours.On("IsOpen", ctx, testNow).Return(true, nil).Once()
	catalog.On("Snapshot", ctx).Return(testSnapshot(), nil).Once()
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DailySequencer").Return(sequencer).Once()
	sequencer.On("NextDailyNumber", ctx, testNow).Return(9, nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewPlaceOrderCommandHandler(
		factory, catalog, settings, hours, idempotency, publisher, fixedClock{testNow})
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	publisher.AssertNotCalled(t, "PublishOrderCreated", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
