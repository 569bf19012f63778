package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func modifyOrderCommand(t *testing.T, orderID, newOrderID kernel.UUID) commands.ModifyOrderCommand {
	t.Helper()
	cmd, err := commands.NewModifyOrderCommand(
		orderID, newOrderID, order.Pickup, nil,
		[]services.RequestedItem{{ProductID: "cola", Quantity: 1}},
	)
	require.NoError(t, err)
	return cmd
}

func TestModifyOrderCommandHandler_Handle_ReplacesTheOrder(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(order.Created)
	newOrderID := kernel.NewUUID()
	cmd := modifyOrderCommand(t, existing.ID(), newOrderID)

	catalog := new(MockCatalogReader)
	settings := new(MockSettingsProvider)
	hours := new(MockBusinessHours)
	publisher := new(MockEventPublisher)
	repo := new(MockOrderRepository)
	sequencer := new(MockDailySequencer)
	uow := new(MockPlacementUoW)

	settings.On("Settings", ctx).Return(testSettings(), nil).Once()
	hours.On("IsOpen", ctx, testNow).Return(true, nil).Once()
	catalog.On("Snapshot", ctx).Return(testSnapshot(), nil).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		repo.On("Delete", ctx, existing.ID()).Return(nil).Once(),
		uow.On("DailySequencer").Return(sequencer).Once(),
		sequencer.On("NextDailyNumber", ctx, testNow).Return(6, nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("PublishOrderCreated", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewModifyOrderCommandHandler(
		factory, catalog, settings, hours, publisher, fixedClock{testNow})
	replacement, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, replacement.ID().IsEqual(newOrderID))
	assert.Equal(t, 6, replacement.DailyNumber())
	assert.Equal(t, order.Created, replacement.Status())
	// the customer reference survives the destroy-and-recreate
	assert.Equal(t, existing.CustomerRef(), replacement.CustomerRef())
	assert.True(t, replacement.TotalCost().IsEqual(kernel.MustMoneyFromString("3.00")))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestModifyOrderCommandHandler_Handle_RefusedOncePreparing(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(order.InPreparation)
	cmd := modifyOrderCommand(t, existing.ID(), kernel.NewUUID())

	catalog := new(MockCatalogReader)
	settings := new(MockSettingsProvider)
	hours := new(MockBusinessHours)
	publisher := new(MockEventPublisher)
	repo := new(MockOrderRepository)
	uow := new(MockPlacementUoW)

	settings.On("Settings", ctx).Return(testSettings(), nil).Once()
	hours.On("IsOpen", ctx, testNow).Return(true, nil).Once()
	catalog.On("Snapshot", ctx).Return(testSnapshot(), nil).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewModifyOrderCommandHandler(
		factory, catalog, settings, hours, publisher, fixedClock{testNow})
	_, err := h.Handle(ctx, cmd)

	var forbidden *order.ForbiddenTransitionError
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, order.InPreparation, forbidden.From)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestModifyOrderCommandHandler_Handle_PricingFailureLeavesOrderIntact(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(order.Created)
	cmd, err := commands.NewModifyOrderCommand(
		existing.ID(), kernel.NewUUID(), order.Pickup, nil,
		[]services.RequestedItem{{ProductID: "unknown-product", Quantity: 1}},
	)
	require.NoError(t, err)

	catalog := new(MockCatalogReader)
	settings := new(MockSettingsProvider)
	hours := new(MockBusinessHours)
	publisher := new(MockEventPublisher)
	repo := new(MockOrderRepository)
	uow := new(MockPlacementUoW)

	settings.On("Settings", ctx).Return(testSettings(), nil).Once()
	hours.On("IsOpen", ctx, testNow).Return(true, nil).Once()
	catalog.On("Snapshot", ctx).Return(testSnapshot(), nil).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewModifyOrderCommandHandler(
		factory, catalog, settings, hours, publisher, fixedClock{testNow})
	_, err = h.Handle(ctx, cmd)

	var violations *services.ValidationErrors
	require.ErrorAs(t, err, &violations)
	assert.True(t, violations.Has(services.InvalidProduct))
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
