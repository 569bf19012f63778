package commands_test

import (
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExpireStaleOrdersCommandHandler_Handle_RemovesStaleOrders(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewExpireStaleOrdersCommand(30 * time.Minute)
	require.NoError(t, err)

	first := storedOrder(order.Created)
	second := storedOrder(order.Created)
	cutoff := testNow.Add(-30 * time.Minute)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetStaleCreated", ctx, cutoff).Return([]*order.Order{first, second}, nil).Once(),
		repo.On("Delete", ctx, first.ID()).Return(nil).Once(),
		repo.On("Delete", ctx, second.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("PublishOrderCanceled", ctx, first).Return(nil).Once()
	publisher.On("PublishOrderCanceled", ctx, second).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpireStaleOrdersCommandHandler(factory, publisher, fixedClock{testNow})
	removed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestExpireStaleOrdersCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewExpireStaleOrdersCommand(30 * time.Minute)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockEventPublisher)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetStaleCreated", ctx, mock.AnythingOfType("time.Time")).Return([]*order.Order{}, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpireStaleOrdersCommandHandler(factory, publisher, fixedClock{testNow})
	removed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, removed)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishOrderCanceled", mock.Anything, mock.Anything)
}

func TestNewExpireStaleOrdersCommand_RejectsNonPositiveTTL(t *testing.T) {
	for _, ttl := range []time.Duration{0, -time.Minute} {
		_, err := commands.NewExpireStaleOrdersCommand(ttl)
		require.Error(t, err)
	}
}
