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

func TestMarkOrderPaidCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(order.Accepted)
	cmd, err := commands.NewMarkOrderPaidCommand(existing.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderPaidCommandHandler(factory, fixedClock{testNow})
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PaymentPaid, existing.PaymentStatus())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkOrderPaidCommandHandler_Handle_RedeliveredConfirmationIsIdempotent(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(order.Accepted)
	require.NoError(t, existing.MarkPaid(testNow.Add(-time.Minute)))
	firstPaidAt := existing.UpdatedAt()
	cmd, err := commands.NewMarkOrderPaidCommand(existing.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	repo.On("Update", ctx, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOrderPaidCommandHandler(factory, fixedClock{testNow})
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PaymentPaid, existing.PaymentStatus())
	assert.Equal(t, firstPaidAt, existing.UpdatedAt())
}

func TestMarkOrderPaidCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)

	h := commands.NewMarkOrderPaidCommandHandler(factory, fixedClock{testNow})
	err := h.Handle(ctx, commands.MarkOrderPaidCommand{})

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
