package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompletePackingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newPickingOrder(t)
	require.NoError(t, aggregate.MarkItemPacked(0, testActor(t), time.Now().UTC()))

	cmd, err := commands.NewCompletePackingCommand(aggregate.ID(), "all lines packed", "officer-1", "Dana")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompletePackingCommandHandler(factory)
	err = handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.ReadyToPickup, aggregate.Stage())
	assert.Equal(t, "all lines packed", aggregate.PackingNotes())
}

func TestCompletePackingCommandHandler_Handle_PendingItems(t *testing.T) {
	ctx := t.Context()
	aggregate := newPickingOrder(t) // item 0 never packed

	cmd, err := commands.NewCompletePackingCommand(aggregate.ID(), "", "officer-1", "Dana")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompletePackingCommandHandler(factory)
	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrIncompletePacking)

	var incomplete *order.IncompleteStageError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, []int{0}, incomplete.Pending)
	repo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}
