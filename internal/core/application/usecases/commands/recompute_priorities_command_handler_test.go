package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newAgedOrder builds an order that was placed well ahead of its delivery
// slot, so its stored priority lags behind what the current clock derives.
func newAgedOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewItem("SKU-100", 2, 1.5)
	require.NoError(t, err)

	deliveryAt := time.Now().UTC().Add(3 * time.Hour)
	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		"customer-7",
		[]*order.Item{item},
		"12 Harbor Lane",
		deliveryAt,
		"14:00-16:00",
		4_500,
		0.4,
		deliveryAt.Add(-80*time.Hour),
	)
	require.NoError(t, err)
	require.Equal(t, order.PriorityLow, aggregate.Priority())
	return aggregate
}

func TestRecomputePrioritiesCommandHandler_Handle_PersistsOnlyDriftedOrders(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRecomputePrioritiesCommand()
	require.NoError(t, err)

	aged := newAgedOrder(t)
	// Placed two days out; the derived priority has not moved yet.
	stable := newConfirmedOrder(t)

	listRepo := new(MockOrderRepository)
	listUoW := new(MockOrderUoW)
	mock.InOrder(
		listUoW.On("Begin", ctx).Return(nil).Once(),
		listUoW.On("OrderRepository").Return(listRepo).Once(),
		listRepo.On("GetAllActive", ctx).Return([]*order.Order{aged, stable}, nil).Once(),
		listUoW.On("Commit", ctx).Return(nil).Once(),
		listUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	agedRepo := new(MockOrderRepository)
	agedUoW := new(MockOrderUoW)
	mock.InOrder(
		agedUoW.On("Begin", ctx).Return(nil).Once(),
		agedUoW.On("OrderRepository").Return(agedRepo).Once(),
		agedRepo.On("Get", ctx, aged.ID()).Return(aged, nil).Once(),
		agedRepo.On("Update", ctx, aged).Return(nil).Once(),
		agedUoW.On("Commit", ctx).Return(nil).Once(),
		agedUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	stableRepo := new(MockOrderRepository)
	stableUoW := new(MockOrderUoW)
	mock.InOrder(
		stableUoW.On("Begin", ctx).Return(nil).Once(),
		stableUoW.On("OrderRepository").Return(stableRepo).Once(),
		stableRepo.On("Get", ctx, stable.ID()).Return(stable, nil).Once(),
		stableUoW.On("Commit", ctx).Return(nil).Once(),
		stableUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(listUoW).Once(),
		factory.On("Create").Return(agedUoW).Once(),
		factory.On("Create").Return(stableUoW).Once(),
	)

	handler := commands.NewRecomputePrioritiesCommandHandler(factory)
	changed, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	assert.Equal(t, order.PriorityUrgent, aged.Priority())

	factory.AssertExpectations(t)
	listUoW.AssertExpectations(t)
	agedUoW.AssertExpectations(t)
	stableUoW.AssertExpectations(t)
}

func TestRecomputePrioritiesCommandHandler_Handle_EmptyPool(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRecomputePrioritiesCommand()
	require.NoError(t, err)

	listRepo := new(MockOrderRepository)
	listUoW := new(MockOrderUoW)
	mock.InOrder(
		listUoW.On("Begin", ctx).Return(nil).Once(),
		listUoW.On("OrderRepository").Return(listRepo).Once(),
		listRepo.On("GetAllActive", ctx).Return([]*order.Order{}, nil).Once(),
		listUoW.On("Commit", ctx).Return(nil).Once(),
		listUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(listUoW).Once()

	handler := commands.NewRecomputePrioritiesCommandHandler(factory)
	changed, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Zero(t, changed)
}
