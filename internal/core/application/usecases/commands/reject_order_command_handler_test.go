package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRejectOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testVehicle := newTestVehicle(t)
	testDriver := newTestDriver(t)
	aggregate := newAllocatedOrder(t, testVehicle.ID(), testDriver.ID())
	require.NoError(t, testVehicle.LoadOrder(aggregate.ID(), aggregate.Requirement()))
	require.NoError(t, testDriver.TakeOrder(aggregate.ID()))

	cmd, err := commands.NewRejectOrderCommand(aggregate.ID(), testDriver.ID(), "vehicle broke down")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	officerRepo := new(MockOfficerRepository)
	uow := new(MockAssignmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", ctx, testVehicle.ID()).Return(testVehicle, nil).Once(),
		vehicleRepo.On("Update", ctx, mock.AnythingOfType("*vehicle.Vehicle")).Return(nil).Once(),
		uow.On("OfficerRepository").Return(officerRepo).Once(),
		officerRepo.On("Get", ctx, testDriver.ID()).Return(testDriver, nil).Once(),
		officerRepo.On("Update", ctx, mock.AnythingOfType("*officer.Officer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.ReadyToPickup, aggregate.Stage())
	assert.True(t, aggregate.IsAssignable())
	assert.Nil(t, aggregate.Vehicle())
	assert.Nil(t, aggregate.Driver())
	assert.Equal(t, "vehicle broke down", aggregate.RejectionReason())
	assert.True(t, testVehicle.Load().IsZero())
	assert.Equal(t, 0, testDriver.CurrentAssignments())

	orderRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	officerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRejectOrderCommandHandler_Handle_WrongDriver(t *testing.T) {
	ctx := t.Context()
	testVehicle := newTestVehicle(t)
	testDriver := newTestDriver(t)
	aggregate := newAllocatedOrder(t, testVehicle.ID(), testDriver.ID())

	otherDriver := kernel.NewUUID()
	cmd, err := commands.NewRejectOrderCommand(aggregate.ID(), otherDriver, "not my route")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockAssignmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Equal(t, order.DriverAllocated, aggregate.Stage())
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestNewRejectOrderCommand_EmptyReason(t *testing.T) {
	_, err := commands.NewRejectOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "")
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRejectReasonIsRequired)
}
