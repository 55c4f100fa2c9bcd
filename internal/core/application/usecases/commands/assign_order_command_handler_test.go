package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/officer"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/vehicle"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newAssignableOrder(t)
	cmd, err := commands.NewAssignOrderCommand(aggregate.ID(), "dispatcher-1", "Kim")
	require.NoError(t, err)

	testVehicle := newTestVehicle(t)
	testDriver := newTestDriver(t)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	officerRepo := new(MockOfficerRepository)
	uow := new(MockAssignmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		uow.On("OfficerRepository").Return(officerRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		vehicleRepo.On("GetAllAvailable", ctx).Return([]*vehicle.Vehicle{testVehicle}, nil).Once(),
		officerRepo.On("GetAllWithCapacity", ctx, officer.RoleDriver).
			Return([]*officer.Officer{testDriver}, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		vehicleRepo.On("Update", ctx, mock.AnythingOfType("*vehicle.Vehicle")).Return(nil).Once(),
		officerRepo.On("Update", ctx, mock.AnythingOfType("*officer.Officer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.DriverAllocated, aggregate.Stage())
	require.NotNil(t, aggregate.Vehicle())
	assert.Equal(t, testVehicle.ID(), *aggregate.Vehicle())
	require.NotNil(t, aggregate.Driver())
	assert.Equal(t, testDriver.ID(), *aggregate.Driver())
	assert.Equal(t, 1, testDriver.CurrentAssignments())
	assert.False(t, testVehicle.Load().IsZero())

	orderRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	officerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignOrderCommand(orderID, "dispatcher-1", "Kim")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	officerRepo := new(MockOfficerRepository)
	uow := new(MockAssignmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		uow.On("OfficerRepository").Return(officerRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrOrderNotFound)
}

func TestAssignOrderCommandHandler_Handle_NoSuitableVehicle(t *testing.T) {
	ctx := t.Context()
	aggregate := newAssignableOrder(t)
	cmd, err := commands.NewAssignOrderCommand(aggregate.ID(), "dispatcher-1", "Kim")
	require.NoError(t, err)

	// A vehicle too small for the order's requirement.
	tiny, err := kernel.NewCapacity(1, 0.5, 0.01)
	require.NoError(t, err)
	smallVehicle, err := vehicle.NewVehicle(kernel.NewUUID(), "Cargo Bike", "bike", tiny)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	officerRepo := new(MockOfficerRepository)
	uow := new(MockAssignmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		uow.On("OfficerRepository").Return(officerRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		vehicleRepo.On("GetAllAvailable", ctx).Return([]*vehicle.Vehicle{smallVehicle}, nil).Once(),
		officerRepo.On("GetAllWithCapacity", ctx, officer.RoleDriver).
			Return([]*officer.Officer{newTestDriver(t)}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, services.ErrNoSuitableVehicle)
	assert.Equal(t, order.ReadyToPickup, aggregate.Stage())
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestAssignOrderCommandHandler_Handle_AlreadyAssigned(t *testing.T) {
	ctx := t.Context()
	aggregate := newAllocatedOrder(t, kernel.NewUUID(), kernel.NewUUID())
	cmd, err := commands.NewAssignOrderCommand(aggregate.ID(), "dispatcher-1", "Kim")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vehicleRepo := new(MockVehicleRepository)
	officerRepo := new(MockOfficerRepository)
	uow := new(MockAssignmentUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		uow.On("OfficerRepository").Return(officerRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		vehicleRepo.On("GetAllAvailable", ctx).Return([]*vehicle.Vehicle{newTestVehicle(t)}, nil).Once(),
		officerRepo.On("GetAllWithCapacity", ctx, officer.RoleDriver).
			Return([]*officer.Officer{newTestDriver(t)}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrAlreadyAssigned)
}
