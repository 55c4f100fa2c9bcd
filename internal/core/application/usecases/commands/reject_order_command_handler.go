package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/officer"
	"fulfillment/internal/core/domain/model/vehicle"
)

// RejectOrderCommandHandler processes a driver declining an order: the
// single sanctioned backward move of the workflow. The stage drops back to
// the assignable pool and the driver, dispatch officer, and vehicle all get
// their capacity back in the same transaction.
type RejectOrderCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewRejectOrderCommandHandler creates a handler for driver rejection.
func NewRejectOrderCommandHandler(uowFactory AssignmentUoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the order to the pool and releases every held resource.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, command RejectOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	// Capture the references before the domain clears them.
	vehicleID := aggregate.Vehicle()
	officerID := aggregate.Officer()
	driverID := aggregate.Driver()

	if err = aggregate.RejectByDriver(command.DriverID(), command.Reason(), time.Now().UTC()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.releaseVehicle(ctx, uow, vehicleID, aggregate.ID()); err != nil {
		return err
	}
	if err = h.releaseOfficer(ctx, uow, driverID, aggregate.ID()); err != nil {
		return err
	}
	if err = h.releaseOfficer(ctx, uow, officerID, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h RejectOrderCommandHandler) releaseVehicle(
	ctx context.Context,
	uow AssignmentUoW,
	vehicleID *kernel.UUID,
	orderID kernel.UUID,
) error {
	if vehicleID == nil {
		return nil
	}

	vehiclesRepo := uow.VehicleRepository()
	aggregate, err := vehiclesRepo.Get(ctx, *vehicleID)
	if err != nil {
		return err
	}
	if err = aggregate.ReleaseOrder(orderID); err != nil && !errors.Is(err, vehicle.ErrOrderNotLoaded) {
		return err
	}
	return vehiclesRepo.Update(ctx, aggregate)
}

func (h RejectOrderCommandHandler) releaseOfficer(
	ctx context.Context,
	uow AssignmentUoW,
	officerID *kernel.UUID,
	orderID kernel.UUID,
) error {
	if officerID == nil {
		return nil
	}

	officersRepo := uow.OfficerRepository()
	aggregate, err := officersRepo.Get(ctx, *officerID)
	if err != nil {
		return err
	}
	if err = aggregate.ReleaseOrder(orderID); err != nil && !errors.Is(err, officer.ErrOrderNotAssigned) {
		return err
	}
	return officersRepo.Update(ctx, aggregate)
}
