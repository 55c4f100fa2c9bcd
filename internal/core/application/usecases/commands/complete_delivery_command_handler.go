package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/officer"
	"fulfillment/internal/core/domain/model/vehicle"
)

// CompleteDeliveryCommandHandler closes deliveries and returns the held
// capacity to the driver and the vehicle.
type CompleteDeliveryCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for closing deliveries.
func NewCompleteDeliveryCommandHandler(uowFactory AssignmentUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies CompleteDelivery and releases driver and vehicle capacity
// in the same transaction. Gate failures (missing proof, no confirmation)
// surface unchanged.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor, err := kernel.NewActor(command.ActorID(), command.ActorName())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	driverID := aggregate.Driver()
	vehicleID := aggregate.Vehicle()

	if err = aggregate.CompleteDelivery(actor, time.Now().UTC()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if driverID != nil {
		if err = h.releaseDriver(ctx, uow, *driverID, aggregate.ID()); err != nil {
			return err
		}
	}
	if vehicleID != nil {
		if err = h.releaseVehicle(ctx, uow, *vehicleID, aggregate.ID()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h CompleteDeliveryCommandHandler) releaseDriver(
	ctx context.Context,
	uow AssignmentUoW,
	driverID, orderID kernel.UUID,
) error {
	officersRepo := uow.OfficerRepository()
	driver, err := officersRepo.Get(ctx, driverID)
	if err != nil {
		return err
	}
	if err = driver.ReleaseOrder(orderID); err != nil && !errors.Is(err, officer.ErrOrderNotAssigned) {
		return err
	}
	return officersRepo.Update(ctx, driver)
}

func (h CompleteDeliveryCommandHandler) releaseVehicle(
	ctx context.Context,
	uow AssignmentUoW,
	vehicleID, orderID kernel.UUID,
) error {
	vehiclesRepo := uow.VehicleRepository()
	aggregate, err := vehiclesRepo.Get(ctx, vehicleID)
	if err != nil {
		return err
	}
	if err = aggregate.ReleaseOrder(orderID); err != nil && !errors.Is(err, vehicle.ErrOrderNotLoaded) {
		return err
	}
	return vehiclesRepo.Update(ctx, aggregate)
}
