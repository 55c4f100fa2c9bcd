package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/officer"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/vehicle"
)

// BranchOrderCommandHandler diverts orders onto the exceptional tracks.
// A diverted order may still hold a vehicle, a driver, or a dispatch
// officer; whatever is held gets released in the same transaction so the
// resources go back to the pool the moment the order leaves the forward
// path.
type BranchOrderCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewBranchOrderCommandHandler creates a handler for order diversion.
func NewBranchOrderCommandHandler(uowFactory AssignmentUoWFactory) BranchOrderCommandHandler {
	return BranchOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the requested branch and releases every held resource.
func (h BranchOrderCommandHandler) Handle(ctx context.Context, command BranchOrderCommand) error {
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

	vehicleID := aggregate.Vehicle()
	officerID := aggregate.Officer()
	driverID := aggregate.Driver()

	if err = h.applyBranch(aggregate, command, time.Now().UTC()); err != nil {
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

func (h BranchOrderCommandHandler) applyBranch(
	aggregate *order.Order,
	command BranchOrderCommand,
	now time.Time,
) error {
	switch command.Kind() {
	case BranchKindRefund:
		return aggregate.Refund(command.Actor(), now)
	case BranchKindComplaint:
		return aggregate.FlagComplaint(command.Actor(), now)
	case BranchKindDriverIssue:
		return aggregate.FlagDriverIssue(command.Actor(), now)
	case BranchKindReturn:
		return aggregate.MarkReturned(command.Actor(), now)
	default:
		return ErrBranchKindIsInvalid
	}
}

func (h BranchOrderCommandHandler) releaseVehicle(
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

func (h BranchOrderCommandHandler) releaseOfficer(
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
