package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/officer"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderNotFound is returned when the targeted order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// AssignOrderCommandHandler orchestrates the assignment of one order.
//
// Concurrency: the officer repository writes the assignment counter with a
// conditional atomic increment, and the order repository writes with a
// version compare-and-swap. When two dispatchers race for the same driver's
// last slot or the same order, exactly one transaction commits; the loser
// surfaces ErrCapacityExceeded or a version conflict and can retry.
type AssignOrderCommandHandler struct {
	uowFactory AssignmentUoWFactory
	scheduler  services.AssignmentScheduler
}

// NewAssignOrderCommandHandler creates a handler for order assignment.
func NewAssignOrderCommandHandler(uowFactory AssignmentUoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		scheduler:  services.NewAssignmentScheduler(),
	}
}

// Handle loads the order, the available vehicles, and the drivers with spare
// capacity, lets the scheduler pick, and persists all three aggregates in
// one transaction.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, command AssignOrderCommand) error {
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
	vehiclesRepo := uow.VehicleRepository()
	officersRepo := uow.OfficerRepository()

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	vehicles, err := vehiclesRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}

	drivers, err := officersRepo.GetAllWithCapacity(ctx, officer.RoleDriver)
	if err != nil {
		return err
	}

	bestVehicle, bestDriver, err := h.scheduler.Dispatch(
		aggregate, vehicles, drivers, actor, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if err = vehiclesRepo.Update(ctx, bestVehicle); err != nil {
		return err
	}
	if err = officersRepo.Update(ctx, bestDriver); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
