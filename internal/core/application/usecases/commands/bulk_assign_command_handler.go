package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/officer"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// BulkAssignCommandHandler sweeps the assignable pool, assigning each order
// in its own transaction. Per-order failures are collected in the result
// list instead of aborting the sweep.
type BulkAssignCommandHandler struct {
	uowFactory AssignmentUoWFactory
	scheduler  services.AssignmentScheduler
}

// NewBulkAssignCommandHandler creates a handler for pool sweeps.
func NewBulkAssignCommandHandler(uowFactory AssignmentUoWFactory) BulkAssignCommandHandler {
	return BulkAssignCommandHandler{
		uowFactory: uowFactory,
		scheduler:  services.NewAssignmentScheduler(),
	}
}

// Handle lists the assignable pool once, then runs one transaction per
// order. Returns a result per attempted order; the error return covers only
// listing the pool.
func (h BulkAssignCommandHandler) Handle(ctx context.Context, command BulkAssignCommand) ([]BulkAssignResult, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	actor, err := kernel.NewActor(command.ActorID(), command.ActorName())
	if err != nil {
		return nil, err
	}

	pool, err := h.listAssignable(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]BulkAssignResult, 0, len(pool))
	for _, orderID := range pool {
		results = append(results, BulkAssignResult{
			OrderID: orderID,
			Err:     h.assignOne(ctx, orderID, actor),
		})
	}
	return results, nil
}

// listAssignable snapshots the IDs of the assignable pool in a read-only
// transaction. IDs, not aggregates: each assignment reloads its order
// inside its own transaction to see fresh state.
func (h BulkAssignCommandHandler) listAssignable(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pool, err := uow.OrderRepository().GetAllAssignable(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(pool))
	for _, aggregate := range pool {
		ids = append(ids, aggregate.ID())
	}
	return ids, uow.Commit(ctx)
}

// assignOne runs the scheduler for a single order in its own transaction.
func (h BulkAssignCommandHandler) assignOne(ctx context.Context, orderID kernel.UUID, actor kernel.Actor) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()
	vehiclesRepo := uow.VehicleRepository()
	officersRepo := uow.OfficerRepository()

	aggregate, err := ordersRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if !aggregate.IsAssignable() {
		return order.ErrAlreadyAssigned
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
