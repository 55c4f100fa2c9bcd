package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// AssignDispatchOfficerCommandHandler advances an allocated order to the
// hand-over stage, charging the dispatch officer's assignment counter.
type AssignDispatchOfficerCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignDispatchOfficerCommandHandler creates a handler for the hand-over step.
func NewAssignDispatchOfficerCommandHandler(uowFactory AssignmentUoWFactory) AssignDispatchOfficerCommandHandler {
	return AssignDispatchOfficerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the order to the dispatch-officer stage and takes a slot on
// the officer, both in one transaction.
func (h AssignDispatchOfficerCommandHandler) Handle(ctx context.Context, command AssignDispatchOfficerCommand) error {
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
	officersRepo := uow.OfficerRepository()

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	dispatchOfficer, err := officersRepo.Get(ctx, command.OfficerID())
	if err != nil {
		return err
	}

	if err = dispatchOfficer.TakeOrder(aggregate.ID()); err != nil {
		return err
	}
	if err = aggregate.AssignDispatchOfficer(dispatchOfficer.ID(), actor, time.Now().UTC()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if err = officersRepo.Update(ctx, dispatchOfficer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
