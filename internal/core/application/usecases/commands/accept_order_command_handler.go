package commands

import (
	"context"
	"time"
)

// AcceptOrderCommandHandler records driver acceptance and releases the
// dispatch officer's slot now that the hand-over is done.
type AcceptOrderCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for driver acceptance.
func NewAcceptOrderCommandHandler(uowFactory AssignmentUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle advances the order to picked-up and frees the dispatch officer.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, command AcceptOrderCommand) error {
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
	officersRepo := uow.OfficerRepository()

	aggregate, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	dispatchOfficerID := aggregate.Officer()

	if err = aggregate.AcceptByDriver(command.DriverID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if dispatchOfficerID != nil {
		dispatchOfficer, err := officersRepo.Get(ctx, *dispatchOfficerID)
		if err != nil {
			return err
		}
		if err = dispatchOfficer.ReleaseOrder(aggregate.ID()); err != nil {
			return err
		}
		if err = officersRepo.Update(ctx, dispatchOfficer); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
